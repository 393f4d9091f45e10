package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agrimarket/entities"
	"agrimarket/pkg/farm/controller"
	"agrimarket/pkg/farm/repository"
)

type FarmCtrl struct{ repo repository.FarmRepository }

func New(repo repository.FarmRepository) controller.FarmController { return &FarmCtrl{repo} }

type createFarmReq struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	SizeHectares float64 `json:"size_hectares"`
	SoilType     string  `json:"soil_type"`
	WaterSource  string  `json:"water_source"`
	Description  string  `json:"description"`
}

type addCropReq struct {
	Name              string   `json:"name"`
	AreaHectares      float64  `json:"area_hectares"`
	PlantedAt         string   `json:"planted_at"` // YYYY-MM-DD
	ExpectedYieldTons *float64 `json:"expected_yield_tons"`
}

type harvestReq struct {
	ActualYieldTons float64 `json:"actual_yield_tons"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req createFarmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	f := &entities.Farm{
		UserID:       uid,
		Name:         req.Name,
		Location:     req.Location,
		SizeHectares: req.SizeHectares,
		SoilType:     req.SoilType,
		WaterSource:  req.WaterSource,
		Description:  req.Description,
	}
	if err := h.repo.Create(c.Request().Context(), f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(c.Request().Context(), uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	fs, err := h.repo.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fs)
}

func (h *FarmCtrl) AddCrop(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(c.Request().Context(), uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "farm not found"})
	}
	var req addCropReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	planted := time.Now()
	if req.PlantedAt != "" {
		if d, err := time.Parse("2006-01-02", req.PlantedAt); err == nil {
			planted = d
		}
	}
	cr := &entities.Crop{
		FarmID:            uint(id),
		Name:              req.Name,
		AreaHectares:      req.AreaHectares,
		PlantedAt:         planted,
		ExpectedYieldTons: req.ExpectedYieldTons,
	}
	if err := h.repo.CreateCrop(c.Request().Context(), cr); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *FarmCtrl) ListCrops(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(c.Request().Context(), uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "farm not found"})
	}
	cs, err := h.repo.CropsByFarm(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cs)
}

// ReportHarvest records the actual yield of a crop after harvest. This is
// the moment a crop starts contributing to the yield-performance factor.
func (h *FarmCtrl) ReportHarvest(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("crop_id"))
	var req harvestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.ActualYieldTons < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "actual_yield_tons must be >= 0"})
	}
	cr, err := h.repo.FindCropByID(c.Request().Context(), uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "crop not found"})
	}
	cr.ActualYieldTons = &req.ActualYieldTons
	if err := h.repo.SaveCrop(c.Request().Context(), cr); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cr)
}

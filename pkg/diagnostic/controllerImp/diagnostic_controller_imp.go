package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrimarket/entities"
	"agrimarket/pkg/analyzer"
	"agrimarket/pkg/diagnostic/repository"
	farmrepo "agrimarket/pkg/farm/repository"
)

type DiagnosticCtrl struct {
	repo  repository.DiagnosticRepository
	farms farmrepo.FarmRepository
	ai    analyzer.Client
}

func New(repo repository.DiagnosticRepository, farms farmrepo.FarmRepository, ai analyzer.Client) *DiagnosticCtrl {
	return &DiagnosticCtrl{repo: repo, farms: farms, ai: ai}
}

type scanReq struct {
	CropName string `json:"crop_name"`
	Symptoms string `json:"symptoms"`
	PhotoURL string `json:"photo_url"`
}

// Create runs an AI crop scan for one of the caller's farms and persists
// the event. Each persisted event counts as platform activity for scoring.
func (h *DiagnosticCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(uint)
	fid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.farms.FindByID(c.Request().Context(), uint(fid), uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "farm not found"})
	}
	var req scanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	res, err := h.ai.AnalyzeCrop(c.Request().Context(), analyzer.ScanRequest{
		CropName: req.CropName,
		Symptoms: req.Symptoms,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "analyzer unavailable"})
	}
	d := &entities.Diagnostic{
		FarmID:   uint(fid),
		CropName: req.CropName,
		Finding:  res.Finding,
		Severity: res.Severity,
		PhotoURL: req.PhotoURL,
	}
	if err := h.repo.Create(c.Request().Context(), d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DiagnosticCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	fid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.farms.FindByID(c.Request().Context(), uint(fid), uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "farm not found"})
	}
	out, err := h.repo.ListByFarm(c.Request().Context(), uint(fid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrimarket/entities"
	"agrimarket/pkg/loan/repository"
)

type LoanCtrl struct{ repo repository.LoanRepository }

func New(repo repository.LoanRepository) *LoanCtrl { return &LoanCtrl{repo} }

type applyReq struct {
	AmountRequested float64 `json:"amount_requested"`
	Purpose         string  `json:"purpose"`
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *LoanCtrl) Apply(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.AmountRequested <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount_requested must be > 0"})
	}
	l := &entities.LoanApplication{
		UserID:          uid,
		AmountRequested: req.AmountRequested,
		Purpose:         req.Purpose,
		Status:          entities.LoanPending,
	}
	if err := h.repo.Create(c.Request().Context(), l); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	out, err := h.repo.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// PatchStatus moves an application through its lifecycle. Routed behind
// a lender/admin role guard; farmers cannot set their own outcomes.
func (h *LoanCtrl) PatchStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	status := entities.LoanStatus(req.Status)
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	if _, err := h.repo.FindByID(c.Request().Context(), uint(id)); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err := h.repo.UpdateStatus(c.Request().Context(), uint(id), status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": string(status)})
}

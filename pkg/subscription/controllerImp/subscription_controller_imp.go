package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrimarket/entities"
	"agrimarket/pkg/subscription/repository"
)

type SubscriptionCtrl struct{ repo repository.SubscriptionRepository }

func New(repo repository.SubscriptionRepository) *SubscriptionCtrl {
	return &SubscriptionCtrl{repo}
}

type activateReq struct {
	Plan string `json:"plan"` // monthly|seasonal|annual
}

func (h *SubscriptionCtrl) Activate(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req activateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	switch req.Plan {
	case "monthly", "seasonal", "annual":
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan"})
	}
	cur, err := h.repo.CurrentByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if cur != nil && cur.Status == entities.SubscriptionActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "subscription already active"})
	}
	s := &entities.Subscription{
		UserID:    uid,
		Plan:      req.Plan,
		Status:    entities.SubscriptionActive,
		StartedAt: time.Now(),
	}
	if err := h.repo.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SubscriptionCtrl) Cancel(c echo.Context) error {
	uid := c.Get("uid").(uint)
	cur, err := h.repo.CurrentByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if cur == nil || cur.Status != entities.SubscriptionActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no active subscription"})
	}
	now := time.Now()
	cur.Status = entities.SubscriptionCancelled
	cur.CancelledAt = &now
	if err := h.repo.Save(c.Request().Context(), cur); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

func (h *SubscriptionCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(uint)
	cur, err := h.repo.CurrentByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if cur == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no subscription"})
	}
	return c.JSON(http.StatusOK, cur)
}

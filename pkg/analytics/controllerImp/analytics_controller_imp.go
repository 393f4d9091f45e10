package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrimarket/pkg/analytics/service"
)

type AnalyticsCtrl struct{ svc service.AnalyticsService }

func New(svc service.AnalyticsService) *AnalyticsCtrl { return &AnalyticsCtrl{svc} }

func (h *AnalyticsCtrl) Yield(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var fromPtr, toPtr *time.Time
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			fromPtr = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			toPtr = &t
		}
	}
	rep, err := h.svc.YieldAnalytics(c.Request().Context(), uid, fromPtr, toPtr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rep)
}

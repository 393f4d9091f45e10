package router

import (
	"github.com/labstack/echo/v4"

	"agrimarket/entities"
	"agrimarket/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	farmCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		AddCrop(echo.Context) error
		ListCrops(echo.Context) error
		ReportHarvest(echo.Context) error
	},
	diagCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	loanCtrl interface {
		Apply(echo.Context) error
		List(echo.Context) error
		PatchStatus(echo.Context) error
	},
	subCtrl interface {
		Activate(echo.Context) error
		Cancel(echo.Context) error
		Get(echo.Context) error
	},
	scoreCtrl interface {
		Get(echo.Context) error
		History(echo.Context) error
		ExportHistory(echo.Context) error
	},
	analyticsCtrl interface{ Yield(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)

	priv := api.Group("", middleware.JWT(jwtSecret))
	priv.GET("/whoami", authCtrl.WhoAmI)

	priv.POST("/farms", farmCtrl.Create)
	priv.GET("/farms", farmCtrl.List)
	priv.GET("/farms/:id", farmCtrl.Get)
	priv.POST("/farms/:id/crops", farmCtrl.AddCrop)
	priv.GET("/farms/:id/crops", farmCtrl.ListCrops)
	priv.PATCH("/crops/:crop_id/harvest", farmCtrl.ReportHarvest)

	priv.POST("/farms/:id/diagnostics", diagCtrl.Create)
	priv.GET("/farms/:id/diagnostics", diagCtrl.List)

	priv.POST("/loans", loanCtrl.Apply)
	priv.GET("/loans", loanCtrl.List)
	priv.PATCH("/loans/:id/status", loanCtrl.PatchStatus,
		middleware.RequireRole(entities.RoleLender, entities.RoleAdmin))

	priv.POST("/subscription", subCtrl.Activate)
	priv.DELETE("/subscription", subCtrl.Cancel)
	priv.GET("/subscription", subCtrl.Get)

	priv.GET("/credit-score", scoreCtrl.Get)
	priv.GET("/credit-score/history", scoreCtrl.History)
	priv.GET("/credit-score/history/export", scoreCtrl.ExportHistory)

	priv.GET("/analytics/yield", analyticsCtrl.Yield)

	return e
}

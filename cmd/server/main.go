package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"agrimarket/config"
	"agrimarket/database"
	"agrimarket/router"

	// Auth
	authCtrlImp "agrimarket/pkg/auth/controllerImp"
	userRepoImp "agrimarket/pkg/auth/repositoryImp"

	// Farm
	farmCtrlImp "agrimarket/pkg/farm/controllerImp"
	farmRepoImp "agrimarket/pkg/farm/repositoryImp"

	// Diagnostics
	"agrimarket/pkg/analyzer"
	diagCtrlImp "agrimarket/pkg/diagnostic/controllerImp"
	diagRepoImp "agrimarket/pkg/diagnostic/repositoryImp"

	// Loans
	loanCtrlImp "agrimarket/pkg/loan/controllerImp"
	loanRepoImp "agrimarket/pkg/loan/repositoryImp"

	// Subscription
	subCtrlImp "agrimarket/pkg/subscription/controllerImp"
	subRepoImp "agrimarket/pkg/subscription/repositoryImp"

	// Credit score
	scoreCtrlImp "agrimarket/pkg/creditscore/controllerImp"
	scoreRepoImp "agrimarket/pkg/creditscore/repositoryImp"
	scoreSvcImp "agrimarket/pkg/creditscore/serviceImp"

	// Analytics
	analyticsCtrlImp "agrimarket/pkg/analytics/controllerImp"
	analyticsSvcImp "agrimarket/pkg/analytics/serviceImp"

	// Health
	healthCtrlImp "agrimarket/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer logger.Sync()

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Crop-scan analyzer (mock fallback for local dev)
	var ai analyzer.Client
	if cfg.AnalyzerEndpoint != "" && cfg.AnalyzerAPIKey != "" {
		ai = analyzer.NewOpenAI(cfg.AnalyzerEndpoint, cfg.AnalyzerAPIKey, cfg.AnalyzerModel)
	} else {
		ai = analyzer.NewMock()
	}

	// 6) Repositories
	userRepo := userRepoImp.New(db)
	farmRepo := farmRepoImp.New(db)
	diagRepo := diagRepoImp.New(db)
	loanRepo := loanRepoImp.New(db)
	subRepo := subRepoImp.New(db)
	scoreRepo := scoreRepoImp.New(db)

	// 7) Services
	scoreSvc := scoreSvcImp.NewScoreService(scoreRepo, farmRepo, diagRepo, loanRepo, subRepo, logger)
	analyticsSvc := analyticsSvcImp.New(farmRepo)

	// 8) Controllers
	authCtrl := authCtrlImp.NewAuthController(userRepo, cfg.JWTSecret)
	farmCtrl := farmCtrlImp.New(farmRepo)
	diagCtrl := diagCtrlImp.New(diagRepo, farmRepo, ai)
	loanCtrl := loanCtrlImp.New(loanRepo)
	subCtrl := subCtrlImp.New(subRepo)
	scoreCtrl := scoreCtrlImp.New(scoreSvc)
	analyticsCtrl := analyticsCtrlImp.New(analyticsSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 9) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		farmCtrl,
		diagCtrl,
		loanCtrl,
		subCtrl,
		scoreCtrl,
		analyticsCtrl,
		hCtrl,
	)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package routes

import (
	"time"

	"github.com/mandilinkybl-pixel/madirate/config"
	"github.com/mandilinkybl-pixel/madirate/controller"
	"github.com/mandilinkybl-pixel/madirate/middleware"
	"github.com/mandilinkybl-pixel/madirate/repository"
	"github.com/mandilinkybl-pixel/madirate/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs) *gin.Engine {
	r := gin.Default()

	frontend := cfg.Config.FrontendUrl
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.RateLimiter(cfg))

	// --- 1. Repositories ---
	stateRepo := repository.NewStateRepository(db)
	mandiRepo := repository.NewMandiRepository(db)
	commodityRepo := repository.NewCommodityRepository(db)
	rateRepo := repository.NewMandiRateRepository(db)

	// --- 2. Services (Dependency Injection) ---
	stateSvc := service.NewStateService(stateRepo)
	mandiSvc := service.NewMandiService(mandiRepo, stateRepo)
	commoditySvc := service.NewCommodityService(commodityRepo)
	rateSvc := service.NewRateService(rateRepo, stateRepo, mandiRepo)
	reportSvc := service.NewReportService(rateRepo, stateRepo)
	apiSvc := service.NewApiService(rateRepo, stateRepo, mandiRepo)
	authSvc := service.NewAuthService(cfg.Config.AdminUser, cfg.Config.AdminPassword)

	// --- 3. Controllers ---
	rateCtrl := controller.NewRateController(rateSvc, reportSvc, mandiSvc)

	// Public surface: dashboard API, search, reports, exports.
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewApiController(apiSvc, stateSvc, mandiSvc).RegisterRoutes(api)
	}

	public := r.Group("")
	{
		controller.NewAuthController(authSvc).RegisterRoutes(public)
		controller.NewReportController(reportSvc, rateSvc).RegisterRoutes(public)
		rateCtrl.RegisterRoutes(public)
	}

	// Admin surface: reference data and rate entry behind the session
	// cookie.
	admin := r.Group("", middleware.AuthMiddleware())
	{
		controller.NewStateController(stateSvc).RegisterRoutes(admin)
		controller.NewMandiController(mandiSvc).RegisterRoutes(admin)
		controller.NewCommodityController(commoditySvc).RegisterRoutes(admin)
		rateCtrl.RegisterAdminRoutes(admin)
	}

	return r
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusdining/campus-dining-api/internal/api/handler"
	"github.com/campusdining/campus-dining-api/internal/api/middleware"
	"github.com/campusdining/campus-dining-api/internal/core/service"
	"github.com/campusdining/campus-dining-api/internal/infrastructure/config"
	mongodb "github.com/campusdining/campus-dining-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campusdining/campus-dining-api/internal/infrastructure/db/redis"
	"github.com/campusdining/campus-dining-api/internal/infrastructure/storage"
	"github.com/campusdining/campus-dining-api/pkg/logger"
)

// maxBodySize caps request bodies, image uploads included.
const maxBodySize = "5M"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(maxBodySize))
	e.Use(echoprometheus.NewMiddleware("dining"))

	// --- Dependencies ---
	assetStore := storage.NewLocalAssetStore(cfg.UploadDir)
	menuCache := redisdb.NewMenuCache(rdb)

	authRepo := mongodb.NewAuthRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	menuService := service.NewMenuService(menuRepo, assetStore, menuCache, logger.Component("menu"))
	orderService := service.NewOrderService(orderRepo, logger.Component("orders"))

	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler(menuService)
	orderHandler := handler.NewOrderHandler(orderService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireAdmin()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Menu routes (reads public, mutations admin-only) ---
	e.GET("/menu", menuHandler.List)
	e.GET("/menu/:id", menuHandler.Get)
	e.POST("/menu", menuHandler.Create, authRequired, adminOnly)
	e.PUT("/menu/:id", menuHandler.Update, authRequired, adminOnly)
	e.DELETE("/menu/:id", menuHandler.Delete, authRequired, adminOnly)

	// --- Order routes ---
	e.POST("/order", orderHandler.Create)
	e.GET("/order/track/:id", orderHandler.Track)
	e.GET("/order/admin", orderHandler.ListActive, authRequired, adminOnly)
	e.PUT("/order/admin/:id/status", orderHandler.SetStatus, authRequired, adminOnly)

	// --- Static image assets ---
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	if cfg.Env != "production" {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

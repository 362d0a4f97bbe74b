package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/recordstack/records-api/docs"
	"github.com/recordstack/records-api/internal/api/handler"
	"github.com/recordstack/records-api/internal/api/middleware"
	"github.com/recordstack/records-api/internal/core/service"
	"github.com/recordstack/records-api/internal/infrastructure/config"
	"github.com/recordstack/records-api/internal/infrastructure/db/sqlite"
	"github.com/recordstack/records-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The dispatcher is started by the caller; the router only enqueues into it.
func NewRouter(db *gorm.DB, dispatcher handler.AuditDispatcher, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("records"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	itemRepo := sqlite.NewItemRepository(db)

	tokenTTL := time.Duration(cfg.TokenExpireMinutes) * time.Minute
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTAlgorithm, tokenTTL)
	userService := service.NewUserService(userRepo)
	itemService := service.NewItemService(itemRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)
	taskHandler := handler.NewTaskHandler(dispatcher)
	healthHandler := handler.NewHealthHandler(db)

	requireAuth := middleware.Auth(authService)

	// --- Root and health probes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/token", authHandler.Token)
	e.GET("/users/me", authHandler.Me, requireAuth)

	// --- User routes ---
	e.POST("/users/", userHandler.Create)
	e.GET("/users/:id", userHandler.Get)

	// --- Item routes ---
	e.POST("/items/", itemHandler.Create, requireAuth)
	e.GET("/items/:id", itemHandler.Get)

	// --- Background tasks ---
	e.POST("/tasks/action/", taskHandler.Action)

	return e
}

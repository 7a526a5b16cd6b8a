package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kcimports/inventory-api/docs"
	"github.com/kcimports/inventory-api/internal/api/handler"
	"github.com/kcimports/inventory-api/internal/api/middleware"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// Deps carries everything the router needs to register routes.
type Deps struct {
	Identity   ports.IdentityProvider
	Users      ports.UserRepository
	Containers ports.ContainerService
	Products   ports.ProductService
	UserAdmin  ports.UserService
	Upload     *handler.UploadHandler
	Mongo      *mongo.Database
	Redis      *redis.Client
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Identity)
	containerHandler := handler.NewContainerHandler(deps.Containers)
	productHandler := handler.NewProductHandler(deps.Products)
	userHandler := handler.NewUserHandler(deps.UserAdmin)

	authed := middleware.Auth(deps.Identity)
	adminOnly := middleware.RequireAdmin(deps.Users)

	// --- Auth ---
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Containers ---
	e.POST("/v1/containers", containerHandler.Create, authed, adminOnly)
	e.GET("/v1/containers", containerHandler.List, authed)
	e.DELETE("/v1/containers/:id", containerHandler.Delete, authed, adminOnly)

	// --- Products ---
	e.POST("/v1/products", productHandler.Create, authed, adminOnly)
	e.GET("/v1/products", productHandler.List, authed)
	e.DELETE("/v1/products/:id", productHandler.Delete, authed, adminOnly)
	e.POST("/v1/products/bulk", productHandler.BulkCreate, authed, adminOnly)

	// --- Users ---
	e.POST("/v1/users", userHandler.Create, authed, adminOnly)

	// --- Uploads ---
	e.GET("/v1/uploads/sign", deps.Upload.Sign, authed, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canteen/config"
	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/router/handler"
	"canteen/internal/domain/entity"
	"canteen/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// imageBodyLimit leaves room for multipart framing around a handler.MaxImageBytes image.
const imageBodyLimit = "6M"

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	MenuHandler    *handler.MenuHandler
	OrderHandler   *handler.OrderHandler
	InsightHandler *handler.InsightHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	menuHandler    *handler.MenuHandler
	orderHandler   *handler.OrderHandler
	insightHandler *handler.InsightHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		menuHandler:    params.MenuHandler,
		orderHandler:   params.OrderHandler,
		insightHandler: params.InsightHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/images/*", r.menuHandler.Image)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.sessionHandler.SignUp)
		authGroup.POST("/signin", r.sessionHandler.SignIn)
		authGroup.POST("/signout", r.sessionHandler.SignOut, r.authMiddleware.Authenticate)
	}

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.sessionHandler.Me)
	apiV1.GET("/view", r.insightHandler.View)

	vendorOnly := r.authMiddleware.RequireRole(entity.RoleVendor)
	employeeOnly := r.authMiddleware.RequireRole(entity.RoleEmployee)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	menuGroup := apiV1.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.List)
		menuGroup.GET("/eligibility", r.menuHandler.Eligibility)
		menuGroup.POST("", r.menuHandler.Create, vendorOnly)
		menuGroup.PUT("/:id", r.menuHandler.Update, vendorOnly)
		menuGroup.DELETE("/:id", r.menuHandler.Delete, vendorOnly)
		menuGroup.POST("/:id/image", r.menuHandler.UploadImage, vendorOnly, echomiddleware.BodyLimit(imageBodyLimit))
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.Book, employeeOnly)
		ordersGroup.GET("", r.orderHandler.List)
		ordersGroup.POST("/pickup", r.orderHandler.Pickup, vendorOnly)
		ordersGroup.GET("/:id", r.orderHandler.Get)
		ordersGroup.POST("/:id/cancel", r.orderHandler.Cancel)
		ordersGroup.POST("/:id/status", r.orderHandler.Advance, vendorOnly)
		ordersGroup.POST("/:id/pay", r.orderHandler.Pay)
		ordersGroup.GET("/:id/qr", r.orderHandler.PickupQR, employeeOnly)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(adminOnly)
	{
		adminGroup.GET("/insights", r.insightHandler.AdminInsights)
		adminGroup.POST("/simulate", r.insightHandler.Simulate)
		adminGroup.POST("/profiles", r.profileHandler.Provision)
		adminGroup.GET("/profiles", r.profileHandler.List)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jelpi/internal/delivery/api/middleware"
	"jelpi/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds dependencies for the router, injected by Fx.
type RouterParams struct {
	fx.In

	DeviceHandler  *handler.DeviceHandler
	PublicHandler  *handler.PublicHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler  *handler.DeviceHandler
	publicHandler  *handler.PublicHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:  params.DeviceHandler,
		publicHandler:  params.PublicHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public profile page opened by scanning a tag
	e.GET("/p/:id", r.publicHandler.ViewProfile)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.POST("/:id/activate", r.deviceHandler.ActivateDevice)
		devicesGroup.PUT("/:id/profile-type", r.deviceHandler.SelectProfileType)
		devicesGroup.PUT("/:id/profile", r.deviceHandler.SaveProfile)
		devicesGroup.PUT("/:id/name", r.deviceHandler.RenameDevice)
		devicesGroup.PUT("/:id/status", r.deviceHandler.SetDeviceStatus)
		devicesGroup.GET("/:id/qr", r.deviceHandler.GetDeviceQR)
	}

	// Profile routes
	profilesGroup := apiV1.Group("/profiles")
	{
		profilesGroup.GET("/:id", r.deviceHandler.GetProfile)
	}
}

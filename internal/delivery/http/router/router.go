// Package router contains routing setup for the HTTP delivery.
package router

import (
	"wastefleet/internal/delivery/http/middleware"
	"wastefleet/internal/delivery/http/router/handler"
	"wastefleet/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	VehicleHandler      *handler.VehicleHandler
	SubscriptionHandler *handler.SubscriptionHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	vehicleHandler      *handler.VehicleHandler
	subscriptionHandler *handler.SubscriptionHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		vehicleHandler:      params.VehicleHandler,
		subscriptionHandler: params.SubscriptionHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Vehicle routes that require authentication
	vehicleGroup := e.Group("/vehicles")
	vehicleGroup.Use(r.authMiddleware.Authenticate)
	{
		vehicleGroup.GET("/nearby", r.vehicleHandler.GetNearbyVehicles)
		vehicleGroup.GET("/proximity", r.vehicleHandler.CheckProximity)
	}

	// Fleet routes require authentication and the "driver" role
	fleetGroup := e.Group("/fleet")
	fleetGroup.Use(r.authMiddleware.Authenticate)
	fleetGroup.Use(r.authMiddleware.RequireRole(constants.RoleDriver))
	{
		fleetGroup.PUT("/vehicles/:id/location", r.vehicleHandler.UpdateVehicleLocation)
	}

	// Subscription routes
	subscriptionGroup := e.Group("/subscriptions")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionGroup.DELETE("", r.subscriptionHandler.Unsubscribe)
		subscriptionGroup.GET("", r.subscriptionHandler.GetPreference)
		subscriptionGroup.PUT("/home", r.subscriptionHandler.SetHomeCoordinate)
		subscriptionGroup.GET("/qr", r.subscriptionHandler.GenerateSubscriptionQR)
	}

	// Notification inbox routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.GET("/unread-count", r.notificationHandler.GetUnreadCount)
		notificationGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	// Device routes
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}

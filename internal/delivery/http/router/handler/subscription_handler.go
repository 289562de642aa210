package handler

import (
	"log/slog"
	"net/http"

	"wastefleet/internal/delivery/http/middleware"
	"wastefleet/internal/delivery/http/response"
	"wastefleet/internal/domain/entity"
	"wastefleet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for enabling proximity notifications.
// A zero radius selects the configured default.
type SubscribeRequest struct {
	RadiusKm float64 `json:"radius_km" validate:"min=0"`
}

// SetHomeRequest represents the request body for storing the home coordinate.
// Pointers keep the zero coordinate (equator, prime meridian) valid while still
// rejecting an absent field.
type SetHomeRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// Subscribe handles enabling proximity notifications.
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preference, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, req.RadiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preference, "Subscribed to vehicle notifications successfully")
}

// Unsubscribe handles disabling proximity notifications.
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed successfully"}, "Unsubscribed from vehicle notifications successfully")
}

// GetPreference handles retrieving the current subscription state.
func (h *SubscriptionHandler) GetPreference(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	preference, err := h.subscriptionUC.GetPreference(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preference, "Subscription preference retrieved successfully")
}

// SetHomeCoordinate handles storing the coordinate proximity checks run from.
func (h *SubscriptionHandler) SetHomeCoordinate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SetHomeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid home coordinate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coordinate := entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := h.subscriptionUC.SetHomeCoordinate(c.Request().Context(), userID, coordinate); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Home coordinate updated"}, "Home coordinate updated successfully")
}

// GenerateSubscriptionQR handles generating the subscribe QR code.
func (h *SubscriptionHandler) GenerateSubscriptionQR(c echo.Context) error {
	qrCode, err := h.subscriptionUC.GenerateSubscriptionQR(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=subscription-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wastefleet/internal/delivery/http/middleware"
	"wastefleet/internal/delivery/http/response"
	"wastefleet/internal/domain/entity"
	"wastefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VehicleHandlerParams holds dependencies for VehicleHandler, injected by Fx.
type VehicleHandlerParams struct {
	fx.In

	LocatorUC  usecase.LocatorUsecase
	NotifierUC usecase.NotifierUsecase
	FleetUC    usecase.FleetUsecase
	Logger     *slog.Logger
}

// VehicleHandler holds dependencies for vehicle-related handlers.
type VehicleHandler struct {
	locatorUC  usecase.LocatorUsecase
	notifierUC usecase.NotifierUsecase
	fleetUC    usecase.FleetUsecase
	logger     *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler.
func NewVehicleHandler(params VehicleHandlerParams) *VehicleHandler {
	return &VehicleHandler{
		locatorUC:  params.LocatorUC,
		notifierUC: params.NotifierUC,
		fleetUC:    params.FleetUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest represents the request body for a driver position report.
// Pointers keep the zero coordinate (equator, prime meridian) valid while still
// rejecting an absent field.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// GetNearbyVehicles handles the nearby-vehicle query.
func (h *VehicleHandler) GetNearbyVehicles(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing latitude")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing longitude")
	}

	radiusKm, err := strconv.ParseFloat(c.QueryParam("radius_km"), 64)
	if err != nil || radiusKm <= 0 {
		return response.BadRequest(c, "INVALID_RADIUS", "radius_km must be a positive number")
	}

	var vehicleType *entity.VehicleType
	if typeParam := c.QueryParam("type"); typeParam != "" {
		vt := entity.VehicleType(typeParam)
		vehicleType = &vt
	}

	origin := entity.Coordinate{Latitude: lat, Longitude: lng}
	vehicles, err := h.locatorUC.FindNearby(c.Request().Context(), origin, radiusKm, vehicleType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicles, "Nearby vehicles retrieved successfully")
}

// CheckProximity handles the on-demand proximity check for the current user.
func (h *VehicleHandler) CheckProximity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	check, err := h.notifierUC.CheckAndNotify(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, check, "Proximity check completed")
}

// UpdateVehicleLocation handles a driver position report.
func (h *VehicleHandler) UpdateVehicleLocation(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vehicle ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coordinate := entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	vehicle, err := h.fleetUC.UpdateVehicleLocation(c.Request().Context(), vehicleID, coordinate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicle, "Vehicle location updated successfully")
}

// Package handler contains the job and push endpoints of the sweeper worker.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "wastefleet/internal/delivery/context"
	"wastefleet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SweepHandler handles the scheduled job endpoints.
type SweepHandler struct {
	logger         *slog.Logger
	notifierUC     usecase.NotifierUsecase
	notificationUC usecase.NotificationUsecase
}

// SweepHandlerParams holds dependencies for the SweepHandler.
type SweepHandlerParams struct {
	fx.In

	Logger         *slog.Logger
	NotifierUC     usecase.NotifierUsecase
	NotificationUC usecase.NotificationUsecase
}

// NewSweepHandler creates a new scheduled-job handler.
func NewSweepHandler(params SweepHandlerParams) *SweepHandler {
	return &SweepHandler{
		logger:         params.Logger,
		notifierUC:     params.NotifierUC,
		notificationUC: params.NotificationUC,
	}
}

// HandleVehicleSweep runs one proximity sweep over all subscribed users.
// Only a failure to even list the users fails the job; per-user failures are
// reported in the result counters.
func (h *SweepHandler) HandleVehicleSweep(c echo.Context) error {
	ctx := c.Request().Context()
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	result, err := h.notifierUC.RunSweep(ctx)
	if err != nil {
		reqLogger.Error("[Worker] Vehicle sweep failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "sweep failed"})
	}

	reqLogger.Info("[Worker] Vehicle sweep completed",
		slog.Int("users_checked", result.UsersChecked),
		slog.Int("users_skipped", result.UsersSkipped),
		slog.Int("notifications_sent", result.NotificationsSent),
		slog.Int("failures", result.Failures),
	)

	return c.JSON(http.StatusOK, result)
}

// HandleExpireNotifications deletes all notifications past their expiry.
func (h *SweepHandler) HandleExpireNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	removed, err := h.notificationUC.ExpireNotifications(ctx)
	if err != nil {
		reqLogger.Error("[Worker] Notification expiry failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "expiry failed"})
	}

	reqLogger.Info("[Worker] Notification expiry completed", slog.Int("removed", removed))

	return c.JSON(http.StatusOK, map[string]int{"removed": removed})
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockusecase "wastefleet/internal/mocks/usecase"
	"wastefleet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSweepHandler(notifierUC *mockusecase.MockNotifierUsecase, notificationUC *mockusecase.MockNotificationUsecase) *SweepHandler {
	return NewSweepHandler(SweepHandlerParams{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotifierUC:     notifierUC,
		NotificationUC: notificationUC,
	})
}

func TestHandleVehicleSweep(t *testing.T) {
	notifierUC := new(mockusecase.MockNotifierUsecase)
	notificationUC := new(mockusecase.MockNotificationUsecase)
	h := newSweepHandler(notifierUC, notificationUC)

	notifierUC.On("RunSweep", mock.Anything).Return(&usecase.SweepResult{
		UsersChecked:      4,
		UsersSkipped:      2,
		NotificationsSent: 3,
		Failures:          1,
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/jobs/vehicle-sweep", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleVehicleSweep(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"users_checked":4`)
	assert.Contains(t, rec.Body.String(), `"notifications_sent":3`)
}

func TestHandleVehicleSweep_ListFailureIs500(t *testing.T) {
	notifierUC := new(mockusecase.MockNotifierUsecase)
	notificationUC := new(mockusecase.MockNotificationUsecase)
	h := newSweepHandler(notifierUC, notificationUC)

	notifierUC.On("RunSweep", mock.Anything).Return(nil, errors.New("db down"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/jobs/vehicle-sweep", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleVehicleSweep(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleExpireNotifications(t *testing.T) {
	notifierUC := new(mockusecase.MockNotifierUsecase)
	notificationUC := new(mockusecase.MockNotificationUsecase)
	h := newSweepHandler(notifierUC, notificationUC)

	notificationUC.On("ExpireNotifications", mock.Anything).Return(7, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/jobs/expire-notifications", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleExpireNotifications(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removed":7`)
}

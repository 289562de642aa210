package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wastefleet/config"
	"wastefleet/internal/domain/entity"
	"wastefleet/internal/domain/service"
	mockrepo "wastefleet/internal/mocks/repository"
	mockservice "wastefleet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(pushSvc service.PushService, deviceRepo *mockrepo.MockDeviceRepository) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushSvc:    pushSvc,
		DeviceRepo: deviceRepo,
	})
}

func pushRequest(t *testing.T, event *service.ProximityEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := fmt.Sprintf(`{"message":{"data":%q,"messageId":"m-1"},"subscription":"s"}`,
		base64.StdEncoding.EncodeToString(payload))

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(envelope))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestHandlePush_DeliversToDevices(t *testing.T) {
	pushSvc := new(mockservice.MockPushService)
	deviceRepo := new(mockrepo.MockDeviceRepository)
	h := newPushHandler(pushSvc, deviceRepo)

	userID := uuid.New()
	staleDevice := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-stale"}
	deviceRepo.On("FindDevicesForUsers", mock.Anything, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-ok"},
			staleDevice,
		}, nil)
	pushSvc.On("SendBatchNotification", mock.Anything, []string{"token-ok", "token-stale"},
		"Waste Collection Vehicle Nearby", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)
	deviceRepo.On("DeleteDevice", mock.Anything, staleDevice.ID).Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.ProximityEvent{
		NotificationID: uuid.New().String(),
		UserID:         userID.String(),
		Title:          "Waste Collection Vehicle Nearby",
		Message:        "A waste collection vehicle is about 3 minutes away from your location.",
	}), rec)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	deviceRepo.AssertExpectations(t)
	pushSvc.AssertExpectations(t)
}

func TestHandlePush_NoPushServiceAcksEvent(t *testing.T) {
	deviceRepo := new(mockrepo.MockDeviceRepository)
	h := newPushHandler(nil, deviceRepo)

	userID := uuid.New()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.ProximityEvent{
		NotificationID: uuid.New().String(),
		UserID:         userID.String(),
		Title:          "Waste Collection Vehicle Nearby",
		Message:        "A waste collection vehicle is about 3 minutes away from your location.",
	}), rec)

	require.NotPanics(t, func() {
		require.NoError(t, h.HandlePush(c))
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	deviceRepo.AssertNotCalled(t, "FindDevicesForUsers", mock.Anything, mock.Anything)
}

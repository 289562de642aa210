package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wastefleet/internal/delivery/http/validator"
	"wastefleet/internal/domain/entity"
	mockusecase "wastefleet/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionHandler(subscriptionUC *mockusecase.MockSubscriptionUsecase) *SubscriptionHandler {
	return NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestSetHomeCoordinate_ZeroLongitudeIsValid(t *testing.T) {
	subscriptionUC := new(mockusecase.MockSubscriptionUsecase)
	h := newSubscriptionHandler(subscriptionUC)

	userID := uuid.New()
	// The prime meridian is a legitimate home coordinate.
	coordinate := entity.Coordinate{Latitude: 51.4779, Longitude: 0}
	subscriptionUC.On("SetHomeCoordinate", mock.Anything, userID, coordinate).Return(nil)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPut, "/subscriptions/home",
		strings.NewReader(`{"latitude":51.4779,"longitude":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.SetHomeCoordinate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	subscriptionUC.AssertExpectations(t)
}

func TestSetHomeCoordinate_MissingLongitudeIs400(t *testing.T) {
	subscriptionUC := new(mockusecase.MockSubscriptionUsecase)
	h := newSubscriptionHandler(subscriptionUC)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPut, "/subscriptions/home",
		strings.NewReader(`{"latitude":51.4779}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	require.NoError(t, h.SetHomeCoordinate(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	subscriptionUC.AssertNotCalled(t, "SetHomeCoordinate", mock.Anything, mock.Anything, mock.Anything)
}

// Package service provides hand-written mocks for the domain service interfaces.
package service

import (
	"context"
	"time"

	domainservice "wastefleet/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFleetCache is a testify mock for service.FleetCache.
type MockFleetCache struct {
	mock.Mock
}

func (m *MockFleetCache) SetPosition(ctx context.Context, vehicleID uuid.UUID, position domainservice.VehiclePosition) error {
	args := m.Called(ctx, vehicleID, position)

	return args.Error(0)
}

func (m *MockFleetCache) GetPosition(ctx context.Context, vehicleID uuid.UUID) (*domainservice.VehiclePosition, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainservice.VehiclePosition), args.Error(1)
}

func (m *MockFleetCache) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockEventPublisher is a testify mock for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProximityEvent(ctx context.Context, event *domainservice.ProximityEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockPushService is a testify mock for service.PushService.
type MockPushService struct {
	mock.Mock
}

func (m *MockPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)
	var invalid []string
	if args.Get(2) != nil {
		invalid = args.Get(2).([]string)
	}

	return args.Int(0), args.Int(1), invalid, args.Error(3)
}

func (m *MockPushService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)

	return args.Error(0)
}

// MockQRCodeService is a testify mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GeneratePNG(content string) ([]byte, error) {
	args := m.Called(content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)

	return args.Error(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, roles []string, secret string, ttl time.Duration) (string, error) {
	args := m.Called(userID, roles, secret, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

// Package repository provides hand-written mocks for the repository interfaces.
package repository

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersWithNotificationsEnabled(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateNotificationPreference(ctx context.Context, userID uuid.UUID, pref entity.NotificationPreference) error {
	args := m.Called(ctx, userID, pref)

	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastNotifiedAt(ctx context.Context, userID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, userID, at)

	return args.Error(0)
}

func (m *MockUserRepository) UpdateHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error {
	args := m.Called(ctx, userID, coordinate)

	return args.Error(0)
}

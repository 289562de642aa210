package impl

import (
	"context"
	"testing"
	"time"

	"wastefleet/config"
	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	"wastefleet/internal/domain/repository"
	mockrepo "wastefleet/internal/mocks/repository"
	mockservice "wastefleet/internal/mocks/service"
	"wastefleet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	cfg := sweepTestConfig()
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:     4,
		AccessTokenTTL: time.Hour,
	}

	return cfg
}

func TestRegister_DefaultsToCitizenRole(t *testing.T) {
	t.Parallel()

	userRepo := new(mockrepo.MockUserRepository)
	var created *entity.User
	userRepo.On("CreateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	hasher := new(mockservice.MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$04$hash", nil)

	svc := NewAuthService(userRepo, hasher, new(mockservice.MockTokenService), authTestConfig(), testLogger())

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    " Citizen@Example.COM ",
		Name:     "Asha",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "citizen", user.Role)
	assert.Equal(t, "citizen@example.com", user.Email)

	require.NotNil(t, created)
	assert.Equal(t, "$2a$04$hash", created.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("CreateUser", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateEmail)

	hasher := new(mockservice.MockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("$2a$04$hash", nil)

	svc := NewAuthService(userRepo, hasher, new(mockservice.MockTokenService), authTestConfig(), testLogger())

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "citizen@example.com",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, user)
}

func TestLogin_IssuesToken(t *testing.T) {
	t.Parallel()

	user := subscribedUser(1, nil)
	user.Role = "driver"
	user.PasswordHash = "$2a$04$hash"

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByEmail", mock.Anything, "citizen@example.com").Return(user, nil)

	hasher := new(mockservice.MockPasswordHasher)
	hasher.On("Compare", user.PasswordHash, "s3cret").Return(nil)

	tokens := new(mockservice.MockTokenService)
	tokens.On("GenerateToken", user.ID, []string{"driver"}, "test-secret", time.Hour).
		Return("signed.jwt.token", nil)

	svc := NewAuthService(userRepo, hasher, tokens, authTestConfig(), testLogger())

	result, err := svc.Login(context.Background(), "citizen@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.AccessToken)
	assert.Equal(t, user.ID, result.User.ID)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	user := subscribedUser(1, nil)
	user.PasswordHash = "$2a$04$hash"

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByEmail", mock.Anything, mock.Anything).Return(user, nil)

	hasher := new(mockservice.MockPasswordHasher)
	hasher.On("Compare", mock.Anything, mock.Anything).
		Return(errors.New("hashedPassword is not the hash of the given password"))

	svc := NewAuthService(userRepo, hasher, new(mockservice.MockTokenService), authTestConfig(), testLogger())

	result, err := svc.Login(context.Background(), "citizen@example.com", "wrong")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	t.Parallel()

	userRepo := new(mockrepo.MockUserRepository)
	userRepo.On("FindUserByEmail", mock.Anything, mock.Anything).
		Return(nil, repository.ErrUserNotFound)

	svc := NewAuthService(userRepo, new(mockservice.MockPasswordHasher),
		new(mockservice.MockTokenService), authTestConfig(), testLogger())

	result, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, result)
}

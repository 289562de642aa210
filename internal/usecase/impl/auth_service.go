package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"wastefleet/config"
	"wastefleet/internal/domain/constants"
	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/domain/service"
	"wastefleet/internal/errors"
	"wastefleet/internal/usecase"

	"github.com/google/uuid"
)

type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	role := input.Role
	if role == "" {
		role = constants.RoleCitizen
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         input.Name,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	s.logger.Info("User registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role),
	)

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same response as a wrong password; never reveal which one failed.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, []string{user.Role}, s.cfg.SecretKey.Access, s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginResult{
		AccessToken: token,
		User:        user,
	}, nil
}

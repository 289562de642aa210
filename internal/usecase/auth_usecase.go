package usecase

import (
	"context"

	"wastefleet/internal/domain/entity"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// LoginResult bundles the issued token with the authenticated user.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}

// AuthUsecase defines account registration and login.
type AuthUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

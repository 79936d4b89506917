package service

import (
	"context"
	"errors"
	"time"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/auth"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UserService provides registration and login.
type UserService interface {
	// Register creates a customer account with a hashed password.
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// RegisterParams holds the allow-listed registration fields.
type RegisterParams struct {
	FullName string
	Username string
	Email    string
	Password string
}

// LoginResult carries the issued token and the account it belongs to.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type userService struct {
	users  UserStore
	tokens *auth.TokenIssuer
}

// NewUserService creates a new UserService instance.
func NewUserService(users UserStore, tokens *auth.TokenIssuer) UserService {
	return &userService{users: users, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	const op = "user.register"

	if len(params.FullName) < 3 {
		return nil, domain.Invalid(op, "Fullname should be at least 3 characters")
	}
	if params.Username == "" {
		return nil, domain.Invalid(op, "Username is required")
	}
	if params.Email == "" {
		return nil, domain.Invalid(op, "Email is required")
	}

	_, err := s.users.GetUserByUsername(ctx, params.Username)
	if err == nil {
		return nil, domain.ErrAlreadyRegistered
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.Internal(err, op, "failed to check username")
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, domain.Invalid(op, "Password should be at least 8 characters")
		}
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	user := &domain.User{
		FullName:     params.FullName,
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, domain.Internal(err, op, "failed to create user")
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	const op = "user.login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.Internal(err, op, "failed to load user")
	}

	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.Internal(err, op, "failed to verify password")
	}

	token, err := s.tokens.Issue(domain.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role(),
	}, time.Now())
	if err != nil {
		return nil, domain.Internal(err, op, "failed to issue token")
	}

	return &LoginResult{Token: token, User: user}, nil
}

package service

import (
	"context"
	"testing"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/auth"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	tokens, err := auth.NewTokenIssuer("test-secret")
	require.NoError(t, err)
	return tokens
}

func makeRegisterParams() RegisterParams {
	return RegisterParams{
		FullName: "June Baker",
		Username: "junebaker",
		Email:    "june@example.com",
		Password: "correct-horse",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	users := &mockUserStore{}
	svc := NewUserService(users, testTokenIssuer(t))

	user, err := svc.Register(context.Background(), makeRegisterParams())
	require.NoError(t, err)

	assert.Equal(t, "junebaker", user.Username)
	assert.False(t, user.IsAdmin, "registration never grants admin")
	assert.NotEqual(t, "correct-horse", user.PasswordHash, "password must be stored hashed")
	require.Len(t, users.createdUsers, 1)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	existing := &domain.User{Username: "junebaker"}
	users := &mockUserStore{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return existing, nil
		},
	}
	svc := NewUserService(users, testTokenIssuer(t))

	_, err := svc.Register(context.Background(), makeRegisterParams())
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
}

func TestUserService_Register_ValidatesInput(t *testing.T) {
	svc := NewUserService(&mockUserStore{}, testTokenIssuer(t))

	cases := []struct {
		name   string
		mutate func(*RegisterParams)
	}{
		{"short fullname", func(p *RegisterParams) { p.FullName = "Jo" }},
		{"missing username", func(p *RegisterParams) { p.Username = "" }},
		{"missing email", func(p *RegisterParams) { p.Email = "" }},
		{"short password", func(p *RegisterParams) { p.Password = "short" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := makeRegisterParams()
			tc.mutate(&params)
			_, err := svc.Register(context.Background(), params)
			assert.True(t, domain.IsCode(err, domain.EINVALID), "expected EINVALID, got %v", err)
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	account := &domain.User{
		FullName:     "June Baker",
		Username:     "junebaker",
		Email:        "june@example.com",
		PasswordHash: hash,
	}
	users := &mockUserStore{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return account, nil
		},
	}
	tokens := testTokenIssuer(t)
	svc := NewUserService(users, tokens)

	result, err := svc.Login(context.Background(), "junebaker", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, account, result.User)

	identity, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "junebaker", identity.Username)
	assert.Equal(t, domain.RoleCustomer, identity.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	users := &mockUserStore{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, PasswordHash: hash}, nil
		},
	}
	svc := NewUserService(users, testTokenIssuer(t))

	_, err = svc.Login(context.Background(), "junebaker", "battery-staple")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	svc := NewUserService(&mockUserStore{}, testTokenIssuer(t))

	// Unknown users get the same error as bad passwords.
	_, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_AdminRoleInToken(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	users := &mockUserStore{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, PasswordHash: hash, IsAdmin: true}, nil
		},
	}
	tokens := testTokenIssuer(t)
	svc := NewUserService(users, tokens)

	result, err := svc.Login(context.Background(), "admin", "correct-horse")
	require.NoError(t, err)

	identity, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/security"
)

func newTestAuthService(userRepo *MockUserRepo) AuthService {
	tokens := security.NewTokenManager("test-secret", 15, 10080)
	return NewAuthService(userRepo, tokens)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newTestAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "new@mowerworks.com.au").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.CreateUser(ctx, "New Staff", "new@mowerworks.com.au", "0400000000", "password123", domain.UserRoleStaff)
		assert.NoError(t, err)
		assert.Equal(t, "New Staff", user.Name)
		assert.Equal(t, domain.UserRoleStaff, user.Role)
		assert.NotEqual(t, "password123", user.PasswordHash, "password must be hashed")
		userRepo.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newTestAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "taken@mowerworks.com.au").Return(&domain.User{ID: 1}, nil)

		_, err := svc.CreateUser(ctx, "Dup", "taken@mowerworks.com.au", "", "password123", domain.UserRoleStaff)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash := hashPassword(t, "correct-password")

	stored := &domain.User{
		ID:           3,
		Name:         "Counter Staff",
		Email:        "staff@mowerworks.com.au",
		PasswordHash: hash,
		Role:         domain.UserRoleStaff,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newTestAuthService(userRepo)
		userRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil)

		access, refresh, user, err := svc.Login(ctx, stored.Email, "correct-password")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newTestAuthService(userRepo)
		userRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil)

		_, _, _, err := svc.Login(ctx, stored.Email, "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newTestAuthService(userRepo)
		userRepo.On("GetByEmail", ctx, "nobody@mowerworks.com.au").Return(nil, sql.ErrNoRows)

		_, _, _, err := svc.Login(ctx, "nobody@mowerworks.com.au", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	hash := hashPassword(t, "pw")
	stored := &domain.User{ID: 5, Email: "admin@mowerworks.com.au", PasswordHash: hash, Role: domain.UserRoleAdmin}

	userRepo := new(MockUserRepo)
	svc := newTestAuthService(userRepo)
	userRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil)
	userRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

	access, refresh, _, err := svc.Login(ctx, stored.Email, "pw")
	assert.NoError(t, err)

	t.Run("Valid Refresh", func(t *testing.T) {
		newAccess, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access Token Rejected", func(t *testing.T) {
		_, _, err := svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, _, err := svc.RefreshToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	hash := hashPassword(t, "old-password")
	stored := &domain.User{ID: 9, Email: "staff@mowerworks.com.au", PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newTestAuthService(userRepo)
		userRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		err := svc.ChangePassword(ctx, stored.ID, "old-password", "new-password")
		assert.NoError(t, err)
	})

	t.Run("Wrong Current Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newTestAuthService(userRepo)
		fresh := &domain.User{ID: 9, PasswordHash: hashPassword(t, "old-password")}
		userRepo.On("GetByID", ctx, fresh.ID).Return(fresh, nil)

		err := svc.ChangePassword(ctx, fresh.ID, "not-the-password", "new-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

package service

import (
	"quizbank_backend/internal/config"
	"quizbank_backend/internal/model"
	"quizbank_backend/internal/repository"
	"quizbank_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-unit-tests-only"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newTestAuth(t)

	user := &model.User{Email: "alice@example.com", Password: "password123"}
	require.NoError(t, auth.Register(user))
	// 密码落库前已被哈希
	assert.NotEqual(t, "password123", user.Password)

	token, isAdmin, err := auth.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, isAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newTestAuth(t)

	require.NoError(t, auth.Register(&model.User{Email: "alice@example.com", Password: "password123"}))
	err := auth.Register(&model.User{Email: "alice@example.com", Password: "otherpassword"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth := newTestAuth(t)

	require.NoError(t, auth.Register(&model.User{Email: "alice@example.com", Password: "password123"}))

	_, _, err := auth.Login("alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = auth.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginReturnsAdminFlag(t *testing.T) {
	auth := newTestAuth(t)

	admin := &model.User{Email: "admin@example.com", Password: "password123", IsAdmin: true}
	require.NoError(t, auth.Register(admin))

	_, isAdmin, err := auth.Login("admin@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

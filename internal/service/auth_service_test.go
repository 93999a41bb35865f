package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/recipe-service/internal/config"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

func newTestAuthService() (*AuthService, *memUserRepo) {
	users := newMemUserRepo()
	cfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: 4}
	return NewAuthService(cfg, users), users
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	svc, users := newTestAuthService()

	user, err := svc.Register(context.Background(), "A", "a@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.False(t, user.Admin)

	stored, err := users.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()
	_, err := svc.Register(context.Background(), "A", "a@x.com", "p1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "B", "a@x.com", "p2")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.ToDomainError(err).HTTPStatus)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()
	registered, err := svc.Register(context.Background(), "A", "a@x.com", "p1")
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.False(t, claims.Admin)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()
	_, err := svc.Register(context.Background(), "A", "a@x.com", "p1")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "a@x.com", "nope")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()

	_, _, _, err := svc.Login(context.Background(), "nobody@x.com", "p1")
	require.Error(t, err)

	// Unknown email and wrong password must be indistinguishable.
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
	assert.Equal(t, "invalid credentials", domainErr.Message)
}

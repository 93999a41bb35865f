package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/recipe-service/internal/domain"
	"github.com/spec-kit/recipe-service/internal/events"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

func newTestUserService() (*UserService, *memUserRepo, *memRecipeRepo) {
	users := newMemUserRepo()
	recipes := newMemRecipeRepo()
	svc := NewUserService(users, recipes, events.NewInMemoryDispatcher(), zap.NewNop())
	return svc, users, recipes
}

func seedUser(t *testing.T, users *memUserRepo, name, email string, admin bool) *domain.User {
	t.Helper()
	user := &domain.User{Name: name, Email: email, PasswordHash: "hash", Admin: admin}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestUserService()
	seeded := seedUser(t, users, "A", "a@x.com", false)

	user, err := svc.GetProfile(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)

	_, err = svc.GetProfile(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestUserService()
	seeded := seedUser(t, users, "A", "a@x.com", false)

	user, err := svc.UpdateProfile(context.Background(), seeded.ID, "A2", "a2@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A2", user.Name)
	assert.Equal(t, "a2@x.com", user.Email)
	assert.False(t, user.Admin, "profile update must not touch the admin flag")
}

func TestSetAdmin(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestUserService()
	seeded := seedUser(t, users, "A", "a@x.com", false)

	user, err := svc.SetAdmin(context.Background(), seeded.ID, true)
	require.NoError(t, err)
	assert.True(t, user.Admin)

	_, err = svc.SetAdmin(context.Background(), "missing", true)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestDeleteUser_KeepsRecipes(t *testing.T) {
	t.Parallel()

	svc, users, recipes := newTestUserService()
	seeded := seedUser(t, users, "A", "a@x.com", false)

	recipe := &domain.Recipe{Title: "Soup", Ingredients: []string{"water"}, Instructions: "Boil.", Category: domain.CategoryAppetizer, UserID: seeded.ID}
	require.NoError(t, recipes.Create(context.Background(), recipe))

	require.NoError(t, svc.DeleteUser(context.Background(), "admin-id", seeded.ID))

	_, err := users.GetByID(context.Background(), seeded.ID)
	require.Error(t, err)

	// No cascade: the recipe survives its owner.
	orphan, err := recipes.GetByID(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, orphan.UserID)
}

func TestDeleteUser_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService()
	err := svc.DeleteUser(context.Background(), "admin-id", "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestUserService()
	seedUser(t, users, "A", "a@x.com", false)
	seedUser(t, users, "B", "b@x.com", true)

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

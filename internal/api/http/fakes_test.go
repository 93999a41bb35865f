package http

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/recipe-service/internal/domain"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id, name, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.Name = name
	user.Email = email
	user.UpdatedAt = time.Now()
	// Clone: id may alias fiber's reusable request buffer, and map assignment
	// replaces the stored string key, which would corrupt it on the next request.
	r.users[strings.Clone(id)] = user
	return &user, nil
}

func (r *memUserRepo) SetAdmin(_ context.Context, id string, admin bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.Admin = admin
	user.UpdatedAt = time.Now()
	r.users[strings.Clone(id)] = user
	return &user, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

type memRecipeRepo struct {
	mu      sync.Mutex
	recipes map[string]domain.Recipe
}

func newMemRecipeRepo() *memRecipeRepo {
	return &memRecipeRepo{recipes: make(map[string]domain.Recipe)}
}

func (r *memRecipeRepo) Create(_ context.Context, recipe *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipe.ID = uuid.NewString()
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = recipe.CreatedAt
	r.recipes[recipe.ID] = *recipe
	return nil
}

func (r *memRecipeRepo) GetByID(_ context.Context, id string) (*domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &recipe, nil
}

func (r *memRecipeRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipes := make([]domain.Recipe, 0)
	for _, recipe := range r.recipes {
		if recipe.UserID == ownerID {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

func (r *memRecipeRepo) ListAll(_ context.Context) ([]domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipes := make([]domain.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (r *memRecipeRepo) Update(_ context.Context, recipe *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[recipe.ID]; !ok {
		return pgx.ErrNoRows
	}
	recipe.UpdatedAt = time.Now()
	r.recipes[strings.Clone(recipe.ID)] = *recipe
	return nil
}

func (r *memRecipeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.recipes, id)
	return nil
}

func (r *memRecipeRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, recipe := range r.recipes {
		if recipe.UserID == ownerID {
			count++
		}
	}
	return count, nil
}

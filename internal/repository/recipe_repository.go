package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/recipe-service/internal/domain"
)

// RecipeRepository defines persistence access for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error)
	ListAll(ctx context.Context) ([]domain.Recipe, error)
	Update(ctx context.Context, recipe *domain.Recipe) error
	Delete(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

type recipeRepository struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository returns a Postgres-backed implementation.
func NewRecipeRepository(pool *pgxpool.Pool) RecipeRepository {
	return &recipeRepository{pool: pool}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	const query = `
        INSERT INTO recipes (id, title, ingredients, instructions, image_url, category, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	recipe.ID = uuid.NewString()
	return r.pool.QueryRow(ctx, query,
		recipe.ID,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.ImageURL,
		recipe.Category,
		recipe.UserID,
	).Scan(&recipe.CreatedAt, &recipe.UpdatedAt)
}

func (r *recipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	const query = `
        SELECT id, title, ingredients, instructions, image_url, category, user_id, created_at, updated_at
        FROM recipes WHERE id=$1`

	var recipe domain.Recipe
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.ImageURL,
		&recipe.Category,
		&recipe.UserID,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	const query = `
        SELECT id, title, ingredients, instructions, image_url, category, user_id, created_at, updated_at
        FROM recipes WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecipes(rows)
}

func (r *recipeRepository) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	const query = `
        SELECT id, title, ingredients, instructions, image_url, category, user_id, created_at, updated_at
        FROM recipes ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecipes(rows)
}

func (r *recipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	const query = `
        UPDATE recipes SET title=$1, ingredients=$2, instructions=$3, image_url=$4, category=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.ImageURL,
		recipe.Category,
		recipe.ID,
	).Scan(&recipe.UpdatedAt)
}

func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *recipeRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recipes WHERE user_id=$1`, ownerID).Scan(&count)
	return count, err
}

func scanRecipes(rows pgx.Rows) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(
			&recipe.ID,
			&recipe.Title,
			&recipe.Ingredients,
			&recipe.Instructions,
			&recipe.ImageURL,
			&recipe.Category,
			&recipe.UserID,
			&recipe.CreatedAt,
			&recipe.UpdatedAt,
		); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

package domain

import "time"

// RecipeCategory enumerates the fixed set of recipe categories.
type RecipeCategory string

const (
	CategoryAppetizer  RecipeCategory = "Appetizer"
	CategoryMainCourse RecipeCategory = "Main Course"
	CategoryDessert    RecipeCategory = "Dessert"
	CategoryBeverage   RecipeCategory = "Beverage"
	CategorySnack      RecipeCategory = "Snack"
)

// ValidCategory reports whether c is one of the supported categories.
func ValidCategory(c RecipeCategory) bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage, CategorySnack:
		return true
	}
	return false
}

// Recipe is the aggregate for shared recipes. UserID references the owning
// user and is immutable after creation.
type Recipe struct {
	ID           string
	Title        string
	Ingredients  []string
	Instructions string
	ImageURL     string
	Category     RecipeCategory
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

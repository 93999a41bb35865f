package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recipe-service/internal/api/http/handlers"
	"github.com/spec-kit/recipe-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profile        *handlers.ProfileHandler
	Recipes        *handlers.RecipesHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	AdminGuard     fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", cfg.Auth.Signup)
	app.Post("/login", cfg.Auth.Login)
	app.Get("/viewAllRecipes", cfg.Recipes.ViewAllRecipes)

	authenticated := app.Group("", cfg.AuthMiddleware.Handle)
	authenticated.Get("/profile", cfg.Profile.GetProfile)
	authenticated.Put("/profile", cfg.Profile.UpdateProfile)

	authenticated.Post("/addRecipe", cfg.Recipes.AddRecipe)
	authenticated.Get("/viewRecipe", cfg.Recipes.ViewOwnRecipes)
	authenticated.Put("/updateRecipe/:id", cfg.Recipes.UpdateRecipe)
	authenticated.Delete("/deleteRecipe/:id", cfg.Recipes.DeleteRecipe)

	admin := authenticated.Group("", cfg.AdminGuard)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Delete("/deleteUser/:id", cfg.Admin.DeleteUser)
	admin.Put("/updateUserAdmin/:id", cfg.Admin.UpdateUserAdmin)
}

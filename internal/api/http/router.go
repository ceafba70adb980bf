package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notes-service/internal/api/http/handlers"
	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Notes          *handlers.NotesHandler
	AuthMiddleware *auth.Middleware
	LoginLimiter   fiber.Handler
}

// RegisterRoutes wires HTTP routes. Protected routes carry the access guard;
// the admin listing additionally carries the role guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.LoginLimiter, cfg.Users.Register)
	app.Post("/auth/login", cfg.LoginLimiter, cfg.Users.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/auth/profile", cfg.Users.Profile)
	protected.Post("/auth/logout", cfg.Users.Logout)

	protected.Get("/users", auth.RequireRole(domain.RoleAdmin), cfg.Users.List)

	protected.Post("/notes", cfg.Notes.Create)
	protected.Get("/notes", cfg.Notes.List)
	protected.Get("/notes/:id", cfg.Notes.Get)
	protected.Put("/notes/:id", cfg.Notes.Update)
	protected.Delete("/notes/:id", cfg.Notes.Delete)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/http/handlers"
	"github.com/spec-kit/complaint-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Complaints     *handlers.ComplaintsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	users.Get("/me", cfg.Users.GetProfile)
	users.Put("/me", cfg.Users.UpdateProfile)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	complaints.Post("", cfg.Complaints.CreateComplaint)
	complaints.Get("", cfg.Complaints.ListComplaints)
	complaints.Get("/:id", cfg.Complaints.GetComplaint)
	complaints.Post("/:id/responses", cfg.Complaints.AddResponse)
	complaints.Post("/:id/votes", cfg.Complaints.Vote)
	complaints.Put("/:id/status", auth.RequireAdmin(), cfg.Complaints.UpdateStatus)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/stats", cfg.Admin.DashboardStats)
	admin.Get("/categories", cfg.Admin.ListCategories)
	admin.Post("/categories", cfg.Admin.CreateCategory)
	admin.Put("/categories/:name", cfg.Admin.UpdateCategory)
	admin.Get("/agencies", cfg.Admin.ListAgencies)
	admin.Post("/agencies", cfg.Admin.CreateAgency)
	admin.Get("/agencies/:id", cfg.Admin.GetAgency)
	admin.Put("/agencies/:id", cfg.Admin.UpdateAgency)
	admin.Delete("/agencies/:id", cfg.Admin.DeleteAgency)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jewelflow/workshop-service/internal/api/http/handlers"
	"github.com/jewelflow/workshop-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	Jobs           *handlers.JobsHandler
	DailyLogs      *handlers.DailyLogsHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	authed := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	authed.Post("/auth/logout", cfg.Auth.Logout)
	authed.Post("/auth/password/change", cfg.Auth.ChangePassword)

	authed.Get("/jobs", cfg.Jobs.List)
	authed.Get("/jobs/:id", cfg.Jobs.Get)
	authed.Post("/jobs/:id/advance", cfg.Jobs.Advance)

	authed.Post("/daily-logs", cfg.DailyLogs.Record)
	authed.Get("/daily-logs", cfg.DailyLogs.Feed)

	admin := authed.Group("", auth.RequireAdmin())
	admin.Post("/jobs", cfg.Jobs.Create)
	admin.Get("/staff", cfg.Staff.List)
	admin.Post("/staff", cfg.Staff.Create)
	admin.Put("/staff/:id", cfg.Staff.Update)
	admin.Delete("/staff/:id", cfg.Staff.Delete)
	admin.Get("/reports/attendance", cfg.Reports.Attendance)
	admin.Get("/reports/work-sessions", cfg.Reports.WorkSessions)
	admin.Get("/metrics", cfg.Health.Metrics)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/api/http/handlers"
	"github.com/hireboard/recruitment-service/internal/auth"
	"github.com/hireboard/recruitment-service/internal/domain"
)

// multipartOverhead leaves room for form fields around the resume file.
const multipartOverhead = 1 << 20

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Dashboard      *handlers.DashboardHandler
	Applicant      *handlers.ApplicantHandler
	Recruiter      *handlers.RecruiterHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// NewApp builds the fiber app with a body limit large enough for resumes.
// Form values end up in storage, so context values must not alias pooled
// request buffers.
func NewApp(appName string, maxResumeBytes int) *fiber.App {
	cfg := fiber.Config{AppName: appName, Immutable: true}
	if maxResumeBytes > 0 {
		cfg.BodyLimit = maxResumeBytes + multipartOverhead
	}
	return fiber.New(cfg)
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Auth.Logout)

	app.Get("/session", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Auth.Session)
	app.Get("/dashboard", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Dashboard.Dashboard)

	applicant := app.Group("/applicant", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleApplicant))
	applicant.Get("/jobs", cfg.Applicant.ListJobs)
	applicant.Get("/jobs/:id", cfg.Applicant.ViewJob)
	applicant.Delete("/selection", cfg.Applicant.BackToJobs)
	applicant.Post("/jobs/:id/application", cfg.Applicant.Apply)
	applicant.Delete("/jobs/:id/application", cfg.Applicant.Withdraw)

	recruiter := app.Group("/recruiter", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleRecruiter))
	recruiter.Post("/jobs", cfg.Recruiter.PostJob)
	recruiter.Get("/jobs", cfg.Recruiter.ListJobs)
	recruiter.Post("/jobs/delete", cfg.Recruiter.DeleteJobs)
	recruiter.Get("/jobs/:id/applicants", cfg.Recruiter.Applicants)
	recruiter.Delete("/selection", cfg.Recruiter.CloseApplicants)
	recruiter.Patch("/applications/:id/status", cfg.Recruiter.UpdateStatus)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.Users)
	admin.Get("/jobs", cfg.Admin.Jobs)
	admin.Get("/applications", cfg.Admin.Applications)
}

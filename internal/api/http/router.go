package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/hospital-portal/internal/api/http/handlers"
	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	Patients       *handlers.PatientsHandler
	Doctors        *handlers.DoctorsHandler
	Appointments   *handlers.AppointmentsHandler
	Billing        *handlers.BillingHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	adminGroup := app.Group("/admin")
	adminGroup.Post("/hospitals", cfg.Admin.CreateHospital)
	adminGroup.Get("/hospitals/:id", cfg.Admin.GetHospital)
	adminGroup.Put("/hospitals/:id",
		cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Admin.UpdateHospital)

	patientsGroup := app.Group("/patients")
	patientsGroup.Get("/", cfg.Patients.ListPatients)
	patientsGroup.Post("/", cfg.AuthMiddleware.Handle, cfg.Patients.CreatePatient)

	doctorsGroup := app.Group("/doctors")
	doctorsGroup.Get("/", cfg.Doctors.ListDoctors)
	doctorsGroup.Post("/", cfg.Doctors.CreateDoctor)
	doctorsGroup.Get("/check/available", cfg.Doctors.CheckAvailable)
	doctorsGroup.Get("/:id", cfg.Doctors.GetDoctor)

	appointmentsGroup := app.Group("/appointments")
	appointmentsGroup.Get("/", cfg.Appointments.ListAppointments)
	appointmentsGroup.Post("/",
		cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RolePatient), cfg.Appointments.CreateAppointment)
	appointmentsGroup.Get("/:id", cfg.Appointments.GetAppointment)
	appointmentsGroup.Put("/:id/status",
		cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleDoctor, domain.RoleAdmin),
		cfg.Appointments.UpdateAppointmentStatus)

	billingGroup := app.Group("/billing")
	billingGroup.Post("/issue", cfg.Billing.IssueBill)
	billingGroup.Post("/pay", cfg.Billing.PayBill)
}

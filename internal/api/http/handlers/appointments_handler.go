package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-portal/internal/api/dto"
	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/service"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// AppointmentsHandler exposes booking endpoints.
type AppointmentsHandler struct {
	appointments *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointmentService}
}

// ListAppointments handles GET /appointments?patient_id=&doctor_id=.
func (h *AppointmentsHandler) ListAppointments(c *fiber.Ctx) error {
	var patientID, doctorID *string
	if v := c.Query("patient_id"); v != "" {
		patientID = &v
	}
	if v := c.Query("doctor_id"); v != "" {
		doctorID = &v
	}

	appointments, err := h.appointments.ListAppointments(c.Context(), patientID, doctorID)
	if err != nil {
		return err
	}
	items := make([]fiber.Map, 0, len(appointments))
	for i := range appointments {
		items = append(items, appointmentView(&appointments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateAppointment handles POST /appointments.
func (h *AppointmentsHandler) CreateAppointment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.PatientID == "" || req.Day == "" || req.Time == "" {
		return fiber.NewError(http.StatusBadRequest, "patient_id, day, time required")
	}

	appointment, err := h.appointments.CreateAppointment(c.Context(), principal.Claims, service.CreateAppointmentInput{
		PatientID: req.PatientID,
		Day:       req.Day,
		Time:      req.Time,
		Purpose:   req.Purpose,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": appointmentView(appointment)})
}

// GetAppointment handles GET /appointments/:id.
func (h *AppointmentsHandler) GetAppointment(c *fiber.Ctx) error {
	appointment, err := h.appointments.GetAppointment(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": appointmentView(appointment)})
}

// UpdateAppointmentStatus handles PUT /appointments/:id/status?status=.
func (h *AppointmentsHandler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	status := c.Query("status")
	if status == "" {
		return fiber.NewError(http.StatusBadRequest, "Missing status parameter")
	}

	appointment, err := h.appointments.UpdateAppointmentStatus(c.Context(), principal.Claims, c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": appointmentView(appointment)})
}

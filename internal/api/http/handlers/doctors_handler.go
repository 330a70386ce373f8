package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-portal/internal/api/dto"
	"github.com/spec-kit/hospital-portal/internal/service"
)

// DoctorsHandler exposes the practitioner directory.
type DoctorsHandler struct {
	doctors *service.DoctorService
}

// NewDoctorsHandler constructs handler.
func NewDoctorsHandler(doctorService *service.DoctorService) *DoctorsHandler {
	return &DoctorsHandler{doctors: doctorService}
}

// ListDoctors handles GET /doctors.
func (h *DoctorsHandler) ListDoctors(c *fiber.Ctx) error {
	doctors, err := h.doctors.ListDoctors(c.Context())
	if err != nil {
		return err
	}
	items := make([]fiber.Map, 0, len(doctors))
	for i := range doctors {
		items = append(items, doctorView(&doctors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateDoctor handles POST /doctors.
func (h *DoctorsHandler) CreateDoctor(c *fiber.Ctx) error {
	var req dto.CreateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Specialization == "" {
		return fiber.NewError(http.StatusBadRequest, "name and specialization required")
	}

	doctor, err := h.doctors.CreateDoctor(c.Context(), service.CreateDoctorInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		VisitingHours:  req.VisitingHours,
		AvailableDays:  req.AvailableDays,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": doctorView(doctor)})
}

// GetDoctor handles GET /doctors/:id.
func (h *DoctorsHandler) GetDoctor(c *fiber.Ctx) error {
	doctor, err := h.doctors.GetDoctor(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": doctorView(doctor)})
}

// CheckAvailable handles GET /doctors/check/available?day=.
func (h *DoctorsHandler) CheckAvailable(c *fiber.Ctx) error {
	day := c.Query("day")
	if day == "" {
		return fiber.NewError(http.StatusBadRequest, "day query parameter required")
	}

	doctors, err := h.doctors.AvailableOn(c.Context(), day)
	if err != nil {
		return err
	}
	items := make([]fiber.Map, 0, len(doctors))
	for i := range doctors {
		items = append(items, doctorView(&doctors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

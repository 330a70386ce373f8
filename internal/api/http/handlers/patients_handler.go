package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-portal/internal/api/dto"
	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/service"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// PatientsHandler exposes the patient registry.
type PatientsHandler struct {
	patients *service.PatientService
}

// NewPatientsHandler constructs handler.
func NewPatientsHandler(patientService *service.PatientService) *PatientsHandler {
	return &PatientsHandler{patients: patientService}
}

// ListPatients handles GET /patients.
func (h *PatientsHandler) ListPatients(c *fiber.Ctx) error {
	patients, err := h.patients.ListPatients(c.Context())
	if err != nil {
		return err
	}
	items := make([]fiber.Map, 0, len(patients))
	for i := range patients {
		items = append(items, patientView(&patients[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePatient handles POST /patients.
func (h *PatientsHandler) CreatePatient(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Age <= 0 {
		return fiber.NewError(http.StatusBadRequest, "name and age required")
	}

	patient, err := h.patients.CreatePatient(c.Context(), principal.Claims, service.CreatePatientInput{
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		HospitalID: req.HospitalID,
		UserID:     req.UserID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": patientView(patient)})
}

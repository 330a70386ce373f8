package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-portal/internal/api/dto"
	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/repository"
	"github.com/spec-kit/hospital-portal/internal/service"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// AdminHandler exposes hospital provisioning endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// CreateHospital handles POST /admin/hospitals.
func (h *AdminHandler) CreateHospital(c *fiber.Ctx) error {
	var req dto.CreateHospitalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.AdminEmail == "" || req.AdminPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "name, admin_email, admin_password required")
	}

	hospital, admin, err := h.admin.CreateHospital(c.Context(), service.CreateHospitalInput{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		AdminName:     req.AdminName,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"hospital":    hospitalView(hospital),
			"admin_email": admin.Email,
		},
	})
}

// GetHospital handles GET /admin/hospitals/:id.
func (h *AdminHandler) GetHospital(c *fiber.Ctx) error {
	hospital, err := h.admin.GetHospital(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": hospitalView(hospital)})
}

// UpdateHospital handles PUT /admin/hospitals/:id.
func (h *AdminHandler) UpdateHospital(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateHospitalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	hospital, err := h.admin.UpdateHospital(c.Context(), principal.Claims, c.Params("id"), repository.HospitalUpdate{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": hospitalView(hospital)})
}

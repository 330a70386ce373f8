package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-portal/internal/api/dto"
	"github.com/spec-kit/hospital-portal/internal/service"
)

// BillingHandler exposes bill issuance and payment endpoints.
type BillingHandler struct {
	billing *service.BillingService
}

// NewBillingHandler constructs handler.
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billingService}
}

// IssueBill handles POST /billing/issue.
func (h *BillingHandler) IssueBill(c *fiber.Ctx) error {
	var req dto.IssueBillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.AppointmentID == "" {
		return fiber.NewError(http.StatusBadRequest, "appointment_id required")
	}

	bill, err := h.billing.IssueBill(c.Context(), service.IssueBillInput{
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": billView(bill)})
}

// PayBill handles POST /billing/pay.
func (h *BillingHandler) PayBill(c *fiber.Ctx) error {
	var req dto.PayBillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.BillID == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "bill_id and email required")
	}

	authorization, err := h.billing.PayBill(c.Context(), req.BillID, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"authorization_url": authorization.AuthorizationURL,
			"reference":         authorization.Reference,
		},
	})
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-portal/internal/config"
	"github.com/spec-kit/hospital-portal/internal/domain"
	"github.com/spec-kit/hospital-portal/internal/events"
	"github.com/spec-kit/hospital-portal/internal/payments"
	"github.com/spec-kit/hospital-portal/internal/repository"
	"github.com/spec-kit/hospital-portal/pkg/util"
)

const billReferenceLength = 10

// BillingService issues bills for appointments and starts payments through
// Paystack. Bills reference appointments but do not own them.
type BillingService struct {
	bills        repository.BillRepository
	appointments *AppointmentService
	gateway      *payments.PaystackClient
	dispatcher   events.Dispatcher
	callbackURL  string
}

// NewBillingService builds the service.
func NewBillingService(cfg config.Config, bills repository.BillRepository, appointments *AppointmentService, gateway *payments.PaystackClient, dispatcher events.Dispatcher) *BillingService {
	return &BillingService{
		bills:        bills,
		appointments: appointments,
		gateway:      gateway,
		dispatcher:   dispatcher,
		callbackURL:  cfg.Billing.CallbackURL,
	}
}

// IssueBillInput carries the fields for a new bill. Amount defaults to the
// appointment price, currency to NGN.
type IssueBillInput struct {
	AppointmentID string
	Amount        *float64
	Currency      string
}

// IssueBill creates a pending bill for an appointment.
func (s *BillingService) IssueBill(ctx context.Context, input IssueBillInput) (*domain.Bill, error) {
	appointment, err := s.appointments.GetAppointment(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}

	amount := appointment.Price
	if input.Amount != nil {
		amount = *input.Amount
	}

	bill := domain.NewBill(appointment.ID, util.RandomString(billReferenceLength), amount, input.Currency)
	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, util.NewDatabaseError(err)
	}

	s.publish(ctx, events.EventBillIssued, bill.ID, events.BillIssuedPayload{
		AppointmentID: bill.AppointmentID,
		Amount:        bill.Amount,
		Currency:      bill.Currency,
		Reference:     bill.Reference,
	})
	return bill, nil
}

// PayBill initializes a Paystack transaction for a pending bill. Paying a
// bill that is already Paid is a conflict.
func (s *BillingService) PayBill(ctx context.Context, billID, email string) (*payments.Authorization, error) {
	if _, err := uuid.Parse(billID); err != nil {
		return nil, util.NewParsingError(err.Error())
	}
	bill, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("bill", map[string]any{"bill_id": billID})
		}
		return nil, util.NewDatabaseError(err)
	}
	if bill.Status == domain.BillStatusPaid {
		return nil, util.NewConflict("Bill has already been paid", map[string]any{"bill_id": billID})
	}

	authorization, err := s.gateway.InitializeTransaction(ctx, payments.InitializeRequest{
		Email:       email,
		Amount:      uint64(bill.Amount * 100), // minor units
		Reference:   bill.Reference,
		CallbackURL: s.callbackURL,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBillPaymentInitialized, bill.ID, events.BillPaymentInitializedPayload{
		Reference:        authorization.Reference,
		AuthorizationURL: authorization.AuthorizationURL,
	})
	return authorization, nil
}

func (s *BillingService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	_ = s.dispatcher.Publish(ctx, event)
}

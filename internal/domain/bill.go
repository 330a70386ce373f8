package domain

import "github.com/google/uuid"

// BillStatus enumerates billing lifecycle states.
type BillStatus string

const (
	BillStatusPending   BillStatus = "Pending"
	BillStatusPaid      BillStatus = "Paid"
	BillStatusCancelled BillStatus = "Cancelled"
)

// Bill references (but does not own) an appointment.
type Bill struct {
	ID            string
	Reference     string
	AppointmentID string
	Amount        float64
	Currency      string
	Status        BillStatus
}

// DefaultCurrency is applied when a bill request carries none.
const DefaultCurrency = "NGN"

// NewBill builds a pending bill with a fresh id and the given payment reference.
func NewBill(appointmentID, reference string, amount float64, currency string) *Bill {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Bill{
		ID:            uuid.NewString(),
		Reference:     reference,
		AppointmentID: appointmentID,
		Amount:        amount,
		Currency:      currency,
		Status:        BillStatusPending,
	}
}

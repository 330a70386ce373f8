package dto

// IssueBillRequest payload for creating a bill.
type IssueBillRequest struct {
	AppointmentID string   `json:"appointment_id"`
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency"`
}

// PayBillRequest payload for starting a payment.
type PayBillRequest struct {
	BillID string `json:"bill_id"`
	Email  string `json:"email"`
}

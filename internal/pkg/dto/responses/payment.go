package responses

import "time"

type Payment struct {
	PaymentID     string     `json:"paymentId"`
	AppointmentID string     `json:"appointmentId"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	RefundDate    *time.Time `json:"refundDate,omitempty"`
}

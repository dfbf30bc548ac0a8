package models

import (
	"time"

	"mbote-service/internal/pkg/constvars"
)

type Payment struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	AppointmentID string     `json:"appointmentId" bson:"appointmentId"`
	PatientID     string     `json:"patientId" bson:"patientId"`
	DoctorID      string     `json:"doctorId" bson:"doctorId"`
	Amount        float64    `json:"amount" bson:"amount"`
	Currency      string     `json:"currency" bson:"currency"`
	Method        string     `json:"method" bson:"method"`
	Status        string     `json:"status" bson:"status"`
	TransactionID string     `json:"transactionId" bson:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	RefundDate    *time.Time `json:"refundDate,omitempty" bson:"refundDate,omitempty"`
	RefundReason  string     `json:"refundReason,omitempty" bson:"refundReason,omitempty"`
	TimeModel     `bson:",inline"`
}

// CanBeRefunded reports whether the payment is still refundable at the given
// time: completed, never refunded before, and settled within the refund
// window.
func (p *Payment) CanBeRefunded(now time.Time) bool {
	if p.Status != constvars.PaymentStatusCompleted || p.RefundDate != nil || p.PaymentDate == nil {
		return false
	}
	window := time.Duration(constvars.PaymentRefundWindowInDays) * 24 * time.Hour
	return now.Sub(*p.PaymentDate) <= window
}

package requests

type CreatePayment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	Method        string `json:"method" validate:"required,oneof=mobile_money credit_card bank_transfer cash"`
	Currency      string `json:"currency" validate:"required,oneof=USD CDF"`
}

type RefundPayment struct {
	Reason string `json:"reason" validate:"required"`
}

package responses

import "time"

type Appointment struct {
	AppointmentID string    `json:"appointmentId"`
	PatientID     string    `json:"patientId"`
	DoctorID      string    `json:"doctorId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	Reason        string    `json:"reason,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentAmount float64   `json:"paymentAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

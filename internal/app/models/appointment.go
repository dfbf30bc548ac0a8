package models

import (
	"time"

	"mbote-service/internal/pkg/constvars"
)

type AppointmentCancellation struct {
	CancelledBy string    `json:"cancelledBy" bson:"cancelledBy"`
	Reason      string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CancelledAt time.Time `json:"cancelledAt" bson:"cancelledAt"`
}

type Appointment struct {
	ID            string                   `json:"id" bson:"_id,omitempty"`
	PatientID     string                   `json:"patientId" bson:"patientId"`
	DoctorID      string                   `json:"doctorId" bson:"doctorId"`
	Date          time.Time                `json:"date" bson:"date"`
	StartTime     string                   `json:"startTime" bson:"startTime"`
	EndTime       string                   `json:"endTime" bson:"endTime"`
	Status        string                   `json:"status" bson:"status"`
	Type          string                   `json:"type" bson:"type"`
	Reason        string                   `json:"reason,omitempty" bson:"reason,omitempty"`
	Notes         string                   `json:"notes,omitempty" bson:"notes,omitempty"`
	Cancellation  *AppointmentCancellation `json:"cancellation,omitempty" bson:"cancellation,omitempty"`
	PaymentStatus string                   `json:"paymentStatus" bson:"paymentStatus"`
	PaymentAmount float64                  `json:"paymentAmount" bson:"paymentAmount"`
	TimeModel     `bson:",inline"`
}

// StartsAt combines the appointment date with its start clock time.
func (a *Appointment) StartsAt() time.Time {
	var hh, mm int
	if t, err := time.Parse("15:04", a.StartTime); err == nil {
		hh, mm = t.Hour(), t.Minute()
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), hh, mm, 0, 0, a.Date.Location())
}

func (a *Appointment) IsFuture(now time.Time) bool {
	return a.StartsAt().After(now)
}

// Blocking reports whether the appointment still occupies its slot.
func (a *Appointment) Blocking() bool {
	return a.Status == constvars.AppointmentStatusPending || a.Status == constvars.AppointmentStatusConfirmed
}

// CanBeCancelled requires a pending or confirmed appointment starting more
// than 24 hours from now.
func (a *Appointment) CanBeCancelled(now time.Time) bool {
	if !a.Blocking() {
		return false
	}
	return a.StartsAt().Sub(now) > 24*time.Hour
}

// CanTransitionTo enforces the status lifecycle:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
func (a *Appointment) CanTransitionTo(status string) bool {
	switch a.Status {
	case constvars.AppointmentStatusPending:
		return status == constvars.AppointmentStatusConfirmed || status == constvars.AppointmentStatusCancelled
	case constvars.AppointmentStatusConfirmed:
		return status == constvars.AppointmentStatusCompleted || status == constvars.AppointmentStatusCancelled
	default:
		return false
	}
}

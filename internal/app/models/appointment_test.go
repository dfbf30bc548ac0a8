package models

import (
	"testing"
	"time"

	"mbote-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func futureAppointment(hoursAhead int, status string) *Appointment {
	start := time.Now().Add(time.Duration(hoursAhead) * time.Hour)
	return &Appointment{
		Date:      time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		StartTime: start.Format("15:04"),
		EndTime:   start.Add(30 * time.Minute).Format("15:04"),
		Status:    status,
	}
}

func TestAppointmentCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed, true},
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusCancelled, true},
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusCompleted, false},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCompleted, true},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled, true},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusPending, false},
		{constvars.AppointmentStatusCancelled, constvars.AppointmentStatusConfirmed, false},
		{constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled, false},
	}
	for _, tc := range cases {
		a := &Appointment{Status: tc.from}
		assert.Equal(t, tc.allowed, a.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestAppointmentCanBeCancelled(t *testing.T) {
	now := time.Now()

	t.Run("more than 24h ahead is cancellable", func(t *testing.T) {
		assert.True(t, futureAppointment(48, constvars.AppointmentStatusPending).CanBeCancelled(now))
		assert.True(t, futureAppointment(48, constvars.AppointmentStatusConfirmed).CanBeCancelled(now))
	})

	t.Run("inside the 24h window is not cancellable", func(t *testing.T) {
		assert.False(t, futureAppointment(12, constvars.AppointmentStatusPending).CanBeCancelled(now))
	})

	t.Run("terminal statuses are not cancellable", func(t *testing.T) {
		assert.False(t, futureAppointment(48, constvars.AppointmentStatusCancelled).CanBeCancelled(now))
		assert.False(t, futureAppointment(48, constvars.AppointmentStatusCompleted).CanBeCancelled(now))
	})
}

func TestAppointmentBlocking(t *testing.T) {
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusPending}).Blocking())
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusConfirmed}).Blocking())
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusCancelled}).Blocking())
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusCompleted}).Blocking())
}

package schedules

import (
	"testing"
	"time"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

func buildSchedule() *models.Schedule {
	return &models.Schedule{
		DoctorID: "doc-1",
		WorkingHours: map[string]*models.TimeSlot{
			constvars.WeekdayMonday:    {Start: "09:00", End: "17:00"},
			constvars.WeekdayTuesday:   {Start: "09:00", End: "12:00"},
			constvars.WeekdayWednesday: {Start: "08:00", End: "16:00"},
		},
		Breaks: []models.Break{
			{Day: constvars.WeekdayMonday, Start: "12:00", End: "13:00", Kind: constvars.BreakKindLunch},
		},
		SlotDurationMin: 30,
		IsActive:        true,
	}
}

func appointmentOn(date time.Time, start, end, status string) models.Appointment {
	return models.Appointment{
		DoctorID:  "doc-1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestIsSlotAvailable(t *testing.T) {
	t.Run("free slot inside working hours is available", func(t *testing.T) {
		ok, err := IsSlotAvailable(buildSchedule(), monday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("slot overlapping lunch break is unavailable", func(t *testing.T) {
		ok, err := IsSlotAvailable(buildSchedule(), monday, "12:30", "13:00", nil)
		require.NoError(t, err)
		assert.False(t, ok)

		// Even a partial overlap blocks.
		ok, err = IsSlotAvailable(buildSchedule(), monday, "11:45", "12:15", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("slot ending exactly when break starts is available", func(t *testing.T) {
		ok, err := IsSlotAvailable(buildSchedule(), monday, "11:30", "12:00", nil)
		require.NoError(t, err)
		assert.True(t, ok, "half-open intervals must not treat touching edges as overlap")
	})

	t.Run("slot starting exactly when break ends is available", func(t *testing.T) {
		ok, err := IsSlotAvailable(buildSchedule(), monday, "13:00", "13:30", nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("slot outside working hours is unavailable", func(t *testing.T) {
		ok, err := IsSlotAvailable(buildSchedule(), monday, "08:00", "08:30", nil)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = IsSlotAvailable(buildSchedule(), monday, "16:45", "17:15", nil)
		require.NoError(t, err)
		assert.False(t, ok, "slot spilling past closing time must be rejected")
	})

	t.Run("day without working hours is unavailable", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, -1)
		ok, err := IsSlotAvailable(buildSchedule(), sunday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("pending and confirmed appointments block the slot", func(t *testing.T) {
		for _, status := range []string{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed} {
			booked := []models.Appointment{appointmentOn(monday, "10:00", "10:30", status)}
			ok, err := IsSlotAvailable(buildSchedule(), monday, "10:00", "10:30", booked)
			require.NoError(t, err)
			assert.False(t, ok, "status %s must block", status)
		}
	})

	t.Run("cancelled and completed appointments free the slot", func(t *testing.T) {
		for _, status := range []string{constvars.AppointmentStatusCancelled, constvars.AppointmentStatusCompleted} {
			booked := []models.Appointment{appointmentOn(monday, "10:00", "10:30", status)}
			ok, err := IsSlotAvailable(buildSchedule(), monday, "10:00", "10:30", booked)
			require.NoError(t, err)
			assert.True(t, ok, "status %s must not block", status)
		}
	})

	t.Run("appointment on another day does not block", func(t *testing.T) {
		otherDay := monday.AddDate(0, 0, 7)
		booked := []models.Appointment{appointmentOn(otherDay, "10:00", "10:30", constvars.AppointmentStatusConfirmed)}
		ok, err := IsSlotAvailable(buildSchedule(), monday, "10:00", "10:30", booked)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("exact holiday closes the day", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.Holidays = []models.Holiday{{Date: monday, Reason: "clinic closed"}}
		ok, err := IsSlotAvailable(schedule, monday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("recurring holiday matches across years", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.Holidays = []models.Holiday{{
			Date:        time.Date(2020, 6, 2, 0, 0, 0, 0, time.Local),
			IsRecurring: true,
		}}
		ok, err := IsSlotAvailable(schedule, monday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-recurring holiday from another year does not match", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.Holidays = []models.Holiday{{Date: time.Date(2020, 6, 2, 0, 0, 0, 0, time.Local)}}
		ok, err := IsSlotAvailable(schedule, monday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("approved vacation closes the day, pending does not", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.Vacations = []models.Vacation{{
			ID:        "vac-1",
			StartDate: monday.AddDate(0, 0, -2),
			EndDate:   monday.AddDate(0, 0, 2),
			Status:    constvars.VacationStatusApproved,
		}}
		ok, err := IsSlotAvailable(schedule, monday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.False(t, ok)

		schedule.Vacations[0].Status = constvars.VacationStatusPending
		ok, err = IsSlotAvailable(schedule, monday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.True(t, ok, "pending vacation must not block bookings")
	})

	t.Run("inactive schedule is never available", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.IsActive = false
		ok, err := IsSlotAvailable(schedule, monday, "09:00", "09:30", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("inverted time range is an error", func(t *testing.T) {
		_, err := IsSlotAvailable(buildSchedule(), monday, "10:00", "09:00", nil)
		assert.Error(t, err)
	})

	t.Run("malformed clock time is an error", func(t *testing.T) {
		_, err := IsSlotAvailable(buildSchedule(), monday, "25:00", "26:00", nil)
		assert.Error(t, err)
	})
}

func TestDayAvailability(t *testing.T) {
	t.Run("slices working hours and removes break slots", func(t *testing.T) {
		slots, reason, err := DayAvailability(buildSchedule(), monday, nil, 30)
		require.NoError(t, err)
		assert.Empty(t, reason)
		// 09:00-17:00 is 16 half-hour slots, minus two covered by lunch.
		assert.Len(t, slots, 14)
		assert.Equal(t, AvailableSlot{Start: "09:00", End: "09:30"}, slots[0])
		for _, s := range slots {
			assert.NotEqual(t, "12:00", s.Start)
			assert.NotEqual(t, "12:30", s.Start)
		}
	})

	t.Run("booked appointment removes its slot only", func(t *testing.T) {
		booked := []models.Appointment{appointmentOn(monday, "09:00", "09:30", constvars.AppointmentStatusConfirmed)}
		slots, _, err := DayAvailability(buildSchedule(), monday, booked, 30)
		require.NoError(t, err)
		assert.Len(t, slots, 13)
		assert.Equal(t, "09:30", slots[0].Start)
	})

	t.Run("trailing remainder shorter than slot duration is dropped", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.WorkingHours[constvars.WeekdayMonday] = &models.TimeSlot{Start: "09:00", End: "10:45"}
		schedule.Breaks = nil
		slots, _, err := DayAvailability(schedule, monday, nil, 30)
		require.NoError(t, err)
		assert.Len(t, slots, 3)
		assert.Equal(t, "10:30", slots[2].End)
	})

	t.Run("schedule slot duration overrides the default", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.SlotDurationMin = 60
		slots, _, err := DayAvailability(schedule, monday, nil, 30)
		require.NoError(t, err)
		// 8 hour-long slots minus the one covered by lunch.
		assert.Len(t, slots, 7)
	})

	t.Run("closed day reports a reason and no slots", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, -1)
		slots, reason, err := DayAvailability(buildSchedule(), sunday, nil, 30)
		require.NoError(t, err)
		assert.Nil(t, slots)
		assert.Equal(t, ClosedReasonDayOff, reason)

		schedule := buildSchedule()
		schedule.Holidays = []models.Holiday{{Date: monday}}
		_, reason, err = DayAvailability(schedule, monday, nil, 30)
		require.NoError(t, err)
		assert.Equal(t, ClosedReasonHoliday, reason)
	})
}

func TestCanRequestVacation(t *testing.T) {
	now := monday

	t.Run("future range with no overlap is allowed", func(t *testing.T) {
		err := CanRequestVacation(buildSchedule(), monday.AddDate(0, 0, 5), monday.AddDate(0, 0, 10), now)
		assert.NoError(t, err)
	})

	t.Run("start in the past is rejected", func(t *testing.T) {
		err := CanRequestVacation(buildSchedule(), monday.AddDate(0, 0, -1), monday.AddDate(0, 0, 3), now)
		assert.Error(t, err)
	})

	t.Run("starting today is allowed", func(t *testing.T) {
		err := CanRequestVacation(buildSchedule(), monday, monday.AddDate(0, 0, 3), now)
		assert.NoError(t, err)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		err := CanRequestVacation(buildSchedule(), monday.AddDate(0, 0, 5), monday.AddDate(0, 0, 2), now)
		assert.Error(t, err)
	})

	t.Run("overlap with pending or approved vacation is rejected", func(t *testing.T) {
		for _, status := range []string{constvars.VacationStatusPending, constvars.VacationStatusApproved} {
			schedule := buildSchedule()
			schedule.Vacations = []models.Vacation{{
				StartDate: monday.AddDate(0, 0, 7),
				EndDate:   monday.AddDate(0, 0, 14),
				Status:    status,
			}}
			err := CanRequestVacation(schedule, monday.AddDate(0, 0, 10), monday.AddDate(0, 0, 20), now)
			assert.Error(t, err, "status %s must conflict", status)
		}
	})

	t.Run("rejected vacation does not conflict", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.Vacations = []models.Vacation{{
			StartDate: monday.AddDate(0, 0, 7),
			EndDate:   monday.AddDate(0, 0, 14),
			Status:    constvars.VacationStatusRejected,
		}}
		err := CanRequestVacation(schedule, monday.AddDate(0, 0, 10), monday.AddDate(0, 0, 12), now)
		assert.NoError(t, err)
	})

	t.Run("back to back ranges do not conflict", func(t *testing.T) {
		schedule := buildSchedule()
		schedule.Vacations = []models.Vacation{{
			StartDate: monday.AddDate(0, 0, 7),
			EndDate:   monday.AddDate(0, 0, 10),
			Status:    constvars.VacationStatusApproved,
		}}
		err := CanRequestVacation(schedule, monday.AddDate(0, 0, 11), monday.AddDate(0, 0, 15), now)
		assert.NoError(t, err)
	})
}

func TestResolveVacation(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	t.Run("pending can be approved", func(t *testing.T) {
		vacation := &models.Vacation{ID: "vac-1", Status: constvars.VacationStatusPending}
		err := ResolveVacation(vacation, true, "admin-1", now)
		require.NoError(t, err)
		assert.Equal(t, constvars.VacationStatusApproved, vacation.Status)
		assert.Equal(t, "admin-1", vacation.ApprovedBy)
		require.NotNil(t, vacation.ApprovalDate)
		assert.Equal(t, now, *vacation.ApprovalDate)
	})

	t.Run("pending can be rejected", func(t *testing.T) {
		vacation := &models.Vacation{ID: "vac-2", Status: constvars.VacationStatusPending}
		err := ResolveVacation(vacation, false, "admin-1", now)
		require.NoError(t, err)
		assert.Equal(t, constvars.VacationStatusRejected, vacation.Status)
	})

	t.Run("approved and rejected are terminal", func(t *testing.T) {
		for _, status := range []string{constvars.VacationStatusApproved, constvars.VacationStatusRejected} {
			vacation := &models.Vacation{ID: "vac-3", Status: status}
			err := ResolveVacation(vacation, true, "admin-1", now)
			assert.Error(t, err)
			assert.Equal(t, status, vacation.Status, "terminal status must not change")
		}
	})
}

func TestValidateWorkingHours(t *testing.T) {
	t.Run("valid map passes", func(t *testing.T) {
		err := ValidateWorkingHours(map[string]*models.TimeSlot{
			constvars.WeekdayMonday: {Start: "09:00", End: "17:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("unknown weekday key fails", func(t *testing.T) {
		err := ValidateWorkingHours(map[string]*models.TimeSlot{
			"funday": {Start: "09:00", End: "17:00"},
		})
		assert.Error(t, err)
	})

	t.Run("inverted window fails", func(t *testing.T) {
		err := ValidateWorkingHours(map[string]*models.TimeSlot{
			constvars.WeekdayMonday: {Start: "17:00", End: "09:00"},
		})
		assert.Error(t, err)
	})

	t.Run("zero length window fails", func(t *testing.T) {
		err := ValidateWorkingHours(map[string]*models.TimeSlot{
			constvars.WeekdayMonday: {Start: "09:00", End: "09:00"},
		})
		assert.Error(t, err)
	})
}

func TestValidateBreak(t *testing.T) {
	breakAt := func(day, start, end string) models.Break {
		return models.Break{Day: day, Start: start, End: end, Kind: constvars.BreakKindLunch}
	}

	t.Run("break inside working hours passes with bounds enforced", func(t *testing.T) {
		err := ValidateBreak(buildSchedule(), breakAt(constvars.WeekdayMonday, "12:00", "13:00"), true)
		assert.NoError(t, err)
	})

	t.Run("break outside working hours fails when bounds enforced", func(t *testing.T) {
		err := ValidateBreak(buildSchedule(), breakAt(constvars.WeekdayMonday, "07:00", "08:00"), true)
		assert.Error(t, err)
	})

	t.Run("break on day off fails when bounds enforced", func(t *testing.T) {
		err := ValidateBreak(buildSchedule(), breakAt(constvars.WeekdaySunday, "12:00", "13:00"), true)
		assert.Error(t, err)
	})

	t.Run("bounds not enforced allows break outside working hours", func(t *testing.T) {
		err := ValidateBreak(buildSchedule(), breakAt(constvars.WeekdayMonday, "07:00", "08:00"), false)
		assert.NoError(t, err)
	})

	t.Run("inverted break window always fails", func(t *testing.T) {
		err := ValidateBreak(buildSchedule(), breakAt(constvars.WeekdayMonday, "13:00", "12:00"), false)
		assert.Error(t, err)
	})
}

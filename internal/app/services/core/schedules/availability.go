package schedules

import (
	"time"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"
)

// Closed-day reasons reported by DayClosed.
const (
	ClosedReasonDayOff   = "day_off"
	ClosedReasonHoliday  = "holiday"
	ClosedReasonVacation = "vacation"
	ClosedReasonInactive = "schedule_inactive"
)

// span is a half-open interval [Start, End) in minutes since midnight.
type span struct {
	Start int
	End   int
}

func (s span) overlaps(o span) bool {
	return s.Start < o.End && o.Start < s.End
}

// DayClosed reports whether the whole date is unavailable and why. Checks run
// in precedence order: inactive schedule, day off, holiday, approved vacation.
func DayClosed(schedule *models.Schedule, date time.Time) (bool, string) {
	if !schedule.IsActive {
		return true, ClosedReasonInactive
	}
	if schedule.WorkingHours[utils.WeekdayKey(date)] == nil {
		return true, ClosedReasonDayOff
	}
	if isHoliday(schedule, date) {
		return true, ClosedReasonHoliday
	}
	if onApprovedVacation(schedule, date) {
		return true, ClosedReasonVacation
	}
	return false, ""
}

// isHoliday matches non-recurring holidays on the exact date and recurring
// ones on month and day of any year.
func isHoliday(schedule *models.Schedule, date time.Time) bool {
	for _, h := range schedule.Holidays {
		if h.IsRecurring {
			if utils.SameMonthDay(h.Date, date) {
				return true
			}
		} else if utils.SameDay(h.Date, date) {
			return true
		}
	}
	return false
}

func onApprovedVacation(schedule *models.Schedule, date time.Time) bool {
	for _, v := range schedule.Vacations {
		if v.Status != constvars.VacationStatusApproved {
			continue
		}
		if utils.DateInRange(date, v.StartDate, v.EndDate) {
			return true
		}
	}
	return false
}

// workingSpan returns the working-hours window for the date's weekday.
func workingSpan(schedule *models.Schedule, date time.Time) (span, error) {
	slot := schedule.WorkingHours[utils.WeekdayKey(date)]
	if slot == nil {
		return span{}, exceptions.ErrInvalidTimeRange(nil)
	}
	start, err := utils.ParseClockMinutes(slot.Start)
	if err != nil {
		return span{}, exceptions.ErrCannotParseClockTime(err)
	}
	end, err := utils.ParseClockMinutes(slot.End)
	if err != nil {
		return span{}, exceptions.ErrCannotParseClockTime(err)
	}
	return span{Start: start, End: end}, nil
}

// blockedSpans collects breaks for the weekday and booked appointments still
// holding their slot. Cancelled and completed appointments free the slot.
func blockedSpans(schedule *models.Schedule, date time.Time, appointments []models.Appointment) []span {
	var blocked []span
	dayKey := utils.WeekdayKey(date)
	for _, b := range schedule.Breaks {
		if b.Day != dayKey {
			continue
		}
		start, err := utils.ParseClockMinutes(b.Start)
		if err != nil {
			continue
		}
		end, err := utils.ParseClockMinutes(b.End)
		if err != nil {
			continue
		}
		blocked = append(blocked, span{Start: start, End: end})
	}
	for _, a := range appointments {
		if !a.Blocking() || !utils.SameDay(a.Date, date) {
			continue
		}
		start, err := utils.ParseClockMinutes(a.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseClockMinutes(a.EndTime)
		if err != nil {
			continue
		}
		blocked = append(blocked, span{Start: start, End: end})
	}
	return blocked
}

// IsSlotAvailable reports whether [startTime, endTime) on date is bookable:
// the day is open, the span sits inside working hours, and it overlaps no
// break or blocking appointment.
func IsSlotAvailable(schedule *models.Schedule, date time.Time, startTime, endTime string, appointments []models.Appointment) (bool, error) {
	start, err := utils.ParseClockMinutes(startTime)
	if err != nil {
		return false, exceptions.ErrCannotParseClockTime(err)
	}
	end, err := utils.ParseClockMinutes(endTime)
	if err != nil {
		return false, exceptions.ErrCannotParseClockTime(err)
	}
	if start >= end {
		return false, exceptions.ErrInvalidTimeRange(nil)
	}

	if closed, _ := DayClosed(schedule, date); closed {
		return false, nil
	}

	working, err := workingSpan(schedule, date)
	if err != nil {
		return false, err
	}
	requested := span{Start: start, End: end}
	if requested.Start < working.Start || requested.End > working.End {
		return false, nil
	}

	for _, blocked := range blockedSpans(schedule, date, appointments) {
		if requested.overlaps(blocked) {
			return false, nil
		}
	}
	return true, nil
}

// AvailableSlot is one bookable window produced by DayAvailability.
type AvailableSlot struct {
	Start string
	End   string
}

// DayAvailability slices the working hours of date into consecutive
// slotDuration-minute slots and drops every slot touching a break or a
// blocking appointment. A trailing remainder shorter than slotDuration is
// not offered.
func DayAvailability(schedule *models.Schedule, date time.Time, appointments []models.Appointment, slotDuration int) ([]AvailableSlot, string, error) {
	if closed, reason := DayClosed(schedule, date); closed {
		return nil, reason, nil
	}

	if slotDuration <= 0 {
		slotDuration = 30
	}
	if schedule.SlotDurationMin > 0 {
		slotDuration = schedule.SlotDurationMin
	}

	working, err := workingSpan(schedule, date)
	if err != nil {
		return nil, "", err
	}
	blocked := blockedSpans(schedule, date, appointments)

	var slots []AvailableSlot
	for cursor := working.Start; cursor+slotDuration <= working.End; cursor += slotDuration {
		candidate := span{Start: cursor, End: cursor + slotDuration}
		free := true
		for _, b := range blocked {
			if candidate.overlaps(b) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, AvailableSlot{
				Start: utils.FormatClockMinutes(candidate.Start),
				End:   utils.FormatClockMinutes(candidate.End),
			})
		}
	}
	return slots, "", nil
}

// ValidateWorkingHours rejects unknown weekday keys and windows whose start
// is not strictly before their end.
func ValidateWorkingHours(workingHours map[string]*models.TimeSlot) error {
	for day, slot := range workingHours {
		if !utils.IsWeekdayKey(day) {
			return exceptions.ErrInputValidation(nil)
		}
		if slot == nil {
			continue
		}
		start, err := utils.ParseClockMinutes(slot.Start)
		if err != nil {
			return exceptions.ErrCannotParseClockTime(err)
		}
		end, err := utils.ParseClockMinutes(slot.End)
		if err != nil {
			return exceptions.ErrCannotParseClockTime(err)
		}
		if start >= end {
			return exceptions.ErrInvalidTimeRange(nil)
		}
	}
	return nil
}

// ValidateBreak checks the break window and, when enforceBounds is set,
// requires it to sit inside the day's working hours. A break on a day with
// no working hours is rejected outright when bounds are enforced.
func ValidateBreak(schedule *models.Schedule, b models.Break, enforceBounds bool) error {
	start, err := utils.ParseClockMinutes(b.Start)
	if err != nil {
		return exceptions.ErrCannotParseClockTime(err)
	}
	end, err := utils.ParseClockMinutes(b.End)
	if err != nil {
		return exceptions.ErrCannotParseClockTime(err)
	}
	if start >= end {
		return exceptions.ErrInvalidTimeRange(nil)
	}

	if !enforceBounds {
		return nil
	}
	slot := schedule.WorkingHours[b.Day]
	if slot == nil {
		return exceptions.ErrBreakOutsideWorkingHours(nil)
	}
	workStart, err := utils.ParseClockMinutes(slot.Start)
	if err != nil {
		return exceptions.ErrCannotParseClockTime(err)
	}
	workEnd, err := utils.ParseClockMinutes(slot.End)
	if err != nil {
		return exceptions.ErrCannotParseClockTime(err)
	}
	if start < workStart || end > workEnd {
		return exceptions.ErrBreakOutsideWorkingHours(nil)
	}
	return nil
}

// CanRequestVacation rejects ranges starting in the past, inverted ranges,
// and ranges touching an existing pending or approved vacation.
func CanRequestVacation(schedule *models.Schedule, startDate, endDate, now time.Time) error {
	today := utils.DateOnly(now)
	if utils.DateOnly(startDate).Before(today) {
		return exceptions.ErrInvalidDateRange(nil)
	}
	if utils.DateOnly(endDate).Before(utils.DateOnly(startDate)) {
		return exceptions.ErrInvalidDateRange(nil)
	}

	for _, v := range schedule.Vacations {
		if v.Status == constvars.VacationStatusRejected {
			continue
		}
		if !utils.DateOnly(startDate).After(utils.DateOnly(v.EndDate)) &&
			!utils.DateOnly(v.StartDate).After(utils.DateOnly(endDate)) {
			return exceptions.ErrInvalidDateRange(nil)
		}
	}
	return nil
}

// ResolveVacation moves a pending vacation to approved or rejected. Both
// outcomes are terminal.
func ResolveVacation(vacation *models.Vacation, approve bool, adminUserID string, now time.Time) error {
	if vacation.Status != constvars.VacationStatusPending {
		return exceptions.ErrVacationAlreadyResolved(nil)
	}
	if approve {
		vacation.Status = constvars.VacationStatusApproved
	} else {
		vacation.Status = constvars.VacationStatusRejected
	}
	vacation.ApprovedBy = adminUserID
	vacation.ApprovalDate = &now
	vacation.UpdatedAt = now
	return nil
}

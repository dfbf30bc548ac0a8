package responses

import "mbote-service/internal/app/models"

type AvailableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayAvailability lists the free slots for one doctor on one calendar date.
// Reason is set when the whole day is closed (holiday, vacation, day off).
type DayAvailability struct {
	DoctorID  string          `json:"doctorId"`
	Date      string          `json:"date"`
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
	Slots     []AvailableSlot `json:"slots"`
}

type Schedule struct {
	DoctorID            string                      `json:"doctorId"`
	WorkingHours        map[string]*models.TimeSlot `json:"workingHours"`
	Breaks              []models.Break              `json:"breaks"`
	Holidays            []models.Holiday            `json:"holidays"`
	Vacations           []models.Vacation           `json:"vacations"`
	SlotDurationMinutes int                         `json:"slotDurationMinutes"`
}

type Vacation struct {
	VacationID string `json:"vacationId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
}

package models

import "time"

// TimeSlot bounds one working-hours window for a weekday. Start and End are
// "HH:MM" clock strings; the window is half-open [Start, End).
type TimeSlot struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

type Break struct {
	Day    string `json:"day" bson:"day"`
	Start  string `json:"start" bson:"start"`
	End    string `json:"end" bson:"end"`
	Kind   string `json:"type" bson:"type"`
	Reason string `json:"reason,omitempty" bson:"reason,omitempty"`
}

type Holiday struct {
	Date        time.Time `json:"date" bson:"date"`
	Reason      string    `json:"reason,omitempty" bson:"reason,omitempty"`
	IsRecurring bool      `json:"isRecurring" bson:"isRecurring"`
}

type Vacation struct {
	ID           string     `json:"id" bson:"id"`
	StartDate    time.Time  `json:"startDate" bson:"startDate"`
	EndDate      time.Time  `json:"endDate" bson:"endDate"`
	Reason       string     `json:"reason,omitempty" bson:"reason,omitempty"`
	Status       string     `json:"status" bson:"status"`
	ApprovedBy   string     `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	ApprovalDate *time.Time `json:"approvalDate,omitempty" bson:"approvalDate,omitempty"`
	TimeModel    `bson:",inline"`
}

// Schedule holds everything the availability engine reads for one doctor.
// WorkingHours is keyed by lowercase weekday name ("monday".."sunday"); a
// missing key means the doctor does not work that day.
type Schedule struct {
	ID              string               `json:"id" bson:"_id,omitempty"`
	DoctorID        string               `json:"doctorId" bson:"doctorId"`
	WorkingHours    map[string]*TimeSlot `json:"workingHours" bson:"workingHours"`
	Breaks          []Break              `json:"breaks" bson:"breaks"`
	Holidays        []Holiday            `json:"holidays" bson:"holidays"`
	Vacations       []Vacation           `json:"vacations" bson:"vacations"`
	SlotDurationMin int                  `json:"slotDurationMinutes" bson:"slotDurationMinutes"`
	IsActive        bool                 `json:"isActive" bson:"isActive"`
	TimeModel       `bson:",inline"`
}

func (s *Schedule) FindVacation(vacationID string) *Vacation {
	for i := range s.Vacations {
		if s.Vacations[i].ID == vacationID {
			return &s.Vacations[i]
		}
	}
	return nil
}

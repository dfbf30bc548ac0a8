package requests

type WorkingHoursSlot struct {
	Start string `json:"start" validate:"required,clock_time"`
	End   string `json:"end" validate:"required,clock_time"`
}

type UpsertWorkingHours struct {
	// Keyed by lowercase weekday name. Omitting a day removes it.
	WorkingHours        map[string]WorkingHoursSlot `json:"workingHours" validate:"required,dive"`
	SlotDurationMinutes int                         `json:"slotDurationMinutes" validate:"omitempty,gte=5,lte=240"`
}

type AddBreak struct {
	Day    string `json:"day" validate:"required,weekday"`
	Start  string `json:"start" validate:"required,clock_time"`
	End    string `json:"end" validate:"required,clock_time"`
	Type   string `json:"type" validate:"required,oneof=lunch break other"`
	Reason string `json:"reason" validate:"omitempty"`
}

type AddHoliday struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" validate:"omitempty"`
	IsRecurring bool   `json:"isRecurring"`
}

type RequestVacation struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

type ResolveVacation struct {
	Approve bool `json:"approve"`
}

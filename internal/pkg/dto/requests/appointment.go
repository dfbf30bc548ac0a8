package requests

type BookAppointment struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
	Type      string `json:"type" validate:"required,oneof=consultation follow_up emergency"`
	Reason    string `json:"reason" validate:"omitempty"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed"`
	Notes  string `json:"notes" validate:"omitempty"`
}

type CancelAppointment struct {
	Reason string `json:"reason" validate:"omitempty"`
}

package requests

type UpdatePatientProfile struct {
	FirstName   string `json:"firstName" validate:"omitempty"`
	LastName    string `json:"lastName" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     string `json:"address" validate:"omitempty"`
}

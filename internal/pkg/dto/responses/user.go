package responses

import "time"

type PatientProfile struct {
	UserID      string     `json:"userId"`
	Phone       string     `json:"phone"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Address     string     `json:"address,omitempty"`
	PhotoURL    string     `json:"photoUrl,omitempty"`
	IsVerified  bool       `json:"isVerified"`
}

package responses

import "mbote-service/internal/app/models"

type DoctorSummary struct {
	DoctorID        string                 `json:"doctorId"`
	FirstName       string                 `json:"firstName"`
	LastName        string                 `json:"lastName"`
	Specialization  string                 `json:"specialization"`
	ConsultationFee float64                `json:"consultationFee"`
	Languages       []string               `json:"languages,omitempty"`
	Location        *models.DoctorLocation `json:"location,omitempty"`
	Rating          models.DoctorRating    `json:"rating"`
	DistanceKM      *float64               `json:"distanceKm,omitempty"`
}

type DoctorDetail struct {
	DoctorSummary
	Email              string                    `json:"email,omitempty"`
	Education          []models.DoctorEducation  `json:"education,omitempty"`
	Experience         []models.DoctorExperience `json:"experience,omitempty"`
	RegistrationStatus string                    `json:"registrationStatus,omitempty"`
}

type RegisterDoctor struct {
	DoctorID string `json:"doctorId"`
	UserID   string `json:"userId"`
	Phone    string `json:"phone"`
	// Temporary credentials are delivered over SMS, never in the response.
	CredentialsSent bool `json:"credentialsSent"`
}

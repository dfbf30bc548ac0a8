package requests

type DoctorEducation struct {
	Degree         string `json:"degree" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	Year           int    `json:"year" validate:"required,gte=1900"`
	Specialization string `json:"specialization" validate:"omitempty"`
}

type DoctorLocation struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Street    string  `json:"street" validate:"omitempty"`
	City      string  `json:"city" validate:"omitempty"`
	Country   string  `json:"country" validate:"omitempty"`
}

// RegisterDoctor is an admin-only operation. The created account receives a
// generated temporary password sent over SMS.
type RegisterDoctor struct {
	Phone           string            `json:"phone" validate:"required,phone_number"`
	FirstName       string            `json:"firstName" validate:"required"`
	LastName        string            `json:"lastName" validate:"required"`
	Email           string            `json:"email" validate:"omitempty,email"`
	Specialization  string            `json:"specialization" validate:"required"`
	LicenseNumber   string            `json:"licenseNumber" validate:"required"`
	ConsultationFee float64           `json:"consultationFee" validate:"required,gt=0"`
	Languages       []string          `json:"languages" validate:"omitempty,dive,required"`
	Education       []DoctorEducation `json:"education" validate:"omitempty,dive"`
	Location        *DoctorLocation   `json:"location" validate:"omitempty"`
}

type UpdateDoctorProfile struct {
	FirstName       string            `json:"firstName" validate:"omitempty"`
	LastName        string            `json:"lastName" validate:"omitempty"`
	Email           string            `json:"email" validate:"omitempty,email"`
	Specialization  string            `json:"specialization" validate:"omitempty"`
	ConsultationFee float64           `json:"consultationFee" validate:"omitempty,gt=0"`
	Languages       []string          `json:"languages" validate:"omitempty,dive,required"`
	Education       []DoctorEducation `json:"education" validate:"omitempty,dive"`
	Location        *DoctorLocation   `json:"location" validate:"omitempty"`
}

type ResolveDoctorRegistration struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" validate:"omitempty"`
}

type SearchDoctors struct {
	Specialization string  `json:"specialization"`
	Name           string  `json:"name"`
	Language       string  `json:"language"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	MaxDistanceKM  float64 `json:"maxDistanceKm"`
}

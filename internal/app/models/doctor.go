package models

import "time"

type DoctorEducation struct {
	Degree         string `json:"degree" bson:"degree"`
	Institution    string `json:"institution" bson:"institution"`
	Year           int    `json:"year" bson:"year"`
	Specialization string `json:"specialization,omitempty" bson:"specialization,omitempty"`
}

type DoctorExperience struct {
	Position    string     `json:"position" bson:"position"`
	Hospital    string     `json:"hospital" bson:"hospital"`
	StartDate   time.Time  `json:"startDate" bson:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
}

type DoctorLocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Street    string  `json:"street,omitempty" bson:"street,omitempty"`
	City      string  `json:"city,omitempty" bson:"city,omitempty"`
	Country   string  `json:"country,omitempty" bson:"country,omitempty"`
}

type DoctorRating struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type Doctor struct {
	ID                    string             `json:"id" bson:"_id,omitempty"`
	UserID                string             `json:"userId" bson:"userId"`
	Specialization        string             `json:"specialization" bson:"specialization"`
	LicenseNumber         string             `json:"licenseNumber" bson:"licenseNumber"`
	ConsultationFee       float64            `json:"consultationFee" bson:"consultationFee"`
	Languages             []string           `json:"languages,omitempty" bson:"languages,omitempty"`
	Education             []DoctorEducation  `json:"education,omitempty" bson:"education,omitempty"`
	Experience            []DoctorExperience `json:"experience,omitempty" bson:"experience,omitempty"`
	Location              *DoctorLocation    `json:"location,omitempty" bson:"location,omitempty"`
	Rating                DoctorRating       `json:"rating" bson:"rating"`
	VerificationDocuments []string           `json:"verificationDocuments,omitempty" bson:"verificationDocuments,omitempty"`
	RegistrationStatus    string             `json:"registrationStatus" bson:"registrationStatus"`
	ApprovedBy            string             `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	ApprovalDate          *time.Time         `json:"approvalDate,omitempty" bson:"approvalDate,omitempty"`
	RejectionReason       string             `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	PasswordChanged       bool               `json:"passwordChanged" bson:"passwordChanged"`
	TimeModel             `bson:",inline"`
}

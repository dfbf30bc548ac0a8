package contracts

import (
	"context"
	"io"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.PatientProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error)
	UploadPhoto(ctx context.Context, session *models.Session, file io.Reader, size int64, fileName, contentType string) (string, error)
	DeactivateAccount(ctx context.Context, session *models.Session) error
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
}

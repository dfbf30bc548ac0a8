package contracts

import (
	"context"
	"io"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, session *models.Session, request *requests.RegisterDoctor) (*responses.RegisterDoctor, error)
	ResolveRegistration(ctx context.Context, session *models.Session, doctorID string, request *requests.ResolveDoctorRegistration) error
	GetDoctor(ctx context.Context, doctorID string) (*responses.DoctorDetail, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.DoctorDetail, error)
	UploadDocument(ctx context.Context, session *models.Session, file io.Reader, size int64, fileName, contentType string) (string, error)
	SearchDoctors(ctx context.Context, request *requests.SearchDoctors, pagination *requests.Pagination) ([]responses.DoctorSummary, int64, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindDoctorByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindDoctorByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	SearchDoctors(ctx context.Context, filter *requests.SearchDoctors, pagination *requests.Pagination) ([]models.Doctor, int64, error)
}

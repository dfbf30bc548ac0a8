package contracts

import (
	"context"
	"time"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	GetAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	ListMyAppointments(ctx context.Context, session *models.Session, status string, pagination *requests.Pagination) ([]responses.Appointment, int64, error)
	UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Appointment, error)
	FindAppointmentsByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error)
	FindAppointmentsByPatientID(ctx context.Context, patientID, status string, pagination *requests.Pagination) ([]models.Appointment, int64, error)
	FindAppointmentsByDoctorID(ctx context.Context, doctorID, status string, pagination *requests.Pagination) ([]models.Appointment, int64, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}

package contracts

import (
	"context"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error)
	GetPayment(ctx context.Context, session *models.Session, paymentID string) (*responses.Payment, error)
	ListMyPayments(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.Payment, int64, error)
	RefundPayment(ctx context.Context, session *models.Session, paymentID string, request *requests.RefundPayment) (*responses.Payment, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (string, error)
	FindPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindPaymentByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error)
	FindPaymentsByPatientID(ctx context.Context, patientID string, pagination *requests.Pagination) ([]models.Payment, int64, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
}

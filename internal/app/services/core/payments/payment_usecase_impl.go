package payments

import (
	"context"
	"fmt"
	"time"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/dto/responses"
	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	UserRepository        contracts.UserRepository
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository:     paymentRepository,
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		UserRepository:        userRepository,
		NotificationService:   notificationService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// CreatePayment charges the appointment amount through the configured
// gateway. Settlement is synchronous, so a successful call leaves the
// payment completed and the appointment marked paid.
func (uc *paymentUsecase) CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if session.Role != constvars.RolePatient || session.ProfileID == "" {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.PatientID != session.ProfileID {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	existing, err := uc.PaymentRepository.FindPaymentByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != constvars.PaymentStatusFailed {
		return nil, exceptions.ErrPaymentAlreadyExists(nil)
	}

	now := time.Now()
	payment := &models.Payment{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Amount:        appointment.PaymentAmount,
		Currency:      request.Currency,
		Method:        request.Method,
		Status:        constvars.PaymentStatusCompleted,
		TransactionID: utils.GenerateTransactionID(),
		PaymentDate:   &now,
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if _, err := uc.PaymentRepository.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	appointment.PaymentStatus = constvars.PaymentStatusCompleted
	appointment.UpdatedAt = now
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.notifyPatient(ctx, payment.PatientID, constvars.NotificationPaymentReceived,
		fmt.Sprintf("Payment of %.2f %s received for your appointment. Transaction %s.",
			payment.Amount, payment.Currency, payment.TransactionID))

	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) GetPayment(ctx context.Context, session *models.Session, paymentID string) (*responses.Payment, error) {
	payment, err := uc.findPartyPayment(ctx, session, paymentID)
	if err != nil {
		return nil, err
	}
	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) ListMyPayments(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.Payment, int64, error) {
	if session.Role != constvars.RolePatient || session.ProfileID == "" {
		return nil, 0, exceptions.ErrNotMatchRoleType(nil)
	}

	payments, total, err := uc.PaymentRepository.FindPaymentsByPatientID(ctx, session.ProfileID, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Payment, 0, len(payments))
	for i := range payments {
		result = append(result, *buildPaymentResponse(&payments[i]))
	}
	return result, total, nil
}

// RefundPayment is an admin decision, allowed only for completed payments
// inside the refund window whose appointment was cancelled.
func (uc *paymentUsecase) RefundPayment(ctx context.Context, session *models.Session, paymentID string, request *requests.RefundPayment) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.RefundPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
	)

	if session.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	payment, err := uc.PaymentRepository.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil)
	}

	now := time.Now()
	if !payment.CanBeRefunded(now) {
		return nil, exceptions.ErrPaymentNotRefundable(nil)
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, payment.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.Status != constvars.AppointmentStatusCancelled {
		return nil, exceptions.ErrPaymentNotRefundable(nil)
	}

	payment.Status = constvars.PaymentStatusRefunded
	payment.RefundDate = &now
	payment.RefundReason = request.Reason
	payment.UpdatedAt = now
	if err := uc.PaymentRepository.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}

	appointment.PaymentStatus = constvars.PaymentStatusRefunded
	appointment.UpdatedAt = now
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.notifyPatient(ctx, payment.PatientID, constvars.NotificationPaymentReceived,
		fmt.Sprintf("Refund of %.2f %s issued for transaction %s.",
			payment.Amount, payment.Currency, payment.TransactionID))

	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) findPartyPayment(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil)
	}

	if session.Role == constvars.RoleAdmin {
		return payment, nil
	}
	if session.Role == constvars.RolePatient && payment.PatientID == session.ProfileID {
		return payment, nil
	}
	if session.Role == constvars.RoleDoctor && payment.DoctorID == session.ProfileID {
		return payment, nil
	}
	return nil, exceptions.ErrPaymentNotFound(nil)
}

// notifyPatient resolves the patient's phone number and sends a
// fire-and-forget SMS. The caller is not necessarily the patient.
func (uc *paymentUsecase) notifyPatient(ctx context.Context, patientID, eventType, message string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil || patient == nil {
		uc.Log.Warn("paymentUsecase.notifyPatient patient lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	user, err := uc.UserRepository.FindUserByID(ctx, patient.UserID)
	if err != nil || user == nil {
		uc.Log.Warn("paymentUsecase.notifyPatient user lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	if err := uc.NotificationService.SendSMS(ctx, eventType, user.Phone, message); err != nil {
		uc.Log.Warn("paymentUsecase.notifyPatient failed to send SMS",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func buildPaymentResponse(payment *models.Payment) *responses.Payment {
	return &responses.Payment{
		PaymentID:     payment.ID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
		RefundDate:    payment.RefundDate,
	}
}

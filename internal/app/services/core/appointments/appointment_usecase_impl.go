package appointments

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

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	ScheduleUsecase       contracts.ScheduleUsecase
	LockerService         contracts.LockerService
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	scheduleUsecase contracts.ScheduleUsecase,
	lockerService contracts.LockerService,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		UserRepository:        userRepository,
		ScheduleUsecase:       scheduleUsecase,
		LockerService:         lockerService,
		NotificationService:   notificationService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// BookAppointment serializes on the doctor's schedule lock so two patients
// cannot claim the same slot concurrently.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if session.Role != constvars.RolePatient {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	if session.ProfileID == "" {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	if doctor.RegistrationStatus != constvars.RegistrationStatusApproved {
		return nil, exceptions.ErrDoctorNotApproved(nil)
	}

	now := time.Now()
	candidate := &models.Appointment{
		PatientID: session.ProfileID,
		DoctorID:  doctor.ID,
		Date:      utils.DateOnly(date),
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Status:    constvars.AppointmentStatusPending,
		Type:      request.Type,
		Reason:    request.Reason,
	}
	if !candidate.IsFuture(now) {
		return nil, exceptions.ErrInvalidDateRange(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyScheduleLockFormat, doctor.ID)
	lockTTL := time.Duration(uc.InternalConfig.App.ScheduleLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrScheduleLocked(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	if err := uc.checkSlot(ctx, candidate); err != nil {
		return nil, err
	}

	candidate.PaymentStatus = constvars.PaymentStatusPending
	candidate.PaymentAmount = doctor.ConsultationFee
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	if _, err := uc.AppointmentRepository.CreateAppointment(ctx, candidate); err != nil {
		return nil, err
	}

	uc.notifyParties(ctx, candidate, constvars.NotificationAppointmentCreated,
		fmt.Sprintf("New appointment on %s at %s.", request.Date, request.StartTime))

	return buildAppointmentResponse(candidate), nil
}

// checkSlot distinguishes a taken slot (conflict) from a slot outside the
// doctor's bookable hours (bad request).
func (uc *appointmentUsecase) checkSlot(ctx context.Context, candidate *models.Appointment) error {
	start, err := utils.ParseClockMinutes(candidate.StartTime)
	if err != nil {
		return exceptions.ErrCannotParseClockTime(err)
	}
	end, err := utils.ParseClockMinutes(candidate.EndTime)
	if err != nil {
		return exceptions.ErrCannotParseClockTime(err)
	}
	if start >= end {
		return exceptions.ErrInvalidTimeRange(nil)
	}

	existing, err := uc.AppointmentRepository.FindAppointmentsByDoctorAndDate(ctx, candidate.DoctorID, candidate.Date)
	if err != nil {
		return err
	}
	for _, a := range existing {
		if !a.Blocking() {
			continue
		}
		otherStart, err := utils.ParseClockMinutes(a.StartTime)
		if err != nil {
			continue
		}
		otherEnd, err := utils.ParseClockMinutes(a.EndTime)
		if err != nil {
			continue
		}
		if start < otherEnd && otherStart < end {
			return exceptions.ErrSlotAlreadyBooked(nil)
		}
	}

	available, err := uc.ScheduleUsecase.IsSlotAvailable(ctx, candidate.DoctorID, candidate.Date, candidate.StartTime, candidate.EndTime)
	if err != nil {
		return err
	}
	if !available {
		return exceptions.ErrSlotNotAvailable(nil)
	}
	return nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.findPartyAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) ListMyAppointments(ctx context.Context, session *models.Session, status string, pagination *requests.Pagination) ([]responses.Appointment, int64, error) {
	var (
		appointments []models.Appointment
		total        int64
		err          error
	)
	switch session.Role {
	case constvars.RolePatient:
		appointments, total, err = uc.AppointmentRepository.FindAppointmentsByPatientID(ctx, session.ProfileID, status, pagination)
	case constvars.RoleDoctor:
		appointments, total, err = uc.AppointmentRepository.FindAppointmentsByDoctorID(ctx, session.ProfileID, status, pagination)
	default:
		return nil, 0, exceptions.ErrNotMatchRoleType(nil)
	}
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *buildAppointmentResponse(&appointments[i]))
	}
	return result, total, nil
}

// UpdateStatus lets the doctor confirm or complete their own appointment.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.DoctorID != session.ProfileID {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if !appointment.CanTransitionTo(request.Status) {
		return nil, exceptions.ErrInputValidation(nil)
	}

	appointment.Status = request.Status
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}
	appointment.UpdatedAt = time.Now()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	eventType := constvars.NotificationAppointmentConfirmed
	message := fmt.Sprintf("Your appointment on %s at %s has been confirmed.", appointment.Date.Format(utils.DateLayout), appointment.StartTime)
	if request.Status == constvars.AppointmentStatusCompleted {
		eventType = constvars.NotificationAppointmentCompleted
		message = fmt.Sprintf("Your appointment on %s has been marked completed.", appointment.Date.Format(utils.DateLayout))
	}
	uc.notifyParties(ctx, appointment, eventType, message)

	return buildAppointmentResponse(appointment), nil
}

// CancelAppointment enforces the cancellation cutoff for patients. Doctors
// can cancel any pending or confirmed appointment of their own.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error) {
	appointment, err := uc.findPartyAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !appointment.Blocking() {
		return nil, exceptions.ErrAppointmentNotCancellable(nil)
	}
	if session.Role == constvars.RolePatient {
		cutoff := time.Duration(uc.InternalConfig.App.CancellationCutoffInHours) * time.Hour
		if appointment.StartsAt().Sub(now) <= cutoff {
			return nil, exceptions.ErrAppointmentNotCancellable(nil)
		}
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.Cancellation = &models.AppointmentCancellation{
		CancelledBy: session.Role,
		Reason:      request.Reason,
		CancelledAt: now,
	}
	appointment.UpdatedAt = now
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.notifyParties(ctx, appointment, constvars.NotificationAppointmentCancelled,
		fmt.Sprintf("Appointment on %s at %s was cancelled.", appointment.Date.Format(utils.DateLayout), appointment.StartTime))

	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) findPartyAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	switch session.Role {
	case constvars.RoleAdmin:
		return appointment, nil
	case constvars.RolePatient:
		if appointment.PatientID == session.ProfileID {
			return appointment, nil
		}
	case constvars.RoleDoctor:
		if appointment.DoctorID == session.ProfileID {
			return appointment, nil
		}
	}
	return nil, exceptions.ErrAppointmentNotFound(nil)
}

// notifyParties sends SMS to the doctor; patient contact resolution goes
// through the doctor's user document as both sides key off user IDs.
func (uc *appointmentUsecase) notifyParties(ctx context.Context, appointment *models.Appointment, eventType, message string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, appointment.DoctorID)
	if err != nil || doctor == nil {
		return
	}
	user, err := uc.UserRepository.FindUserByID(ctx, doctor.UserID)
	if err != nil || user == nil {
		return
	}
	if err := uc.NotificationService.SendSMS(ctx, eventType, user.Phone, message); err != nil {
		uc.Log.Warn("appointmentUsecase.notifyParties failed to send SMS",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Date:          appointment.Date.Format(utils.DateLayout),
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
		Status:        appointment.Status,
		Type:          appointment.Type,
		Reason:        appointment.Reason,
		Notes:         appointment.Notes,
		PaymentStatus: appointment.PaymentStatus,
		PaymentAmount: appointment.PaymentAmount,
		CreatedAt:     appointment.CreatedAt,
	}
}

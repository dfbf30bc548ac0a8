package schedules

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository  contracts.ScheduleRepository
	DoctorRepository    contracts.DoctorRepository
	UserRepository      contracts.UserRepository
	AppointmentLookup   contracts.AppointmentLookup
	LockerService       contracts.LockerService
	NotificationService contracts.NotificationService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	appointmentLookup contracts.AppointmentLookup,
	lockerService contracts.LockerService,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository:  scheduleRepository,
		DoctorRepository:    doctorRepository,
		UserRepository:      userRepository,
		AppointmentLookup:   appointmentLookup,
		LockerService:       lockerService,
		NotificationService: notificationService,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

func (uc *scheduleUsecase) GetSchedule(ctx context.Context, doctorID string) (*responses.Schedule, error) {
	schedule, err := uc.ScheduleRepository.FindScheduleByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}
	return buildScheduleResponse(schedule), nil
}

func (uc *scheduleUsecase) UpsertWorkingHours(ctx context.Context, session *models.Session, request *requests.UpsertWorkingHours) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpsertWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	doctor, err := uc.findSessionDoctor(ctx, session)
	if err != nil {
		return nil, err
	}

	workingHours := make(map[string]*models.TimeSlot, len(request.WorkingHours))
	for day, slot := range request.WorkingHours {
		workingHours[day] = &models.TimeSlot{Start: slot.Start, End: slot.End}
	}
	if err := ValidateWorkingHours(workingHours); err != nil {
		return nil, err
	}

	now := time.Now()
	schedule, err := uc.ScheduleRepository.FindScheduleByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		schedule = &models.Schedule{
			DoctorID: doctor.ID,
			IsActive: true,
		}
		schedule.CreatedAt = now
	}

	schedule.WorkingHours = workingHours
	if request.SlotDurationMinutes > 0 {
		schedule.SlotDurationMin = request.SlotDurationMinutes
	} else if schedule.SlotDurationMin == 0 {
		schedule.SlotDurationMin = uc.InternalConfig.App.DefaultSlotDurationInMinutes
	}
	schedule.UpdatedAt = now

	if schedule.ID == "" {
		if _, err := uc.ScheduleRepository.CreateSchedule(ctx, schedule); err != nil {
			return nil, err
		}
	} else if err := uc.ScheduleRepository.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return buildScheduleResponse(schedule), nil
}

func (uc *scheduleUsecase) AddBreak(ctx context.Context, session *models.Session, request *requests.AddBreak) (*responses.Schedule, error) {
	doctor, err := uc.findSessionDoctor(ctx, session)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.requireSchedule(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	newBreak := models.Break{
		Day:    request.Day,
		Start:  request.Start,
		End:    request.End,
		Kind:   request.Type,
		Reason: request.Reason,
	}
	if err := ValidateBreak(schedule, newBreak, uc.InternalConfig.App.EnforceBreakWithinWorkingHours); err != nil {
		return nil, err
	}

	schedule.Breaks = append(schedule.Breaks, newBreak)
	schedule.UpdatedAt = time.Now()
	if err := uc.ScheduleRepository.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return buildScheduleResponse(schedule), nil
}

func (uc *scheduleUsecase) RemoveBreak(ctx context.Context, session *models.Session, day, start string) (*responses.Schedule, error) {
	doctor, err := uc.findSessionDoctor(ctx, session)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.requireSchedule(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	kept := schedule.Breaks[:0]
	for _, b := range schedule.Breaks {
		if b.Day == day && b.Start == start {
			continue
		}
		kept = append(kept, b)
	}
	schedule.Breaks = kept
	schedule.UpdatedAt = time.Now()
	if err := uc.ScheduleRepository.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return buildScheduleResponse(schedule), nil
}

func (uc *scheduleUsecase) AddHoliday(ctx context.Context, session *models.Session, request *requests.AddHoliday) (*responses.Schedule, error) {
	doctor, err := uc.findSessionDoctor(ctx, session)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.requireSchedule(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	for _, h := range schedule.Holidays {
		if utils.SameDay(h.Date, date) {
			return nil, exceptions.ErrInvalidDateRange(nil)
		}
	}

	schedule.Holidays = append(schedule.Holidays, models.Holiday{
		Date:        date,
		Reason:      request.Reason,
		IsRecurring: request.IsRecurring,
	})
	schedule.UpdatedAt = time.Now()
	if err := uc.ScheduleRepository.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return buildScheduleResponse(schedule), nil
}

func (uc *scheduleUsecase) RemoveHoliday(ctx context.Context, session *models.Session, dateStr string) (*responses.Schedule, error) {
	doctor, err := uc.findSessionDoctor(ctx, session)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.requireSchedule(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	kept := schedule.Holidays[:0]
	for _, h := range schedule.Holidays {
		if utils.SameDay(h.Date, date) {
			continue
		}
		kept = append(kept, h)
	}
	schedule.Holidays = kept
	schedule.UpdatedAt = time.Now()
	if err := uc.ScheduleRepository.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return buildScheduleResponse(schedule), nil
}

// RequestVacation serializes on a per-doctor Redis lock so two concurrent
// requests cannot both pass the overlap checks.
func (uc *scheduleUsecase) RequestVacation(ctx context.Context, session *models.Session, request *requests.RequestVacation) (*responses.Vacation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.RequestVacation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	doctor, err := uc.findSessionDoctor(ctx, session)
	if err != nil {
		return nil, err
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

	schedule, err := uc.requireSchedule(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	now := time.Now()
	if err := CanRequestVacation(schedule, startDate, endDate, now); err != nil {
		return nil, err
	}

	// A vacation cannot swallow already booked patients.
	booked, err := uc.AppointmentLookup(ctx, doctor.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	for _, a := range booked {
		if a.Blocking() {
			return nil, exceptions.ErrVacationOverlapsAppointments(nil)
		}
	}

	vacation := models.Vacation{
		ID:        uuid.NewString(),
		StartDate: utils.DateOnly(startDate),
		EndDate:   utils.DateOnly(endDate),
		Reason:    request.Reason,
		Status:    constvars.VacationStatusPending,
	}
	vacation.CreatedAt = now
	vacation.UpdatedAt = now
	schedule.Vacations = append(schedule.Vacations, vacation)
	schedule.UpdatedAt = now

	if err := uc.ScheduleRepository.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	// Fire-and-forget: the request stands even if the notification fails.
	subject := fmt.Sprintf("Vacation request from doctor %s", doctor.ID)
	body := fmt.Sprintf("Doctor %s requested vacation from %s to %s. Reason: %s",
		doctor.ID, request.StartDate, request.EndDate, request.Reason)
	if err := uc.NotificationService.SendEmail(ctx, constvars.NotificationVacationRequest, uc.InternalConfig.App.AdminEmail, subject, body); err != nil {
		uc.Log.Warn("scheduleUsecase.RequestVacation failed to notify admins",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return buildVacationResponse(&vacation), nil
}

func (uc *scheduleUsecase) ResolveVacation(ctx context.Context, session *models.Session, doctorID, vacationID string, request *requests.ResolveVacation) (*responses.Vacation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ResolveVacation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if session.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyScheduleLockFormat, doctorID)
	lockTTL := time.Duration(uc.InternalConfig.App.ScheduleLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrScheduleLocked(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	schedule, err := uc.requireSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	vacation := schedule.FindVacation(vacationID)
	if vacation == nil {
		return nil, exceptions.ErrVacationNotFound(nil)
	}

	now := time.Now()
	if err := ResolveVacation(vacation, request.Approve, session.UserID, now); err != nil {
		return nil, err
	}
	schedule.UpdatedAt = now
	if err := uc.ScheduleRepository.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	uc.notifyVacationResolved(ctx, schedule.DoctorID, vacation)
	return buildVacationResponse(vacation), nil
}

func (uc *scheduleUsecase) DayAvailability(ctx context.Context, doctorID string, date time.Time) (*responses.DayAvailability, error) {
	schedule, err := uc.requireSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	day := utils.DateOnly(date)
	appointments, err := uc.AppointmentLookup(ctx, doctorID, day, day)
	if err != nil {
		return nil, err
	}

	slots, reason, err := DayAvailability(schedule, day, appointments, uc.InternalConfig.App.DefaultSlotDurationInMinutes)
	if err != nil {
		return nil, err
	}

	result := &responses.DayAvailability{
		DoctorID:  doctorID,
		Date:      day.Format(utils.DateLayout),
		Available: reason == "" && len(slots) > 0,
		Reason:    reason,
		Slots:     make([]responses.AvailableSlot, 0, len(slots)),
	}
	for _, s := range slots {
		result.Slots = append(result.Slots, responses.AvailableSlot{Start: s.Start, End: s.End})
	}
	return result, nil
}

func (uc *scheduleUsecase) IsSlotAvailable(ctx context.Context, doctorID string, date time.Time, startTime, endTime string) (bool, error) {
	schedule, err := uc.requireSchedule(ctx, doctorID)
	if err != nil {
		return false, err
	}

	day := utils.DateOnly(date)
	appointments, err := uc.AppointmentLookup(ctx, doctorID, day, day)
	if err != nil {
		return false, err
	}
	return IsSlotAvailable(schedule, day, startTime, endTime, appointments)
}

func (uc *scheduleUsecase) findSessionDoctor(ctx context.Context, session *models.Session) (*models.Doctor, error) {
	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	doctor, err := uc.DoctorRepository.FindDoctorByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	if doctor.RegistrationStatus != constvars.RegistrationStatusApproved {
		return nil, exceptions.ErrDoctorNotApproved(nil)
	}
	return doctor, nil
}

func (uc *scheduleUsecase) requireSchedule(ctx context.Context, doctorID string) (*models.Schedule, error) {
	schedule, err := uc.ScheduleRepository.FindScheduleByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}
	return schedule, nil
}

func (uc *scheduleUsecase) notifyVacationResolved(ctx context.Context, doctorID string, vacation *models.Vacation) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, doctorID)
	if err != nil || doctor == nil {
		return
	}
	user, err := uc.UserRepository.FindUserByID(ctx, doctor.UserID)
	if err != nil || user == nil {
		return
	}

	message := fmt.Sprintf("Your vacation request (%s to %s) has been %s.",
		vacation.StartDate.Format(utils.DateLayout),
		vacation.EndDate.Format(utils.DateLayout),
		vacation.Status,
	)
	if err := uc.NotificationService.SendSMS(ctx, constvars.NotificationVacationResponse, user.Phone, message); err != nil {
		uc.Log.Warn("scheduleUsecase.notifyVacationResolved failed to notify doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func buildScheduleResponse(schedule *models.Schedule) *responses.Schedule {
	return &responses.Schedule{
		DoctorID:            schedule.DoctorID,
		WorkingHours:        schedule.WorkingHours,
		Breaks:              schedule.Breaks,
		Holidays:            schedule.Holidays,
		Vacations:           schedule.Vacations,
		SlotDurationMinutes: schedule.SlotDurationMin,
	}
}

func buildVacationResponse(vacation *models.Vacation) *responses.Vacation {
	return &responses.Vacation{
		VacationID: vacation.ID,
		StartDate:  vacation.StartDate.Format(utils.DateLayout),
		EndDate:    vacation.EndDate.Format(utils.DateLayout),
		Status:     vacation.Status,
	}
}

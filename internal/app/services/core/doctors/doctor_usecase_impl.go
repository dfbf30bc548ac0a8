package doctors

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
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

type doctorUsecase struct {
	DoctorRepository    contracts.DoctorRepository
	UserRepository      contracts.UserRepository
	AdminRepository     contracts.AdminRepository
	ScheduleRepository  contracts.ScheduleRepository
	NotificationService contracts.NotificationService
	Storage             contracts.Storage
	InternalConfig      *config.InternalConfig
	DriverConfig        *config.DriverConfig
	Log                 *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	adminRepository contracts.AdminRepository,
	scheduleRepository contracts.ScheduleRepository,
	notificationService contracts.NotificationService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:    doctorRepository,
		UserRepository:      userRepository,
		AdminRepository:     adminRepository,
		ScheduleRepository:  scheduleRepository,
		NotificationService: notificationService,
		Storage:             storage,
		InternalConfig:      internalConfig,
		DriverConfig:        driverConfig,
		Log:                 logger,
	}
}

// RegisterDoctor creates the account with a generated temporary password and
// a pending registration awaiting admin approval. Credentials go out over SMS.
func (uc *doctorUsecase) RegisterDoctor(ctx context.Context, session *models.Session, request *requests.RegisterDoctor) (*responses.RegisterDoctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.RegisterDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if session.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	utils.SanitizeRegisterDoctorRequest(request)
	phone, err := utils.FormatE164(request.Phone)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existingUser, err := uc.UserRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrPhoneNumberAlreadyRegistered(nil)
	}

	existingDoctor, err := uc.DoctorRepository.FindDoctorByLicenseNumber(ctx, request.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if existingDoctor != nil {
		return nil, exceptions.ErrLicenseAlreadyRegistered(nil)
	}

	temporaryPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	hashedPassword, err := utils.HashPassword(temporaryPassword)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Phone:     phone,
		Password:  hashedPassword,
		Role:      constvars.RoleDoctor,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		// Admin-created accounts skip phone verification.
		IsVerified: true,
		IsActive:   true,
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		UserID:             userID,
		Specialization:     request.Specialization,
		LicenseNumber:      request.LicenseNumber,
		ConsultationFee:    request.ConsultationFee,
		Languages:          request.Languages,
		RegistrationStatus: constvars.RegistrationStatusPending,
	}
	for _, e := range request.Education {
		doctor.Education = append(doctor.Education, models.DoctorEducation{
			Degree:         e.Degree,
			Institution:    e.Institution,
			Year:           e.Year,
			Specialization: e.Specialization,
		})
	}
	if request.Location != nil {
		doctor.Location = &models.DoctorLocation{
			Latitude:  request.Location.Latitude,
			Longitude: request.Location.Longitude,
			Street:    request.Location.Street,
			City:      request.Location.City,
			Country:   request.Location.Country,
		}
	}
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	credentialsSent := true
	message := fmt.Sprintf("Welcome Dr. %s. Your account is pending approval. Temporary password: %s. Change it after your first login.",
		request.LastName, temporaryPassword)
	if err := uc.NotificationService.SendSMS(ctx, constvars.NotificationDoctorAccountCreation, phone, message); err != nil {
		uc.Log.Warn("doctorUsecase.RegisterDoctor failed to send credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		credentialsSent = false
	}

	uc.recordAdminActivity(ctx, session, "register_doctor", doctorID)

	return &responses.RegisterDoctor{
		DoctorID:        doctorID,
		UserID:          userID,
		Phone:           phone,
		CredentialsSent: credentialsSent,
	}, nil
}

// ResolveRegistration approves or rejects a pending doctor. Approval creates
// an empty active schedule so the doctor can start filling working hours.
func (uc *doctorUsecase) ResolveRegistration(ctx context.Context, session *models.Session, doctorID string, request *requests.ResolveDoctorRegistration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ResolveRegistration called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if session.Role != constvars.RoleAdmin {
		return exceptions.ErrNotMatchRoleType(nil)
	}

	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}
	if doctor.RegistrationStatus != constvars.RegistrationStatusPending {
		return exceptions.ErrInputValidation(nil)
	}

	now := time.Now()
	if request.Approve {
		doctor.RegistrationStatus = constvars.RegistrationStatusApproved
		doctor.ApprovedBy = session.UserID
		doctor.ApprovalDate = &now
	} else {
		doctor.RegistrationStatus = constvars.RegistrationStatusRejected
		doctor.RejectionReason = request.Reason
	}
	doctor.UpdatedAt = now
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return err
	}

	if request.Approve {
		schedule := &models.Schedule{
			DoctorID:        doctor.ID,
			WorkingHours:    map[string]*models.TimeSlot{},
			SlotDurationMin: uc.InternalConfig.App.DefaultSlotDurationInMinutes,
			IsActive:        true,
		}
		schedule.CreatedAt = now
		schedule.UpdatedAt = now
		if _, err := uc.ScheduleRepository.CreateSchedule(ctx, schedule); err != nil {
			return err
		}
	}

	uc.notifyRegistrationResolved(ctx, doctor, request)
	uc.recordAdminActivity(ctx, session, "resolve_doctor_registration", doctorID)
	return nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*responses.DoctorDetail, error) {
	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	user, err := uc.UserRepository.FindUserByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return buildDoctorDetail(doctor, user), nil
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.DoctorDetail, error) {
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
	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	now := time.Now()
	if request.FirstName != "" {
		user.FirstName = request.FirstName
	}
	if request.LastName != "" {
		user.LastName = request.LastName
	}
	if request.Email != "" {
		user.Email = request.Email
	}
	user.UpdatedAt = now
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.ConsultationFee > 0 {
		doctor.ConsultationFee = request.ConsultationFee
	}
	if len(request.Languages) > 0 {
		doctor.Languages = request.Languages
	}
	if len(request.Education) > 0 {
		doctor.Education = doctor.Education[:0]
		for _, e := range request.Education {
			doctor.Education = append(doctor.Education, models.DoctorEducation{
				Degree:         e.Degree,
				Institution:    e.Institution,
				Year:           e.Year,
				Specialization: e.Specialization,
			})
		}
	}
	if request.Location != nil {
		doctor.Location = &models.DoctorLocation{
			Latitude:  request.Location.Latitude,
			Longitude: request.Location.Longitude,
			Street:    request.Location.Street,
			City:      request.Location.City,
			Country:   request.Location.Country,
		}
	}
	doctor.UpdatedAt = now
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return buildDoctorDetail(doctor, user), nil
}

// UploadDocument stores a verification document (license scan, diploma) for
// the doctor's registration review and returns a presigned URL.
func (uc *doctorUsecase) UploadDocument(ctx context.Context, session *models.Session, file io.Reader, size int64, fileName, contentType string) (string, error) {
	if session.Role != constvars.RoleDoctor {
		return "", exceptions.ErrNotMatchRoleType(nil)
	}
	doctor, err := uc.DoctorRepository.FindDoctorByUserID(ctx, session.UserID)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return "", exceptions.ErrDoctorNotExist(nil)
	}

	maxSize := uc.InternalConfig.App.DocumentMaxUploadSizeInMB * 1024 * 1024
	if size > maxSize {
		return "", exceptions.ErrInputValidation(nil)
	}

	objectName := utils.GenerateFileName("verification", doctor.ID, filepath.Ext(fileName))
	bucket := uc.DriverConfig.Minio.BucketName
	if _, err := uc.Storage.UploadFile(ctx, file, size, objectName, contentType, bucket); err != nil {
		return "", err
	}

	doctor.VerificationDocuments = append(doctor.VerificationDocuments, objectName)
	doctor.UpdatedAt = time.Now()
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return "", err
	}

	expiry := time.Duration(uc.InternalConfig.App.PresignedUrlObjectExpiryInHours) * time.Hour
	return uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectName, expiry)
}

// SearchDoctors filters in Mongo, then applies name and distance filters in
// memory since names live on the user document and locations are plain
// coordinates. When an in-memory filter is active the Mongo query runs
// unpaginated and the page is cut after filtering, so the reported total
// counts actual matches.
func (uc *doctorUsecase) SearchDoctors(ctx context.Context, request *requests.SearchDoctors, pagination *requests.Pagination) ([]responses.DoctorSummary, int64, error) {
	inMemoryFilter := request.Name != "" || request.MaxDistanceKM > 0

	repoPagination := pagination
	if inMemoryFilter {
		repoPagination = nil
	}
	doctors, total, err := uc.DoctorRepository.SearchDoctors(ctx, request, repoPagination)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]responses.DoctorSummary, 0, len(doctors))
	for i := range doctors {
		doctor := &doctors[i]
		user, err := uc.UserRepository.FindUserByID(ctx, doctor.UserID)
		if err != nil || user == nil {
			continue
		}
		if request.Name != "" && !matchesName(user, request.Name) {
			continue
		}

		summary := buildDoctorSummary(doctor, user)
		if request.MaxDistanceKM > 0 {
			if doctor.Location == nil {
				continue
			}
			distance := utils.HaversineKM(request.Latitude, request.Longitude, doctor.Location.Latitude, doctor.Location.Longitude)
			if distance > request.MaxDistanceKM {
				continue
			}
			summary.DistanceKM = &distance
		}
		summaries = append(summaries, summary)
	}

	if inMemoryFilter {
		total = int64(len(summaries))
		summaries = pageOf(summaries, pagination)
	}
	return summaries, total, nil
}

func pageOf(summaries []responses.DoctorSummary, pagination *requests.Pagination) []responses.DoctorSummary {
	start := (pagination.Page - 1) * pagination.PageSize
	if start >= len(summaries) {
		return []responses.DoctorSummary{}
	}
	end := start + pagination.PageSize
	if end > len(summaries) {
		end = len(summaries)
	}
	return summaries[start:end]
}

func matchesName(user *models.User, name string) bool {
	return utils.ContainsFold(user.FirstName, name) || utils.ContainsFold(user.LastName, name)
}

func (uc *doctorUsecase) notifyRegistrationResolved(ctx context.Context, doctor *models.Doctor, request *requests.ResolveDoctorRegistration) {
	user, err := uc.UserRepository.FindUserByID(ctx, doctor.UserID)
	if err != nil || user == nil {
		return
	}
	var message string
	if request.Approve {
		message = "Your doctor registration has been approved. You can now set up your schedule."
	} else {
		message = fmt.Sprintf("Your doctor registration was rejected. Reason: %s", request.Reason)
	}
	if err := uc.NotificationService.SendSMS(ctx, constvars.NotificationDoctorAccountCreation, user.Phone, message); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("doctorUsecase.notifyRegistrationResolved failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *doctorUsecase) recordAdminActivity(ctx context.Context, session *models.Session, action, details string) {
	admin, err := uc.AdminRepository.FindAdminByUserID(ctx, session.UserID)
	if err != nil || admin == nil {
		return
	}
	_ = uc.AdminRepository.AppendActivity(ctx, admin.ID, models.AdminActivity{
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
}

func buildDoctorSummary(doctor *models.Doctor, user *models.User) responses.DoctorSummary {
	return responses.DoctorSummary{
		DoctorID:        doctor.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Specialization:  doctor.Specialization,
		ConsultationFee: doctor.ConsultationFee,
		Languages:       doctor.Languages,
		Location:        doctor.Location,
		Rating:          doctor.Rating,
	}
}

func buildDoctorDetail(doctor *models.Doctor, user *models.User) *responses.DoctorDetail {
	return &responses.DoctorDetail{
		DoctorSummary:      buildDoctorSummary(doctor, user),
		Email:              user.Email,
		Education:          doctor.Education,
		Experience:         doctor.Experience,
		RegistrationStatus: doctor.RegistrationStatus,
	}
}

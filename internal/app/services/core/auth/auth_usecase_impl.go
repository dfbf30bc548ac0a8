package auth

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

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository      contracts.UserRepository
	PatientRepository   contracts.PatientRepository
	DoctorRepository    contracts.DoctorRepository
	RedisRepository     contracts.RedisRepository
	OTPService          contracts.OTPService
	NotificationService contracts.NotificationService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	otpService contracts.OTPService,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:      userRepository,
		PatientRepository:   patientRepository,
		DoctorRepository:    doctorRepository,
		RedisRepository:     redisRepository,
		OTPService:          otpService,
		NotificationService: notificationService,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeRegisterPatientRequest(request)
	phone, err := utils.FormatE164(request.Phone)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.UserRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPhoneNumberAlreadyRegistered(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Phone:     phone,
		Password:  hashedPassword,
		Role:      constvars.RolePatient,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		IsActive:  true,
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{UserID: userID}
	patient.CreatedAt = now
	patient.UpdatedAt = now
	if _, err := uc.PatientRepository.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	// Registration succeeds even when the OTP dispatch fails; the client can
	// ask for a resend.
	otpSent := true
	if err := uc.OTPService.Issue(ctx, phone); err != nil {
		uc.Log.Warn("authUsecase.RegisterPatient failed to issue OTP",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		otpSent = false
	}

	return &responses.Register{
		UserID:  userID,
		Phone:   phone,
		OTPSent: otpSent,
	}, nil
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error {
	utils.SanitizeVerifyOTPRequest(request)
	phone, err := utils.FormatE164(request.Phone)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	if err := uc.OTPService.Verify(ctx, phone, request.OTP); err != nil {
		return err
	}

	user.IsVerified = true
	user.UpdatedAt = time.Now()
	return uc.UserRepository.UpdateUser(ctx, user)
}

func (uc *authUsecase) ResendOTP(ctx context.Context, request *requests.ResendOTP) error {
	phone, err := utils.FormatE164(request.Phone)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}
	return uc.OTPService.Issue(ctx, phone)
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeLoginRequest(request)
	phone, err := utils.FormatE164(request.Phone)
	if err != nil {
		return nil, exceptions.ErrInvalidPhoneOrPassword(err)
	}

	user, err := uc.UserRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidPhoneOrPassword(nil)
	}
	if !user.IsActive {
		return nil, exceptions.ErrAccountDeactivated(nil)
	}
	if !user.IsVerified {
		return nil, exceptions.ErrAccountNotVerified(nil)
	}

	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		Phone:     user.Phone,
	}

	mustChangePassword := false
	if user.Role == constvars.RolePatient {
		patient, err := uc.PatientRepository.FindPatientByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			session.ProfileID = patient.ID
		}
	}
	if user.Role == constvars.RoleDoctor {
		doctor, err := uc.DoctorRepository.FindDoctorByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			session.ProfileID = doctor.ID
			mustChangePassword = !doctor.PasswordChanged
		}
	}

	sessionTTL := time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	if err := uc.RedisRepository.Set(ctx, sessionKey, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Warn("authUsecase.Login failed to record last login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.Login{
		Token:              token,
		UserID:             user.ID,
		Role:               user.Role,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		MustChangePassword: mustChangePassword,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}

func (uc *authUsecase) ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error {
	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}
	if !utils.CheckPasswordHash(request.CurrentPassword, user.Password) {
		return exceptions.ErrCurrentPasswordIncorrect(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.Password = hashedPassword
	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	// Doctors on a temporary password clear the flag on first change.
	if user.Role == constvars.RoleDoctor {
		doctor, err := uc.DoctorRepository.FindDoctorByUserID(ctx, user.ID)
		if err == nil && doctor != nil && !doctor.PasswordChanged {
			doctor.PasswordChanged = true
			doctor.UpdatedAt = time.Now()
			if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
				return err
			}
		}
	}

	if user.Email != "" {
		if err := uc.NotificationService.SendEmail(ctx, constvars.NotificationPasswordChanged, user.Email,
			"Your password was changed",
			"Your account password was just changed. Contact support if this was not you.",
		); err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Warn("authUsecase.ChangePassword failed to send notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	phone, err := utils.FormatE164(request.Phone)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}
	return uc.OTPService.Issue(ctx, phone)
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	phone, err := utils.FormatE164(request.Phone)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	if err := uc.OTPService.Verify(ctx, phone, request.OTP); err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.Password = hashedPassword
	user.UpdatedAt = time.Now()
	return uc.UserRepository.UpdateUser(ctx, user)
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	raw, err := uc.RedisRepository.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

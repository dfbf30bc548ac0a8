package patients

import (
	"context"
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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	UserRepository    contracts.UserRepository
	RedisRepository   contracts.RedisRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	DriverConfig      *config.DriverConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		UserRepository:    userRepository,
		RedisRepository:   redisRepository,
		Storage:           storage,
		InternalConfig:    internalConfig,
		DriverConfig:      driverConfig,
		Log:               logger,
	}
}

func (uc *patientUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.PatientProfile, error) {
	user, patient, err := uc.findSessionPatient(ctx, session)
	if err != nil {
		return nil, err
	}
	return uc.buildProfileResponse(ctx, user, patient), nil
}

func (uc *patientUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	utils.SanitizeUpdatePatientProfileRequest(request)
	user, patient, err := uc.findSessionPatient(ctx, session)
	if err != nil {
		return nil, err
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

	if request.DateOfBirth != "" {
		dob, err := utils.ParseDate(request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		patient.DateOfBirth = &dob
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}
	if request.Address != "" {
		patient.Address = request.Address
	}
	patient.IsProfileComplete = patient.DateOfBirth != nil && patient.Gender != "" && patient.Address != ""
	patient.UpdatedAt = now
	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	return uc.buildProfileResponse(ctx, user, patient), nil
}

func (uc *patientUsecase) UploadPhoto(ctx context.Context, session *models.Session, file io.Reader, size int64, fileName, contentType string) (string, error) {
	_, patient, err := uc.findSessionPatient(ctx, session)
	if err != nil {
		return "", err
	}

	maxSize := uc.InternalConfig.App.DocumentMaxUploadSizeInMB * 1024 * 1024
	if size > maxSize {
		return "", exceptions.ErrInputValidation(nil)
	}

	objectName := utils.GenerateFileName("profile", patient.ID, filepath.Ext(fileName))
	bucket := uc.DriverConfig.Minio.BucketName
	if _, err := uc.Storage.UploadFile(ctx, file, size, objectName, contentType, bucket); err != nil {
		return "", err
	}

	patient.PhotoObjectName = objectName
	patient.UpdatedAt = time.Now()
	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return "", err
	}

	expiry := time.Duration(uc.InternalConfig.App.PresignedUrlObjectExpiryInHours) * time.Hour
	return uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectName, expiry)
}

func (uc *patientUsecase) DeactivateAccount(ctx context.Context, session *models.Session) error {
	user, _, err := uc.findSessionPatient(ctx, session)
	if err != nil {
		return err
	}

	now := time.Now()
	user.IsActive = false
	user.UpdatedAt = now
	user.DeletedAt = &now
	return uc.UserRepository.UpdateUser(ctx, user)
}

func (uc *patientUsecase) findSessionPatient(ctx context.Context, session *models.Session) (*models.User, *models.Patient, error) {
	if session.Role != constvars.RolePatient {
		return nil, nil, exceptions.ErrNotMatchRoleType(nil)
	}
	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, exceptions.ErrUserNotExist(nil)
	}
	patient, err := uc.PatientRepository.FindPatientByUserID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, exceptions.ErrPatientNotExist(nil)
	}
	return user, patient, nil
}

func (uc *patientUsecase) buildProfileResponse(ctx context.Context, user *models.User, patient *models.Patient) *responses.PatientProfile {
	profile := &responses.PatientProfile{
		UserID:      user.ID,
		Phone:       user.Phone,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		DateOfBirth: patient.DateOfBirth,
		Gender:      patient.Gender,
		Address:     patient.Address,
		IsVerified:  user.IsVerified,
	}
	if patient.PhotoObjectName != "" {
		expiry := time.Duration(uc.InternalConfig.App.PresignedUrlObjectExpiryInHours) * time.Hour
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, patient.PhotoObjectName, expiry)
		if err == nil {
			profile.PhotoURL = url
		}
	}
	return profile
}

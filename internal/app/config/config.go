package config

import (
	"mbote-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mbote"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "mbote-documents"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                             utils.GetEnvString("APP_ENV", "development"),
			Port:                            utils.GetEnvString("APP_PORT", ":8080"),
			Version:                         utils.GetEnvString("APP_VERSION", "v1"),
			Address:                         utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                        utils.GetEnvString("APP_TIMEZONE", "Africa/Kinshasa"),
			EndpointPrefix:                  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                     utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:       utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte:      utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			RabbitMQSMSQueue:                utils.GetEnvString("APP_RABBITMQ_SMS_QUEUE", "mbote.sms"),
			RabbitMQMailerQueue:             utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mbote.mailer"),
			AdminEmail:                      utils.GetEnvString("APP_ADMIN_EMAIL", "admin@mbote.cd"),
			OTPExpiredTimeInMinutes:         utils.GetEnvInt("APP_OTP_EXPIRED_TIME_IN_MINUTE", 10),
			OTPMaxIssuesPerHour:             utils.GetEnvInt("APP_OTP_MAX_ISSUES_PER_HOUR", 5),
			SessionExpiredTimeInHours:       utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			DefaultSlotDurationInMinutes:    utils.GetEnvInt("APP_DEFAULT_SLOT_DURATION_IN_MINUTES", 30),
			CancellationCutoffInHours:       utils.GetEnvInt("APP_CANCELLATION_CUTOFF_IN_HOURS", 24),
			ScheduleLockTTLInSeconds:        utils.GetEnvInt("APP_SCHEDULE_LOCK_TTL_IN_SECONDS", 15),
			EnforceBreakWithinWorkingHours:  utils.GetEnvBool("APP_ENFORCE_BREAK_WITHIN_WORKING_HOURS", true),
			DocumentMaxUploadSizeInMB:       utils.GetEnvInt64("APP_DOCUMENT_UPLOAD_MAX_SIZE_IN_MB", 5),
			PresignedUrlObjectExpiryInHours: utils.GetEnvInt("APP_PRESIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 1),
			InitialAdminPhone:               utils.GetEnvString("APP_INITIAL_ADMIN_PHONE", ""),
			InitialAdminPassword:            utils.GetEnvString("APP_INITIAL_ADMIN_PASSWORD", ""),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		SMS: SMS{
			SenderName: utils.GetEnvString("SMS_SENDER_NAME", "MBOTE"),
		},
	}
}

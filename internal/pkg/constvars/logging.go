package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingUserIDKey         = "user_id"
	LoggingPhoneKey          = "phone"
	LoggingDateKey           = "date"
	LoggingQueueNameKey      = "queue_name"
	LoggingRedisKey          = "redis_key"
	LoggingLockKey           = "lock_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingPaymentIDKey      = "payment_id"
)

package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"oneof":        "must be one of [%s]",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"numeric":      "must be a number",
	"datetime":     "must be a valid date (%s)",
	"password":     "must be at least 6 characters long",
	"phone_number": "must be a valid international phone number (+XXX...)",
	"clock_time":   "must be a valid 24h time (HH:MM)",
	"weekday":      "must be a lowercase english day name (monday..sunday)",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gte":      true,
	"lte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input"
	ErrClientServerLongRespond             = "server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidPhoneOrPassword        = "phone number or password is incorrect"
	ErrClientAccountDeactivated            = "your account has been deactivated, please contact the administrator"
	ErrClientAccountNotVerified            = "please verify your phone number with the OTP code before logging in"
	ErrClientPhoneAlreadyRegistered        = "phone number already registered"
	ErrClientLicenseAlreadyRegistered      = "license number already registered"
	ErrClientOTPExpiredOrInvalid           = "verification code is invalid or has expired"
	ErrClientOTPTooManyRequests            = "too many verification codes requested, please wait before retrying"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientScheduleNotFound              = "schedule not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientPaymentNotFound               = "payment not found"
	ErrClientVacationNotFound              = "vacation request not found"
	ErrClientSlotAlreadyBooked             = "this time slot is already booked"
	ErrClientSlotNotAvailable              = "the doctor is not available at the requested time"
	ErrClientInvalidTimeRange              = "start time must be before end time"
	ErrClientInvalidDateRange              = "end date must not be before start date"
	ErrClientBreakOutsideWorkingHours      = "break must fall within the working hours of that day"
	ErrClientVacationOverlapsAppointments  = "appointments exist during the requested vacation period"
	ErrClientVacationAlreadyResolved       = "this vacation request has already been resolved"
	ErrClientScheduleLocked                = "the schedule is being modified, please retry"
	ErrClientAppointmentNotCancellable     = "the appointment can no longer be cancelled"
	ErrClientPaymentAlreadyExists          = "a payment already exists for this appointment"
	ErrClientPaymentNotRefundable          = "this payment cannot be refunded"
	ErrClientPaymentFailed                 = "the payment failed, please try again"
	ErrClientCurrentPasswordIncorrect      = "current password is incorrect"
	ErrClientDoctorNotApproved             = "this doctor account has not been approved yet"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON              = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON            = "Failed to marshal JSON"
	ErrDevCannotParseDate              = "Failed to parse date"
	ErrDevCannotParseClockTime         = "Failed to parse HH:MM clock time"
	ErrDevValidationFailed             = "Request validation failed"
	ErrDevServerDeadlineExceeded       = "Server deadline exceeded"
	ErrDevFailedToHashPassword         = "Failed to hash password with bcrypt"
	ErrDevInvalidCredentials           = "Invalid credentials supplied"
	ErrDevAccountDeactivated           = "Account is marked inactive"
	ErrDevAccountNotVerified           = "Account phone is not OTP-verified"
	ErrDevAuthTokenMissing             = "Authorization token missing from header"
	ErrDevAuthTokenInvalid             = "Authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired    = "Authorization token invalid or expired"
	ErrDevAuthGenerateToken            = "Failed to generate JWT"
	ErrDevAuthSigningMethod            = "Unexpected JWT signing method"
	ErrDevAuthInvalidSession           = "Session not found in Redis"
	ErrDevRoleTypeDoesntMatch          = "User role does not allow this operation"
	ErrDevMissingRequestID             = "Request ID not found in context"
	ErrDevMissingSessionData           = "Session data not found in context"
	ErrDevUserNotExists                = "User does not exist"
	ErrDevDoctorNotExists              = "Doctor does not exist"
	ErrDevPatientNotExists             = "Patient does not exist"
	ErrDevScheduleNotExists            = "Doctor schedule does not exist"
	ErrDevAppointmentNotExists         = "Appointment does not exist"
	ErrDevPaymentNotExists             = "Payment does not exist"
	ErrDevVacationNotExists            = "Vacation entry does not exist on schedule"
	ErrDevPhoneAlreadyRegistered       = "Phone number already registered"
	ErrDevLicenseAlreadyRegistered     = "Doctor license number already registered"
	ErrDevOTPExpiredOrInvalid          = "OTP missing, expired, or mismatched"
	ErrDevOTPRateLimited               = "OTP resend rate limit hit"
	ErrDevInvalidTimeRange             = "Interval start is not strictly before end"
	ErrDevInvalidDateRange             = "Range end date precedes start date"
	ErrDevBreakOutsideWorkingHours     = "Break interval exceeds working hours bounds"
	ErrDevVacationOverlapsAppointments = "Pending/confirmed appointments found in vacation range"
	ErrDevVacationAlreadyResolved      = "Vacation status is terminal, cannot re-resolve"
	ErrDevScheduleLockNotAcquired      = "Failed to acquire schedule mutation lock"
	ErrDevSlotAlreadyBooked            = "Conflicting appointment exists for the slot"
	ErrDevSlotNotAvailable             = "Requested slot rejected by availability engine"
	ErrDevAppointmentNotCancellable    = "Appointment is terminal or within the cancellation cutoff"
	ErrDevPaymentAlreadyExists         = "Payment document already exists for appointment"
	ErrDevPaymentNotRefundable         = "Payment is not in a refundable state"
	ErrDevPaymentGatewayFailed         = "Payment gateway processing failed"
	ErrDevDoctorNotApproved            = "Doctor registration is not approved"

	ErrDevDBFailedToFindDocument     = "MongoDB: failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB: failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB: failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB: failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB: failed to iterate documents"
	ErrDevDBStringNotObjectID        = "MongoDB: string is not a valid ObjectID"

	ErrDevRedisFailedToSet       = "Redis: failed to set key"
	ErrDevRedisFailedToGet       = "Redis: failed to get key"
	ErrDevRedisFailedToDelete    = "Redis: failed to delete key"
	ErrDevRedisFailedToIncrement = "Redis: failed to increment key"

	ErrDevRabbitMQFailedToPublish = "RabbitMQ: failed to publish message"
	ErrDevSMTPFailedToSend        = "SMTP: failed to send email to host %s"
	ErrDevMinioFailedToPutObject  = "Minio: failed to put object into bucket %s"
	ErrDevMinioFailedToGetObject  = "Minio: failed to get object from bucket %s"
	ErrDevMinioFailedToDeleteObject = "Minio: failed to delete object from bucket %s"
)

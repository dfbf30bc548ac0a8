package constvars

// Notification event types carried on the RabbitMQ queues.
const (
	NotificationPatientAccountCreation = "PATIENT_ACCOUNT_CREATION"
	NotificationPatientOTPVerification = "PATIENT_OTP_VERIFICATION"
	NotificationDoctorAccountCreation  = "DOCTOR_ACCOUNT_CREATION"
	NotificationAdminAccountCreation   = "ADMIN_ACCOUNT_CREATION"
	NotificationAdminOTPVerification   = "ADMIN_OTP_VERIFICATION"
	NotificationPasswordChanged        = "PASSWORD_CHANGED"
	NotificationAppointmentCreated     = "APPOINTMENT_CREATED"
	NotificationAppointmentConfirmed   = "APPOINTMENT_CONFIRMED"
	NotificationAppointmentCancelled   = "APPOINTMENT_CANCELLED"
	NotificationAppointmentCompleted   = "APPOINTMENT_COMPLETED"
	NotificationPaymentReceived        = "PAYMENT_RECEIVED"
	NotificationPaymentFailed          = "PAYMENT_FAILED"
	NotificationVacationRequest        = "VACATION_REQUEST"
	NotificationVacationResponse       = "VACATION_RESPONSE"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)

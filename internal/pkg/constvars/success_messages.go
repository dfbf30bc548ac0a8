package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	PasswordChangeSuccess = "password changed successfully"
	OTPSentSuccess        = "verification code sent"
	OTPVerifiedSuccess    = "phone number verified successfully"

	// Account messages
	PatientRegisteredSuccess     = "patient registered successfully, please verify your phone number"
	PatientProfileUpdatedSuccess = "patient profile updated successfully"
	PatientDeactivatedSuccess    = "patient account deactivated"
	DoctorCreatedSuccess         = "doctor account created successfully"
	DoctorApprovedSuccess        = "doctor registration approved"
	DoctorRejectedSuccess        = "doctor registration rejected"
	DoctorLocationUpdatedSuccess = "doctor location updated successfully"
	DoctorProfileUpdatedSuccess  = "doctor profile updated successfully"
	AdminCreatedSuccess          = "admin account created successfully, please verify your phone number"
	GetProfileSuccess            = "get profile successfully"
	GetDoctorsSuccess            = "get doctors successfully"

	// Schedule messages
	ScheduleSavedSuccess      = "schedule saved successfully"
	GetScheduleSuccess        = "get schedule successfully"
	GetAvailabilitySuccess    = "get availability successfully"
	BreakAddedSuccess         = "break added successfully"
	HolidayAddedSuccess       = "holiday added successfully"
	WorkingHoursSavedSuccess  = "working hours saved successfully"
	VacationRequestedSuccess  = "vacation requested successfully"
	VacationResolvedSuccess   = "vacation request resolved"
	GetAppointmentsSuccess    = "get appointments successfully"
	AppointmentCreatedSuccess = "appointment created successfully"
	AppointmentConfirmed      = "appointment confirmed successfully"
	AppointmentCancelled      = "appointment cancelled successfully"
	AppointmentCompleted      = "appointment marked as completed"

	// Payment messages
	PaymentCreatedSuccess   = "payment recorded successfully"
	PaymentRefundedSuccess  = "payment refunded successfully"
	GetPaymentSuccess       = "get payment successfully"
	GetPaymentsSuccess      = "get payment history successfully"
	DocumentUploadedSuccess = "document uploaded successfully"
)

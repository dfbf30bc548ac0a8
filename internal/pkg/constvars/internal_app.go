package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MBOTE_SVC_"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// AdminPermissionAll grants every admin capability. Finer grained
// permissions are matched against Admin.Permissions entries.
const (
	AdminPermissionAll = "all"
)

const (
	OTP_LENGTH = 6
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Weekday keys used by the schedule working-hours map, matching the storage
// format of the schedule documents (lowercase english day names).
const (
	WeekdayMonday    = "monday"
	WeekdayTuesday   = "tuesday"
	WeekdayWednesday = "wednesday"
	WeekdayThursday  = "thursday"
	WeekdayFriday    = "friday"
	WeekdaySaturday  = "saturday"
	WeekdaySunday    = "sunday"
)

// Appointment lifecycle.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	AppointmentTypeConsultation = "consultation"
	AppointmentTypeFollowUp     = "follow_up"
	AppointmentTypeEmergency    = "emergency"
)

// Vacation lifecycle. Pending is the only non-terminal state.
const (
	VacationStatusPending  = "pending"
	VacationStatusApproved = "approved"
	VacationStatusRejected = "rejected"
)

// Doctor registration lifecycle.
const (
	RegistrationStatusPending  = "pending"
	RegistrationStatusApproved = "approved"
	RegistrationStatusRejected = "rejected"
)

const (
	BreakKindLunch = "lunch"
	BreakKindBreak = "break"
	BreakKindOther = "other"
)

// Payment lifecycle.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

const (
	PaymentRefundWindowInDays = 30
)

const (
	PaymentMethodMobileMoney  = "mobile_money"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
)

const (
	CurrencyUSD = "USD"
	CurrencyCDF = "CDF"
)

package requests

type RegisterPatient struct {
	Phone     string `json:"phone" validate:"required,phone_number"`
	Password  string `json:"password" validate:"required,password"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type Login struct {
	Phone    string `json:"phone" validate:"required,phone_number"`
	Password string `json:"password" validate:"required"`
}

type VerifyOTP struct {
	Phone string `json:"phone" validate:"required,phone_number"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ResendOTP struct {
	Phone string `json:"phone" validate:"required,phone_number"`
}

type ChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,password"`
}

type ForgotPassword struct {
	Phone string `json:"phone" validate:"required,phone_number"`
}

type ResetPassword struct {
	Phone       string `json:"phone" validate:"required,phone_number"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,password"`
}

package responses

type Register struct {
	UserID string `json:"userId"`
	Phone  string `json:"phone"`
	// OTPSent is false when the SMS broker rejected the publish; the client
	// should offer a resend.
	OTPSent bool `json:"otpSent"`
}

type Login struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// MustChangePassword flags doctors still on their temporary password.
	MustChangePassword bool `json:"mustChangePassword,omitempty"`
}

package requests

// SendSMS is the payload published to the SMS queue.
type SendSMS struct {
	Type    string `json:"type"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendEmail is the payload published to the email queue.
type SendEmail struct {
	Type    string `json:"type"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

package models

// Session is the payload stored in Redis under the session ID carried by the
// JWT. Handlers read it from the request context after authentication.
type Session struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	ProfileID string `json:"profileId,omitempty"`
}

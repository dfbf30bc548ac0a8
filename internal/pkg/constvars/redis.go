package constvars

const (
	RedisKeyOTPFormat          = "OTP:%s"
	RedisKeyOTPIssuesFormat    = "OTP:ISSUES:%s"
	RedisKeySessionFormat      = "SESSION:%s"
	RedisKeyScheduleLockFormat = "LOCK:SCHEDULE:%s"
)

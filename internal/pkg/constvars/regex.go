package constvars

const (
	RegexEmail              = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNumeric            = `^\d+$`
	RegexDateYYYYMMDD       = `^\d{4}-\d{2}-\d{2}$`
	RegexClockHHMM          = `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`
	RegexPhoneNumberGeneral = `^\+[1-9]\d{9,14}$`
	// RegexPhoneNumberDigitsInternational matches "E.164 without plus", digits only.
	// 10-15 digits, cannot start with 0.
	RegexPhoneNumberDigitsInternational = `^[1-9]\d{9,14}$`
)

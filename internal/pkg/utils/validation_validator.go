package utils

import (
	"mbote-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= 6
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	return re.MatchString(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := ParseClockMinutes(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.WeekdayMonday, constvars.WeekdayTuesday, constvars.WeekdayWednesday,
		constvars.WeekdayThursday, constvars.WeekdayFriday, constvars.WeekdaySaturday,
		constvars.WeekdaySunday:
		return true
	}
	return false
}

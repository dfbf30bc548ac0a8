package utils

import (
	"strings"

	"mbote-service/internal/pkg/dto/requests"
)

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.Phone = NormalizePhoneDigits(input.Phone)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Phone = NormalizePhoneDigits(input.Phone)
}

func SanitizeVerifyOTPRequest(input *requests.VerifyOTP) {
	input.Phone = NormalizePhoneDigits(input.Phone)
	input.OTP = strings.TrimSpace(input.OTP)
}

func SanitizeRegisterDoctorRequest(input *requests.RegisterDoctor) {
	input.Phone = NormalizePhoneDigits(input.Phone)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.LicenseNumber = strings.ToUpper(strings.TrimSpace(input.LicenseNumber))
}

func SanitizeUpdatePatientProfileRequest(input *requests.UpdatePatientProfile) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Address = strings.TrimSpace(input.Address)
}

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"mbote-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
}

func GenerateOTP(otpLength int) (string, error) {
	const otpDigits = "0123456789"
	max := big.NewInt(int64(len(otpDigits)))

	otp := make([]byte, otpLength)
	for i := range otp {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		otp[i] = otpDigits[num.Int64()]
	}

	return string(otp), nil
}

func GenerateTransactionID() string {
	return fmt.Sprintf("TRX%d", time.Now().UnixNano())
}

// GenerateTemporaryPassword builds a random password for admin-created doctor
// accounts, to be changed on first login.
func GenerateTemporaryPassword() (string, error) {
	const chars = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	max := big.NewInt(int64(len(chars)))

	pw := make([]byte, 10)
	for i := range pw {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		pw[i] = chars[num.Int64()]
	}
	return string(pw), nil
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}

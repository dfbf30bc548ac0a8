package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatE164(t *testing.T) {
	t.Run("accepts international numbers with or without plus", func(t *testing.T) {
		for _, input := range []string{"+243811234567", "243811234567", " +243 811 234 567 "} {
			phone, err := FormatE164(input)
			require.NoError(t, err, input)
			assert.Equal(t, "+243811234567", phone, input)
		}
	})

	t.Run("rejects local format and junk", func(t *testing.T) {
		cases := []string{
			"",
			"0811234567",   // local format, no country code
			"+2438112",     // too short
			"+2438112345678901", // beyond E.164 length
			"+243-811-234-567",
			"notaphone",
		}
		for _, input := range cases {
			_, err := FormatE164(input)
			assert.Error(t, err, input)
		}
	})
}

func TestNormalizePhoneDigits(t *testing.T) {
	assert.Equal(t, "243811234567", NormalizePhoneDigits(" +243 811 234 567 "))
	assert.Equal(t, "243811234567", NormalizePhoneDigits("243811234567"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMSISDN(t *testing.T) {
	assert.Equal(t, "+27812345678", CleanMSISDN("+27 81 234 5678"))
	assert.Equal(t, "0812345678", CleanMSISDN(" 081 234 5678 "))
	assert.Equal(t, "abc123", CleanMSISDN("abc 123"))
}

func TestIsValidMSISDN(t *testing.T) {
	tests := []struct {
		name   string
		msisdn string
		valid  bool
	}{
		{"local format", "0812345678", true},
		{"international format", "+27812345678", true},
		{"spaced input after cleaning", CleanMSISDN("+27 81 234 5678"), true},
		{"fifteen digits", "123456789012345", true},
		{"too short", "12345", false},
		{"too long", "1234567890123456", false},
		{"letters", "abc1234567", false},
		{"plus in the middle", "0812+345678", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := IsValidMSISDN(tt.msisdn)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

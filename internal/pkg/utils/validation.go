package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
)

var msisdnRegex = regexp.MustCompile(consts.ValidMSISDN)

// CleanMSISDN strips all whitespace from the raw input. Other characters are
// left alone so that a genuinely malformed number still fails validation.
func CleanMSISDN(msisdn string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, msisdn)
}

// IsValidMSISDN checks the cleaned MSISDN: digits with an optional leading +,
// 10 to 15 digits.
func IsValidMSISDN(cleanedMSISDN string) (bool, error) {
	if !msisdnRegex.MatchString(cleanedMSISDN) {
		return false, consts.ErrorMsisdnFormatValidationFailed
	}
	return true, nil
}

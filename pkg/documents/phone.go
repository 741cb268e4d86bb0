package documents

import (
	"strings"

	dErrors "estagio-gateway/pkg/domain-errors"
)

// countryPrefix is stripped before validation; numbers are treated as
// national.
const countryPrefix = "+55"

// FormatPhoneNumber strips the country prefix and every non-digit rune.
func FormatPhoneNumber(raw string) string {
	return onlyDigits(strings.Replace(raw, countryPrefix, "", 1))
}

// IsValidPhoneNumber reports whether raw is a valid national phone number.
//
// After normalization the first two digits are the area code and must not
// contain 0. Eleven digits is the mobile shape: third digit 9 and fourth
// digit non-zero. Ten digits is the landline shape: third digit outside
// {0, 1, 9}. Any other length is rejected.
func IsValidPhoneNumber(raw string) bool {
	phone := FormatPhoneNumber(raw)
	if len(phone) < 2 || phone[0] == '0' || phone[1] == '0' {
		return false
	}
	switch len(phone) {
	case 11:
		return phone[2] == '9' && phone[3] != '0'
	case 10:
		return phone[2] != '0' && phone[2] != '1' && phone[2] != '9'
	default:
		return false
	}
}

// ValidatePhoneNumber fails with CodeInvalidFormat for invalid numbers.
func ValidatePhoneNumber(raw string) error {
	if !IsValidPhoneNumber(raw) {
		return dErrors.New(dErrors.CodeInvalidFormat, "phone number is invalid")
	}
	return nil
}

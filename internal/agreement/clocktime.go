package agreement

import (
	"fmt"

	dErrors "estagio-gateway/pkg/domain-errors"
)

// ClockTime is a time of day with minute precision, independent of any date.
// The zero value is midnight.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime constructs a ClockTime from an HH:MM string.
//
// Errors: CodeInvalidFormat when the shape or range is wrong.
func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return ClockTime{}, dErrors.Newf(dErrors.CodeInvalidFormat, "time must be HH:MM, got %q", s)
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return ClockTime{}, dErrors.Newf(dErrors.CodeInvalidFormat, "time out of range: %q", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// Minutes returns the offset from midnight in minutes.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// After reports whether c is strictly later in the day than other.
func (c ClockTime) After(other ClockTime) bool {
	return c.Minutes() > other.Minutes()
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package documents

import (
	"strings"

	dErrors "estagio-gateway/pkg/domain-errors"
)

// IsValidEmail reports whether raw has a single local@domain shape with a
// sane local part and a dotted domain.
func IsValidEmail(raw string) bool {
	return ValidateEmail(raw) == nil
}

// ValidateEmail fails with CodeInvalidFormat when raw is not a plausible
// address. The rules are deliberately structural, not RFC-complete:
// exactly one "@"; non-empty local part that neither starts nor ends with a
// dot and has no consecutive dots; a domain containing at least one dot.
func ValidateEmail(raw string) error {
	local, domain, ok := splitEmail(raw)
	if !ok {
		return dErrors.New(dErrors.CodeInvalidFormat, "email address is invalid")
	}
	if local == "" || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return dErrors.New(dErrors.CodeInvalidFormat, "email address is invalid")
	}
	if strings.Contains(local, "..") {
		return dErrors.New(dErrors.CodeInvalidFormat, "email address is invalid")
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return dErrors.New(dErrors.CodeInvalidFormat, "email address is invalid")
	}
	return nil
}

// MaskEmail obscures the tail of the local part for display:
//
//	gabriel.lourenco@example.com -> gabr************@example.com
//
// Local parts of up to four runes, and inputs that are not valid addresses,
// are returned unchanged.
func MaskEmail(raw string) string {
	if !IsValidEmail(raw) {
		return raw
	}
	local, domain, _ := splitEmail(raw)
	runes := []rune(local)
	if len(runes) <= 4 {
		return raw
	}
	return string(runes[:4]) + strings.Repeat("*", len(runes)-4) + "@" + domain
}

func splitEmail(raw string) (local, domain string, ok bool) {
	if strings.Count(raw, "@") != 1 {
		return "", "", false
	}
	at := strings.IndexByte(raw, '@')
	return raw[:at], raw[at+1:], true
}

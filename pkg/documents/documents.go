// Package documents validates the identifier and contact formats carried by
// internship-agreement documents: CPF and CNPJ tax IDs (check-digit math),
// CEP postal codes, UF state codes, email addresses, and phone numbers.
//
// All functions are pure. Raw input may contain the conventional separators
// (dots, dashes, slashes, spaces); every check normalizes to digits first.
// Each format exposes the same quartet where it applies:
//
//	Format*  — normalize to a digit-only string (idempotent)
//	IsValid* — boolean check
//	Validate*— error-returning variant carrying a taxonomy code
//	Mask*    — safe-for-display rendering with the middle obscured
package documents

import "strings"

// onlyDigits strips every non-digit rune from s.
func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigit reports whether s consists of a single repeated digit.
// Uniform sequences pass naive mod-11 math for some digits and are issued
// by no registry, so they are rejected explicitly.
func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}

// checkDigit computes one mod-11 check digit over digits, with the weight
// for the first position given by firstWeight. Weights descend to 2 and,
// for CNPJ, restart at 9 after reaching 2. A remainder of 0 or 1 maps to
// check digit 0.
func checkDigit(digits string, firstWeight int) int {
	weight := firstWeight
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

package documents

import (
	dErrors "estagio-gateway/pkg/domain-errors"
)

// cpfLength is the digit count of a personal tax ID.
const cpfLength = 11

// FormatCPF normalizes a CPF to its 11-digit form, stripping separators.
// Formatting an already-normalized value returns it unchanged.
func FormatCPF(raw string) string {
	return onlyDigits(raw)
}

// IsValidCPF reports whether raw carries a mathematically valid CPF.
func IsValidCPF(raw string) bool {
	return ValidateCPF(raw) == nil
}

// ValidateCPF checks shape and check digits.
//
// Errors: CodeInvalidFormat when the digit count is wrong or the value is a
// uniform repeated digit; CodeInvalidChecksum when either check digit fails.
func ValidateCPF(raw string) error {
	cpf := FormatCPF(raw)
	if len(cpf) != cpfLength {
		return dErrors.New(dErrors.CodeInvalidFormat, "CPF must contain 11 digits")
	}
	if allSameDigit(cpf) {
		return dErrors.New(dErrors.CodeInvalidFormat, "CPF with all digits identical is invalid")
	}
	dv1 := checkDigit(cpf[:9], 10)
	dv2 := checkDigit(cpf[:10], 11)
	if int(cpf[9]-'0') != dv1 || int(cpf[10]-'0') != dv2 {
		return dErrors.New(dErrors.CodeInvalidChecksum, "CPF check digits do not match")
	}
	return nil
}

// MaskCPF renders a CPF for display with the middle blocks obscured,
// keeping the conventional XXX.XXX.XXX-XX grouping:
//
//	12136309595 -> 121.***.***-95
//
// Values that are not 11 digits long are returned unchanged.
func MaskCPF(raw string) string {
	cpf := FormatCPF(raw)
	if len(cpf) != cpfLength {
		return raw
	}
	return cpf[:3] + ".***.***-" + cpf[9:]
}

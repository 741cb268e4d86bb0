package documents

import (
	dErrors "estagio-gateway/pkg/domain-errors"
)

// cnpjLength is the digit count of an organizational tax ID.
const cnpjLength = 14

// FormatCNPJ normalizes a CNPJ to its 14-digit form, stripping separators.
// Formatting an already-normalized value returns it unchanged.
func FormatCNPJ(raw string) string {
	return onlyDigits(raw)
}

// IsValidCNPJ reports whether raw carries a mathematically valid CNPJ.
func IsValidCNPJ(raw string) bool {
	return ValidateCNPJ(raw) == nil
}

// ValidateCNPJ checks shape and check digits.
//
// Errors: CodeInvalidFormat when the digit count is wrong or the value is a
// uniform repeated digit; CodeInvalidChecksum when either check digit fails.
// Both check digits must match; a value with only the first one correct is
// invalid.
func ValidateCNPJ(raw string) error {
	cnpj := FormatCNPJ(raw)
	if len(cnpj) != cnpjLength {
		return dErrors.New(dErrors.CodeInvalidFormat, "CNPJ must contain 14 digits")
	}
	if allSameDigit(cnpj) {
		return dErrors.New(dErrors.CodeInvalidFormat, "CNPJ with all digits identical is invalid")
	}
	dv1 := checkDigit(cnpj[:12], 5)
	dv2 := checkDigit(cnpj[:13], 6)
	if int(cnpj[12]-'0') != dv1 || int(cnpj[13]-'0') != dv2 {
		return dErrors.New(dErrors.CodeInvalidChecksum, "CNPJ check digits do not match")
	}
	return nil
}

// MaskCNPJ renders a CNPJ for display keeping the head digits and the branch
// block visible, in the conventional XX.XXX.XXX/XXXX-XX grouping:
//
//	80971798000158 -> 80.***.***/0001-**
//
// Values that are not 14 digits long are returned unchanged.
func MaskCNPJ(raw string) string {
	cnpj := FormatCNPJ(raw)
	if len(cnpj) != cnpjLength {
		return raw
	}
	return cnpj[:2] + ".***.***/" + cnpj[8:12] + "-**"
}

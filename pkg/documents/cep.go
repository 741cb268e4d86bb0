package documents

import (
	dErrors "estagio-gateway/pkg/domain-errors"
)

// cepLength is the digit count of a postal code. CEPs carry no check digit.
const cepLength = 8

// FormatCEP normalizes a CEP to its 8-digit form, stripping separators.
func FormatCEP(raw string) string {
	return onlyDigits(raw)
}

// IsValidCEP reports whether raw is a structurally valid postal code.
func IsValidCEP(raw string) bool {
	return ValidateCEP(raw) == nil
}

// ValidateCEP fails with CodeInvalidFormat unless raw reduces to exactly
// 8 digits.
func ValidateCEP(raw string) error {
	cep := FormatCEP(raw)
	if cep == "" {
		return dErrors.New(dErrors.CodeInvalidFormat, "CEP must contain only digits")
	}
	if len(cep) != cepLength {
		return dErrors.New(dErrors.CodeInvalidFormat, "CEP must contain 8 digits")
	}
	return nil
}

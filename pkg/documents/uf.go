package documents

import (
	"strings"

	dErrors "estagio-gateway/pkg/domain-errors"
)

// UFs is the fixed set of federative unit codes (26 states plus the Federal
// District). Structurally plausible pairs outside this set are rejected.
var UFs = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true,
	"CE": true, "DF": true, "ES": true, "GO": true, "MA": true,
	"MT": true, "MS": true, "MG": true, "PA": true, "PB": true,
	"PR": true, "PE": true, "PI": true, "RJ": true, "RN": true,
	"RS": true, "RO": true, "RR": true, "SC": true, "SP": true,
	"SE": true, "TO": true,
}

// IsValidUF reports whether raw names a federative unit, case-insensitively.
func IsValidUF(raw string) bool {
	return UFs[strings.ToUpper(raw)]
}

// ValidateUF fails with CodeInvalidFormat for unknown state codes.
func ValidateUF(raw string) error {
	if !IsValidUF(raw) {
		return dErrors.Newf(dErrors.CodeInvalidFormat, "invalid UF: %q", raw)
	}
	return nil
}

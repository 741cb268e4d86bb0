// Package validation orchestrates all checks over one internship-agreement
// document: local checksum, format, and business-rule validation plus the
// external registry confirmation, folded into a single consolidated report.
package validation

import (
	"time"

	"github.com/google/uuid"
)

// Field roles, used to prefix observations. One fixed sequence of typed
// checks is evaluated per document; no field is ever silently skipped.
const (
	RoleGrantorCNPJ     = "grantor CNPJ"
	RoleGrantorCPF      = "grantor CPF"
	RoleGrantorPhone    = "grantor phone"
	RoleGrantorCEP      = "grantor address CEP"
	RoleGrantorUF       = "grantor address UF"
	RoleSupervisorCPF   = "supervisor CPF"
	RoleSupervisorEmail = "supervisor email"
	RoleInternCPF       = "intern CPF"
	RoleInternEmail     = "intern email"
	RoleInternMobile    = "intern mobile"
	RoleInternPhone     = "intern phone"
	RoleInternCEP       = "intern address CEP"
	RoleInternUF        = "intern address UF"
	RoleTerms           = "internship terms"
	RoleInternAge       = "intern age"
)

// Verdict is the atomic result of one check. Immutable once produced.
type Verdict struct {
	Role    string `json:"role"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Observation renders the verdict as a role-prefixed audit line.
func (v Verdict) Observation() string {
	return v.Role + ": " + v.Message
}

// Report is the consolidated outcome for one document. OverallValid is the
// logical AND of all verdicts; Observations holds one entry per evaluated
// field, success or failure, in evaluation order.
type Report struct {
	ID           uuid.UUID `json:"id"`
	OverallValid bool      `json:"overall_valid"`
	Verdicts     []Verdict `json:"verdicts"`
	EvaluatedAt  time.Time `json:"evaluated_at"`
}

// Observations returns the role-prefixed lines in evaluation order.
func (r *Report) Observations() []string {
	obs := make([]string, len(r.Verdicts))
	for i, v := range r.Verdicts {
		obs[i] = v.Observation()
	}
	return obs
}

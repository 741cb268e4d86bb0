// Package registry confirms organizational tax IDs against the external
// federal registry. It owns producing LookupResult values; interpreting
// them into validation verdicts is the orchestrator's job.
package registry

import "time"

// Status is the outcome class of one registry lookup.
type Status string

const (
	// StatusFound means the registry resolved the CNPJ. The record may
	// still be inactive.
	StatusFound Status = "found"

	// StatusNotFound means the registry answered but the CNPJ does not
	// resolve, either via 404 or via a 200 carrying the service-error
	// sentinel.
	StatusNotFound Status = "not_found"

	// StatusMalformed means the registry rejected the identifier itself.
	StatusMalformed Status = "malformed"

	// StatusTransportError means the registry could not be reached or the
	// call timed out.
	StatusTransportError Status = "transport_error"

	// StatusServiceError means the registry answered with an unexpected
	// status or the response could not be processed.
	StatusServiceError Status = "service_error"
)

// placeholderLegalName substitutes a missing display name on found records;
// a missing name is never a failure.
const placeholderLegalName = "legal name unavailable"

// LookupResult is the tagged outcome of one lookup. Status selects the
// variant; Active and LegalName are meaningful only for StatusFound, and
// HTTPStatus only for StatusServiceError.
type LookupResult struct {
	Status     Status
	Active     bool
	LegalName  string
	HTTPStatus int
	CheckedAt  time.Time
}

// Found reports whether the lookup resolved to an existing record.
func (r LookupResult) Found() bool {
	return r.Status == StatusFound
}

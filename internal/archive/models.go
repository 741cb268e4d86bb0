// Package archive persists consolidated validation reports so submissions
// can be audited after the fact. Archiving is best-effort and asynchronous;
// it never blocks or fails a validation request.
package archive

import (
	"time"

	"github.com/google/uuid"
)

// Record is one archived validation report. Keep it transport-agnostic so
// stores can fan out.
type Record struct {
	ID           uuid.UUID
	OverallValid bool
	Observations []string
	EvaluatedAt  time.Time
}

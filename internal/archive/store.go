package archive

import (
	"context"
	"sort"
	"sync"
)

// Store is the persistence behind the archive. Append-only plus a bounded
// recency listing for the reports endpoint.
type Store interface {
	Append(ctx context.Context, record Record) error
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}

// MemoryStore keeps records in memory. Used in tests and when no database
// is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *MemoryStore) ListRecent(_ context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].EvaluatedAt.After(out[j].EvaluatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

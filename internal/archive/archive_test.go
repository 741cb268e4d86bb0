package archive

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(valid bool, at time.Time) Record {
	return Record{
		ID:           uuid.New(),
		OverallValid: valid,
		Observations: []string{"internship terms: valid"},
		EvaluatedAt:  at,
	}
}

func TestMemoryStore_ListRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Now()

	oldest := record(true, base.Add(-2*time.Hour))
	middle := record(false, base.Add(-time.Hour))
	newest := record(true, base)

	require.NoError(t, store.Append(ctx, middle))
	require.NoError(t, store.Append(ctx, newest))
	require.NoError(t, store.Append(ctx, oldest))

	records, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newest.ID, records[0].ID)
	assert.Equal(t, middle.ID, records[1].ID)
}

func TestMemoryStore_ListRecentZeroLimitReturnsAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(ctx, record(true, time.Now())))
	}

	records, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestPublisher_SubmitDropsWhenFull(t *testing.T) {
	p := NewPublisher(1)

	assert.True(t, p.Submit(record(true, time.Now())))
	assert.False(t, p.Submit(record(true, time.Now())), "second submit should drop; inbox capacity is 1")
}

type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (s *failingStore) Append(context.Context, Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return errors.New("disk on fire")
}

func (s *failingStore) ListRecent(context.Context, int) ([]Record, error) {
	return nil, nil
}

func (s *failingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestWorker_PersistsSubmittedRecords(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewMemoryStore()
	p := NewPublisher(8)
	worker := NewWorker(store, p.Inbox(), nil)

	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	rec := record(true, time.Now())
	require.True(t, p.Submit(rec))

	require.Eventually(t, func() bool {
		records, err := store.ListRecent(context.Background(), 10)
		return err == nil && len(records) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestWorker_StoreFailureDoesNotStopTheLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &failingStore{}
	p := NewPublisher(8)
	worker := NewWorker(store, p.Inbox(), nil)

	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	require.True(t, p.Submit(record(true, time.Now())))
	require.True(t, p.Submit(record(false, time.Now())))

	require.Eventually(t, func() bool {
		return store.count() == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

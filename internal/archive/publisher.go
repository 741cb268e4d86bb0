package archive

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var droppedRecords = promauto.NewCounter(prometheus.CounterOpts{
	Name: "estagio_archive_dropped_records_total",
	Help: "Validation reports dropped because the archive inbox was full",
})

// Publisher hands records to the background worker through a buffered
// channel so the request path never waits on storage.
type Publisher struct {
	inbox chan Record
}

// NewPublisher creates a publisher with the given inbox capacity.
func NewPublisher(capacity int) *Publisher {
	return &Publisher{inbox: make(chan Record, capacity)}
}

// Submit enqueues a record. When the inbox is full the record is dropped
// and counted; archiving is best-effort.
func (p *Publisher) Submit(record Record) bool {
	select {
	case p.inbox <- record:
		return true
	default:
		droppedRecords.Inc()
		return false
	}
}

// Inbox exposes the channel for the worker.
func (p *Publisher) Inbox() <-chan Record {
	return p.inbox
}

// Worker consumes records from the publisher and persists them.
type Worker struct {
	store  Store
	inbox  <-chan Record
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Record, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context is cancelled. Store failures are
// logged, not fatal; a broken archive must not stop validations.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record := <-w.inbox:
			if err := w.store.Append(ctx, record); err != nil && w.logger != nil {
				w.logger.ErrorContext(ctx, "archive append failed",
					"report_id", record.ID,
					"error", err,
				)
			}
		}
	}
}

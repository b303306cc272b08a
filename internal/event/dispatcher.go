package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/remaimber-it/quizengine/internal/worker"
)

// Dispatcher publishes events off the request path on a worker pool.
// Publishing is best effort: failures and a full queue are logged, never
// returned to the caller.
type Dispatcher struct {
	pub     Publisher
	pool    *worker.Pool[error]
	logger  *slog.Logger
	timeout time.Duration
	done    chan struct{}
}

func NewDispatcher(pub Publisher, workers int, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		pub:     pub,
		pool:    worker.NewPool[error](workers, 256),
		logger:  logger,
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}
	go d.drain()
	return d
}

func (d *Dispatcher) drain() {
	defer close(d.done)
	for r := range d.pool.Results() {
		if r.Output != nil {
			d.logger.Error("event publish failed", "event_id", r.JobID, "error", r.Output)
		}
	}
}

// Dispatch queues e for publishing. A nil Dispatcher drops events.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	ok := d.pool.TrySubmit(e.ID, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		return d.pub.Publish(ctx, e)
	})
	if !ok {
		d.logger.Warn("event dropped", "event_id", e.ID, "type", e.Type)
	}
}

// Close publishes everything already queued, then closes the publisher.
func (d *Dispatcher) Close() error {
	if d == nil {
		return nil
	}
	d.pool.Close()
	<-d.done
	return d.pub.Close()
}

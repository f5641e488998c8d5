package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

// Processor runs one comparison through the pipeline. Satisfied by
// *lifecycle.Controller.
type Processor interface {
	Advance(ctx context.Context, id uuid.UUID) (*entity.Comparison, error)
	Regenerate(ctx context.Context, id uuid.UUID) (*entity.Comparison, error)
}

// Job is one comparison queued for background processing.
type Job struct {
	ComparisonID uuid.UUID
	Regenerate   bool
}

// Queue drains submitted comparisons into the lifecycle controller so
// Submit never blocks on extraction. Claim arbitration stays in the
// controller; a duplicate enqueue is harmless.
type Queue struct {
	ctrl    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(ctrl Processor, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		ctrl:    ctrl,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					var err error
					if job.Regenerate {
						_, err = q.ctrl.Regenerate(ctx, job.ComparisonID)
					} else {
						_, err = q.ctrl.Advance(ctx, job.ComparisonID)
					}
					cancel()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "comparison_id", job.ComparisonID, "error", err)
					} else {
						q.logger.Info("processed comparison", "worker_id", workerID, "comparison_id", job.ComparisonID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue queues one job. A full queue applies backpressure to this caller
// only; the mutex is never held across the blocking send, so other callers
// and Shutdown stay unblocked.
func (q *Queue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "comparison_id", job.ComparisonID)
		return nil
	}
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	select {
	case q.ch <- job:
		q.logger.Info("queued comparison for processing", "comparison_id", job.ComparisonID, "regenerate", job.Regenerate)
		return nil
	default:
	}

	q.logger.Warn("queue full, applying backpressure", "comparison_id", job.ComparisonID)
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		q.logger.Warn("enqueue abandoned", "comparison_id", job.ComparisonID, "error", ctx.Err())
		return ctx.Err()
	}
}

func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	// in-flight Enqueues must finish before the channel can be closed
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

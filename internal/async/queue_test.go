package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

type countingProcessor struct {
	mu          sync.Mutex
	advanced    []uuid.UUID
	regenerated []uuid.UUID
}

func (p *countingProcessor) Advance(_ context.Context, id uuid.UUID) (*entity.Comparison, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advanced = append(p.advanced, id)
	return &entity.Comparison{ID: id}, nil
}

func (p *countingProcessor) Regenerate(_ context.Context, id uuid.UUID) (*entity.Comparison, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regenerated = append(p.regenerated, id)
	return &entity.Comparison{ID: id}, nil
}

func (p *countingProcessor) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.advanced), len(p.regenerated)
}

func TestQueueDispatchesByJobKind(t *testing.T) {
	proc := &countingProcessor{}
	q := NewQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

	require.NoError(t, q.Enqueue(context.Background(), Job{ComparisonID: uuid.New()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{ComparisonID: uuid.New(), Regenerate: true}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	adv, regen := proc.counts()
	assert.Equal(t, 1, adv)
	assert.Equal(t, 1, regen)
}

func TestQueueShutdownDrainsPendingJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewQueue(proc, nil, WithWorkers(1), WithQueueSize(16))

	const jobs = 10
	for i := 0; i < jobs; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{ComparisonID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	adv, _ := proc.counts()
	assert.Equal(t, jobs, adv, "shutdown waits for the backlog")
}

func TestQueueEnqueueAfterShutdownIsANoOp(t *testing.T) {
	proc := &countingProcessor{}
	q := NewQueue(proc, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{ComparisonID: uuid.New()}))
	adv, regen := proc.counts()
	assert.Zero(t, adv)
	assert.Zero(t, regen)
}

type gatedProcessor struct {
	countingProcessor
	gate    chan struct{}
	started chan struct{}
}

func (p *gatedProcessor) Advance(ctx context.Context, id uuid.UUID) (*entity.Comparison, error) {
	p.started <- struct{}{}
	<-p.gate
	return p.countingProcessor.Advance(ctx, id)
}

func TestQueueBackpressureDoesNotBlockOtherCallers(t *testing.T) {
	proc := &gatedProcessor{gate: make(chan struct{}), started: make(chan struct{}, 8)}
	q := NewQueue(proc, nil, WithWorkers(1), WithQueueSize(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{ComparisonID: uuid.New()}))
	<-proc.started // the worker holds the first job

	// second job fills the buffer, third blocks in backpressure
	require.NoError(t, q.Enqueue(context.Background(), Job{ComparisonID: uuid.New()}))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, q.Enqueue(context.Background(), Job{ComparisonID: uuid.New()}))
	}()

	// a caller with a dead context returns promptly instead of queueing
	// behind the blocked sender
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := q.Enqueue(ctx, Job{ComparisonID: uuid.New()})
	assert.ErrorIs(t, err, context.Canceled)

	close(proc.gate)
	wg.Wait()

	sctx, scancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer scancel()
	q.Shutdown(sctx)

	adv, _ := proc.counts()
	assert.Equal(t, 3, adv, "the abandoned job never reaches a worker")
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewQueue(&countingProcessor{}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // second call returns immediately
}

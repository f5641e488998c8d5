package notify

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

func TestHubFanOut(t *testing.T) {
	h := NewHub(nil)
	id := uuid.New()

	ch1, cancel1 := h.Subscribe(id)
	ch2, cancel2 := h.Subscribe(id)
	defer cancel1()
	defer cancel2()

	rec := &entity.Comparison{ID: id, Status: constants.StatusCompleted}
	h.Publish(rec)

	assert.Same(t, rec, <-ch1)
	assert.Same(t, rec, <-ch2)
}

func TestHubPublishOnlyReachesMatchingID(t *testing.T) {
	h := NewHub(nil)
	watched := uuid.New()

	ch, cancel := h.Subscribe(watched)
	defer cancel()

	h.Publish(&entity.Comparison{ID: uuid.New(), Status: constants.StatusFailed})

	select {
	case rec := <-ch:
		t.Fatalf("unexpected delivery for %s", rec.ID)
	default:
	}
}

func TestHubCancelClosesChannelAndIsIdempotent(t *testing.T) {
	h := NewHub(nil)
	id := uuid.New()

	ch, cancel := h.Subscribe(id)
	cancel()
	cancel() // second call is a no-op

	_, open := <-ch
	assert.False(t, open)

	// publishing after cancel must not panic on the closed channel
	h.Publish(&entity.Comparison{ID: id})
}

func TestHubFullBufferDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub(nil, WithBuffer(1))
	id := uuid.New()

	ch, cancel := h.Subscribe(id)
	defer cancel()

	first := &entity.Comparison{ID: id, Status: constants.StatusProcessing}
	second := &entity.Comparison{ID: id, Status: constants.StatusCompleted}

	done := make(chan struct{})
	go func() {
		h.Publish(first)
		h.Publish(second) // buffer full, dropped
		close(done)
	}()
	<-done

	require.Same(t, first, <-ch)
	select {
	case rec := <-ch:
		t.Fatalf("second update should have been dropped, got %s", rec.Status)
	default:
	}
}

func TestHubConcurrentPublishAndCancel(t *testing.T) {
	h := NewHub(nil, WithBuffer(1))
	id := uuid.New()
	rec := &entity.Comparison{ID: id}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		_, cancel := h.Subscribe(id)
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Publish(rec)
		}()
		go func() {
			defer wg.Done()
			cancel()
		}()
	}
	wg.Wait()

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.Empty(t, h.subs, "all subscriber sets cleaned up")
}

// Package notify fans post-transition comparison records out to realtime
// subscribers. Delivery is best-effort: a slow subscriber may miss an
// update and re-fetch; the hub is a latency optimization, not the system
// of record.
package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

type subscriber struct {
	ch chan *entity.Comparison
}

type Hub struct {
	logger *slog.Logger
	buffer int

	mu   sync.RWMutex
	subs map[uuid.UUID]map[*subscriber]struct{}
}

type Option func(*Hub)

// WithBuffer sets the per-subscriber channel depth.
func WithBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

func NewHub(logger *slog.Logger, opts ...Option) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{
		logger: logger,
		buffer: 8,
		subs:   make(map[uuid.UUID]map[*subscriber]struct{}),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Publish delivers the record to all current subscribers of its id.
// Non-blocking: a full subscriber buffer drops the update with a warning.
func (h *Hub) Publish(rec *entity.Comparison) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.subs[rec.ID]
	if len(set) == 0 {
		return
	}
	delivered := 0
	for s := range set {
		select {
		case s.ch <- rec:
			delivered++
		default:
			h.logger.Warn("notify.publish.dropped", "comparison_id", rec.ID, "status", rec.Status)
		}
	}
	h.logger.Info("notify.published",
		"comparison_id", rec.ID,
		"status", rec.Status,
		"subscribers", len(set),
		"delivered", delivered,
	)
}

// Subscribe registers interest in one record id. The returned cancel func
// must be called; it closes the channel.
func (h *Hub) Subscribe(id uuid.UUID) (<-chan *entity.Comparison, func()) {
	s := &subscriber{ch: make(chan *entity.Comparison, h.buffer)}

	h.mu.Lock()
	set, ok := h.subs[id]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.subs[id] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[id], s)
			if len(h.subs[id]) == 0 {
				delete(h.subs, id)
			}
			// closed under the lock so Publish can never send on a
			// closed channel
			close(s.ch)
			h.mu.Unlock()
		})
	}
	return s.ch, cancel
}

package activity

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yourorg/housing-site/internal/events"
)

// Recorder consumes site events, logs them and keeps per-kind counters.
type Recorder struct {
	Pub events.Publisher

	mu     sync.Mutex
	counts map[events.Kind]int
}

func (r *Recorder) Run(ctx context.Context) {
	sub := r.Pub.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-sub:
			r.record(evt)
			slog.Debug("activity", "kind", evt.Kind, "session", evt.SessionID, "property", evt.PropertyID)
		}
	}
}

func (r *Recorder) record(evt events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[events.Kind]int)
	}
	r.counts[evt.Kind]++
}

// Counts returns a snapshot of the counters.
func (r *Recorder) Counts() map[events.Kind]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[events.Kind]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

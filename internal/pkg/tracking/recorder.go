package tracking

import (
	"context"
	"sync"
)

// DefaultHistory is the number of events a Recorder keeps
const DefaultHistory = 50

// Recorder keeps the most recent events in memory
type Recorder struct {
	mu     sync.Mutex
	limit  int
	events []Event
}

// NewRecorder creates a recorder keeping at most limit events
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Emit(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	if over := len(r.events) - r.limit; over > 0 {
		r.events = append([]Event(nil), r.events[over:]...)
	}
}

// Events returns recorded events, newest first
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	for i, e := range r.events {
		out[len(r.events)-1-i] = e
	}
	return out
}

// Last returns the newest event, if any
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

package dispatch

import (
	"sync"
	"time"
)

// Timings records how long each action took
type Timings struct {
	mu        sync.RWMutex
	durations map[string][]time.Duration
}

func NewTimings() *Timings {
	return &Timings{durations: make(map[string][]time.Duration)}
}

// Start returns a function that records the elapsed time for action
func (t *Timings) Start(action string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		t.mu.Lock()
		t.durations[action] = append(t.durations[action], d)
		t.mu.Unlock()
		return d
	}
}

// Get returns a copy of the recorded durations for action
func (t *Timings) Get(action string) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]time.Duration(nil), t.durations[action]...)
}

func (t *Timings) Average(action string) time.Duration {
	durations := t.Get(action)
	if len(durations) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total / time.Duration(len(durations))
}

// Reset forgets action, or everything when action is empty
func (t *Timings) Reset(action string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if action == "" {
		t.durations = make(map[string][]time.Duration)
	} else {
		delete(t.durations, action)
	}
}

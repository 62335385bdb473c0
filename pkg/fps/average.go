package fps

import (
	"sync"
	"time"
)

// renderWindow averages the last n render durations. Add is called by the UI
// goroutine and average by the reporter.
type renderWindow struct {
	mu      sync.Mutex
	samples []time.Duration // ring, len grows to cap
	next    int
	sum     time.Duration
}

func newRenderWindow(n int) *renderWindow {
	return &renderWindow{samples: make([]time.Duration, 0, max(n, 1))}
}

func (w *renderWindow) add(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.samples) < cap(w.samples) {
		w.samples = append(w.samples, d)
	} else {
		w.sum -= w.samples[w.next]
		w.samples[w.next] = d
	}
	w.sum += d
	w.next = (w.next + 1) % cap(w.samples)
}

func (w *renderWindow) average() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.samples) == 0 {
		return 0
	}
	return w.sum / time.Duration(len(w.samples))
}

func (w *renderWindow) reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.samples = w.samples[:0]
	w.next = 0
	w.sum = 0
}

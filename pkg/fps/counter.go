// Package fps counts rendered and skipped frames and periodically logs the
// frame rate.
package fps

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

const defaultInterval = time.Second

// Counter tracks presentation statistics.
//
// AddRendered is called by the UI goroutine, AddSkipped by the decoder
// goroutine; both are lock-free. Counts are only accumulated while the
// counter is started.
type Counter struct {
	interval time.Duration
	logf     func(format string, args ...any)

	started  atomic.Bool
	rendered atomic.Uint64 // since last report
	skipped  atomic.Uint64 // since last report

	totalRendered atomic.Uint64
	totalSkipped  atomic.Uint64

	renderTimes *renderWindow
	memory      func() MemoryStats

	mu          sync.Mutex
	running     bool
	interrupted bool
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// Report is a snapshot of the counter.
type Report struct {
	Started       bool
	TotalRendered uint64
	TotalSkipped  uint64
	AvgRenderMs   float64
}

// NewCounter creates a stopped counter reporting once per second.
func NewCounter() *Counter {
	return newCounter(defaultInterval, log.Printf)
}

func newCounter(interval time.Duration, logf func(string, ...any)) *Counter {
	ctx, cancel := context.WithCancel(context.Background())
	return &Counter{
		interval:    interval,
		logf:        logf,
		renderTimes: newRenderWindow(120),
		memory:      ReadMemory,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins counting and spawns the reporting goroutine on first use.
func (c *Counter) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interrupted {
		return
	}

	c.rendered.Store(0)
	c.skipped.Store(0)
	c.renderTimes.reset()
	c.started.Store(true)

	if !c.running {
		c.running = true
		c.wg.Add(1)
		go c.loop()
	}
	c.logf("FPS counter started")
}

// Stop pauses counting. The reporting goroutine stays idle until Start or
// Interrupt.
func (c *Counter) Stop() {
	if c.started.Swap(false) {
		c.logf("FPS counter stopped")
	}
}

// IsStarted reports whether frames are being counted.
func (c *Counter) IsStarted() bool {
	return c.started.Load()
}

// AddRendered records a presented frame and its render duration.
func (c *Counter) AddRendered(d time.Duration) {
	if !c.started.Load() {
		return
	}
	c.rendered.Add(1)
	c.totalRendered.Add(1)
	if d > 0 {
		c.renderTimes.add(d)
	}
}

// AddSkipped records a frame overwritten before being presented.
func (c *Counter) AddSkipped() {
	if !c.started.Load() {
		return
	}
	c.skipped.Add(1)
	c.totalSkipped.Add(1)
}

// Report returns lifetime totals.
func (c *Counter) Report() Report {
	return Report{
		Started:       c.started.Load(),
		TotalRendered: c.totalRendered.Load(),
		TotalSkipped:  c.totalSkipped.Load(),
		AvgRenderMs:   float64(c.renderTimes.average().Microseconds()) / 1000.0,
	}
}

// Interrupt wakes the reporting goroutine and makes it exit. Start has no
// effect afterwards.
func (c *Counter) Interrupt() {
	c.mu.Lock()
	c.interrupted = true
	c.mu.Unlock()
	c.cancel()
}

// Join waits for the reporting goroutine to exit. Call after Interrupt.
func (c *Counter) Join() {
	c.wg.Wait()
}

func (c *Counter) loop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if !c.started.Load() {
				continue
			}
			c.report()
		}
	}
}

func (c *Counter) report() {
	rendered := c.rendered.Swap(0)
	skipped := c.skipped.Swap(0)
	fps := float64(rendered) / c.interval.Seconds()
	renderMs := float64(c.renderTimes.average().Microseconds()) / 1000.0
	mem := c.memory()

	if skipped > 0 {
		c.logf("%.0f fps (+%d frames skipped), render %.2fms, %s", fps, skipped, renderMs, mem)
	} else {
		c.logf("%.0f fps, render %.2fms, %s", fps, renderMs, mem)
	}
	if p := mem.Pressure(); p >= PressureHigh {
		c.logf("Warning: memory pressure %s", p)
	}
}

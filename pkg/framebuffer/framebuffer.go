// Package framebuffer hands decoded frames from the decoder goroutine to the
// UI goroutine through a single overwrite slot.
//
// Only the most recent frame matters: a frame that is not consumed before
// the next push is dropped and reported as skipped, so the display never
// renders a stale backlog.
package framebuffer

import (
	"sync"

	"mirror-frame/pkg/media"
)

// Buffer is a single-slot frame mailbox.
//
// Thread-safety:
//   - Push: producer goroutine
//   - Consume: consumer goroutine
//   - All state protected by mu
type Buffer struct {
	mu sync.Mutex

	pending *media.Frame // latest pushed frame
	tmp     *media.Frame // copy target, keeps pending intact on error

	// consumed is true when pending has been handed out (or nothing was
	// ever pushed).
	consumed bool
	closed   bool
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		pending:  &media.Frame{},
		tmp:      &media.Frame{},
		consumed: true,
	}
}

// Push copies frame into the slot, replacing any unconsumed frame.
//
// previousSkipped is true when the replaced frame was never consumed; in that
// case the consumer has already been notified for it and will pick up this
// frame instead. On error the slot keeps its previous content.
func (b *Buffer) Push(frame *media.Frame) (previousSkipped bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false, ErrClosed
	}

	if err := b.tmp.CopyFrom(frame); err != nil {
		return false, err
	}

	b.pending, b.tmp = b.tmp, b.pending
	b.tmp.Reset()

	previousSkipped = !b.consumed
	b.consumed = false
	return previousSkipped, nil
}

// Consume moves the pending frame into dst and clears the slot.
//
// The previous buffers of dst are recycled by the slot. It returns false if
// no frame is pending.
func (b *Buffer) Consume(dst *media.Frame) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.consumed || b.closed {
		return false
	}
	b.consumed = true

	*dst, *b.pending = *b.pending, *dst
	b.pending.Reset()
	return true
}

// Close releases the held frame. Push fails and Consume returns false
// afterwards. Idempotent.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.consumed = true
	b.pending = &media.Frame{}
	b.tmp = &media.Frame{}
}

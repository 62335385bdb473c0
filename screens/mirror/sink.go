package mirror

import (
	"fmt"
	"log"

	"mirror-frame/pkg/media"
)

var _ media.FrameSink = (*Screen)(nil)

// Open accepts the stream if the screen can present it. Called from the
// producer goroutine.
func (s *Screen) Open(format media.PixelFormat, width, height int) error {
	if err := media.ValidateStream(format, width, height); err != nil {
		return err
	}
	s.sinkOpen.Store(true)
	log.Printf("Screen: sink opened for %s %dx%d", format, width, height)
	return nil
}

// Push stores frame for the UI goroutine and wakes it up. If the previous
// frame was not consumed yet it is dropped, and the notification already
// posted for it covers this frame.
func (s *Screen) Push(frame *media.Frame) error {
	skipped, err := s.fb.Push(frame)
	if err != nil {
		return fmt.Errorf("push frame: %w", err)
	}

	if skipped {
		s.fps.AddSkipped()
		return nil
	}

	if err := s.notifier.NotifyNewFrame(); err != nil {
		return fmt.Errorf("notify new frame: %w", err)
	}
	return nil
}

// Close marks the sink closed. Idempotent; the screen keeps its frames until
// Destroy.
func (s *Screen) Close() {
	if s.sinkOpen.Swap(false) {
		log.Printf("Screen: sink closed")
	}
}

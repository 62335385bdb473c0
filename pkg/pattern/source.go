// Package pattern is a synthetic YUV420P frame producer. It stands in for a
// decoder when no device is attached and drives a media.FrameSink at a fixed
// frame rate.
package pattern

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

// Options configures a Source.
type Options struct {
	Width  int
	Height int
	FPS    int

	// RotateEvery swaps width and height at this interval, simulating a
	// device rotation. Zero disables it.
	RotateEvery time.Duration

	ColorSpace media.ColorSpace
	ColorRange media.ColorRange
}

// Source produces color bars with a moving band.
type Source struct {
	opts  Options
	frame *media.Frame
	index uint64
	debug bool
}

// NewSource validates opts and allocates the frame buffer.
func NewSource(opts Options) (*Source, error) {
	if err := media.ValidateStream(media.PixelFormatYUV420P, opts.Width, opts.Height); err != nil {
		return nil, err
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("pattern: fps %d must be positive", opts.FPS)
	}
	if opts.RotateEvery < 0 {
		return nil, errors.New("pattern: negative rotation interval")
	}
	return &Source{
		opts:  opts,
		frame: media.NewFrame(opts.Width, opts.Height),
		debug: os.Getenv("DEBUG_FRAME_UPDATES") == "1",
	}, nil
}

// SizeAt returns the frame size elapsed after the start of the stream.
func (s *Source) SizeAt(elapsed time.Duration) geometry.Size {
	size := geometry.Size{Width: s.opts.Width, Height: s.opts.Height}
	if s.opts.RotateEvery > 0 && (elapsed/s.opts.RotateEvery)%2 == 1 {
		size.Width, size.Height = size.Height, size.Width
	}
	return size
}

// Run opens sink and pushes frames until ctx is done or the sink rejects a
// frame. The sink is closed on return if it was opened.
func (s *Source) Run(ctx context.Context, sink media.FrameSink) error {
	if err := sink.Open(media.PixelFormatYUV420P, s.opts.Width, s.opts.Height); err != nil {
		return fmt.Errorf("pattern: open sink: %w", err)
	}
	defer sink.Close()

	interval := time.Second / time.Duration(s.opts.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Pattern: streaming %dx%d at %d fps", s.opts.Width, s.opts.Height, s.opts.FPS)

	start := time.Now()
	current := geometry.Size{Width: s.opts.Width, Height: s.opts.Height}
	for {
		select {
		case <-ctx.Done():
			log.Printf("Pattern: stopped after %d frames", s.index)
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			size := s.SizeAt(elapsed)
			if size != current {
				log.Printf("Pattern: source rotated to %dx%d", size.Width, size.Height)
				current = size
			}
			s.next(size, elapsed)
			if err := sink.Push(s.frame); err != nil {
				return fmt.Errorf("pattern: push frame %d: %w", s.index, err)
			}
			if s.debug {
				log.Printf("Pattern: pushed frame %d (%dx%d) pts=%v", s.index, size.Width, size.Height, elapsed)
			}
		}
	}
}

func (s *Source) next(size geometry.Size, pts time.Duration) {
	if s.frame.Width != size.Width || s.frame.Height != size.Height {
		s.frame = media.NewFrame(size.Width, size.Height)
	}
	s.frame.ColorSpace = s.opts.ColorSpace
	s.frame.ColorRange = s.opts.ColorRange
	s.frame.PTS = pts
	Draw(s.frame, s.index)
	s.index++
}

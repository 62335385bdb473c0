package media

import "fmt"

// FrameSink receives decoded frames from a producer goroutine.
//
// Open is called once before the first Push, Close once after the last one.
// Push must not block the producer.
type FrameSink interface {
	Open(format PixelFormat, width, height int) error
	Push(frame *Frame) error
	Close()
}

// ValidateStream checks the stream parameters a sink accepts.
func ValidateStream(format PixelFormat, width, height int) error {
	if format != PixelFormatYUV420P {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if width <= 0 || width > MaxDimension || height <= 0 || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

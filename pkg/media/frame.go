package media

import (
	"errors"
	"fmt"
	"time"
)

// MaxDimension bounds frame width and height (16-bit sizes).
const MaxDimension = 0xFFFF

var (
	// ErrInvalidFrame is returned when plane buffers do not match the frame size.
	ErrInvalidFrame = errors.New("invalid frame")
	// ErrUnsupportedFormat is returned by a sink for any format but YUV420P.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	// ErrInvalidSize is returned by a sink for out of range dimensions.
	ErrInvalidSize = errors.New("invalid video size")
)

// PixelFormat identifies the memory layout of decoded frames.
type PixelFormat int

const (
	PixelFormatNone PixelFormat = iota
	// PixelFormatYUV420P is planar Y, U, V with chroma subsampled 2x2.
	PixelFormatYUV420P
	PixelFormatRGBA
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatYUV420P:
		return "yuv420p"
	case PixelFormatRGBA:
		return "rgba"
	default:
		return "none"
	}
}

// ColorSpace is the YUV matrix the frame was encoded with.
type ColorSpace int

const (
	ColorSpaceUnspecified ColorSpace = iota
	ColorSpaceBT601
	ColorSpaceBT709
)

// ColorRange distinguishes limited (16-235) from full (0-255) range.
type ColorRange int

const (
	ColorRangeUnspecified ColorRange = iota
	ColorRangeLimited
	ColorRangeFull
)

// Frame is a decoded YUV420P picture.
//
// Planes are owned by the frame. A frame pushed to a sink may be reused by
// the producer as soon as Push returns.
type Frame struct {
	Width  int
	Height int
	Format PixelFormat

	// Planes holds Y, U and V. Row i of plane p starts at i*Pitches[p].
	Planes  [3][]byte
	Pitches [3]int

	ColorSpace ColorSpace
	ColorRange ColorRange

	// PTS is the presentation timestamp relative to the stream start.
	PTS time.Duration
}

// NewFrame allocates a tightly packed YUV420P frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.allocate(width, height)
	return f
}

// ChromaSize returns the dimensions of the U and V planes.
func ChromaSize(width, height int) (int, int) {
	return (width + 1) / 2, (height + 1) / 2
}

// Empty reports whether the frame holds no picture.
func (f *Frame) Empty() bool {
	return f == nil || f.Width == 0 || f.Height == 0
}

// Validate checks that the planes are large enough for the frame size.
func (f *Frame) Validate() error {
	if f.Format != PixelFormatYUV420P {
		return fmt.Errorf("%w: format %s", ErrInvalidFrame, f.Format)
	}
	if f.Width <= 0 || f.Height <= 0 || f.Width > MaxDimension || f.Height > MaxDimension {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}

	cw, ch := ChromaSize(f.Width, f.Height)
	widths := [3]int{f.Width, cw, cw}
	heights := [3]int{f.Height, ch, ch}
	for p := 0; p < 3; p++ {
		if f.Pitches[p] < widths[p] {
			return fmt.Errorf("%w: plane %d pitch %d < %d", ErrInvalidFrame, p, f.Pitches[p], widths[p])
		}
		need := f.Pitches[p]*(heights[p]-1) + widths[p]
		if len(f.Planes[p]) < need {
			return fmt.Errorf("%w: plane %d has %d bytes, need %d", ErrInvalidFrame, p, len(f.Planes[p]), need)
		}
	}
	return nil
}

// CopyFrom copies src into f, reusing the buffers of f when they are large
// enough. On error f is left untouched.
func (f *Frame) CopyFrom(src *Frame) error {
	if err := src.Validate(); err != nil {
		return err
	}

	cw, ch := ChromaSize(src.Width, src.Height)
	widths := [3]int{src.Width, cw, cw}
	heights := [3]int{src.Height, ch, ch}

	var planes [3][]byte
	for p := 0; p < 3; p++ {
		size := widths[p] * heights[p]
		buf := f.Planes[p]
		if cap(buf) < size {
			buf = make([]byte, size)
		}
		buf = buf[:size]
		for row := 0; row < heights[p]; row++ {
			off := row * src.Pitches[p]
			copy(buf[row*widths[p]:(row+1)*widths[p]], src.Planes[p][off:off+widths[p]])
		}
		planes[p] = buf
	}

	f.Width = src.Width
	f.Height = src.Height
	f.Format = src.Format
	f.Planes = planes
	f.Pitches = widths
	f.ColorSpace = src.ColorSpace
	f.ColorRange = src.ColorRange
	f.PTS = src.PTS
	return nil
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() (*Frame, error) {
	c := &Frame{}
	if err := c.CopyFrom(f); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset drops the picture but keeps the buffers for reuse.
func (f *Frame) Reset() {
	f.Width = 0
	f.Height = 0
	f.PTS = 0
}

func (f *Frame) allocate(width, height int) {
	cw, ch := ChromaSize(width, height)
	f.Width = width
	f.Height = height
	f.Format = PixelFormatYUV420P
	f.Planes = [3][]byte{
		make([]byte, width*height),
		make([]byte, cw*ch),
		make([]byte, cw*ch),
	}
	f.Pitches = [3]int{width, cw, cw}
}

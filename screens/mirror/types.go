package mirror

import (
	"errors"
	"sync/atomic"

	"mirror-frame/pkg/fps"
	"mirror-frame/pkg/framebuffer"
	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

// ErrSinkOpen is returned by Destroy when the producer did not close the sink.
var ErrSinkOpen = errors.New("frame sink still open")

// DefaultDisplayMargins is subtracted from the usable display size on each
// axis when sizing the window.
const DefaultDisplayMargins = 96

// Params configures a Screen.
type Params struct {
	// Requested window position, geometry.PositionUndefined to center.
	WindowX int
	WindowY int
	// Requested window size, 0 to derive from the content.
	WindowWidth  int
	WindowHeight int

	Fullscreen      bool
	Orientation     geometry.Orientation
	StartFPSCounter bool

	// DisplayMargins is kept free around the window on each axis. Negative
	// selects DefaultDisplayMargins.
	DisplayMargins int
}

// Screen presents decoded frames in a window and maps input back to device
// coordinates. It implements media.FrameSink.
//
// Push is called from the producer goroutine; every other method must be
// called from the UI goroutine.
type Screen struct {
	surface  Surface
	notifier Notifier

	fb  *framebuffer.Buffer
	fps *fps.Counter

	req     Params
	margins int

	// set by Open, cleared by Close (producer side)
	sinkOpen atomic.Bool

	// Frame Size: raw size of the last applied frame
	frameSize geometry.Size
	// Content Size: frameSize under the current orientation
	contentSize geometry.Size
	orientation geometry.Orientation
	// area of the render output covered by the content
	rect geometry.Rect

	// content size to restore from once the window is windowed again
	windowedContentSize geometry.Size
	resizePending       bool

	hasFrame       bool
	hasVideoWindow bool
	paused         bool

	// frame is the presented frame
	frame *media.Frame
	// spare receives the next frame from the slot until it is presented
	spare *media.Frame
	// resumeFrame holds the latest frame received while paused
	resumeFrame *media.Frame

	debug bool
}

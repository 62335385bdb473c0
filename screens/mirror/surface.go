package mirror

import (
	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

// WindowState is the layout of the window as reported by the window system.
type WindowState uint8

const (
	WindowFullscreen WindowState = 1 << iota
	WindowMaximized
	WindowMinimized
)

// Windowed reports whether the window is in its normal layout, i.e. neither
// fullscreen, maximized nor minimized.
func (s WindowState) Windowed() bool {
	return s&(WindowFullscreen|WindowMaximized|WindowMinimized) == 0
}

// Has reports whether flag is set.
func (s WindowState) Has(flag WindowState) bool {
	return s&flag != 0
}

// Surface is the window and renderer the screen presents to.
//
// All methods are called from the UI goroutine. The size and position
// getters are expected to succeed once the window exists; a failure there is
// treated as fatal.
type Surface interface {
	WindowSize() (geometry.Size, error)
	// DrawableSize is the window size in pixels (differs on HiDPI displays).
	DrawableSize() (geometry.Size, error)
	WindowPosition() (geometry.Point, error)
	SetWindowSize(size geometry.Size) error
	// SetWindowPosition accepts geometry.PositionCentered on either axis.
	SetWindowPosition(p geometry.Point) error
	Show() error
	Hide() error
	State() WindowState
	// SetFullscreen requests a layout change; completion is reported later
	// as EventEnterFullscreen or EventLeaveFullscreen.
	SetFullscreen(fullscreen bool) error
	UsableDisplayBounds() (geometry.Size, error)

	RenderOutputSize() (geometry.Size, error)
	PrepareTexture(size geometry.Size, cs media.ColorSpace, cr media.ColorRange) error
	UpdateTexture(frame *media.Frame) error
	Clear() error
	// RenderFrame draws the texture into rect rotated and flipped by o.
	RenderFrame(rect geometry.Rect, o geometry.Orientation) error
	Present() error
	// SetStatus sets a text drawn over the video on the next render. Empty
	// hides it.
	SetStatus(text string)
}

// Notifier wakes the UI goroutine when a new frame is available. Calls are
// made from the producer goroutine.
type Notifier interface {
	NotifyNewFrame() error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func() error

func (f NotifierFunc) NotifyNewFrame() error {
	return f()
}

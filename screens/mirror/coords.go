package mirror

import (
	"mirror-frame/pkg/coords"
	"mirror-frame/pkg/geometry"
)

// WindowToFrame maps a pointer position in window coordinates to device
// frame coordinates. ok is false until the window is shown. Positions on the
// borders around the content map outside the frame.
func (s *Screen) WindowToFrame(p geometry.Point) (geometry.Point, bool) {
	if !s.hasVideoWindow {
		return geometry.Point{}, false
	}
	d := coords.WindowToDrawable(p, s.mustWindowSize(), s.mustDrawableSize())
	return s.DrawableToFrame(d)
}

// DrawableToFrame maps a position in drawable pixels to device frame
// coordinates. ok is false until the window is shown.
func (s *Screen) DrawableToFrame(p geometry.Point) (geometry.Point, bool) {
	if !s.hasVideoWindow || s.rect.W <= 0 || s.rect.H <= 0 {
		return geometry.Point{}, false
	}
	return coords.DrawableToFrame(p, s.rect, s.contentSize, s.orientation), true
}

// FrameToWindow maps a device frame position to window coordinates, e.g. to
// draw a touch indicator.
func (s *Screen) FrameToWindow(p geometry.Point) (geometry.Point, bool) {
	if !s.hasVideoWindow || s.rect.W <= 0 || s.rect.H <= 0 {
		return geometry.Point{}, false
	}
	d := coords.FrameToDrawable(p, s.rect, s.contentSize, s.orientation)
	// drawable -> window is the same scaling with the sizes swapped
	return coords.WindowToDrawable(d, s.mustDrawableSize(), s.mustWindowSize()), true
}

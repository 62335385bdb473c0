package mirror

import (
	"log"

	"mirror-frame/pkg/geometry"
)

// fatalf terminates on environment faults. Replaced in tests.
var fatalf = log.Fatalf

func (s *Screen) isWindowed() bool {
	return s.surface.State().Windowed()
}

// displayBounds returns the usable display area minus margins, or nil if it
// could not be queried.
func (s *Screen) displayBounds() *geometry.Size {
	usable, err := s.surface.UsableDisplayBounds()
	if err != nil {
		log.Printf("Warning: Screen: could not get display usable bounds: %v", err)
		return nil
	}
	b := geometry.PreferredDisplayBounds(usable, s.margins)
	return &b
}

func (s *Screen) setWindowSize(size geometry.Size) {
	if err := s.surface.SetWindowSize(size); err != nil {
		log.Printf("Warning: Screen: could not resize window to %s: %v", size, err)
	}
}

// setContentSize resizes the window for the new content when windowed.
// Otherwise the resize is deferred until the window is windowed again, based
// on the content size it had before the first deferred change.
func (s *Screen) setContentSize(size geometry.Size) {
	if !s.isWindowed() {
		if !s.resizePending {
			s.windowedContentSize = s.contentSize
			s.resizePending = true
			s.debugf("Screen: resize deferred from content %s", s.contentSize)
		}
	} else {
		s.resizeForContent(s.contentSize, size)
	}
	s.contentSize = size
}

// resizeForContent scales the window by new/old content so the zoom level is
// kept, then removes the borders.
func (s *Screen) resizeForContent(oldContent, newContent geometry.Size) {
	if oldContent.IsEmpty() {
		return
	}
	window := s.mustWindowSize()
	target := geometry.ScaleForContent(window, oldContent, newContent)
	target = geometry.OptimalSize(target, newContent, s.displayBounds())
	s.setWindowSize(target)
	s.debugf("Screen: window %s -> %s for content %s -> %s", window, target, oldContent, newContent)
}

// applyPendingResize applies a resize deferred while the window was not
// windowed. Must only be called once the window is windowed.
func (s *Screen) applyPendingResize() {
	if !s.resizePending {
		return
	}
	s.resizeForContent(s.windowedContentSize, s.contentSize)
	s.resizePending = false
}

// SetOrientation changes how the frame is rotated and flipped on display.
func (s *Screen) SetOrientation(o geometry.Orientation) {
	if !o.Valid() {
		log.Printf("Warning: Screen: invalid orientation %d", o)
		return
	}
	if o == s.orientation {
		return
	}

	if !s.hasFrame {
		// applied with the first frame
		s.orientation = o
		return
	}

	s.setContentSize(geometry.OrientedSize(s.frameSize, o))
	s.orientation = o
	log.Printf("Screen: display orientation set to %s", o)

	if s.hasVideoWindow {
		s.render(true)
	}
}

// Orientation returns the display orientation.
func (s *Screen) Orientation() geometry.Orientation {
	return s.orientation
}

// FrameSize returns the size of the last applied frame.
func (s *Screen) FrameSize() geometry.Size {
	return s.frameSize
}

// ContentSize returns the frame size under the display orientation.
func (s *Screen) ContentSize() geometry.Size {
	return s.contentSize
}

// ContentRect returns the area of the render output covered by the video.
func (s *Screen) ContentRect() geometry.Rect {
	return s.rect
}

func (s *Screen) mustWindowSize() geometry.Size {
	size, err := s.surface.WindowSize()
	if err != nil {
		fatalf("Screen: could not get window size: %v", err)
	}
	return size
}

func (s *Screen) mustDrawableSize() geometry.Size {
	size, err := s.surface.DrawableSize()
	if err != nil {
		fatalf("Screen: could not get drawable size: %v", err)
	}
	return size
}

func (s *Screen) mustWindowPosition() geometry.Point {
	p, err := s.surface.WindowPosition()
	if err != nil {
		fatalf("Screen: could not get window position: %v", err)
	}
	return p
}

func (s *Screen) mustRenderOutputSize() geometry.Size {
	size, err := s.surface.RenderOutputSize()
	if err != nil {
		fatalf("Screen: could not get render output size: %v", err)
	}
	return size
}

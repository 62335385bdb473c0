package mirror

import "log"

// Event is a notification delivered to the screen on the UI goroutine.
type Event int

const (
	// EventNewFrame follows a NotifyNewFrame call.
	EventNewFrame Event = iota
	EventWindowExposed
	// EventPixelSizeChanged is sent when the drawable size changes, on
	// window resize or on a display density change.
	EventPixelSizeChanged
	// EventWindowRestored is sent when the window leaves the maximized or
	// minimized state.
	EventWindowRestored
	EventEnterFullscreen
	EventLeaveFullscreen
)

var eventNames = map[Event]string{
	EventNewFrame:         "new-frame",
	EventWindowExposed:    "window-exposed",
	EventPixelSizeChanged: "pixel-size-changed",
	EventWindowRestored:   "window-restored",
	EventEnterFullscreen:  "enter-fullscreen",
	EventLeaveFullscreen:  "leave-fullscreen",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// HandleEvent reacts to ev and reports whether the screen consumed it.
// Window events are ignored until the window has been shown.
func (s *Screen) HandleEvent(ev Event) bool {
	if ev == EventNewFrame {
		if err := s.updateFrame(); err != nil {
			log.Printf("Warning: Screen: frame update failed: %v", err)
		}
		return true
	}

	if !s.hasVideoWindow {
		return false
	}
	s.debugf("Screen: event %s", ev)

	switch ev {
	case EventWindowExposed, EventPixelSizeChanged:
		s.render(true)
	case EventEnterFullscreen:
		// the pixel size change that follows redraws
		log.Printf("Screen: switched to fullscreen mode")
	case EventWindowRestored, EventLeaveFullscreen:
		if ev == EventLeaveFullscreen {
			log.Printf("Screen: switched to windowed mode")
		}
		if s.isWindowed() {
			s.applyPendingResize()
			s.render(true)
		}
	default:
		return false
	}
	return true
}

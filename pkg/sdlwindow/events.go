package sdlwindow

import (
	"github.com/veandco/go-sdl2/sdl"

	"mirror-frame/screens/mirror"
)

// NotifyNewFrame posts the new frame event to the SDL event queue. Safe to
// call from any goroutine.
func (w *Window) NotifyNewFrame() error {
	_, err := sdl.PushEvent(&sdl.UserEvent{Type: w.frameEvent})
	return err
}

// Translate converts an SDL event into screen events. It returns nil for
// events the screen does not handle.
func (w *Window) Translate(ev sdl.Event) []mirror.Event {
	switch e := ev.(type) {
	case *sdl.UserEvent:
		if e.Type == w.frameEvent {
			return []mirror.Event{mirror.EventNewFrame}
		}
	case *sdl.WindowEvent:
		if w.window == nil || e.WindowID != w.ID() {
			return nil
		}
		fullscreen := w.State().Has(mirror.WindowFullscreen)
		events := windowEvents(e.Event, w.fullscreen, fullscreen)
		w.fullscreen = fullscreen
		return events
	}
	return nil
}

// windowEvents maps an SDL window event id. Fullscreen transitions are not
// reported by SDL as such; they are detected from the window flags.
func windowEvents(kind uint8, wasFullscreen, fullscreen bool) []mirror.Event {
	var events []mirror.Event
	switch {
	case fullscreen && !wasFullscreen:
		events = append(events, mirror.EventEnterFullscreen)
	case !fullscreen && wasFullscreen:
		events = append(events, mirror.EventLeaveFullscreen)
	}

	switch kind {
	case sdl.WINDOWEVENT_EXPOSED:
		events = append(events, mirror.EventWindowExposed)
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		events = append(events, mirror.EventPixelSizeChanged)
	case sdl.WINDOWEVENT_RESTORED:
		if !fullscreen {
			events = append(events, mirror.EventWindowRestored)
		}
	}
	return events
}

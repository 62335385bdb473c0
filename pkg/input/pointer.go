package input

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"mirror-frame/pkg/geometry"
)

// PointerAction is the kind of a pointer event sent to the device.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerUp
	PointerMove
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	}
	return "unknown"
}

// PointerEvent is a pointer event in device frame coordinates.
type PointerEvent struct {
	Action PointerAction
	// Position in the frame. Moves and releases of a drag that left the
	// content lie outside FrameSize.
	Position  geometry.Point
	FrameSize geometry.Size
	// Buttons is the SDL mask of the buttons held after the event.
	Buttons uint32
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%s (%d,%d)/%s buttons=%#x", e.Action, e.Position.X, e.Position.Y, e.FrameSize, e.Buttons)
}

// touchMouseID is the mouse id SDL uses for events synthesized from touch.
const touchMouseID = ^uint32(0)

// Dispatcher delivers pointer events to the device.
type Dispatcher interface {
	DispatchPointer(ev PointerEvent) error
}

// LogDispatcher logs pointer events instead of sending them.
type LogDispatcher struct{}

func (LogDispatcher) DispatchPointer(ev PointerEvent) error {
	log.Printf("Input: pointer %s", ev)
	return nil
}

// Mapper converts window positions to frame positions. The mapping is total:
// ok is only false while there is no content to map to.
type Mapper interface {
	WindowToFrame(p geometry.Point) (geometry.Point, bool)
	FrameSize() geometry.Size
}

// Pointer forwards mouse events over the content to a Dispatcher.
type Pointer struct {
	mapper     Mapper
	dispatcher Dispatcher
	buttons    MousePressTracker
	last       geometry.Point // frame position of the last event sent
}

// NewPointer creates a pointer handler.
func NewPointer(mapper Mapper, dispatcher Dispatcher) *Pointer {
	return &Pointer{mapper: mapper, dispatcher: dispatcher}
}

// Button handles a button transition at window position (x, y). A press on
// the borders around the content is ignored, with its release. The release
// of a press that was sent is always sent, wherever it happens.
func (p *Pointer) Button(x, y int32, button uint8, down bool) {
	pos, ok := p.mapper.WindowToFrame(geometry.Point{X: int(x), Y: int(y)})
	if down {
		if !ok || !inside(pos, p.mapper.FrameSize()) {
			return
		}
		if p.buttons.Update(button, true) {
			p.dispatch(PointerDown, pos)
		}
		return
	}

	if !p.buttons.Update(button, false) {
		// not pressed, or pressed outside the content
		return
	}
	if !ok {
		pos = p.last
	}
	p.dispatch(PointerUp, pos)
}

// Motion handles a move. Moves without a pressed button are not sent; moves
// while dragging are sent even off the content.
func (p *Pointer) Motion(x, y int32) {
	if !p.buttons.Any() {
		return
	}
	pos, ok := p.mapper.WindowToFrame(geometry.Point{X: int(x), Y: int(y)})
	if !ok {
		return
	}
	p.dispatch(PointerMove, pos)
}

func inside(pos geometry.Point, frame geometry.Size) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < frame.Width && pos.Y < frame.Height
}

func (p *Pointer) dispatch(action PointerAction, pos geometry.Point) {
	p.last = pos
	ev := PointerEvent{
		Action:    action,
		Position:  pos,
		FrameSize: p.mapper.FrameSize(),
		Buttons:   p.buttons.Mask(),
	}
	if err := p.dispatcher.DispatchPointer(ev); err != nil {
		log.Printf("Warning: Input: could not dispatch pointer event: %v", err)
	}
}

// HandleEvent handles SDL mouse events and reports whether ev was one.
func (p *Pointer) HandleEvent(ev sdl.Event) bool {
	switch e := ev.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID {
			return true
		}
		p.Button(e.X, e.Y, e.Button, e.Type == sdl.MOUSEBUTTONDOWN)
		return true
	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID {
			return true
		}
		p.Motion(e.X, e.Y)
		return true
	}
	return false
}

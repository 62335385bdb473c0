// Package input turns keyboard and mouse events of the mirror window into
// screen actions and device pointer events.
package input

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"mirror-frame/pkg/geometry"
)

// Action is a shortcut bound to a key combination.
type Action int

const (
	ActionNone Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionFlipHorizontal
	ActionFlipVertical
	ActionTogglePause
	ActionResume
	ActionToggleFullscreen
	ActionResizeToFit
	ActionResizeToPixelPerfect
	ActionToggleFPS
	ActionSnapshot
)

var actionNames = map[Action]string{
	ActionNone:                 "none",
	ActionRotateLeft:           "rotate-left",
	ActionRotateRight:          "rotate-right",
	ActionFlipHorizontal:       "flip-horizontal",
	ActionFlipVertical:         "flip-vertical",
	ActionTogglePause:          "toggle-pause",
	ActionResume:               "resume",
	ActionToggleFullscreen:     "toggle-fullscreen",
	ActionResizeToFit:          "resize-to-fit",
	ActionResizeToPixelPerfect: "resize-to-pixel-perfect",
	ActionToggleFPS:            "toggle-fps",
	ActionSnapshot:             "snapshot",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Shortcut modifiers: Alt or Super ("MOD"), optionally with Shift.
const (
	modMask   = sdl.KMOD_LALT | sdl.KMOD_RALT | sdl.KMOD_LGUI | sdl.KMOD_RGUI
	shiftMask = sdl.KMOD_LSHIFT | sdl.KMOD_RSHIFT
	ctrlMask  = sdl.KMOD_LCTRL | sdl.KMOD_RCTRL
)

type binding struct {
	scancode sdl.Scancode
	shift    bool
}

var defaultBindings = map[binding]Action{
	{sdl.SCANCODE_LEFT, false}:  ActionRotateLeft,
	{sdl.SCANCODE_RIGHT, false}: ActionRotateRight,
	{sdl.SCANCODE_LEFT, true}:   ActionFlipHorizontal,
	{sdl.SCANCODE_RIGHT, true}:  ActionFlipHorizontal,
	{sdl.SCANCODE_UP, true}:     ActionFlipVertical,
	{sdl.SCANCODE_DOWN, true}:   ActionFlipVertical,
	{sdl.SCANCODE_Z, false}:     ActionTogglePause,
	{sdl.SCANCODE_Z, true}:      ActionResume,
	{sdl.SCANCODE_F, false}:     ActionToggleFullscreen,
	{sdl.SCANCODE_W, false}:     ActionResizeToFit,
	{sdl.SCANCODE_G, false}:     ActionResizeToPixelPerfect,
	{sdl.SCANCODE_I, false}:     ActionToggleFPS,
	{sdl.SCANCODE_P, false}:     ActionSnapshot,
}

// Shortcuts matches key presses against the MOD+key bindings.
type Shortcuts struct {
	keys KeyPressTracker
}

// NewShortcuts creates the default bindings.
func NewShortcuts() *Shortcuts {
	return &Shortcuts{keys: NewKeyPressTracker()}
}

// Match returns the action for a key transition, ActionNone if the key is not
// a shortcut or is held down.
func (s *Shortcuts) Match(scancode sdl.Scancode, mod uint16, down bool) Action {
	if !s.keys.Update(scancode, down) {
		return ActionNone
	}
	if mod&modMask == 0 || mod&ctrlMask != 0 {
		return ActionNone
	}
	return defaultBindings[binding{scancode: scancode, shift: mod&shiftMask != 0}]
}

// HandleEvent matches an SDL keyboard event. Other events give ActionNone.
func (s *Shortcuts) HandleEvent(ev sdl.Event) Action {
	switch e := ev.(type) {
	case *sdl.KeyboardEvent:
		return s.Match(e.Keysym.Scancode, e.Keysym.Mod, e.Type == sdl.KEYDOWN)
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			s.keys.Reset()
		}
	}
	return ActionNone
}

// Target is what shortcuts act on.
type Target interface {
	Orientation() geometry.Orientation
	SetOrientation(o geometry.Orientation)
	TogglePaused()
	SetPaused(paused bool)
	ToggleFullscreen()
	ResizeToFit()
	ResizeToPixelPerfect()
	ToggleFPSCounter()
}

// Apply runs a on t and reports whether it was handled. ActionSnapshot is
// left to the caller.
func Apply(a Action, t Target) bool {
	switch a {
	case ActionRotateLeft:
		t.SetOrientation(t.Orientation().Apply(geometry.RotateLeft))
	case ActionRotateRight:
		t.SetOrientation(t.Orientation().Apply(geometry.RotateRight))
	case ActionFlipHorizontal:
		t.SetOrientation(t.Orientation().Apply(geometry.FlipHorizontal))
	case ActionFlipVertical:
		t.SetOrientation(t.Orientation().Apply(geometry.FlipVertical))
	case ActionTogglePause:
		t.TogglePaused()
	case ActionResume:
		t.SetPaused(false)
	case ActionToggleFullscreen:
		t.ToggleFullscreen()
	case ActionResizeToFit:
		t.ResizeToFit()
	case ActionResizeToPixelPerfect:
		t.ResizeToPixelPerfect()
	case ActionToggleFPS:
		t.ToggleFPSCounter()
	default:
		return false
	}
	log.Printf("Input: %s", a)
	return true
}

package input

import "github.com/veandco/go-sdl2/sdl"

// KeyPressTracker reports key press edges so a held key triggers its
// shortcut once.
type KeyPressTracker struct {
	pressed map[sdl.Scancode]bool
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{
		pressed: make(map[sdl.Scancode]bool),
	}
}

// Update records the key state and reports whether the key was just pressed
// (not held).
func (kpt *KeyPressTracker) Update(scancode sdl.Scancode, down bool) bool {
	wasPressed := kpt.pressed[scancode]
	kpt.pressed[scancode] = down
	return down && !wasPressed
}

// Reset forgets all keys, e.g. when the window loses focus and key up events
// may be lost.
func (kpt *KeyPressTracker) Reset() {
	clear(kpt.pressed)
}

// MousePressTracker keeps the set of pressed mouse buttons as an SDL button
// mask.
type MousePressTracker struct {
	mask uint32
}

// Update records a button transition and reports whether it changed the
// state (a duplicate down or up is ignored).
func (mpt *MousePressTracker) Update(button uint8, down bool) bool {
	bit := buttonMask(button)
	was := mpt.mask&bit != 0
	if down {
		mpt.mask |= bit
	} else {
		mpt.mask &^= bit
	}
	return was != down
}

// Mask returns the pressed buttons.
func (mpt *MousePressTracker) Mask() uint32 {
	return mpt.mask
}

// Any reports whether at least one button is pressed.
func (mpt *MousePressTracker) Any() bool {
	return mpt.mask != 0
}

func buttonMask(button uint8) uint32 {
	if button == 0 {
		return 0
	}
	return 1 << (button - 1)
}

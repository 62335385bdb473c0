package geometry

import (
	"fmt"
	"strings"
)

// Orientation is one of the eight display transforms: a clockwise rotation by
// a multiple of 90 degrees, optionally preceded by a horizontal flip.
//
// Bits 0-1 hold the number of clockwise quarter turns, bit 2 the flip.
type Orientation uint8

const (
	Orientation0 Orientation = iota
	Orientation90
	Orientation180
	Orientation270
	OrientationFlip0
	OrientationFlip90
	OrientationFlip180
	OrientationFlip270
)

const flipBit = 4

var orientationNames = [...]string{
	Orientation0:       "0",
	Orientation90:      "90",
	Orientation180:     "180",
	Orientation270:     "270",
	OrientationFlip0:   "flip0",
	OrientationFlip90:  "flip90",
	OrientationFlip180: "flip180",
	OrientationFlip270: "flip270",
}

// ParseOrientation accepts the names produced by Orientation.String.
func ParseOrientation(s string) (Orientation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for o, n := range orientationNames {
		if n == name {
			return Orientation(o), nil
		}
	}
	return Orientation0, fmt.Errorf("unknown orientation %q (expected 0, 90, 180, 270, flip0, flip90, flip180 or flip270)", s)
}

// String returns a human-readable orientation name
func (o Orientation) String() string {
	if o.Valid() {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Valid reports whether o is one of the eight defined orientations.
func (o Orientation) Valid() bool {
	return o <= OrientationFlip270
}

// Rotation returns the number of clockwise quarter turns.
func (o Orientation) Rotation() int {
	return int(o & 3)
}

// IsMirror reports whether the content is flipped horizontally.
func (o Orientation) IsMirror() bool {
	return o&flipBit != 0
}

// IsSwap reports whether width and height are exchanged (90 or 270 degrees).
func (o Orientation) IsSwap() bool {
	return o&1 != 0
}

// Apply composes transform on top of o.
//
// An orientation is hflip × rotate. Appending a flipped transform to a
// swapped source moves the second flip left across the source rotation,
// which negates that rotation, i.e. adds 180 degrees for 90/270.
func (o Orientation) Apply(transform Orientation) Orientation {
	srcRotation := o & 3
	if o.IsSwap() && transform.IsMirror() {
		srcRotation += 2
	}
	hflip := (o ^ transform) & flipBit
	rotation := (srcRotation + transform&3) % 4
	return hflip | rotation
}

// Inverse returns the orientation that undoes o.
func (o Orientation) Inverse() Orientation {
	if o.IsMirror() {
		// hflip × rotate(r) is its own inverse
		return o
	}
	return (4 - o&3) % 4
}

// Transforms used by the rotation/flip shortcuts.
const (
	RotateRight    = Orientation90
	RotateLeft     = Orientation270
	FlipHorizontal = OrientationFlip0
	FlipVertical   = OrientationFlip180
)

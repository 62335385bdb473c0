package geometry

import "fmt"

// PositionUndefined marks a window coordinate the user did not request.
// It lies outside the range of any position a window system reports.
const PositionUndefined = -0x8000

// PositionCentered asks the window system to center the window on that axis.
const PositionCentered = -0x7FFF

// Size is a width/height pair in pixels. Both fields are non-negative.
type Size struct {
	Width  int
	Height int
}

// IsEmpty reports whether either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is a position, in window, drawable or frame space depending on context.
type Point struct {
	X int
	Y int
}

// Rect is the area of the render output covered by the video content.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// FRect is a floating point rectangle handed to the renderer.
type FRect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Package coords converts pointer positions between window space, drawable
// space and device frame space.
package coords

import (
	"fmt"

	"mirror-frame/pkg/geometry"
)

// WindowToDrawable applies the pixel density scale (drawable/window, per axis).
func WindowToDrawable(p geometry.Point, window, drawable geometry.Size) geometry.Point {
	if window.IsEmpty() {
		return p
	}
	// 64 bits for intermediate multiplications
	return geometry.Point{
		X: int(int64(p.X) * int64(drawable.Width) / int64(window.Width)),
		Y: int(int64(p.Y) * int64(drawable.Height) / int64(window.Height)),
	}
}

// DrawableToFrame maps a point of the render output to the device frame.
//
// content is the oriented content size and rect the area of the output it
// covers. rect must have a positive width and height; this holds as soon as a
// frame has been rendered.
func DrawableToFrame(p geometry.Point, rect geometry.Rect, content geometry.Size, o geometry.Orientation) geometry.Point {
	if rect.W <= 0 || rect.H <= 0 {
		panic(fmt.Sprintf("coords: content rect %+v is empty", rect))
	}

	w := content.Width
	h := content.Height

	x := int(int64(p.X-rect.X) * int64(w) / int64(rect.W))
	y := int(int64(p.Y-rect.Y) * int64(h) / int64(rect.H))

	switch o {
	case geometry.Orientation0:
		return geometry.Point{X: x, Y: y}
	case geometry.Orientation90:
		return geometry.Point{X: y, Y: w - x}
	case geometry.Orientation180:
		return geometry.Point{X: w - x, Y: h - y}
	case geometry.Orientation270:
		return geometry.Point{X: h - y, Y: x}
	case geometry.OrientationFlip0:
		return geometry.Point{X: w - x, Y: y}
	case geometry.OrientationFlip90:
		return geometry.Point{X: h - y, Y: w - x}
	case geometry.OrientationFlip180:
		return geometry.Point{X: x, Y: h - y}
	case geometry.OrientationFlip270:
		return geometry.Point{X: y, Y: x}
	}
	panic(fmt.Sprintf("coords: invalid orientation %d", uint8(o)))
}

// FrameToDrawable is the inverse of DrawableToFrame, up to the rounding of
// the scale step.
func FrameToDrawable(p geometry.Point, rect geometry.Rect, content geometry.Size, o geometry.Orientation) geometry.Point {
	if content.IsEmpty() {
		panic(fmt.Sprintf("coords: content size %v is empty", content))
	}

	w := content.Width
	h := content.Height

	var x, y int
	switch o {
	case geometry.Orientation0:
		x, y = p.X, p.Y
	case geometry.Orientation90:
		x, y = w-p.Y, p.X
	case geometry.Orientation180:
		x, y = w-p.X, h-p.Y
	case geometry.Orientation270:
		x, y = p.Y, h-p.X
	case geometry.OrientationFlip0:
		x, y = w-p.X, p.Y
	case geometry.OrientationFlip90:
		x, y = w-p.Y, h-p.X
	case geometry.OrientationFlip180:
		x, y = p.X, h-p.Y
	case geometry.OrientationFlip270:
		x, y = p.Y, p.X
	default:
		panic(fmt.Sprintf("coords: invalid orientation %d", uint8(o)))
	}

	return geometry.Point{
		X: rect.X + int(int64(x)*int64(rect.W)/int64(w)),
		Y: rect.Y + int(int64(y)*int64(rect.H)/int64(h)),
	}
}

// WindowToFrame maps a pointer position reported by the window system to
// device frame coordinates.
func WindowToFrame(p geometry.Point, window, drawable geometry.Size, rect geometry.Rect, content geometry.Size, o geometry.Orientation) geometry.Point {
	return DrawableToFrame(WindowToDrawable(p, window, drawable), rect, content, o)
}

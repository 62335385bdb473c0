// Package geometry computes window and content sizes for the mirror window.
//
// All arithmetic is integer: floor division and cross-multiplication match
// the discrete pixel grid exactly, so a window computed here never shows a
// rounding border on the axis it was derived from.
package geometry

// OrientedSize returns size with width and height exchanged when o rotates
// by 90 or 270 degrees.
func OrientedSize(size Size, o Orientation) Size {
	if o.IsSwap() {
		return Size{Width: size.Height, Height: size.Width}
	}
	return size
}

// IsOptimal reports whether one dimension of window can be recomputed from
// the other using the content aspect ratio.
func IsOptimal(window, content Size) bool {
	if content.IsEmpty() {
		return false
	}
	return window.Height == window.Width*content.Height/content.Width ||
		window.Width == window.Height*content.Width/content.Height
}

// PreferredDisplayBounds shrinks the usable display area by margins on each axis.
func PreferredDisplayBounds(usable Size, margins int) Size {
	return Size{
		Width:  max(0, usable.Width-margins),
		Height: max(0, usable.Height-margins),
	}
}

// keepWidth reports whether content is relatively wider than area, in which
// case the width of area is kept and the height is derived from it.
func keepWidth(area, content Size) bool {
	return content.Width*area.Height > content.Height*area.Width
}

// OptimalSize returns the largest size, keeping at least one dimension of
// current (or of current clamped to bounds), that has the content aspect
// ratio. A nil bounds leaves current unconstrained.
func OptimalSize(current, content Size, bounds *Size) Size {
	if content.IsEmpty() {
		// avoid division by zero
		return current
	}

	window := current
	if bounds != nil {
		window.Width = min(current.Width, bounds.Width)
		window.Height = min(current.Height, bounds.Height)
	}

	if IsOptimal(window, content) {
		return window
	}

	if keepWidth(window, content) {
		// remove the borders on top and bottom
		window.Height = content.Height * window.Width / content.Width
	} else {
		// remove the borders on the left and right
		window.Width = content.Width * window.Height / content.Height
	}
	return window
}

// InitialOptimalSize computes the size of the window on first frame.
// reqWidth and reqHeight are the dimensions requested by the user, 0 when
// unspecified.
func InitialOptimalSize(content Size, reqWidth, reqHeight int, bounds *Size) Size {
	if reqWidth == 0 && reqHeight == 0 {
		return OptimalSize(content, content, bounds)
	}
	if content.IsEmpty() {
		return Size{Width: reqWidth, Height: reqHeight}
	}

	window := Size{Width: reqWidth, Height: reqHeight}
	if reqWidth == 0 {
		window.Width = reqHeight * content.Width / content.Height
	}
	if reqHeight == 0 {
		window.Height = reqWidth * content.Height / content.Width
	}
	return window
}

// ScaleForContent scales window by the ratio between the new and old content
// sizes, per axis, so that the zoom level survives a content change.
func ScaleForContent(window, oldContent, newContent Size) Size {
	if oldContent.IsEmpty() {
		return window
	}
	return Size{
		Width:  window.Width * newContent.Width / oldContent.Width,
		Height: window.Height * newContent.Height / oldContent.Height,
	}
}

// ContentRect centers content inside output, preserving its aspect ratio.
func ContentRect(output, content Size) Rect {
	if content.IsEmpty() || IsOptimal(output, content) {
		return Rect{W: output.Width, H: output.Height}
	}

	if keepWidth(output, content) {
		h := output.Width * content.Height / content.Width
		return Rect{
			X: 0,
			Y: (output.Height - h) / 2,
			W: output.Width,
			H: h,
		}
	}

	w := output.Height * content.Width / content.Height
	return Rect{
		X: (output.Width - w) / 2,
		Y: 0,
		W: w,
		H: output.Height,
	}
}

// TextureRect returns the destination rectangle for a texture that the
// renderer rotates about its center by o. For swapped orientations the
// unrotated texture is laid out with exchanged dimensions, centered on rect.
func TextureRect(rect Rect, o Orientation) FRect {
	if !o.IsSwap() {
		return FRect{X: float32(rect.X), Y: float32(rect.Y), W: float32(rect.W), H: float32(rect.H)}
	}
	return FRect{
		X: float32(rect.X) + float32(rect.W-rect.H)/2,
		Y: float32(rect.Y) + float32(rect.H-rect.W)/2,
		W: float32(rect.H),
		H: float32(rect.W),
	}
}

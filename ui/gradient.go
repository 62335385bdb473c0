package ui

import "github.com/veandco/go-sdl2/sdl"

// lerpColor interpolates between two colors, alpha included. t is clamped
// to [0, 1].
func lerpColor(from, to sdl.Color, t float64) sdl.Color {
	t = max(0, min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
	}
	return sdl.Color{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}

// DrawGradientRect fills rect with a vertical gradient. The renderer must
// use blend mode for translucent colors.
func DrawGradientRect(renderer *sdl.Renderer, rect sdl.Rect, top, bottom sdl.Color) {
	for i := int32(0); i < rect.H; i++ {
		t := 0.0
		if rect.H > 1 {
			t = float64(i) / float64(rect.H-1)
		}
		c := lerpColor(top, bottom, t)
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.DrawLine(rect.X, rect.Y+i, rect.X+rect.W-1, rect.Y+i)
	}
}

package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders text with its top-left corner at (x, y) and returns the
// size of the drawn text.
func RenderText(renderer *sdl.Renderer, text string, x, y int32, color sdl.Color, font *ttf.Font) (int32, int32, error) {
	if font == nil {
		return 0, 0, fmt.Errorf("font not available")
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0, err
	}
	defer texture.Destroy()

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0, err
	}

	dstRect := sdl.Rect{X: x, Y: y, W: w, H: h}
	return w, h, renderer.Copy(texture, nil, &dstRect)
}

// TextSize measures text without drawing it.
func TextSize(text string, font *ttf.Font) (int32, int32, error) {
	if font == nil {
		return 0, 0, fmt.Errorf("font not available")
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0, err
	}
	return int32(w), int32(h), nil
}

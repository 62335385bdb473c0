package ui

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	labelPadding = 10
	labelMargin  = 16
)

var (
	labelText   = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	labelTop    = sdl.Color{R: 20, G: 20, B: 20, A: 200}
	labelBottom = sdl.Color{R: 0, G: 0, B: 0, A: 160}
)

// StatusOverlay draws a short status text, such as PAUSED, in the top-left
// corner of the content.
type StatusOverlay struct {
	fonts *Fonts
}

// NewStatusOverlay creates an overlay drawing with fonts. A nil fonts makes
// Draw a no-op.
func NewStatusOverlay(fonts *Fonts) *StatusOverlay {
	return &StatusOverlay{fonts: fonts}
}

// Draw renders text inside area (the content rectangle).
func (o *StatusOverlay) Draw(renderer *sdl.Renderer, text string, area sdl.Rect) error {
	if o == nil || o.fonts == nil || o.fonts.Status == nil || text == "" {
		return nil
	}

	w, h, err := TextSize(text, o.fonts.Status)
	if err != nil {
		return err
	}

	box := labelBox(w, h, area)
	DrawGradientRect(renderer, box, labelTop, labelBottom)
	_, _, err = RenderText(renderer, text, box.X+labelPadding, box.Y+labelPadding, labelText, o.fonts.Status)
	return err
}

// labelBox places a padded box for text of size w x h in the top-left
// corner of area, shrinking the margin when area is small.
func labelBox(w, h int32, area sdl.Rect) sdl.Rect {
	margin := int32(labelMargin)
	if area.W < 4*labelMargin || area.H < 4*labelMargin {
		margin = 0
	}
	return sdl.Rect{
		X: area.X + margin,
		Y: area.Y + margin,
		W: w + 2*labelPadding,
		H: h + 2*labelPadding,
	}
}

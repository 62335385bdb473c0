package sdlwindow

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

// PrepareTexture (re)creates the streaming texture for frames of size.
func (w *Window) PrepareTexture(size geometry.Size, cs media.ColorSpace, cr media.ColorRange) error {
	sdl.SetYUVConversionMode(yuvConversionMode(cs, cr))

	if w.texture != nil && w.textureSize == size {
		return nil
	}
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}

	texture, err := w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_IYUV), sdl.TEXTUREACCESS_STREAMING,
		int32(size.Width), int32(size.Height))
	if err != nil {
		return fmt.Errorf("could not create texture: %w", err)
	}
	w.texture = texture
	w.textureSize = size
	log.Printf("Renderer: texture %s", size)
	return nil
}

// yuvConversionMode picks the YUV matrix. Full range content is decoded with
// the JPEG matrix.
func yuvConversionMode(cs media.ColorSpace, cr media.ColorRange) sdl.YUV_CONVERSION_MODE {
	if cr == media.ColorRangeFull {
		return sdl.YUV_CONVERSION_JPEG
	}
	switch cs {
	case media.ColorSpaceBT709:
		return sdl.YUV_CONVERSION_BT709
	case media.ColorSpaceBT601:
		return sdl.YUV_CONVERSION_BT601
	}
	return sdl.YUV_CONVERSION_AUTOMATIC
}

// UpdateTexture uploads frame to the texture.
func (w *Window) UpdateTexture(frame *media.Frame) error {
	if w.texture == nil {
		return fmt.Errorf("texture not prepared")
	}
	if frame.Width != w.textureSize.Width || frame.Height != w.textureSize.Height {
		return fmt.Errorf("frame %dx%d does not match texture %s", frame.Width, frame.Height, w.textureSize)
	}
	return w.texture.UpdateYUV(nil,
		frame.Planes[0], frame.Pitches[0],
		frame.Planes[1], frame.Pitches[1],
		frame.Planes[2], frame.Pitches[2])
}

func (w *Window) Clear() error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	return w.renderer.Clear()
}

// RenderFrame draws the texture into rect, rotated clockwise and mirrored
// as o requires.
func (w *Window) RenderFrame(rect geometry.Rect, o geometry.Orientation) error {
	if w.texture == nil {
		return fmt.Errorf("texture not prepared")
	}
	w.rect = rect

	if o == geometry.Orientation0 {
		dst := sdl.Rect{X: int32(rect.X), Y: int32(rect.Y), W: int32(rect.W), H: int32(rect.H)}
		return w.renderer.Copy(w.texture, nil, &dst)
	}

	angle, flip := copyExParams(o)
	r := geometry.TextureRect(rect, o)
	dst := sdl.FRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	return w.renderer.CopyExF(w.texture, nil, &dst, angle, nil, flip)
}

func copyExParams(o geometry.Orientation) (float64, sdl.RendererFlip) {
	var flip sdl.RendererFlip = sdl.FLIP_NONE
	if o.IsMirror() {
		flip = sdl.FLIP_HORIZONTAL
	}
	return float64(90 * o.Rotation()), flip
}

// Present draws the status label, if any, and shows the frame.
func (w *Window) Present() error {
	var err error
	if w.status != "" {
		area := sdl.Rect{X: int32(w.rect.X), Y: int32(w.rect.Y), W: int32(w.rect.W), H: int32(w.rect.H)}
		if err = w.overlay.Draw(w.renderer, w.status, area); err != nil {
			err = fmt.Errorf("status label: %w", err)
		}
	}
	w.renderer.Present()
	return err
}

// Package sdlwindow implements the mirror window and renderer on SDL2.
//
// All methods except NotifyNewFrame must be called from the goroutine that
// initialized SDL, locked to its OS thread.
package sdlwindow

import (
	"errors"
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"mirror-frame/pkg/geometry"
	"mirror-frame/screens/mirror"
	"mirror-frame/ui"
)

// placeholder size of the hidden window until the first frame sizes it
const placeholderSize = 256

// Options configures window creation.
type Options struct {
	Title       string
	Borderless  bool
	AlwaysOnTop bool
}

// Window is an SDL window with a renderer and a streaming YUV texture.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	texture     *sdl.Texture
	textureSize geometry.Size

	overlay *ui.StatusOverlay
	status  string
	rect    geometry.Rect // last rendered content rect

	// last observed fullscreen flag, to report transitions
	fullscreen bool

	frameEvent uint32
}

var (
	_ mirror.Surface  = (*Window)(nil)
	_ mirror.Notifier = (*Window)(nil)
)

// New creates the window hidden, with its renderer. overlay may be nil.
func New(opts Options, overlay *ui.StatusOverlay) (*Window, error) {
	frameEvent := sdl.RegisterEvents(1)
	if frameEvent == ^uint32(0) {
		return nil, fmt.Errorf("could not register new frame event: %v", sdl.GetError())
	}

	window, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		placeholderSize, placeholderSize, windowFlags(opts))
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}

	renderer, err := createRenderer(window)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("could not create renderer: %w", err)
	}

	if info, err := renderer.GetInfo(); err == nil {
		log.Printf("Renderer: %s", info.Name)
	}

	return &Window{
		window:     window,
		renderer:   renderer,
		overlay:    overlay,
		frameEvent: frameEvent,
	}, nil
}

func windowFlags(opts Options) uint32 {
	flags := uint32(sdl.WINDOW_HIDDEN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if opts.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if opts.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	return flags
}

// createRenderer prefers an accelerated renderer and falls back to software.
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}
	// status label is translucent
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}

// Destroy releases the texture, the renderer and the window.
func (w *Window) Destroy() {
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}

// ID returns the SDL window id, to filter events.
func (w *Window) ID() uint32 {
	id, err := w.window.GetID()
	if err != nil {
		return 0
	}
	return id
}

func (w *Window) WindowSize() (geometry.Size, error) {
	if w.window == nil {
		return geometry.Size{}, errors.New("window destroyed")
	}
	width, height := w.window.GetSize()
	return geometry.Size{Width: int(width), Height: int(height)}, nil
}

func (w *Window) DrawableSize() (geometry.Size, error) {
	return w.RenderOutputSize()
}

func (w *Window) WindowPosition() (geometry.Point, error) {
	if w.window == nil {
		return geometry.Point{}, errors.New("window destroyed")
	}
	x, y := w.window.GetPosition()
	return geometry.Point{X: int(x), Y: int(y)}, nil
}

func (w *Window) SetWindowSize(size geometry.Size) error {
	if size.IsEmpty() {
		return fmt.Errorf("invalid window size %s", size)
	}
	w.window.SetSize(int32(size.Width), int32(size.Height))
	return nil
}

func (w *Window) SetWindowPosition(p geometry.Point) error {
	w.window.SetPosition(sdlPosition(p.X), sdlPosition(p.Y))
	return nil
}

func sdlPosition(v int) int32 {
	switch v {
	case geometry.PositionCentered:
		return sdl.WINDOWPOS_CENTERED
	case geometry.PositionUndefined:
		return sdl.WINDOWPOS_UNDEFINED
	}
	return int32(v)
}

func (w *Window) Show() error {
	w.window.Show()
	return nil
}

func (w *Window) Hide() error {
	w.window.Hide()
	return nil
}

func (w *Window) State() mirror.WindowState {
	return stateFromFlags(w.window.GetFlags())
}

func stateFromFlags(flags uint32) mirror.WindowState {
	var s mirror.WindowState
	if flags&sdl.WINDOW_FULLSCREEN != 0 {
		// also covers WINDOW_FULLSCREEN_DESKTOP
		s |= mirror.WindowFullscreen
	}
	if flags&sdl.WINDOW_MAXIMIZED != 0 {
		s |= mirror.WindowMaximized
	}
	if flags&sdl.WINDOW_MINIMIZED != 0 {
		s |= mirror.WindowMinimized
	}
	return s
}

func (w *Window) SetFullscreen(fullscreen bool) error {
	var mode uint32
	if fullscreen {
		mode = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return w.window.SetFullscreen(mode)
}

func (w *Window) UsableDisplayBounds() (geometry.Size, error) {
	index, err := w.window.GetDisplayIndex()
	if err != nil {
		return geometry.Size{}, fmt.Errorf("could not get display index: %w", err)
	}
	bounds, err := sdl.GetDisplayUsableBounds(index)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("could not get usable bounds of display %d: %w", index, err)
	}
	return geometry.Size{Width: int(bounds.W), Height: int(bounds.H)}, nil
}

func (w *Window) RenderOutputSize() (geometry.Size, error) {
	if w.renderer == nil {
		return geometry.Size{}, errors.New("renderer destroyed")
	}
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return geometry.Size{}, err
	}
	return geometry.Size{Width: int(width), Height: int(height)}, nil
}

func (w *Window) SetStatus(text string) {
	w.status = text
}

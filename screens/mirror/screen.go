// Package mirror presents the mirrored device video in a window.
//
// The Screen receives frames from the decoder goroutine through a single
// overwrite slot, sizes the window for the content, keeps that geometry
// consistent across fullscreen and orientation changes, and maps pointer
// positions back into device frame coordinates.
package mirror

import (
	"fmt"
	"log"
	"os"
	"time"

	"mirror-frame/pkg/fps"
	"mirror-frame/pkg/framebuffer"
	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

// PausedStatus is the label drawn over the frozen image.
const PausedStatus = "PAUSED"

// NewScreen creates a screen presenting to surface. The window stays hidden
// until the first frame is received.
func NewScreen(surface Surface, notifier Notifier, params Params) *Screen {
	margins := params.DisplayMargins
	if margins < 0 {
		margins = DefaultDisplayMargins
	}
	if !params.Orientation.Valid() {
		log.Printf("Warning: Screen: invalid orientation %d, using 0", params.Orientation)
		params.Orientation = geometry.Orientation0
	}

	return &Screen{
		surface:     surface,
		notifier:    notifier,
		fb:          framebuffer.New(),
		fps:         fps.NewCounter(),
		req:         params,
		margins:     margins,
		orientation: params.Orientation,
		frame:       &media.Frame{},
		spare:       &media.Frame{},
		debug:       os.Getenv("DEBUG_SCREEN") == "1",
	}
}

// updateFrame drains the frame slot. While paused the frame goes to the
// resume frame so the presented image stays frozen.
func (s *Screen) updateFrame() error {
	if s.paused {
		if s.resumeFrame == nil {
			f := &media.Frame{}
			if !s.fb.Consume(f) {
				return nil
			}
			s.resumeFrame = f
			return nil
		}
		s.fb.Consume(s.resumeFrame)
		return nil
	}

	if !s.fb.Consume(s.spare) {
		return nil
	}
	return s.present(&s.spare)
}

// present applies *f. On success *f becomes the presented frame and the
// previous one is handed back in *f for reuse. On failure s.frame is kept.
func (s *Screen) present(f **media.Frame) error {
	if err := s.applyFrame(*f); err != nil {
		return err
	}
	s.frame, *f = *f, s.frame
	return nil
}

// applyFrame uploads frame and presents it. The first frame ever applied
// shows the window. If the texture cannot be prepared the frame is dropped
// and the geometry of the previous frame is kept.
func (s *Screen) applyFrame(frame *media.Frame) error {
	start := time.Now()
	newFrameSize := geometry.Size{Width: frame.Width, Height: frame.Height}

	if !s.hasFrame || newFrameSize != s.frameSize {
		if err := s.surface.PrepareTexture(newFrameSize, frame.ColorSpace, frame.ColorRange); err != nil {
			return fmt.Errorf("prepare texture %s: %w", newFrameSize, err)
		}

		// frame dimension changed
		s.frameSize = newFrameSize
		contentSize := geometry.OrientedSize(newFrameSize, s.orientation)
		if s.hasFrame {
			s.setContentSize(contentSize)
			s.updateContentRect()
		} else {
			s.contentSize = contentSize
		}
		s.debugf("Screen: texture prepared for %s (content %s)", newFrameSize, s.contentSize)
	}

	if err := s.surface.UpdateTexture(frame); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}

	if !s.hasFrame {
		s.hasFrame = true
		s.showInitialWindow()
	} else {
		s.render(false)
	}
	s.fps.AddRendered(time.Since(start))
	return nil
}

func (s *Screen) showInitialWindow() {
	x, y := s.req.WindowX, s.req.WindowY
	if x == geometry.PositionUndefined {
		x = geometry.PositionCentered
	}
	if y == geometry.PositionUndefined {
		y = geometry.PositionCentered
	}

	size := geometry.InitialOptimalSize(s.contentSize, s.req.WindowWidth, s.req.WindowHeight, s.displayBounds())
	s.setWindowSize(size)
	if err := s.surface.SetWindowPosition(geometry.Point{X: x, Y: y}); err != nil {
		log.Printf("Warning: Screen: could not position window: %v", err)
	}

	if s.req.Fullscreen {
		s.ToggleFullscreen()
	}
	if s.req.StartFPSCounter {
		s.fps.Start()
	}

	if err := s.surface.Show(); err != nil {
		log.Printf("Screen: could not show window: %v", err)
	}
	s.hasVideoWindow = true
	log.Printf("Screen: window shown at %s for content %s", size, s.contentSize)

	s.render(true)
}

// render draws the current texture. With updateContentRect the content
// rectangle is recomputed first.
func (s *Screen) render(updateContentRect bool) {
	if updateContentRect {
		s.updateContentRect()
	}

	if err := s.surface.Clear(); err != nil {
		log.Printf("Warning: Screen: could not clear renderer: %v", err)
	}
	if s.hasFrame {
		if err := s.surface.RenderFrame(s.rect, s.orientation); err != nil {
			log.Printf("Screen: could not render frame: %v", err)
		}
	}
	if err := s.surface.Present(); err != nil {
		log.Printf("Screen: could not present: %v", err)
	}
}

func (s *Screen) updateContentRect() {
	output := s.mustRenderOutputSize()
	s.rect = geometry.ContentRect(output, s.contentSize)
	s.debugf("Screen: content rect %+v in %s", s.rect, output)
}

// SetPaused freezes or resumes presentation.
//
// Frames received while paused are kept in a resume frame. Leaving the pause,
// or pausing again while already paused, presents that frame once.
func (s *Screen) SetPaused(paused bool) {
	if !paused && !s.paused {
		// nothing to do
		return
	}

	if paused {
		s.surface.SetStatus(PausedStatus)
	} else {
		s.surface.SetStatus("")
	}

	applied := false
	if s.paused && s.resumeFrame != nil {
		// refresh the frozen image even if the new state is also paused
		err := s.present(&s.resumeFrame)
		s.resumeFrame = nil
		if err != nil {
			log.Printf("Screen: could not apply resume frame: %v", err)
		} else {
			applied = true
		}
	}

	switch {
	case !paused:
		log.Printf("Screen: display unpaused")
	case !s.paused:
		log.Printf("Screen: display paused")
	default:
		log.Printf("Screen: display re-paused")
	}
	s.paused = paused

	if !applied && s.hasVideoWindow {
		// redraw for the status label
		s.render(false)
	}
}

// Paused reports whether presentation is frozen.
func (s *Screen) Paused() bool {
	return s.paused
}

// TogglePaused flips the pause state.
func (s *Screen) TogglePaused() {
	s.SetPaused(!s.paused)
}

// ToggleFullscreen requests the opposite fullscreen mode. The change is
// confirmed later by EventEnterFullscreen or EventLeaveFullscreen, which
// trigger the redraw.
func (s *Screen) ToggleFullscreen() {
	fullscreen := !s.surface.State().Has(WindowFullscreen)
	if err := s.surface.SetFullscreen(fullscreen); err != nil {
		log.Printf("Warning: Screen: could not switch fullscreen mode: %v", err)
		return
	}

	if fullscreen {
		log.Printf("Screen: requested fullscreen mode")
	} else {
		log.Printf("Screen: requested windowed mode")
	}
}

// ResizeToFit shrinks the window to the optimal size for the content, keeping
// it centered where it was. Only applies to a windowed window.
func (s *Screen) ResizeToFit() {
	if !s.hasVideoWindow || !s.isWindowed() {
		return
	}

	point := s.mustWindowPosition()
	window := s.mustWindowSize()
	optimal := geometry.OptimalSize(window, s.contentSize, nil)

	// center the window related to the device screen
	x := point.X + (window.Width-optimal.Width)/2
	y := point.Y + (window.Height-optimal.Height)/2

	s.setWindowSize(optimal)
	if err := s.surface.SetWindowPosition(geometry.Point{X: x, Y: y}); err != nil {
		log.Printf("Warning: Screen: could not position window: %v", err)
	}
	log.Printf("Screen: resized to optimal size %s", optimal)
}

// ResizeToPixelPerfect makes one window pixel match one content pixel. Only
// applies to a windowed window.
func (s *Screen) ResizeToPixelPerfect() {
	if !s.hasVideoWindow || !s.isWindowed() {
		return
	}

	s.setWindowSize(s.contentSize)
	log.Printf("Screen: resized to pixel-perfect %s", s.contentSize)
}

// HideWindow hides the window, typically right before shutdown.
func (s *Screen) HideWindow() {
	if err := s.surface.Hide(); err != nil {
		log.Printf("Warning: Screen: could not hide window: %v", err)
	}
}

// ToggleFPSCounter starts or stops the periodic frame rate log.
func (s *Screen) ToggleFPSCounter() {
	if s.fps.IsStarted() {
		s.fps.Stop()
	} else {
		s.fps.Start()
	}
}

// Stats returns the rendered and skipped frame totals.
func (s *Screen) Stats() fps.Report {
	return s.fps.Report()
}

// CurrentFrame returns a copy of the presented frame and the orientation it
// is displayed with. ok is false before the first frame.
func (s *Screen) CurrentFrame() (frame *media.Frame, o geometry.Orientation, ok bool) {
	if !s.hasFrame {
		return nil, s.orientation, false
	}
	f, err := s.frame.Clone()
	if err != nil {
		log.Printf("Screen: could not copy current frame: %v", err)
		return nil, s.orientation, false
	}
	return f, s.orientation, true
}

// Interrupt stops the statistics goroutine. Call before Join and Destroy.
func (s *Screen) Interrupt() {
	s.fps.Interrupt()
}

// Join waits for the statistics goroutine.
func (s *Screen) Join() {
	s.fps.Join()
}

// Destroy releases the held frames. The producer must be stopped and the
// screen joined first; ErrSinkOpen is returned when the sink was left open.
func (s *Screen) Destroy() error {
	s.fb.Close()
	s.frame = &media.Frame{}
	s.spare = &media.Frame{}
	s.resumeFrame = nil

	if s.sinkOpen.Load() {
		return ErrSinkOpen
	}
	return nil
}

func (s *Screen) debugf(format string, args ...any) {
	if s.debug {
		log.Printf(format, args...)
	}
}

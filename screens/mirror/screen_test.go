package mirror

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"mirror-frame/pkg/geometry"
	"mirror-frame/pkg/media"
)

type renderCall struct {
	rect geometry.Rect
	o    geometry.Orientation
}

type fakeSurface struct {
	window geometry.Size
	scale  int // drawable pixels per window pixel
	pos    geometry.Point
	state  WindowState
	usable geometry.Size
	shown  bool
	status string

	windowSizeErr error
	usableErr     error
	clearErr      error
	prepareErr    error

	prepared     []geometry.Size
	updates      int
	lastMarker   byte
	renders      []renderCall
	presents     int
	fullscreenRq []bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{scale: 1, usable: geometry.Size{Width: 1920, Height: 1080}}
}

func (f *fakeSurface) WindowSize() (geometry.Size, error) {
	return f.window, f.windowSizeErr
}

func (f *fakeSurface) DrawableSize() (geometry.Size, error) {
	return geometry.Size{Width: f.window.Width * f.scale, Height: f.window.Height * f.scale}, nil
}

func (f *fakeSurface) WindowPosition() (geometry.Point, error) {
	return f.pos, nil
}

func (f *fakeSurface) SetWindowSize(size geometry.Size) error {
	f.window = size
	return nil
}

func (f *fakeSurface) SetWindowPosition(p geometry.Point) error {
	f.pos = p
	return nil
}

func (f *fakeSurface) Show() error {
	f.shown = true
	return nil
}

func (f *fakeSurface) Hide() error {
	f.shown = false
	return nil
}

func (f *fakeSurface) State() WindowState {
	return f.state
}

func (f *fakeSurface) SetFullscreen(fullscreen bool) error {
	f.fullscreenRq = append(f.fullscreenRq, fullscreen)
	return nil
}

func (f *fakeSurface) UsableDisplayBounds() (geometry.Size, error) {
	return f.usable, f.usableErr
}

func (f *fakeSurface) RenderOutputSize() (geometry.Size, error) {
	return f.DrawableSize()
}

func (f *fakeSurface) PrepareTexture(size geometry.Size, cs media.ColorSpace, cr media.ColorRange) error {
	if f.prepareErr != nil {
		return f.prepareErr
	}
	f.prepared = append(f.prepared, size)
	return nil
}

func (f *fakeSurface) UpdateTexture(frame *media.Frame) error {
	f.updates++
	f.lastMarker = frame.Planes[0][0]
	return nil
}

func (f *fakeSurface) Clear() error {
	return f.clearErr
}

func (f *fakeSurface) RenderFrame(rect geometry.Rect, o geometry.Orientation) error {
	f.renders = append(f.renders, renderCall{rect: rect, o: o})
	return nil
}

func (f *fakeSurface) Present() error {
	f.presents++
	return nil
}

func (f *fakeSurface) SetStatus(text string) {
	f.status = text
}

func (f *fakeSurface) lastRender(t *testing.T) renderCall {
	t.Helper()
	if len(f.renders) == 0 {
		t.Fatal("nothing rendered")
	}
	return f.renders[len(f.renders)-1]
}

type fakeNotifier struct {
	count atomic.Int32
}

func (n *fakeNotifier) NotifyNewFrame() error {
	n.count.Add(1)
	return nil
}

func defaultParams() Params {
	return Params{
		WindowX:        geometry.PositionUndefined,
		WindowY:        geometry.PositionUndefined,
		DisplayMargins: DefaultDisplayMargins,
	}
}

func newTestScreen(t *testing.T, params Params) (*Screen, *fakeSurface, *fakeNotifier) {
	t.Helper()
	surface := newFakeSurface()
	notifier := &fakeNotifier{}
	s := NewScreen(surface, notifier, params)
	t.Cleanup(func() {
		s.Interrupt()
		s.Join()
		s.Close()
		if err := s.Destroy(); err != nil {
			t.Errorf("Destroy() = %v", err)
		}
	})
	return s, surface, notifier
}

// testFrame returns a frame whose first luma byte is marker.
func testFrame(w, h int, marker byte) *media.Frame {
	f := media.NewFrame(w, h)
	f.Planes[0][0] = marker
	return f
}

func deliver(t *testing.T, s *Screen, frame *media.Frame) {
	t.Helper()
	if err := s.Push(frame); err != nil {
		t.Fatalf("Push() = %v", err)
	}
	if !s.HandleEvent(EventNewFrame) {
		t.Fatal("new frame event not consumed")
	}
}

func size(w, h int) geometry.Size {
	return geometry.Size{Width: w, Height: h}
}

func TestFirstFrameShowsWindow(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())

	if s.HandleEvent(EventWindowExposed) {
		t.Fatal("window event consumed before the window was shown")
	}

	deliver(t, s, testFrame(800, 450, 1))

	if !surface.shown {
		t.Fatal("window not shown on first frame")
	}
	if surface.window != size(800, 450) {
		t.Errorf("window size = %v, want 800x450", surface.window)
	}
	want := geometry.Point{X: geometry.PositionCentered, Y: geometry.PositionCentered}
	if surface.pos != want {
		t.Errorf("window position = %+v, want centered", surface.pos)
	}
	if len(surface.prepared) != 1 || surface.prepared[0] != size(800, 450) {
		t.Errorf("prepared = %v", surface.prepared)
	}
	if surface.updates != 1 {
		t.Errorf("updates = %d, want 1", surface.updates)
	}
	if r := surface.lastRender(t); r.rect != (geometry.Rect{W: 800, H: 450}) {
		t.Errorf("content rect = %+v", r.rect)
	}
	if s.ContentSize() != size(800, 450) {
		t.Errorf("content size = %v", s.ContentSize())
	}
}

func TestFirstFrameClampedToDisplay(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())

	// 1920x1080 minus margins is 1824x984
	deliver(t, s, testFrame(1080, 1920, 1))

	if surface.window != size(553, 984) {
		t.Errorf("window size = %v, want 553x984", surface.window)
	}
	if r := surface.lastRender(t); r.rect != (geometry.Rect{W: 553, H: 984}) {
		t.Errorf("content rect = %+v", r.rect)
	}
}

func TestDisplayMargins(t *testing.T) {
	tests := []struct {
		name    string
		margins int
		want    geometry.Size
	}{
		{"none", 0, size(607, 1080)},
		{"default", -1, size(553, 984)},
		{"custom", 480, size(337, 600)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultParams()
			params.DisplayMargins = tt.margins
			s, surface, _ := newTestScreen(t, params)

			deliver(t, s, testFrame(1080, 1920, 1))
			if surface.window != tt.want {
				t.Errorf("window size = %v, want %v", surface.window, tt.want)
			}
		})
	}
}

func TestFirstFrameRequestedGeometry(t *testing.T) {
	params := Params{WindowX: 10, WindowY: 20, WindowWidth: 400, Fullscreen: true}
	s, surface, _ := newTestScreen(t, params)

	deliver(t, s, testFrame(800, 450, 1))

	if surface.window != size(400, 225) {
		t.Errorf("window size = %v, want 400x225", surface.window)
	}
	if surface.pos != (geometry.Point{X: 10, Y: 20}) {
		t.Errorf("window position = %+v", surface.pos)
	}
	if len(surface.fullscreenRq) != 1 || !surface.fullscreenRq[0] {
		t.Errorf("fullscreen requests = %v", surface.fullscreenRq)
	}
}

func TestFrameSizeChangeResizesWindow(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())

	deliver(t, s, testFrame(800, 450, 1))
	deliver(t, s, testFrame(800, 450, 2))
	if len(surface.prepared) != 1 {
		t.Fatalf("texture prepared again for the same size: %v", surface.prepared)
	}

	deliver(t, s, testFrame(450, 800, 3))

	if surface.window != size(450, 800) {
		t.Errorf("window size = %v, want 450x800", surface.window)
	}
	if len(surface.prepared) != 2 || surface.prepared[1] != size(450, 800) {
		t.Errorf("prepared = %v", surface.prepared)
	}
	if r := surface.lastRender(t); r.rect != (geometry.Rect{W: 450, H: 800}) {
		t.Errorf("content rect = %+v", r.rect)
	}
}

func TestPendingResizeAcrossFullscreen(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	surface.state = WindowFullscreen
	s.HandleEvent(EventEnterFullscreen)

	deliver(t, s, testFrame(450, 800, 2))
	deliver(t, s, testFrame(400, 400, 3))

	if surface.window != size(800, 450) {
		t.Fatalf("window resized while fullscreen: %v", surface.window)
	}
	if !s.resizePending || s.windowedContentSize != size(800, 450) {
		t.Fatalf("pending = %v, windowed content = %v", s.resizePending, s.windowedContentSize)
	}

	// still maximized: nothing applied yet
	surface.state = WindowMaximized
	s.HandleEvent(EventLeaveFullscreen)
	if !s.resizePending {
		t.Fatal("pending resize applied while maximized")
	}

	surface.state = 0
	if !s.HandleEvent(EventWindowRestored) {
		t.Fatal("restored event not consumed")
	}
	if surface.window != size(400, 400) {
		t.Errorf("window size = %v, want 400x400", surface.window)
	}
	if s.resizePending {
		t.Error("pending resize not cleared")
	}

	// applied exactly once
	surface.window = size(600, 600)
	s.HandleEvent(EventLeaveFullscreen)
	if surface.window != size(600, 600) {
		t.Errorf("pending resize applied twice: %v", surface.window)
	}
}

func TestSetOrientation(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	renders := len(surface.renders)
	s.SetOrientation(geometry.Orientation0)
	if len(surface.renders) != renders {
		t.Fatal("unchanged orientation rendered")
	}

	s.SetOrientation(geometry.Orientation90)

	if s.ContentSize() != size(450, 800) {
		t.Errorf("content size = %v, want 450x800", s.ContentSize())
	}
	if surface.window != size(450, 800) {
		t.Errorf("window size = %v, want 450x800", surface.window)
	}
	r := surface.lastRender(t)
	if r.o != geometry.Orientation90 || r.rect != (geometry.Rect{W: 450, H: 800}) {
		t.Errorf("last render = %+v", r)
	}
}

func TestOrientationBeforeFirstFrame(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())

	s.SetOrientation(geometry.Orientation270)
	if len(surface.renders) != 0 || surface.shown {
		t.Fatal("rendered before the first frame")
	}

	deliver(t, s, testFrame(800, 450, 1))
	if s.ContentSize() != size(450, 800) {
		t.Errorf("content size = %v, want 450x800", s.ContentSize())
	}
	if r := surface.lastRender(t); r.o != geometry.Orientation270 {
		t.Errorf("orientation = %v", r.o)
	}
}

func TestPauseResumeAppliesOnce(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	s.SetPaused(true)
	if surface.status != PausedStatus {
		t.Errorf("status = %q", surface.status)
	}

	deliver(t, s, testFrame(800, 450, 2))
	deliver(t, s, testFrame(800, 450, 3))
	if surface.updates != 1 || surface.lastMarker != 1 {
		t.Fatalf("frame applied while paused: updates=%d marker=%d", surface.updates, surface.lastMarker)
	}

	s.SetPaused(false)
	if surface.updates != 2 || surface.lastMarker != 3 {
		t.Fatalf("resume: updates=%d marker=%d, want 2 and 3", surface.updates, surface.lastMarker)
	}
	if surface.status != "" {
		t.Errorf("status = %q after resume", surface.status)
	}

	s.SetPaused(false)
	if surface.updates != 2 {
		t.Fatalf("second resume applied a frame: updates=%d", surface.updates)
	}
}

func TestPauseToggleWithoutFrame(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	s.SetPaused(true)
	s.SetPaused(false)
	s.SetPaused(true)
	deliver(t, s, testFrame(800, 450, 2))
	s.SetPaused(false)

	if surface.updates != 2 || surface.lastMarker != 2 {
		t.Fatalf("updates=%d marker=%d, want 2 and 2", surface.updates, surface.lastMarker)
	}
}

func TestRepauseRefreshesFrozenImage(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	s.TogglePaused()
	deliver(t, s, testFrame(800, 450, 2))

	s.SetPaused(true)
	if !s.Paused() {
		t.Fatal("re-pause left the paused state")
	}
	if surface.updates != 2 || surface.lastMarker != 2 {
		t.Fatalf("re-pause: updates=%d marker=%d, want 2 and 2", surface.updates, surface.lastMarker)
	}

	s.SetPaused(false)
	if surface.updates != 2 {
		t.Fatalf("resume after re-pause applied again: updates=%d", surface.updates)
	}
}

func TestFirstFrameWhilePaused(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())

	s.SetPaused(true)
	deliver(t, s, testFrame(800, 450, 7))
	if surface.shown {
		t.Fatal("window shown while paused")
	}

	s.SetPaused(false)
	if !surface.shown || surface.lastMarker != 7 {
		t.Fatalf("shown=%v marker=%d", surface.shown, surface.lastMarker)
	}
}

func TestCoalescedNotification(t *testing.T) {
	s, surface, notifier := newTestScreen(t, defaultParams())

	for i := byte(1); i <= 3; i++ {
		if err := s.Push(testFrame(800, 450, i)); err != nil {
			t.Fatalf("Push() = %v", err)
		}
	}
	if got := notifier.count.Load(); got != 1 {
		t.Fatalf("notifications = %d, want 1", got)
	}

	s.HandleEvent(EventNewFrame)
	if surface.updates != 1 || surface.lastMarker != 3 {
		t.Fatalf("updates=%d marker=%d, want the last frame", surface.updates, surface.lastMarker)
	}

	// nothing pending: a spurious event is harmless
	s.HandleEvent(EventNewFrame)
	if surface.updates != 1 {
		t.Fatalf("updates = %d", surface.updates)
	}

	if err := s.Push(testFrame(800, 450, 4)); err != nil {
		t.Fatalf("Push() = %v", err)
	}
	if got := notifier.count.Load(); got != 2 {
		t.Fatalf("notifications = %d, want 2", got)
	}
}

func TestPushInvalidFrame(t *testing.T) {
	s, _, notifier := newTestScreen(t, defaultParams())

	bad := media.NewFrame(16, 16)
	bad.Planes[0] = bad.Planes[0][:4]
	if err := s.Push(bad); !errors.Is(err, media.ErrInvalidFrame) {
		t.Fatalf("Push() = %v, want ErrInvalidFrame", err)
	}
	if notifier.count.Load() != 0 {
		t.Fatal("notified for a rejected frame")
	}
}

func TestSinkOpen(t *testing.T) {
	s, _, _ := newTestScreen(t, defaultParams())

	tests := []struct {
		format media.PixelFormat
		w, h   int
		want   error
	}{
		{media.PixelFormatRGBA, 800, 450, media.ErrUnsupportedFormat},
		{media.PixelFormatYUV420P, 0, 450, media.ErrInvalidSize},
		{media.PixelFormatYUV420P, 800, -1, media.ErrInvalidSize},
		{media.PixelFormatYUV420P, 0x10000, 450, media.ErrInvalidSize},
		{media.PixelFormatYUV420P, 800, 450, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%dx%d", tt.format, tt.w, tt.h), func(t *testing.T) {
			err := s.Open(tt.format, tt.w, tt.h)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Fatalf("Open() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDestroyReportsOpenSink(t *testing.T) {
	s := NewScreen(newFakeSurface(), &fakeNotifier{}, defaultParams())
	defer func() {
		s.Interrupt()
		s.Join()
	}()

	if err := s.Open(media.PixelFormatYUV420P, 800, 450); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := s.Destroy(); !errors.Is(err, ErrSinkOpen) {
		t.Fatalf("Destroy() = %v, want ErrSinkOpen", err)
	}

	s.Close()
	s.Close()
	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy() after Close() = %v", err)
	}
}

func TestResizeToFit(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	surface.window = size(1000, 1000)
	surface.pos = geometry.Point{X: 100, Y: 100}
	s.ResizeToFit()

	if surface.window != size(1000, 562) {
		t.Errorf("window size = %v, want 1000x562", surface.window)
	}
	if surface.pos != (geometry.Point{X: 100, Y: 319}) {
		t.Errorf("window position = %+v, want (100,319)", surface.pos)
	}

	surface.state = WindowMaximized
	surface.window = size(1000, 1000)
	s.ResizeToFit()
	if surface.window != size(1000, 1000) {
		t.Errorf("resized while maximized: %v", surface.window)
	}
}

func TestResizeToPixelPerfect(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))
	s.SetOrientation(geometry.Orientation90)

	surface.window = size(1000, 1000)
	s.ResizeToPixelPerfect()
	if surface.window != size(450, 800) {
		t.Errorf("window size = %v, want 450x800", surface.window)
	}

	surface.state = WindowFullscreen
	surface.window = size(1000, 1000)
	s.ResizeToPixelPerfect()
	if surface.window != size(1000, 1000) {
		t.Errorf("resized while fullscreen: %v", surface.window)
	}
}

func TestToggleFullscreenIsAsynchronous(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	s.ToggleFullscreen()
	if len(surface.fullscreenRq) != 1 || !surface.fullscreenRq[0] {
		t.Fatalf("requests = %v", surface.fullscreenRq)
	}

	// the surface has not confirmed yet, so the next toggle asks again
	s.ToggleFullscreen()
	if len(surface.fullscreenRq) != 2 || !surface.fullscreenRq[1] {
		t.Fatalf("requests = %v", surface.fullscreenRq)
	}

	surface.state = WindowFullscreen
	s.ToggleFullscreen()
	if surface.fullscreenRq[2] {
		t.Fatalf("requests = %v, want leave", surface.fullscreenRq)
	}
}

func TestClearFailureStillPresents(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	surface.clearErr = errors.New("clear failed")

	deliver(t, s, testFrame(800, 450, 1))
	if surface.presents == 0 || len(surface.renders) == 0 {
		t.Fatal("frame not presented after a clear failure")
	}
}

func TestDisplayBoundsFailureDoesNotClamp(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	surface.usableErr = errors.New("no display")

	deliver(t, s, testFrame(1080, 1920, 1))
	if surface.window != size(1080, 1920) {
		t.Errorf("window size = %v, want 1080x1920", surface.window)
	}
}

func TestPrepareFailureRetries(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	surface.prepareErr = errors.New("out of memory")

	deliver(t, s, testFrame(800, 450, 1))
	if surface.shown || surface.updates != 0 {
		t.Fatal("frame presented without a texture")
	}

	surface.prepareErr = nil
	deliver(t, s, testFrame(800, 450, 2))
	if !surface.shown || surface.lastMarker != 2 {
		t.Fatalf("shown=%v marker=%d", surface.shown, surface.lastMarker)
	}
}

func TestPrepareFailureOnSizeChangeKeepsGeometry(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	window := surface.window
	rect := s.ContentRect()
	surface.prepareErr = errors.New("out of memory")
	deliver(t, s, testFrame(450, 800, 2))

	if surface.window != window {
		t.Errorf("window resized for a dropped frame: %v -> %v", window, surface.window)
	}
	if s.FrameSize() != size(800, 450) || s.ContentSize() != size(800, 450) {
		t.Errorf("frame %v content %v, want 800x450", s.FrameSize(), s.ContentSize())
	}
	if s.ContentRect() != rect {
		t.Errorf("content rect = %+v, want %+v", s.ContentRect(), rect)
	}
	if surface.updates != 1 {
		t.Errorf("updates = %d, want 1", surface.updates)
	}

	// the previous image is still the one drawn and mapped
	s.HandleEvent(EventWindowExposed)
	if r := surface.lastRender(t); r.rect != rect {
		t.Errorf("expose rendered into %+v, want %+v", r.rect, rect)
	}
	if f, _, ok := s.CurrentFrame(); !ok || f.Width != 800 || f.Planes[0][0] != 1 {
		t.Fatalf("current frame is not the presented one")
	}

	surface.prepareErr = nil
	deliver(t, s, testFrame(450, 800, 3))
	if s.FrameSize() != size(450, 800) || surface.window != size(450, 800) || surface.lastMarker != 3 {
		t.Errorf("retry: frame %v window %v marker %d", s.FrameSize(), surface.window, surface.lastMarker)
	}
}

func TestFullscreenRendersOnTransition(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	renders := len(surface.renders)
	s.ToggleFullscreen()
	if len(surface.renders) != renders {
		t.Fatal("rendered on the fullscreen request")
	}

	surface.state = WindowFullscreen
	if !s.HandleEvent(EventEnterFullscreen) {
		t.Fatal("enter fullscreen not consumed")
	}
	if len(surface.renders) != renders {
		t.Fatal("rendered on enter fullscreen")
	}

	// leaving fullscreen into a maximized window: no redraw until restored
	surface.state = WindowMaximized
	if !s.HandleEvent(EventLeaveFullscreen) {
		t.Fatal("leave fullscreen not consumed")
	}
	s.HandleEvent(EventWindowRestored)
	if len(surface.renders) != renders {
		t.Fatalf("rendered while not windowed: %d renders", len(surface.renders)-renders)
	}

	surface.state = 0
	s.HandleEvent(EventWindowRestored)
	if len(surface.renders) != renders+1 {
		t.Fatalf("renders after restore = %d, want 1", len(surface.renders)-renders)
	}
}

func TestWindowSizeFailureIsFatal(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	old := fatalf
	fatalf = func(format string, args ...any) {
		panic(fmt.Sprintf(format, args...))
	}
	defer func() { fatalf = old }()

	surface.windowSizeErr = errors.New("no window")
	defer func() {
		if recover() == nil {
			t.Fatal("expected a fatal error")
		}
	}()
	s.ResizeToFit()
}

func TestWindowToFrame(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())

	if _, ok := s.WindowToFrame(geometry.Point{X: 1, Y: 1}); ok {
		t.Fatal("mapped a point before the first frame")
	}

	surface.scale = 2
	deliver(t, s, testFrame(800, 450, 1))

	got, ok := s.WindowToFrame(geometry.Point{X: 100, Y: 50})
	if !ok || got != (geometry.Point{X: 100, Y: 50}) {
		t.Fatalf("WindowToFrame = %+v, %v", got, ok)
	}

	back, ok := s.FrameToWindow(got)
	if !ok || back != (geometry.Point{X: 100, Y: 50}) {
		t.Fatalf("FrameToWindow = %+v, %v", back, ok)
	}
}

func TestWindowToFrameOutsideContent(t *testing.T) {
	s, surface, _ := newTestScreen(t, defaultParams())
	deliver(t, s, testFrame(800, 450, 1))

	surface.window = size(800, 800)
	s.HandleEvent(EventPixelSizeChanged)
	if s.ContentRect() != (geometry.Rect{X: 0, Y: 175, W: 800, H: 450}) {
		t.Fatalf("content rect = %+v", s.ContentRect())
	}

	// the mapping is total, bounds are left to the device
	if got, ok := s.WindowToFrame(geometry.Point{X: 10, Y: 10}); !ok || got != (geometry.Point{X: 10, Y: -165}) {
		t.Errorf("border point = %+v, %v, want (10,-165)", got, ok)
	}
	got, ok := s.WindowToFrame(geometry.Point{X: 400, Y: 400})
	if !ok || got != (geometry.Point{X: 400, Y: 225}) {
		t.Errorf("WindowToFrame = %+v, %v", got, ok)
	}
}

func TestCurrentFrame(t *testing.T) {
	s, _, _ := newTestScreen(t, defaultParams())

	if _, _, ok := s.CurrentFrame(); ok {
		t.Fatal("current frame before the first frame")
	}

	deliver(t, s, testFrame(800, 450, 9))
	s.SetOrientation(geometry.OrientationFlip90)

	f, o, ok := s.CurrentFrame()
	if !ok || f.Planes[0][0] != 9 || o != geometry.OrientationFlip90 {
		t.Fatalf("CurrentFrame = %v, %v, %v", f != nil, o, ok)
	}

	// the copy is detached from the presented frame
	f.Planes[0][0] = 0
	g, _, _ := s.CurrentFrame()
	if g.Planes[0][0] != 9 {
		t.Fatal("CurrentFrame returned shared buffers")
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"mirror-frame/pkg/input"
	"mirror-frame/pkg/pattern"
	"mirror-frame/pkg/sdlwindow"
	"mirror-frame/pkg/settings"
	"mirror-frame/pkg/snapshot"
	"mirror-frame/screens/mirror"
	"mirror-frame/ui"
)

func main() {
	// SDL calls must all come from the main thread
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	settings.LoadDotEnv()
	cfg := settings.Load()
	settings.BindFlags(flag.CommandLine, &cfg)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()
	logDisplayInfo()

	fonts, err := ui.LoadFonts(ui.StatusFontSize)
	if err != nil {
		log.Printf("Warning: status labels disabled: %v", err)
	} else {
		defer fonts.Close()
	}

	win, err := sdlwindow.New(sdlwindow.Options{
		Title:       cfg.WindowTitle,
		Borderless:  cfg.Borderless,
		AlwaysOnTop: cfg.AlwaysOnTop,
	}, ui.NewStatusOverlay(fonts))
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	screen := mirror.NewScreen(win, win, mirror.Params{
		WindowX:         cfg.WindowX,
		WindowY:         cfg.WindowY,
		WindowWidth:     cfg.WindowWidth,
		WindowHeight:    cfg.WindowHeight,
		Fullscreen:      cfg.Fullscreen,
		Orientation:     cfg.Orientation,
		StartFPSCounter: cfg.PrintFPS,
		DisplayMargins:  cfg.DisplayMargins,
	})

	taker := snapshot.NewTaker(newSnapshotStore(cfg), cfg.SnapshotMaxWidth)

	src, err := pattern.NewSource(pattern.Options{
		Width:       cfg.SourceWidth,
		Height:      cfg.SourceHeight,
		FPS:         cfg.SourceFPS,
		RotateEvery: cfg.SourceRotateEvery,
	})
	if err != nil {
		log.Fatalf("Failed to create source: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var producer sync.WaitGroup
	producer.Add(1)
	go func() {
		defer producer.Done()
		if err := src.Run(ctx, screen); err != nil {
			log.Printf("Source stopped: %v", err)
		}
		if ctx.Err() == nil {
			// stream ended on its own
			sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT})
		}
	}()

	log.Printf("Starting %s", cfg.WindowTitle)
	runEventLoop(ctx, screen, win, taker)

	cancel()
	producer.Wait()
	screen.Interrupt()
	screen.Join()
	screen.HideWindow()
	if err := screen.Destroy(); err != nil {
		log.Printf("Warning: %v", err)
	}
	// snapshots requested before quitting are still written
	taker.Wait()

	log.Println("Mirror Frame shutting down...")
}

func newSnapshotStore(cfg settings.Settings) snapshot.Store {
	if cfg.SnapshotBucket != "" {
		store, err := snapshot.NewS3Store(cfg.SnapshotBucket, cfg.SnapshotPrefix)
		if err == nil {
			return store
		}
		log.Printf("Warning: S3 snapshots unavailable, writing to %s: %v", cfg.SnapshotDir, err)
	}
	return snapshot.DirStore{Dir: cfg.SnapshotDir}
}

// runEventLoop dispatches SDL events until the user quits.
func runEventLoop(ctx context.Context, screen *mirror.Screen, win *sdlwindow.Window, taker *snapshot.Taker) {
	shortcuts := input.NewShortcuts()
	pointer := input.NewPointer(screen, input.LogDispatcher{})

	for {
		event := sdl.WaitEvent()
		if event == nil {
			log.Printf("Warning: could not wait for events: %v", sdl.GetError())
			return
		}
		if _, ok := event.(*sdl.QuitEvent); ok {
			log.Println("Quit requested")
			return
		}

		for _, ev := range win.Translate(event) {
			screen.HandleEvent(ev)
		}

		switch action := shortcuts.HandleEvent(event); action {
		case input.ActionNone:
		case input.ActionSnapshot:
			frame, o, ok := screen.CurrentFrame()
			if !ok {
				log.Println("Snapshot: no frame to save")
				break
			}
			taker.TakeAsync(ctx, frame, o)
		default:
			input.Apply(action, screen)
		}

		pointer.HandleEvent(event)
	}
}

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

// videoDrivers returns the drivers to try, the SDL_VIDEODRIVER value first.
func videoDrivers(envDriver, goos string) []string {
	var drivers []string
	if envDriver != "" {
		drivers = append(drivers, envDriver)
	}
	switch goos {
	case "darwin":
		drivers = append(drivers, "cocoa")
	case "windows":
		drivers = append(drivers, "windows")
	default:
		drivers = append(drivers, "wayland", "x11", "kmsdrm")
	}
	return append(drivers, "dummy")
}

// initializeSDL2 initializes SDL2 with fallback video drivers
func initializeSDL2() error {
	envDriver := os.Getenv("SDL_VIDEODRIVER")
	if envDriver != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", envDriver)
	}
	log.Printf("OS: %s, DISPLAY: %q, WAYLAND_DISPLAY: %q", runtime.GOOS, os.Getenv("DISPLAY"), os.Getenv("WAYLAND_DISPLAY"))

	seen := make(map[string]bool)
	for _, driver := range videoDrivers(envDriver, runtime.GOOS) {
		if seen[driver] {
			continue
		}
		seen[driver] = true

		log.Printf("Attempting SDL2 initialization with %s driver", driver)
		if err := trySDLInitialization(driver); err != nil {
			log.Printf("SDL2 initialization failed with %s driver: %v", driver, err)
			continue
		}
		log.Printf("SDL2 successfully initialized with %s driver", driver)
		return nil
	}
	return fmt.Errorf("all SDL2 video drivers failed")
}

func trySDLInitialization(driver string) error {
	sdl.Quit()

	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
	switch driver {
	case "kmsdrm":
		sdl.SetHint("SDL_KMSDRM_REQUIRE_DRM_MASTER", "1")
		sdl.SetHint(sdl.HINT_RENDER_DRIVER, "opengles2")
	case "wayland":
		sdl.SetHint("SDL_VIDEO_WAYLAND_WMCLASS", "mirror-frame")
	case "x11":
		sdl.SetHint("SDL_VIDEO_X11_NET_WM_BYPASS_COMPOSITOR", "0")
	}

	// linear filtering when the content is scaled
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")
	// stay visible when the window loses focus in fullscreen
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")
	// a click that focuses the window is not forwarded as a tap
	sdl.SetHint(sdl.HINT_MOUSE_FOCUS_CLICKTHROUGH, "0")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %v", err)
	}

	driverName, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return fmt.Errorf("failed to get video driver: %v", err)
	}
	log.Printf("Video driver initialized: %s", driverName)
	return nil
}

// logDisplayInfo outputs debugging information about the display setup
func logDisplayInfo() {
	numDisplays, err := sdl.GetNumVideoDisplays()
	if err != nil {
		log.Printf("Failed to get number of displays: %v", err)
		return
	}
	for i := 0; i < numDisplays; i++ {
		mode, err := sdl.GetCurrentDisplayMode(i)
		if err != nil {
			log.Printf("Display %d: failed to get mode (%v)", i, err)
			continue
		}
		name, _ := sdl.GetDisplayName(i)
		log.Printf("Display %d %q: %dx%d @ %dHz", i, name, mode.W, mode.H, mode.RefreshRate)
	}
}

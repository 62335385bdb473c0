package ui

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/ttf"
)

// StatusFontSize is the point size of status labels at 1x density.
const StatusFontSize = 22

// fontPaths lists system fonts tried in order.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

// Fonts holds the fonts used for labels drawn over the video.
type Fonts struct {
	Status *ttf.Font
}

// LoadFonts initializes TTF and opens the status font at size points.
func LoadFonts(size int) (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %v", err)
	}

	font, path, err := openFirst(fontPaths, size)
	if err != nil {
		ttf.Quit()
		return nil, err
	}
	log.Printf("Fonts: status font %s at %dpt", path, size)
	return &Fonts{Status: font}, nil
}

func openFirst(paths []string, size int) (*ttf.Font, string, error) {
	var lastErr error
	for _, path := range paths {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, path, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no font paths")
	}
	return nil, "", fmt.Errorf("no usable font: %w", lastErr)
}

// Close releases the fonts and shuts TTF down.
func (f *Fonts) Close() {
	if f.Status != nil {
		f.Status.Close()
		f.Status = nil
	}
	ttf.Quit()
}

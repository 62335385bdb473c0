package settings

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mirror-frame/pkg/geometry"
)

// Settings is the runtime configuration of the mirror window. Values come
// from defaults, then the environment (optionally loaded from a .env file),
// then command line flags. Nothing is written back.
type Settings struct {
	WindowTitle  string
	WindowX      int
	WindowY      int
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	Borderless   bool
	AlwaysOnTop  bool

	Orientation    geometry.Orientation
	PrintFPS       bool
	DisplayMargins int

	// synthetic source
	SourceWidth       int
	SourceHeight      int
	SourceFPS         int
	SourceRotateEvery time.Duration

	SnapshotDir      string
	SnapshotBucket   string
	SnapshotPrefix   string
	SnapshotMaxWidth int
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		WindowTitle:    "Mirror Frame",
		WindowX:        geometry.PositionUndefined,
		WindowY:        geometry.PositionUndefined,
		DisplayMargins: 96,
		SourceWidth:    720,
		SourceHeight:   1280,
		SourceFPS:      60,
		SnapshotDir:    "snapshots",
	}
}

// LoadDotEnv loads variables from the .env files (default ".env") into the
// environment. A missing file is not an error.
func LoadDotEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
}

// Load reads the settings from the environment. Malformed values are logged
// and replaced by their default so the application can continue running.
func Load() Settings {
	s, errs := load(os.Getenv)
	for _, err := range errs {
		log.Printf("Warning: settings: %v", err)
	}
	return s
}

func load(getenv func(string) string) (Settings, []error) {
	s := Defaults()
	r := reader{getenv: getenv}

	r.stringVar("MIRROR_WINDOW_TITLE", &s.WindowTitle)
	r.intVar("MIRROR_WINDOW_X", &s.WindowX)
	r.intVar("MIRROR_WINDOW_Y", &s.WindowY)
	r.intVar("MIRROR_WINDOW_WIDTH", &s.WindowWidth)
	r.intVar("MIRROR_WINDOW_HEIGHT", &s.WindowHeight)
	r.boolVar("MIRROR_FULLSCREEN", &s.Fullscreen)
	r.boolVar("MIRROR_BORDERLESS", &s.Borderless)
	r.boolVar("MIRROR_ALWAYS_ON_TOP", &s.AlwaysOnTop)
	r.orientationVar("MIRROR_ORIENTATION", &s.Orientation)
	r.boolVar("MIRROR_PRINT_FPS", &s.PrintFPS)
	r.intVar("MIRROR_DISPLAY_MARGINS", &s.DisplayMargins)

	r.intVar("MIRROR_SOURCE_WIDTH", &s.SourceWidth)
	r.intVar("MIRROR_SOURCE_HEIGHT", &s.SourceHeight)
	r.intVar("MIRROR_SOURCE_FPS", &s.SourceFPS)
	r.durationVar("MIRROR_SOURCE_ROTATE_EVERY", &s.SourceRotateEvery)

	r.stringVar("MIRROR_SNAPSHOT_DIR", &s.SnapshotDir)
	r.stringVar("MIRROR_SNAPSHOT_BUCKET", &s.SnapshotBucket)
	r.stringVar("MIRROR_SNAPSHOT_PREFIX", &s.SnapshotPrefix)
	r.intVar("MIRROR_SNAPSHOT_MAX_WIDTH", &s.SnapshotMaxWidth)

	return s, r.errs
}

// Validate reports settings that cannot be used.
func (s Settings) Validate() error {
	var errs []error
	if s.WindowWidth < 0 || s.WindowHeight < 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d is negative", s.WindowWidth, s.WindowHeight))
	}
	if s.DisplayMargins < 0 {
		errs = append(errs, fmt.Errorf("display margins %d is negative", s.DisplayMargins))
	}
	if s.SourceWidth <= 0 || s.SourceHeight <= 0 {
		errs = append(errs, fmt.Errorf("source size %dx%d must be positive", s.SourceWidth, s.SourceHeight))
	}
	if s.SourceFPS <= 0 {
		errs = append(errs, fmt.Errorf("source fps %d must be positive", s.SourceFPS))
	}
	if s.SnapshotMaxWidth < 0 {
		errs = append(errs, fmt.Errorf("snapshot max width %d is negative", s.SnapshotMaxWidth))
	}
	return errors.Join(errs...)
}

// BindFlags registers command line flags overriding s on fs.
func BindFlags(fs *flag.FlagSet, s *Settings) {
	fs.StringVar(&s.WindowTitle, "window-title", s.WindowTitle, "window title")
	fs.IntVar(&s.WindowX, "window-x", s.WindowX, "initial window x position (default centered)")
	fs.IntVar(&s.WindowY, "window-y", s.WindowY, "initial window y position (default centered)")
	fs.IntVar(&s.WindowWidth, "window-width", s.WindowWidth, "initial window width, 0 to fit the content")
	fs.IntVar(&s.WindowHeight, "window-height", s.WindowHeight, "initial window height, 0 to fit the content")
	fs.BoolVar(&s.Fullscreen, "fullscreen", s.Fullscreen, "start in fullscreen")
	fs.BoolVar(&s.Borderless, "window-borderless", s.Borderless, "disable window decorations")
	fs.BoolVar(&s.AlwaysOnTop, "always-on-top", s.AlwaysOnTop, "keep the window above others")
	fs.Func("orientation", "display orientation: 0, 90, 180, 270, flip0, flip90, flip180, flip270", func(v string) error {
		o, err := geometry.ParseOrientation(v)
		if err != nil {
			return err
		}
		s.Orientation = o
		return nil
	})
	fs.BoolVar(&s.PrintFPS, "print-fps", s.PrintFPS, "log the frame rate every second")
	fs.IntVar(&s.DisplayMargins, "display-margins", s.DisplayMargins, "pixels kept free around the window on each axis")
	fs.IntVar(&s.SourceWidth, "source-width", s.SourceWidth, "synthetic source width")
	fs.IntVar(&s.SourceHeight, "source-height", s.SourceHeight, "synthetic source height")
	fs.IntVar(&s.SourceFPS, "source-fps", s.SourceFPS, "synthetic source frame rate")
	fs.DurationVar(&s.SourceRotateEvery, "source-rotate-every", s.SourceRotateEvery, "swap the source width and height at this interval, 0 to disable")
	fs.StringVar(&s.SnapshotDir, "snapshot-dir", s.SnapshotDir, "directory for snapshots")
	fs.StringVar(&s.SnapshotBucket, "snapshot-bucket", s.SnapshotBucket, "S3 bucket for snapshots, overrides -snapshot-dir")
	fs.StringVar(&s.SnapshotPrefix, "snapshot-prefix", s.SnapshotPrefix, "S3 key prefix for snapshots")
	fs.IntVar(&s.SnapshotMaxWidth, "snapshot-max-width", s.SnapshotMaxWidth, "downscale snapshots wider than this, 0 to keep")
}

type reader struct {
	getenv func(string) string
	errs   []error
}

func (r *reader) lookup(key string) (string, bool) {
	v := strings.TrimSpace(r.getenv(key))
	return v, v != ""
}

func (r *reader) stringVar(key string, dst *string) {
	if v, ok := r.lookup(key); ok {
		*dst = v
	}
}

func (r *reader) intVar(key string, dst *int) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func (r *reader) boolVar(key string, dst *bool) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}

func (r *reader) durationVar(key string, dst *time.Duration) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}

func (r *reader) orientationVar(key string, dst *geometry.Orientation) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	o, err := geometry.ParseOrientation(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = o
}

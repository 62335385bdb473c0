package framebuffer

import "errors"

// ErrClosed is returned by Push after Close.
var ErrClosed = errors.New("frame buffer closed")

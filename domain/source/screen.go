package source

import (
	"image"

	"github.com/vova616/screenshot"
)

// ScreenGrabber captures the display. Implementations may be called from loader goroutines.
type ScreenGrabber interface {
	Grab() (*image.RGBA, error)
}

// GrabberFunc adapts a function to ScreenGrabber.
type GrabberFunc func() (*image.RGBA, error)

func (f GrabberFunc) Grab() (*image.RGBA, error) { return f() }

type screenGrabber struct {
	rect *image.Rectangle
}

// NewScreenGrabber returns a grabber for the primary display, or for rect when non-nil.
func NewScreenGrabber(rect *image.Rectangle) ScreenGrabber {
	return &screenGrabber{rect: rect}
}

func (s *screenGrabber) Grab() (*image.RGBA, error) {
	if s.rect != nil && !s.rect.Empty() {
		return screenshot.CaptureRect(*s.rect)
	}
	return screenshot.CaptureScreen()
}

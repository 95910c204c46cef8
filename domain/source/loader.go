package source

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"sync/atomic"
)

// Loader decodes images off the UI thread and hands finished results back
// through Poll, which the UI thread calls on its tick. Results are delivered in
// completion order; nothing in the core runs on the loader goroutines.
type Loader struct {
	logger  *slog.Logger
	results chan Result
	pending atomic.Int32
	started atomic.Uint64
}

// NewLoader returns a ready Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger, results: make(chan Result, 8)}
}

// Pending reports how many loads have not yet been collected by Poll.
func (l *Loader) Pending() int {
	if l == nil {
		return 0
	}
	return int(l.pending.Load())
}

// LoadFile reads and decodes path asynchronously for role.
func (l *Loader) LoadFile(role Role, path string) {
	l.spawn(role, path, func() (*ImageResource, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("source: read %s: %w", path, err)
		}
		return DecodeFile(role, path, data)
	})
}

// Capture grabs the screen with g asynchronously and delivers it as role.
func (l *Loader) Capture(role Role, g ScreenGrabber) {
	l.spawn(role, "screen", func() (*ImageResource, error) {
		if g == nil {
			return nil, fmt.Errorf("source: capture: no grabber")
		}
		img, err := g.Grab()
		if err != nil {
			return nil, fmt.Errorf("source: capture: %w", err)
		}
		if img == nil {
			return nil, fmt.Errorf("source: capture: empty frame")
		}
		return NewResource(role, img, captureName(img), 0, ""), nil
	})
}

// Poll drains completed results without blocking.
func (l *Loader) Poll() []Result {
	if l == nil {
		return nil
	}
	var out []Result
	for {
		select {
		case r := <-l.results:
			l.pending.Add(-1)
			out = append(out, r)
		default:
			return out
		}
	}
}

func (l *Loader) spawn(role Role, src string, fn func() (*ImageResource, error)) {
	if l == nil {
		return
	}
	l.pending.Add(1)
	seq := l.started.Add(1)
	go func() {
		res := Result{Role: role, Source: src}
		defer func() {
			if r := recover(); r != nil {
				res.Resource = nil
				res.Err = fmt.Errorf("source: load %s panicked: %v", src, r)
				if l.logger != nil {
					l.logger.Error("loader panic", "source", src, "error", r)
				}
			}
			l.results <- res
		}()
		res.Resource, res.Err = fn()
		if l.logger != nil {
			if res.Err != nil {
				l.logger.Debug("load rejected", "seq", seq, "role", role.String(), "source", src, "error", res.Err)
			} else {
				b := res.Resource.Bounds()
				l.logger.Debug("load complete", "seq", seq, "role", role.String(), "source", src, "w", b.Dx(), "h", b.Dy())
			}
		}
	}()
}

func captureName(img image.Image) string {
	if img == nil {
		return "screen capture"
	}
	b := img.Bounds()
	return fmt.Sprintf("screen capture %dx%d", b.Dx(), b.Dy())
}

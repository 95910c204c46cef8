package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/compose"
	"github.com/soocke/pixel-overlay-go/domain/export"
	"github.com/soocke/pixel-overlay-go/domain/source"
)

// FrameRenderer produces comparison frames.
type FrameRenderer interface {
	Render(base, overlay *source.ImageResource, pos align.Position, opacity float64) *compose.Frame
}

// SlotSource exposes the resources to composite.
type SlotSource interface {
	Base() *source.ImageResource
	Overlay() *source.ImageResource
}

// StateSource exposes the alignment snapshot.
type StateSource interface{ State() align.State }

// CompareView displays the comparison frame and readouts. The view must copy
// or encode img before returning; the buffer is reused afterwards.
type CompareView interface {
	ShowFrame(img image.Image, active bool)
	SetReadout(opacity, position string)
}

// ErrNothingToExport is returned by Export before a blended frame exists.
var ErrNothingToExport = errors.New("no comparison to export")

// RenderPresenter re-renders the comparison view on the tick after any change.
type RenderPresenter struct {
	renderer FrameRenderer
	slots    SlotSource
	state    StateSource
	view     CompareView
	logger   *slog.Logger

	dirty bool
	last  *compose.Frame
}

func NewRenderPresenter(renderer FrameRenderer, slots SlotSource, state StateSource, view CompareView, logger *slog.Logger) *RenderPresenter {
	return &RenderPresenter{renderer: renderer, slots: slots, state: state, view: view, logger: logger, dirty: true}
}

// Invalidate marks the frame stale; the next Tick re-renders.
func (p *RenderPresenter) Invalidate() {
	if p != nil {
		p.dirty = true
	}
}

// Dirty reports whether a render is pending.
func (p *RenderPresenter) Dirty() bool { return p != nil && p.dirty }

// Tick renders at most one frame when dirty.
func (p *RenderPresenter) Tick() {
	if p == nil || !p.dirty || p.renderer == nil || p.slots == nil || p.state == nil {
		return
	}
	p.dirty = false
	st := p.state.State()
	f := p.renderer.Render(p.slots.Base(), p.slots.Overlay(), st.Position, st.Opacity)
	if p.view != nil {
		p.view.ShowFrame(f.Image, f.Blended)
		p.view.SetReadout(fmt.Sprintf("%d%%", percent(st.Opacity)), st.Position.String())
	}
	p.last.Release()
	p.last = f
}

// Export writes the last blended frame into dir using format.
func (p *RenderPresenter) Export(dir string, format export.Format, now time.Time) (string, error) {
	if p == nil || p.last == nil || !p.last.Blended || p.last.Image == nil {
		return "", ErrNothingToExport
	}
	path := export.TimestampedName(dir, now, format)
	if err := export.WriteFile(path, p.last.Image); err != nil {
		return "", err
	}
	if p.logger != nil {
		p.logger.Info("frame exported", "path", path, "position", p.last.Position.String(), "opacity", p.last.Opacity)
	}
	return path, nil
}

// Close releases the retained frame.
func (p *RenderPresenter) Close() {
	if p == nil {
		return
	}
	p.last.Release()
	p.last = nil
}

func percent(v float64) int {
	return int(align.ClampOpacity(v)*100 + 0.5)
}

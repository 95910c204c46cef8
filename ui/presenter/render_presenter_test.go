package presenter

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/compose"
	"github.com/soocke/pixel-overlay-go/domain/export"
	"github.com/soocke/pixel-overlay-go/domain/source"
	"github.com/soocke/pixel-overlay-go/ui/model"
)

type mockRenderer struct{ calls int }

func (m *mockRenderer) Render(base, overlay *source.ImageResource, pos align.Position, opacity float64) *compose.Frame {
	m.calls++
	return &compose.Frame{
		Image:    image.NewRGBA(image.Rect(0, 0, 4, 4)),
		Blended:  base != nil && overlay != nil,
		Position: image.Pt(pos.X, pos.Y),
		Opacity:  opacity,
	}
}

type mockCompareView struct {
	frames          int
	active          bool
	opacity, offset string
}

func (v *mockCompareView) ShowFrame(img image.Image, active bool) { v.frames++; v.active = active }
func (v *mockCompareView) SetReadout(opacity, position string) {
	v.opacity, v.offset = opacity, position
}

func TestRenderPresenter_RendersOnlyWhenDirty(t *testing.T) {
	r := &mockRenderer{}
	view := &mockCompareView{}
	a := align.NewAligner(discardLogger, 0.4, 1)
	p := NewRenderPresenter(r, model.NewSlotsModel(), a, view, discardLogger)

	p.Tick()
	p.Tick()
	if r.calls != 1 || view.frames != 1 {
		t.Fatalf("expected single initial render, got %d", r.calls)
	}
	if view.active {
		t.Fatalf("view active without images")
	}
	a.Handle(align.EvtNudge{Dir: align.Right, Step: 31})
	p.Invalidate()
	p.Tick()
	if r.calls != 2 || view.opacity != "40%" || view.offset != "(31,0)" {
		t.Fatalf("readout = %q %q after %d renders", view.opacity, view.offset, r.calls)
	}
	if p.Dirty() {
		t.Fatalf("still dirty after tick")
	}
}

func TestRenderPresenter_Export(t *testing.T) {
	slots := model.NewSlotsModel()
	view := &mockCompareView{}
	a := align.NewAligner(discardLogger, 0.5, 1)
	p := NewRenderPresenter(&mockRenderer{}, slots, a, view, discardLogger)
	dir := t.TempDir()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	p.Tick()
	if _, err := p.Export(dir, export.FormatPNG, now); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	slots.Set(source.RoleBase, source.NewResource(source.RoleBase, img, "a", 0, ""))
	slots.Set(source.RoleOverlay, source.NewResource(source.RoleOverlay, img, "b", 0, ""))
	p.Invalidate()
	p.Tick()
	if !view.active {
		t.Fatalf("view should be active with both images")
	}
	path, err := p.Export(dir, export.FormatPNG, now)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("exported outside dir: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	p.Close()
	if _, err := p.Export(dir, export.FormatPNG, now); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("export after close should fail, got %v", err)
	}
}

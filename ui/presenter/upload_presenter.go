package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/soocke/pixel-overlay-go/domain/compose"
	"github.com/soocke/pixel-overlay-go/domain/source"
)

// ResourceLoader is the asynchronous upload collaborator.
type ResourceLoader interface {
	LoadFile(role source.Role, path string)
	Capture(role source.Role, g source.ScreenGrabber)
	Poll() []source.Result
	Pending() int
}

// SlotStore holds the loaded resources.
type SlotStore interface {
	Set(role source.Role, res *source.ImageResource) (completed bool)
	Get(role source.Role) *source.ImageResource
}

// Rebaseliner resets alignment when a new comparison starts.
type Rebaseliner interface{ Rebaseline() }

// SlotRenderer draws the per-slot previews.
type SlotRenderer interface {
	RenderSlot(res *source.ImageResource, w, h int) *compose.Frame
}

// UploadView shows slot previews and a status line.
type UploadView interface {
	SetSlotPreview(role source.Role, img image.Image, caption string)
	SetStatus(text string)
}

// UploadPresenter starts loads and folds completed results into the slots on
// the UI tick.
type UploadPresenter struct {
	loader   ResourceLoader
	slots    SlotStore
	aligner  Rebaseliner
	renderer SlotRenderer
	view     UploadView
	out      Invalidator
	grabber  source.ScreenGrabber
	previewW int
	previewH int
	logger   *slog.Logger
}

func NewUploadPresenter(loader ResourceLoader, slots SlotStore, aligner Rebaseliner, renderer SlotRenderer, view UploadView, out Invalidator, grabber source.ScreenGrabber, previewW, previewH int, logger *slog.Logger) *UploadPresenter {
	return &UploadPresenter{
		loader:   loader,
		slots:    slots,
		aligner:  aligner,
		renderer: renderer,
		view:     view,
		out:      out,
		grabber:  grabber,
		previewW: previewW,
		previewH: previewH,
		logger:   logger,
	}
}

// Open starts loading path into role. Empty paths (cancelled dialogs) are ignored.
func (p *UploadPresenter) Open(role source.Role, path string) {
	if p == nil || p.loader == nil || path == "" {
		return
	}
	p.loader.LoadFile(role, path)
	p.status(fmt.Sprintf("Loading %s…", role))
}

// CaptureScreen grabs the screen into the overlay slot.
func (p *UploadPresenter) CaptureScreen() {
	if p == nil || p.loader == nil || p.grabber == nil {
		return
	}
	p.loader.Capture(source.RoleOverlay, p.grabber)
	p.status("Capturing screen…")
}

// Refresh redraws both slot previews from the current slots.
func (p *UploadPresenter) Refresh() {
	if p == nil || p.slots == nil {
		return
	}
	for _, r := range source.Roles {
		p.preview(r, p.slots.Get(r))
	}
}

// Tick drains completed loads. Failed loads leave their slot unchanged.
func (p *UploadPresenter) Tick() {
	if p == nil || p.loader == nil || p.slots == nil {
		return
	}
	for _, res := range p.loader.Poll() {
		if res.Err != nil || res.Resource == nil {
			p.reject(res)
			continue
		}
		if p.slots.Set(res.Role, res.Resource) && p.aligner != nil {
			p.aligner.Rebaseline()
		}
		p.preview(res.Role, res.Resource)
		p.status(fmt.Sprintf("Loaded %s: %s", res.Role, res.Resource.Name))
		if p.out != nil {
			p.out.Invalidate()
		}
	}
}

func (p *UploadPresenter) reject(res source.Result) {
	if p.logger != nil {
		p.logger.Debug("load rejected", "role", res.Role.String(), "source", res.Source, "error", res.Err)
	}
	reason := "failed"
	switch {
	case errors.Is(res.Err, source.ErrNotImage):
		reason = "not an image"
	case errors.Is(res.Err, source.ErrUnsupported):
		reason = "unsupported image format"
	}
	p.status(fmt.Sprintf("Could not load %s: %s", res.Role, reason))
}

func (p *UploadPresenter) preview(role source.Role, res *source.ImageResource) {
	if p.view == nil || p.renderer == nil {
		return
	}
	f := p.renderer.RenderSlot(res, p.previewW, p.previewH)
	p.view.SetSlotPreview(role, f.Image, Caption(res))
	f.Release()
}

func (p *UploadPresenter) status(text string) {
	if p.view != nil {
		p.view.SetStatus(text)
	}
}

// Caption describes a resource for its slot: name, pixel size and encoded size.
func Caption(res *source.ImageResource) string {
	if res == nil {
		return "No image"
	}
	b := res.Bounds()
	if res.Size > 0 {
		return fmt.Sprintf("%s (%dx%d, %s)", res.Name, b.Dx(), b.Dy(), humanize.Bytes(uint64(res.Size)))
	}
	return fmt.Sprintf("%s (%dx%d)", res.Name, b.Dx(), b.Dy())
}

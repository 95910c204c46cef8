package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/pixel-overlay-go/config"
	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/export"
	"github.com/soocke/pixel-overlay-go/domain/source"
	"github.com/soocke/pixel-overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user-action callbacks the view invokes. Nil entries are skipped.
type Handlers struct {
	Open    func(role source.Role, path string)
	Capture func()
	Export  func(format export.Format)
	Exit    func()
	Nudge   func(dir align.Direction, large bool)
	Reset   func()
	Theme   func(dark bool)

	// Opacity applies a percentage typed by the user; false means unparseable.
	Opacity        func(text string) bool
	// OpacityPercent applies a slider value in 0-100.
	OpacityPercent func(percent float64)

	PointerDown  func(x, y int)
	PointerMove  func(x, y int)
	PointerUp    func()
	PointerLeave func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the subviews and exposes the view contracts presenters need.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Upload   UploadPanel
	Compare  CompareView
	Controls ControlPanel

	StatusLabel *TLabelWidget
}

// UI abstracts the subset of view operations needed by presenters.
type UI interface {
	SetSlotPreview(role source.Role, img image.Image, caption string)
	SetStatus(text string)
	ShowFrame(img image.Image, active bool)
	SetReadout(opacity, position string)
	SetDragLabel(text string)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout:
//
//	row 0      upload slots
//	row 1      comparison viewport | control panel
//	row 2      hint
//	row 3      status line
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	cfg := rv.cfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme.SetDark(cfg.DarkMode)

	rv.Upload = NewUploadPanel(0, 2, h, rv.logger)
	rv.Compare = NewCompareView(1, 1, cfg.ViewportWidth, cfg.ViewportHeight, h)
	initial := fmt.Sprintf("%d%%", int(cfg.DefaultOpacity*100+0.5))
	rv.Controls = NewControlPanel(1, 1, initial, h, func(text string) {
		rv.SetStatus(fmt.Sprintf("Opacity must be a number between 0 and 100, got %q", text))
	})

	rv.StatusLabel = TLabel(Txt("Ready"), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, Row(3), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.bindKeys(h)
}

// bindKeys maps arrow keys to nudges; Shift uses the large step. Keys typed
// into the opacity slider or entry are left to those widgets.
func (rv *RootView) bindKeys(h Handlers) {
	if h.Nudge == nil {
		return
	}
	nudge := func(dir align.Direction, large bool) func() {
		return func() {
			if rv.Controls != nil && rv.Controls.OwnsArrowKeys(Focus()) {
				return
			}
			h.Nudge(dir, large)
		}
	}
	for _, key := range []string{"Left", "Right", "Up", "Down"} {
		dir, ok := align.ParseDirection(key)
		if !ok {
			continue
		}
		Bind(App, "<"+key+">", Command(nudge(dir, false)))
		Bind(App, "<Shift-"+key+">", Command(nudge(dir, true)))
	}
	if h.Exit != nil {
		Bind(App, "<Escape>", Command(h.Exit))
	}
}

func (rv *RootView) SetSlotPreview(role source.Role, img image.Image, caption string) {
	if rv != nil && rv.Upload != nil {
		rv.Upload.SetSlotPreview(role, img, caption)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

func (rv *RootView) ShowFrame(img image.Image, active bool) {
	if rv != nil && rv.Compare != nil {
		rv.Compare.ShowFrame(img, active)
	}
}

func (rv *RootView) SetReadout(opacity, position string) {
	if rv != nil && rv.Controls != nil {
		rv.Controls.SetReadout(opacity, position)
	}
}

func (rv *RootView) SetDragLabel(text string) {
	if rv != nil && rv.Controls != nil {
		rv.Controls.SetDragLabel(text)
	}
}

package presenter

import (
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/compose"
)

// AlignModel is the subset of align.Aligner the presenter drives.
type AlignModel interface {
	Handle(align.Event) bool
	State() align.State
}

// ActiveSource reports whether the comparison view is active (both images loaded).
type ActiveSource interface{ Both() bool }

// Invalidator is told when the comparison frame needs re-rendering.
type Invalidator interface{ Invalidate() }

// AlignPresenter translates view input (pointer, keys, buttons, opacity entry)
// into alignment events. Pointer coordinates are in viewport pixels.
type AlignPresenter struct {
	aligner   AlignModel
	slots     ActiveSource
	viewport  image.Rectangle
	largeStep int
	out       Invalidator
	logger    *slog.Logger
}

func NewAlignPresenter(a AlignModel, slots ActiveSource, viewport image.Rectangle, largeStep int, out Invalidator, logger *slog.Logger) *AlignPresenter {
	return &AlignPresenter{aligner: a, slots: slots, viewport: viewport, largeStep: largeStep, out: out, logger: logger}
}

func (p *AlignPresenter) ready() bool { return p != nil && p.aligner != nil }

func (p *AlignPresenter) active() bool { return p.slots != nil && p.slots.Both() }

// PointerDown starts a drag when the press lands on the visible overlay.
func (p *AlignPresenter) PointerDown(x, y int) {
	if !p.ready() || !p.active() {
		return
	}
	st := p.aligner.State()
	if !compose.HitOverlay(p.viewport, st.Position, image.Pt(x, y)) {
		return
	}
	p.apply(align.EvtPointerDown{At: align.Position{X: x, Y: y}})
}

// PointerMove updates the drag.
func (p *AlignPresenter) PointerMove(x, y int) {
	if !p.ready() || !p.active() {
		return
	}
	p.apply(align.EvtPointerMove{At: align.Position{X: x, Y: y}})
}

// PointerUp ends the drag. Forwarded even while inactive so a drag can never stick.
func (p *AlignPresenter) PointerUp() {
	if !p.ready() {
		return
	}
	p.apply(align.EvtPointerUp{})
}

// PointerLeave ends the drag when the pointer leaves the comparison view.
func (p *AlignPresenter) PointerLeave() {
	if !p.ready() {
		return
	}
	p.apply(align.EvtPointerLeave{})
}

// Nudge moves the overlay by the aligner's default step in dir; large uses the
// presenter's large step.
func (p *AlignPresenter) Nudge(dir align.Direction, large bool) {
	if !p.ready() {
		return
	}
	if large {
		p.apply(align.EvtNudge{Dir: dir, Step: p.largeStep})
		return
	}
	p.apply(align.EvtNudgeDefault{Dir: dir})
}

// SetOpacityText parses a percentage such as "40" or "40%" and applies it.
// Out-of-range values are clamped by the model. Unparseable input is ignored
// and reported false.
func (p *AlignPresenter) SetOpacityText(s string) bool {
	if !p.ready() {
		return false
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if p.logger != nil {
			p.logger.Debug("opacity input rejected", "input", s, "error", err)
		}
		return false
	}
	p.apply(align.EvtSetOpacityPercent{Percent: v})
	return true
}

// SetOpacityPercent applies a slider value in 0-100.
func (p *AlignPresenter) SetOpacityPercent(percent float64) {
	if !p.ready() {
		return
	}
	p.apply(align.EvtSetOpacityPercent{Percent: percent})
}

// Reset returns the overlay to {0,0}.
func (p *AlignPresenter) Reset() {
	if !p.ready() {
		return
	}
	p.apply(align.EvtResetPosition{})
}

func (p *AlignPresenter) apply(ev align.Event) {
	if p.aligner.Handle(ev) && p.out != nil {
		p.out.Invalidate()
	}
}

package presenter

import (
	"image"
	"io"
	"log/slog"
	"testing"

	"github.com/soocke/pixel-overlay-go/domain/align"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockActive struct{ both bool }

func (m *mockActive) Both() bool { return m.both }

type mockInvalidator struct{ n int }

func (m *mockInvalidator) Invalidate() { m.n++ }

func newAlignFixture(both bool) (*AlignPresenter, *align.Aligner, *mockActive, *mockInvalidator) {
	a := align.NewAligner(discardLogger, 0.5, 1)
	act := &mockActive{both: both}
	inv := &mockInvalidator{}
	p := NewAlignPresenter(a, act, image.Rect(0, 0, 100, 100), 10, inv, discardLogger)
	return p, a, act, inv
}

func TestAlignPresenter_DragOnOverlay(t *testing.T) {
	p, a, _, inv := newAlignFixture(true)
	p.PointerDown(10, 10)
	p.PointerMove(25, 40)
	p.PointerUp()
	if got := a.Position(); got != (align.Position{X: 15, Y: 30}) {
		t.Fatalf("position = %v", got)
	}
	if a.Dragging() {
		t.Fatalf("still dragging after release")
	}
	if inv.n == 0 {
		t.Fatalf("expected invalidation")
	}
}

func TestAlignPresenter_PressOffOverlayIgnored(t *testing.T) {
	p, a, _, _ := newAlignFixture(true)
	for i := 0; i < 5; i++ {
		p.Nudge(align.Right, true)
	}
	// overlay box spans x in [50,150)
	p.PointerDown(20, 20)
	if a.Dragging() {
		t.Fatalf("press left of the overlay should not start a drag")
	}
	p.PointerDown(200, 20)
	if a.Dragging() {
		t.Fatalf("press outside the viewport should not start a drag")
	}
	p.PointerDown(60, 20)
	if !a.Dragging() {
		t.Fatalf("press on the overlay should start a drag")
	}
}

func TestAlignPresenter_InactiveIgnoresPointer(t *testing.T) {
	p, a, act, inv := newAlignFixture(false)
	p.PointerDown(10, 10)
	p.PointerMove(50, 50)
	if a.Dragging() || a.Position() != (align.Position{}) || inv.n != 0 {
		t.Fatalf("pointer input must be ignored while inactive")
	}
	act.both = true
	p.PointerDown(10, 10)
	act.both = false
	p.PointerLeave()
	if a.Dragging() {
		t.Fatalf("leave must end the drag even when inactive")
	}
}

func TestAlignPresenter_NudgeSteps(t *testing.T) {
	p, a, _, _ := newAlignFixture(true)
	p.Nudge(align.Left, false)
	p.Nudge(align.Down, true)
	if got := a.Position(); got != (align.Position{X: -1, Y: 10}) {
		t.Fatalf("position = %v", got)
	}
	p.Reset()
	if got := a.Position(); got != (align.Position{}) {
		t.Fatalf("reset position = %v", got)
	}
}

func TestAlignPresenter_OpacityText(t *testing.T) {
	p, a, _, inv := newAlignFixture(true)
	cases := []struct {
		in   string
		ok   bool
		want int
	}{
		{"40", true, 40},
		{" 75% ", true, 75},
		{"150", true, 100},
		{"-3", true, 0},
		{"abc", false, 0},
	}
	for _, tc := range cases {
		if got := p.SetOpacityText(tc.in); got != tc.ok {
			t.Fatalf("SetOpacityText(%q) = %v", tc.in, got)
		}
		if tc.ok && a.OpacityPercent() != tc.want {
			t.Fatalf("SetOpacityText(%q) percent = %d, want %d", tc.in, a.OpacityPercent(), tc.want)
		}
	}
	before := inv.n
	p.SetOpacityText("0") // unchanged from -3
	if inv.n != before {
		t.Fatalf("no-op opacity change should not invalidate")
	}
}

func TestAlignPresenter_SliderOpacity(t *testing.T) {
	p, a, _, inv := newAlignFixture(true)
	p.SetOpacityPercent(40)
	if a.OpacityPercent() != 40 || inv.n != 1 {
		t.Fatalf("percent = %d, invalidations = %d", a.OpacityPercent(), inv.n)
	}
	p.SetOpacityPercent(40)
	if inv.n != 1 {
		t.Fatalf("repeated slider value should not invalidate")
	}
	p.SetOpacityPercent(130)
	if a.OpacityPercent() != 100 {
		t.Fatalf("percent = %d, want clamp to 100", a.OpacityPercent())
	}
}

func TestAlignPresenter_NudgeUsesAlignerDefaultStep(t *testing.T) {
	a := align.NewAligner(discardLogger, 0.5, 3)
	p := NewAlignPresenter(a, &mockActive{both: true}, image.Rect(0, 0, 100, 100), 10, nil, discardLogger)
	p.Nudge(align.Up, false)
	if got := a.Position(); got != (align.Position{Y: -3}) {
		t.Fatalf("position = %v", got)
	}
}

func TestAlignPresenter_NilSafe(t *testing.T) {
	var p *AlignPresenter
	p.PointerDown(1, 1)
	p.PointerMove(1, 1)
	p.PointerUp()
	p.PointerLeave()
	p.Nudge(align.Up, false)
	p.Reset()
	p.SetOpacityPercent(10)
	if p.SetOpacityText("10") {
		t.Fatalf("nil presenter accepted input")
	}
}

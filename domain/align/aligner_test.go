package align

import "testing"

func TestAligner_NudgeOpacityDragScenario(t *testing.T) {
	a := NewAligner(discardLogger, 0.5, 1)
	a.Handle(EvtNudge{Dir: Right, Step: 1})
	if a.Position() != (Position{X: 1}) {
		t.Fatalf("expected (1,0) after nudge, got %v", a.Position())
	}
	a.Handle(EvtSetOpacityPercent{Percent: 40})
	if a.Opacity() != 0.4 {
		t.Fatalf("expected opacity 0.4, got %v", a.Opacity())
	}
	a.Handle(EvtPointerDown{At: Position{X: 100, Y: 100}})
	a.Handle(EvtPointerMove{At: Position{X: 130, Y: 115}})
	a.Handle(EvtPointerUp{})
	if a.Position() != (Position{X: 31, Y: 15}) {
		t.Fatalf("expected (31,15), got %v", a.Position())
	}
	if a.Dragging() {
		t.Fatalf("expected idle after release")
	}
}

func TestAligner_LeaveMidDragScenario(t *testing.T) {
	a := NewAligner(discardLogger, 0.5, 1)
	a.Handle(EvtNudge{Dir: Right, Step: 1})
	a.Handle(EvtSetOpacityPercent{Percent: 40})
	a.Handle(EvtPointerDown{At: Position{X: 100, Y: 100}})
	a.Handle(EvtPointerMove{At: Position{X: 110, Y: 100}})
	a.Handle(EvtPointerLeave{})
	if a.Dragging() {
		t.Fatalf("leave must end the drag")
	}
	if a.Position() != (Position{X: 11}) {
		t.Fatalf("expected (11,0), got %v", a.Position())
	}
	if a.Handle(EvtPointerMove{At: Position{X: 200, Y: 200}}) {
		t.Fatalf("move outside a drag must not change state")
	}
	if a.Position() != (Position{X: 11}) {
		t.Fatalf("position changed after idle move: %v", a.Position())
	}
}

func TestAligner_NudgeMidDragIsReplacedByNextMove(t *testing.T) {
	a := NewAligner(discardLogger, 0.5, 1)
	a.Handle(EvtPointerDown{At: Position{X: 0, Y: 0}})
	a.Handle(EvtPointerMove{At: Position{X: 4, Y: 0}})
	a.Handle(EvtNudge{Dir: Down, Step: 2})
	if a.Position() != (Position{X: 4, Y: 2}) {
		t.Fatalf("nudge should apply immediately, got %v", a.Position())
	}
	a.Handle(EvtPointerMove{At: Position{X: 5, Y: 0}})
	if a.Position() != (Position{X: 5}) {
		t.Fatalf("move recomputes from the press anchor, got %v", a.Position())
	}
}

func TestAligner_ListenersOnlyOnChange(t *testing.T) {
	a := NewAligner(discardLogger, 0.5, 1)
	var got []State
	a.AddListener(func(s State) { got = append(got, s) })

	a.Handle(EvtPointerUp{})             // no-op
	a.Handle(EvtSetOpacity{Value: 0.5})  // unchanged
	a.Handle(EvtSetOpacity{Value: 2})    // -> 1
	a.Handle(EvtSetOpacity{Value: 1})    // unchanged
	a.Handle(EvtNudgeDefault{Dir: Left}) // -> (-1,0)
	a.Handle(EvtNudge{Dir: Left})        // step 0, unchanged
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d: %+v", len(got), got)
	}
	if got[0].Opacity != 1 || got[1].Position != (Position{X: -1}) {
		t.Fatalf("unexpected snapshots %+v", got)
	}
}

func TestAligner_Rebaseline(t *testing.T) {
	a := NewAligner(discardLogger, 0.5, 1)
	a.Handle(EvtPointerDown{At: Position{X: 1, Y: 1}})
	a.Handle(EvtPointerMove{At: Position{X: 9, Y: 9}})
	a.Rebaseline()
	if a.Dragging() || a.Position() != (Position{}) {
		t.Fatalf("expected idle at origin, got drag=%v pos=%v", a.Dragging(), a.Position())
	}
	if a.Opacity() != 0.5 {
		t.Fatalf("rebaseline must keep opacity, got %v", a.Opacity())
	}
}

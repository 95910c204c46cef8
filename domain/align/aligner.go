package align

import "log/slog"

// Aligner owns the alignment state (position, opacity, drag session) and applies
// input events to it synchronously. Handlers must not be re-entered; the UI
// thread delivers one event at a time.
type Aligner struct {
	position  *PositionModel
	opacity   *OpacityModel
	drag      *DragMachine
	nudger    *Nudger
	logger    *slog.Logger
	listeners []ChangeListener
}

// NewAligner builds an aligner at position {0,0} with the given initial opacity
// and default nudge step.
func NewAligner(logger *slog.Logger, initialOpacity float64, nudgeStep int) *Aligner {
	pos := &PositionModel{}
	return &Aligner{
		position: pos,
		opacity:  NewOpacityModel(initialOpacity),
		drag:     NewDragMachine(pos, logger),
		nudger:   NewNudger(pos, nudgeStep),
		logger:   logger,
	}
}

// AddListener registers l to receive a snapshot after every state change.
func (a *Aligner) AddListener(l ChangeListener) {
	if a == nil || l == nil {
		return
	}
	a.listeners = append(a.listeners, l)
}

// AddDragListener forwards l to the drag machine.
func (a *Aligner) AddDragListener(l DragStateListener) {
	if a == nil {
		return
	}
	a.drag.AddListener(l)
}

// State returns the current snapshot.
func (a *Aligner) State() State {
	if a == nil {
		return State{}
	}
	return State{Position: a.position.Value(), Opacity: a.opacity.Value(), Drag: a.drag.Current()}
}

// Position returns the current overlay offset.
func (a *Aligner) Position() Position { return a.State().Position }

// Opacity returns the current overlay alpha.
func (a *Aligner) Opacity() float64 { return a.State().Opacity }

// OpacityPercent returns the rounded opacity percentage.
func (a *Aligner) OpacityPercent() int {
	if a == nil {
		return 0
	}
	return a.opacity.Percent()
}

// Dragging reports whether a drag session is active.
func (a *Aligner) Dragging() bool { return a.State().Drag == StateDragging }

// Handle applies ev and reports whether the observable state changed.
func (a *Aligner) Handle(ev Event) bool {
	if a == nil || ev == nil {
		return false
	}
	before := a.State()
	switch e := ev.(type) {
	case EvtPointerDown:
		a.drag.PointerDown(e.At)
	case EvtPointerMove:
		a.drag.PointerMove(e.At)
	case EvtPointerUp:
		a.drag.PointerUp()
	case EvtPointerLeave:
		a.drag.PointerLeave()
	case EvtNudge:
		a.nudger.Nudge(e.Dir, e.Step)
	case EvtNudgeDefault:
		a.nudger.NudgeDefault(e.Dir)
	case EvtSetOpacity:
		a.opacity.Set(e.Value)
	case EvtSetOpacityPercent:
		a.opacity.SetPercent(e.Percent)
	case EvtResetPosition:
		a.position.Reset()
	}
	after := a.State()
	if after == before {
		return false
	}
	for _, l := range a.listeners {
		l(after)
	}
	return true
}

// Rebaseline resets the position to {0,0} and ends any drag. Called when both
// images become available.
func (a *Aligner) Rebaseline() {
	if a == nil {
		return
	}
	a.Handle(EvtPointerLeave{})
	a.Handle(EvtResetPosition{})
	if a.logger != nil {
		a.logger.Debug("alignment rebaselined")
	}
}

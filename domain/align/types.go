package align

// DragState enumerates the states of the drag interaction.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

func (s DragState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DragStateListener is called on each drag state transition.
type DragStateListener func(prev, next DragState)

// ChangeListener is called after any event that changed the alignment state.
type ChangeListener func(State)

// PositionAdjuster is the additive half of the position contract (used by Nudger).
type PositionAdjuster interface {
	Adjust(dx, dy int)
}

// PositionStore is the full position contract used by the drag machine.
type PositionStore interface {
	PositionAdjuster
	Value() Position
	Set(Position)
}

// State is an immutable snapshot of the alignment state.
type State struct {
	Position Position
	Opacity  float64
	Drag     DragState
}

// Events accepted by Aligner.Handle.
type (
	EvtPointerDown struct{ At Position }
	EvtPointerMove struct{ At Position }
	EvtPointerUp   struct{}
	// EvtPointerLeave is treated exactly like EvtPointerUp.
	EvtPointerLeave struct{}
	EvtNudge        struct {
		Dir  Direction
		Step int
	}
	// EvtNudgeDefault nudges by the aligner's configured step.
	EvtNudgeDefault      struct{ Dir Direction }
	EvtSetOpacity        struct{ Value float64 }
	EvtSetOpacityPercent struct{ Percent float64 }
	EvtResetPosition     struct{}
)

// Event is implemented by the Evt* types.
type Event interface{ alignEvent() }

func (EvtPointerDown) alignEvent()       {}
func (EvtPointerMove) alignEvent()       {}
func (EvtPointerUp) alignEvent()         {}
func (EvtPointerLeave) alignEvent()      {}
func (EvtNudge) alignEvent()             {}
func (EvtNudgeDefault) alignEvent()      {}
func (EvtSetOpacity) alignEvent()        {}
func (EvtSetOpacityPercent) alignEvent() {}
func (EvtResetPosition) alignEvent()     {}

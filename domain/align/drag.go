package align

import "log/slog"

// DragSession exists only while the pointer button is held.
type DragSession struct {
	Active               bool
	AnchorOffset         Position
	PointerOriginAtPress Position
}

// DragMachine turns pointer down/move/up/leave into position updates.
//
// Motion is relative to the press point: every move sets
// position = anchor + (pointer - origin), replacing the previous value.
// Not safe for concurrent use; drive it from the UI thread.
type DragMachine struct {
	state     DragState
	session   *DragSession
	pos       PositionStore
	logger    *slog.Logger
	listeners []DragStateListener
}

// NewDragMachine returns an Idle machine writing into pos.
func NewDragMachine(pos PositionStore, logger *slog.Logger) *DragMachine {
	return &DragMachine{state: StateIdle, pos: pos, logger: logger}
}

// AddListener registers l for state transitions.
func (d *DragMachine) AddListener(l DragStateListener) {
	if d == nil || l == nil {
		return
	}
	d.listeners = append(d.listeners, l)
}

// Current returns the current state.
func (d *DragMachine) Current() DragState {
	if d == nil {
		return StateIdle
	}
	return d.state
}

// Session returns a copy of the active session, or false when Idle.
func (d *DragMachine) Session() (DragSession, bool) {
	if d == nil || d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// PointerDown starts a drag anchored at the current position.
// It is ignored while already dragging. Returns true if a drag started.
func (d *DragMachine) PointerDown(at Position) bool {
	if d == nil || d.pos == nil || d.state == StateDragging {
		return false
	}
	d.session = &DragSession{Active: true, AnchorOffset: d.pos.Value(), PointerOriginAtPress: at}
	d.transition(StateDragging)
	return true
}

// PointerMove repositions relative to the press point. No-op when Idle.
// Returns true if the position changed.
func (d *DragMachine) PointerMove(at Position) bool {
	if d == nil || d.state != StateDragging || d.session == nil {
		return false
	}
	next := d.session.AnchorOffset.Add(at.Sub(d.session.PointerOriginAtPress))
	if next == d.pos.Value() {
		return false
	}
	d.pos.Set(next)
	return true
}

// PointerUp ends the drag, keeping the last position. No-op when Idle.
func (d *DragMachine) PointerUp() bool { return d.release("up") }

// PointerLeave ends the drag exactly like PointerUp so the machine cannot stay stuck in Dragging.
func (d *DragMachine) PointerLeave() bool { return d.release("leave") }

func (d *DragMachine) release(cause string) bool {
	if d == nil || d.state != StateDragging {
		return false
	}
	d.session = nil
	if d.logger != nil {
		d.logger.Debug("drag released", "cause", cause, "position", d.pos.Value().String())
	}
	d.transition(StateIdle)
	return true
}

func (d *DragMachine) transition(next DragState) {
	prev := d.state
	if prev == next {
		return
	}
	d.state = next
	if d.logger != nil {
		d.logger.Debug("drag state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range d.listeners {
		l(prev, next)
	}
}

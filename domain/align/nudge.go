package align

// Direction enumerates the discrete nudge directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Unit returns the unit vector for d in screen coordinates (y grows downwards).
// Unknown directions map to the zero vector.
func (d Direction) Unit() Position {
	switch d {
	case Left:
		return Position{X: -1}
	case Right:
		return Position{X: 1}
	case Up:
		return Position{Y: -1}
	case Down:
		return Position{Y: 1}
	default:
		return Position{}
	}
}

// ParseDirection maps a key symbol or name ("Left", "right", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "Left", "left":
		return Left, true
	case "Right", "right":
		return Right, true
	case "Up", "up":
		return Up, true
	case "Down", "down":
		return Down, true
	default:
		return 0, false
	}
}

// Nudger applies fixed-step directional adjustments to a position, independent of drag state.
type Nudger struct {
	pos         PositionAdjuster
	defaultStep int
}

// NewNudger returns a Nudger adjusting pos. A non-positive defaultStep means 1.
func NewNudger(pos PositionAdjuster, defaultStep int) *Nudger {
	if defaultStep <= 0 {
		defaultStep = 1
	}
	return &Nudger{pos: pos, defaultStep: defaultStep}
}

// Nudge adjusts the position by dir's unit vector scaled by step. Zero and
// negative steps are applied as given.
func (n *Nudger) Nudge(dir Direction, step int) {
	if n == nil || n.pos == nil {
		return
	}
	u := dir.Unit()
	n.pos.Adjust(u.X*step, u.Y*step)
}

// NudgeDefault nudges by the default step.
func (n *Nudger) NudgeDefault(dir Direction) {
	if n == nil {
		return
	}
	n.Nudge(dir, n.defaultStep)
}

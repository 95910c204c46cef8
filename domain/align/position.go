package align

import "fmt"

// Position is a pixel offset of the overlay relative to the base image.
// It is unbounded; clipping happens at render time.
type Position struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Position) Add(q Position) Position { return Position{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference p - q.
func (p Position) Sub(q Position) Position { return Position{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// PositionModel holds the current overlay offset. The zero value is {0,0} and usable.
// No synchronization: all mutation happens on the UI thread.
type PositionModel struct {
	p Position
}

// Value returns the current offset.
func (m *PositionModel) Value() Position {
	if m == nil {
		return Position{}
	}
	return m.p
}

// Set replaces the offset.
func (m *PositionModel) Set(p Position) {
	if m == nil {
		return
	}
	m.p = p
}

// Adjust adds (dx, dy) to the offset.
func (m *PositionModel) Adjust(dx, dy int) {
	if m == nil {
		return
	}
	m.p = Position{X: m.p.X + dx, Y: m.p.Y + dy}
}

// Reset re-baselines the offset to {0,0}.
func (m *PositionModel) Reset() { m.Set(Position{}) }

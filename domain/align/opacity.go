package align

import "math"

// OpacityModel stores the overlay blend alpha in [0,1].
// Out-of-range input is clamped rather than rejected.
type OpacityModel struct {
	v float64
}

// NewOpacityModel returns a model initialised (and clamped) to v.
func NewOpacityModel(v float64) *OpacityModel {
	m := &OpacityModel{}
	m.Set(v)
	return m
}

// Value returns the current opacity.
func (m *OpacityModel) Value() float64 {
	if m == nil {
		return 0
	}
	return m.v
}

// Set clamps v into [0,1] and stores it. NaN is stored as 0.
func (m *OpacityModel) Set(v float64) {
	if m == nil {
		return
	}
	m.v = ClampOpacity(v)
}

// SetPercent maps a 0-100 slider value onto [0,1].
func (m *OpacityModel) SetPercent(p float64) { m.Set(p / 100) }

// Percent returns the opacity as a rounded percentage for display.
func (m *OpacityModel) Percent() int { return int(math.Round(m.Value() * 100)) }

// ClampOpacity clamps v into [0,1]; NaN maps to 0.
func ClampOpacity(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}

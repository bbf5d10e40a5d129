package entity

// MovementIntent is the normalized horizontal input axis.
// X strafes along world X, Y pushes along world Z.
type MovementIntent struct {
	Axis Vec2
}

// NewMovementIntent clamps each axis component into [-1,1].
func NewMovementIntent(x, y float64) MovementIntent {
	return MovementIntent{Axis: Vec2{X: clampUnit(x), Y: clampUnit(y)}}
}

// IsNonZero reports whether any movement is requested
func (m MovementIntent) IsNonZero() bool {
	return !m.Axis.IsZero()
}

// Direction maps the axis onto the ground plane without normalizing.
func (m MovementIntent) Direction() Vec3 {
	return Vec3{X: m.Axis.X, Z: m.Axis.Y}
}

func clampUnit(v float64) float64 {
	if v != v { // NaN
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

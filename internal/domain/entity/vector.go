package entity

import "math"

// Vec2 is a 2D vector. Input axes use X for strafe and Y for forward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the Euclidean length
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalized returns the unit vector in the direction of v.
// The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Vec3 is a world-space vector. Y is up; X/Z span the ground plane.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Length returns the Euclidean length
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Horizontal drops the vertical component
func (v Vec3) Horizontal() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// Normalized returns the unit vector in the direction of v.
// The zero vector stays zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Quat is a unit quaternion orientation.
type Quat struct {
	W, X, Y, Z float64
}

// IdentityQuat faces +Z
func IdentityQuat() Quat { return Quat{W: 1} }

// YawRotation returns a rotation of angle radians about the up axis.
// Angle 0 faces +Z, pi/2 faces +X.
func YawRotation(angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, Y: s}
}

// LookRotation returns the yaw rotation facing dir projected on the ground plane.
// A zero direction yields the identity.
func LookRotation(dir Vec3) Quat {
	if dir.X == 0 && dir.Z == 0 {
		return IdentityQuat()
	}
	return YawRotation(math.Atan2(dir.X, dir.Z))
}

// Dot returns the 4D dot product
func (q Quat) Dot(o Quat) float64 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

func (q Quat) scale(s float64) Quat {
	return Quat{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

func (q Quat) add(o Quat) Quat {
	return Quat{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

// Normalized returns q scaled to unit length (identity for a zero quaternion)
func (q Quat) Normalized() Quat {
	l := math.Sqrt(q.Dot(q))
	if l == 0 {
		return IdentityQuat()
	}
	return q.scale(1 / l)
}

// Forward returns the rotated +Z axis
func (q Quat) Forward() Vec3 {
	return Vec3{
		X: 2 * (q.X*q.Z + q.W*q.Y),
		Y: 2 * (q.Y*q.Z - q.W*q.X),
		Z: 1 - 2*(q.X*q.X+q.Y*q.Y),
	}
}

// Yaw returns the heading angle of the forward axis in radians
func (q Quat) Yaw() float64 {
	f := q.Forward()
	return math.Atan2(f.X, f.Z)
}

// Slerp spherically interpolates from a to b along the shortest arc.
// t is clamped to [0,1].
func Slerp(a, b Quat, t float64) Quat {
	if t <= 0 {
		return a.Normalized()
	}
	if t >= 1 {
		t = 1
	}

	cos := a.Dot(b)
	if cos < 0 {
		b = b.scale(-1)
		cos = -cos
	}

	// Nearly parallel: fall back to normalized lerp
	if cos > 0.9995 {
		return a.scale(1 - t).add(b.scale(t)).Normalized()
	}

	theta := math.Acos(cos)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return a.scale(wa).add(b.scale(wb)).Normalized()
}

package entity

// Pose is a character transform: position plus facing.
type Pose struct {
	Position Vec3
	Rotation Quat
}

// NewPose creates a pose at position facing +Z
func NewPose(position Vec3) *Pose {
	return &Pose{Position: position, Rotation: IdentityQuat()}
}

// GetRotation returns the current facing
func (p *Pose) GetRotation() Quat { return p.Rotation }

// SetRotation overwrites the facing
func (p *Pose) SetRotation(q Quat) { p.Rotation = q }

// Forward returns the facing direction on the ground plane
func (p *Pose) Forward() Vec3 { return p.Rotation.Forward().Horizontal().Normalized() }

package system

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/swordstep/internal/domain/entity"
)

const (
	// contactSkin is the gap kept between a body and the wall it stops at.
	contactSkin = 1e-3

	// KillHeight is the height below which a falling body respawns.
	KillHeight = -10.0
)

// PhysicsSystem is the collision oracle for characters in an arena.
// Walls live as static shapes in a Chipmunk space; characters are swept
// circles on the ground plane with a free vertical axis.
type PhysicsSystem struct {
	stage  *entity.Stage
	space  *cp.Space
	bodies map[entity.EntityID]*BodyHandle
}

// NewPhysicsSystem builds the collision space for stage
func NewPhysicsSystem(stage *entity.Stage) *PhysicsSystem {
	s := &PhysicsSystem{
		stage:  stage,
		bodies: make(map[entity.EntityID]*BodyHandle),
	}
	s.buildSpace()
	return s
}

// SetStage swaps the arena. Bodies keep their poses.
func (s *PhysicsSystem) SetStage(stage *entity.Stage) {
	s.stage = stage
	s.buildSpace()
}

// Stage returns the current arena
func (s *PhysicsSystem) Stage() *entity.Stage { return s.stage }

// buildSpace maps the x/z tile grid onto the cp plane (cp Y = world Z).
func (s *PhysicsSystem) buildSpace() {
	s.space = cp.NewSpace()

	stage := s.stage
	size := stage.TileSize
	for z := 0; z < stage.Depth; z++ {
		// Merge contiguous solid tiles of a row into one box.
		for x := 0; x < stage.Width; {
			if !stage.GetTile(x, z).Solid {
				x++
				continue
			}
			w := 1
			for x+w < stage.Width && stage.GetTile(x+w, z).Solid {
				w++
			}
			bb := cp.BB{
				L: float64(x) * size,
				B: float64(z) * size,
				R: float64(x+w) * size,
				T: float64(z+1) * size,
			}
			s.space.AddShape(cp.NewBox2(s.space.StaticBody, bb, 0))
			x += w
		}
	}

	// Arena bounds
	worldW, worldD := stage.Size()
	if worldW > 0 && worldD > 0 {
		segments := []struct {
			a cp.Vector
			b cp.Vector
		}{
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},
			{a: cp.Vector{X: 0, Y: worldD}, b: cp.Vector{X: worldW, Y: worldD}},
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldD}},
			{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldD}},
		}
		for _, seg := range segments {
			s.space.AddShape(cp.NewSegment(s.space.StaticBody, seg.a, seg.b, 0))
		}
	}
}

// Spawn registers a character of the given radius at pose
func (s *PhysicsSystem) Spawn(id entity.EntityID, pose *entity.Pose, radius float64) *BodyHandle {
	b := &BodyHandle{
		system: s,
		id:     id,
		pose:   pose,
		radius: radius,
	}
	b.settle()
	s.bodies[id] = b
	return b
}

// Body returns a spawned character by id
func (s *PhysicsSystem) Body(id entity.EntityID) (*BodyHandle, bool) {
	b, ok := s.bodies[id]
	return b, ok
}

// sweep moves a circle from `from` by delta, stopping before the first wall.
func (s *PhysicsSystem) sweep(from, delta cp.Vector, radius float64) cp.Vector {
	if delta.X == 0 && delta.Y == 0 {
		return from
	}
	hit := s.space.SegmentQueryFirst(from, from.Add(delta), radius, cp.SHAPE_FILTER_ALL)
	if hit.Shape == nil {
		return from.Add(delta)
	}
	length := delta.Length()
	travel := length*hit.Alpha - contactSkin
	if travel <= 0 {
		return from
	}
	return from.Add(delta.Mult(travel / length))
}

// BodyHandle is a spawned character. It implements Body.
type BodyHandle struct {
	system   *PhysicsSystem
	id       entity.EntityID
	pose     *entity.Pose
	radius   float64
	grounded bool
	respawns int
}

// Move resolves X then Z against walls, then applies the vertical part
// against the floor under the new position.
func (b *BodyHandle) Move(d entity.Vec3) {
	pos := b.pose.Position
	at := cp.Vector{X: pos.X, Y: pos.Z}
	at = b.system.sweep(at, cp.Vector{X: d.X}, b.radius)
	at = b.system.sweep(at, cp.Vector{Y: d.Z}, b.radius)

	b.pose.Position = entity.Vec3{X: at.X, Y: pos.Y + d.Y, Z: at.Y}
	b.settle()

	if b.pose.Position.Y < KillHeight {
		b.respawn()
	}
}

// settle clamps to the floor and recomputes grounded
func (b *BodyHandle) settle() {
	pos := &b.pose.Position
	floor := b.system.stage.FloorHeight(pos.X, pos.Z)
	b.grounded = pos.Y <= floor
	if b.grounded {
		pos.Y = floor
	}
}

func (b *BodyHandle) respawn() {
	b.pose.Position = b.system.stage.Spawn
	b.respawns++
	b.settle()
}

// Teleport places the body without sweeping
func (b *BodyHandle) Teleport(pos entity.Vec3) {
	b.pose.Position = pos
	b.settle()
}

// IsGrounded reports the floor contact computed by the last Move
func (b *BodyHandle) IsGrounded() bool { return b.grounded }

// ID returns the character id
func (b *BodyHandle) ID() entity.EntityID { return b.id }

// Pose returns the transform the body moves
func (b *BodyHandle) Pose() *entity.Pose { return b.pose }

// Radius returns the collision radius
func (b *BodyHandle) Radius() float64 { return b.radius }

// Respawns returns how many times the body fell out of the arena
func (b *BodyHandle) Respawns() int { return b.respawns }

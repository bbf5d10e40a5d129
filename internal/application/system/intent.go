package system

import "github.com/younwookim/swordstep/internal/domain/entity"

// Intent represents an input event delivered to a character
type Intent interface {
	isIntent()
}

// MoveIntent carries a new movement axis (on start, change, or cancel).
// A zero axis cancels movement.
type MoveIntent struct {
	EntityID entity.EntityID
	Axis     entity.Vec2
}

func (MoveIntent) isIntent() {}

// JumpIntent is a jump button edge
type JumpIntent struct {
	EntityID entity.EntityID
	Pressed  bool // true on press, false on release
}

func (JumpIntent) isIntent() {}

// RollIntent requests a dash along the current movement axis
type RollIntent struct {
	EntityID entity.EntityID
}

func (RollIntent) isIntent() {}

// AttackIntent requests the next swing of the combo
type AttackIntent struct {
	EntityID entity.EntityID
}

func (AttackIntent) isIntent() {}

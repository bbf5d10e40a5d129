// Package state holds the enumerations the scene and character loops switch on.
package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// LocomotionState is the derived, displayable state of a character.
type LocomotionState int

const (
	Idle LocomotionState = iota
	Walking
	Jumping
	Dashing
	Attacking
)

// String returns the string representation of the locomotion state
func (s LocomotionState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Walking:
		return "Walking"
	case Jumping:
		return "Jumping"
	case Dashing:
		return "Dashing"
	case Attacking:
		return "Attacking"
	default:
		return "Unknown"
	}
}

// Flags are the character conditions a LocomotionState is derived from
type Flags struct {
	Walking   bool
	Jumping   bool
	Dashing   bool
	Attacking bool
}

// Derive picks the state by priority: Attacking, Dashing, Jumping, Walking, Idle.
func Derive(f Flags) LocomotionState {
	switch {
	case f.Attacking:
		return Attacking
	case f.Dashing:
		return Dashing
	case f.Jumping:
		return Jumping
	case f.Walking:
		return Walking
	default:
		return Idle
	}
}

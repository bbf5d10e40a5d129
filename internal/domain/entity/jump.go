package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidJumpConfig is returned when jump constants cannot produce an arc.
var ErrInvalidJumpConfig = errors.New("jump: invalid configuration")

const (
	// DefaultGroundedGravity keeps a grounded body pressed onto the floor.
	DefaultGroundedGravity = -0.05

	// DefaultFallMultiplier scales gravity once the body is falling.
	DefaultFallMultiplier = 2.0

	// launchImpulseScale is the share of the initial velocity applied on launch.
	// The rest of the arc is shaped by the averaged integration in Tick.
	launchImpulseScale = 0.5
)

// JumpConstants are the designer-facing jump parameters.
type JumpConstants struct {
	MaxHeight       float64 // apex height in world units
	MaxTime         float64 // total jump time in seconds; apex at MaxTime/2
	GroundedGravity float64 // vertical velocity while grounded (small, negative)
	FallMultiplier  float64 // gravity scale while falling (velocity <= 0)
}

// DefaultJumpConstants returns a 1 unit high, 0.7s jump.
func DefaultJumpConstants() JumpConstants {
	return JumpConstants{
		MaxHeight:       1,
		MaxTime:         0.7,
		GroundedGravity: DefaultGroundedGravity,
		FallMultiplier:  DefaultFallMultiplier,
	}
}

// ApexGravity derives gravity and launch velocity from apex height and time:
//
//	gravity         = -2*h / (t/2)^2
//	initialVelocity =  2*h / (t/2)
func ApexGravity(maxHeight, maxTime float64) (gravity, initialVelocity float64, err error) {
	if !(maxTime > 0) || math.IsInf(maxTime, 0) {
		return 0, 0, fmt.Errorf("%w: max time %v must be positive", ErrInvalidJumpConfig, maxTime)
	}
	if !(maxHeight > 0) || math.IsInf(maxHeight, 0) {
		return 0, 0, fmt.Errorf("%w: max height %v must be positive", ErrInvalidJumpConfig, maxHeight)
	}
	timeToApex := maxTime / 2
	gravity = (-2 * maxHeight) / (timeToApex * timeToApex)
	initialVelocity = (2 * maxHeight) / timeToApex
	return gravity, initialVelocity, nil
}

// JumpArc owns the vertical velocity of a character.
type JumpArc struct {
	constants       JumpConstants
	gravity         float64
	initialVelocity float64

	velocityY     float64
	jumping       bool
	jumpAnimating bool
	jumpPressed   bool
}

// NewJumpArc derives gravity and launch velocity once from c.
func NewJumpArc(c JumpConstants) (*JumpArc, error) {
	j := &JumpArc{}
	if err := j.Configure(c); err != nil {
		return nil, err
	}
	j.velocityY = j.constants.GroundedGravity
	return j, nil
}

// Configure recomputes gravity and initial velocity when the constants change.
// Identical constants leave the derived values untouched. Live state
// (velocity, jump flags) is kept.
func (j *JumpArc) Configure(c JumpConstants) error {
	if c.FallMultiplier == 0 {
		c.FallMultiplier = DefaultFallMultiplier
	}
	if j.gravity != 0 && c == j.constants {
		return nil
	}
	g, v0, err := ApexGravity(c.MaxHeight, c.MaxTime)
	if err != nil {
		return err
	}
	j.constants = c
	j.gravity = g
	j.initialVelocity = v0
	return nil
}

// SetJumpPressed latches the jump button level.
func (j *JumpArc) SetJumpPressed(pressed bool) {
	j.jumpPressed = pressed
}

// Tick integrates vertical velocity for one step, then evaluates launch.
// Launch is evaluated last so the impulse survives the tick it is applied in.
func (j *JumpArc) Tick(dt float64, grounded bool) {
	j.integrate(dt, grounded)
	j.handleLaunch(grounded)
}

func (j *JumpArc) integrate(dt float64, grounded bool) {
	if grounded {
		j.jumpAnimating = false
		j.jumping = false
		j.velocityY = j.constants.GroundedGravity
		return
	}

	g := j.gravity
	if j.velocityY <= 0 {
		g *= j.constants.FallMultiplier
	}
	previous := j.velocityY
	next := previous + g*dt
	// Averaging old and new softens the per-tick velocity step.
	j.velocityY = (previous + next) * 0.5
}

func (j *JumpArc) handleLaunch(grounded bool) {
	if !j.jumping && grounded && j.jumpPressed {
		j.jumping = true
		j.jumpAnimating = true
		j.velocityY = j.initialVelocity * launchImpulseScale
	}
}

// Reset drops any jump in progress and the latched button, leaving the arc
// as if the body had just been placed on the ground.
func (j *JumpArc) Reset() {
	j.velocityY = j.constants.GroundedGravity
	j.jumping = false
	j.jumpAnimating = false
	j.jumpPressed = false
}

// VelocityY returns the current vertical velocity
func (j *JumpArc) VelocityY() float64 { return j.velocityY }

// IsJumping reports whether a launched jump has not yet landed
func (j *JumpArc) IsJumping() bool { return j.jumping }

// IsJumpAnimating reports whether the jump animation flag is raised
func (j *JumpArc) IsJumpAnimating() bool { return j.jumpAnimating }

// JumpPressed returns the latched jump button level
func (j *JumpArc) JumpPressed() bool { return j.jumpPressed }

// Gravity returns the derived (negative) gravity
func (j *JumpArc) Gravity() float64 { return j.gravity }

// InitialVelocity returns the derived (positive) launch velocity
func (j *JumpArc) InitialVelocity() float64 { return j.initialVelocity }

// Constants returns the active jump constants
func (j *JumpArc) Constants() JumpConstants { return j.constants }

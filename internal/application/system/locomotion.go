package system

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/swordstep/internal/application/state"
	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
	"github.com/younwookim/swordstep/internal/infrastructure/logger"
)

// Body is the physics collaborator a character moves through.
type Body interface {
	// Move requests a displacement for this tick. Fire and forget.
	Move(displacement entity.Vec3)
	// IsGrounded reports whether the body rests on walkable floor.
	IsGrounded() bool
}

// PoseResource holds the facing Locomotion reads and writes.
type PoseResource interface {
	GetRotation() entity.Quat
	SetRotation(q entity.Quat)
}

// DisplacementSource names which controller drove horizontal motion in a tick
type DisplacementSource int

// Displacement sources, in reverse arbitration priority
const (
	SourceWalk DisplacementSource = iota
	SourceDash
	SourceLunge
)

func (s DisplacementSource) String() string {
	switch s {
	case SourceWalk:
		return "Walk"
	case SourceDash:
		return "Dash"
	case SourceLunge:
		return "Lunge"
	default:
		return "Unknown"
	}
}

// Step records the displacement issued in the last tick
type Step struct {
	Source   DisplacementSource
	Velocity entity.Vec3 // units per second; Y from the jump arc
	Issued   entity.Vec3 // Velocity scaled by the tick duration
}

// Snapshot is a read-only view of a character for the HUD and tests
type Snapshot struct {
	State         state.LocomotionState
	Intent        entity.MovementIntent
	Grounded      bool
	VelocityY     float64
	Jumping       bool
	JumpAnimating bool
	Dashing       bool
	DashCooldown  float64
	Attacking     bool
	CanLunge      bool
	AttackCount   int
	Yaw           float64
	Step          Step
}

type speeds struct {
	walk      float64
	dashing   float64
	attacking float64
	turnRate  float64
}

// Locomotion drives one character: facing, displacement arbitration,
// jump arc, combo and dash, and animator parameters.
type Locomotion struct {
	id     entity.EntityID
	body   Body
	pose   PoseResource
	sink   AnimationSink
	logger *slog.Logger

	speeds speeds
	intent entity.MovementIntent
	jump   *entity.JumpArc
	combo  *entity.ComboAttack
	dash   *entity.Dash

	params  AnimParams
	flushed bool
	state   state.LocomotionState
	last    Step
}

// NewLocomotion creates a character controller from tuning.
// Invalid jump constants are rejected with entity.ErrInvalidJumpConfig.
// sink and log may be nil.
func NewLocomotion(id entity.EntityID, cfg *config.TuningConfig, body Body, pose PoseResource, sink AnimationSink, log *slog.Logger) (*Locomotion, error) {
	jump, err := entity.NewJumpArc(jumpConstants(cfg))
	if err != nil {
		return nil, fmt.Errorf("character %d: %w", id, err)
	}
	if sink == nil {
		sink = NewParamBoard(nil)
	}

	return &Locomotion{
		id:     id,
		body:   body,
		pose:   pose,
		sink:   sink,
		logger: logger.OrDiscard(log).With("entity", id),
		speeds: speedsFrom(cfg),
		jump:   jump,
		combo:  entity.NewComboAttack(cfg.Combo.ResetDelay),
		dash:   entity.NewDash(dashConstants(cfg)),
	}, nil
}

func jumpConstants(cfg *config.TuningConfig) entity.JumpConstants {
	return entity.JumpConstants{
		MaxHeight:       cfg.Jump.MaxHeight,
		MaxTime:         cfg.Jump.MaxTime,
		GroundedGravity: cfg.Jump.GroundedGravity,
		FallMultiplier:  cfg.Jump.FallMultiplier,
	}
}

func dashConstants(cfg *config.TuningConfig) entity.DashConstants {
	return entity.DashConstants{
		Time:         cfg.Dash.Time,
		CooldownTime: cfg.Dash.CooldownTime,
	}
}

func speedsFrom(cfg *config.TuningConfig) speeds {
	return speeds{
		walk:      cfg.Locomotion.WalkSpeed,
		dashing:   cfg.Locomotion.DashingSpeed,
		attacking: cfg.Locomotion.AttackingSpeed,
		turnRate:  cfg.Locomotion.TurnRate,
	}
}

// Reconfigure applies new tuning without resetting live state.
// Jump gravity is only recomputed when the jump constants changed.
func (l *Locomotion) Reconfigure(cfg *config.TuningConfig) error {
	if err := l.jump.Configure(jumpConstants(cfg)); err != nil {
		return fmt.Errorf("character %d: %w", l.id, err)
	}
	l.dash.SetConstants(dashConstants(cfg))
	l.combo.SetResetDelay(cfg.Combo.ResetDelay)
	l.speeds = speedsFrom(cfg)

	l.logger.Info("locomotion reconfigured",
		"gravity", l.jump.Gravity(),
		"initial_velocity", l.jump.InitialVelocity(),
		"walk_speed", l.speeds.walk)
	return nil
}

// Reset returns the character to a standing start: no intent, no jump,
// dash or combo in progress, facing +Z. Falling edges are flushed so the
// sink stops any playing clip.
func (l *Locomotion) Reset() {
	l.intent = entity.MovementIntent{}
	l.jump.Reset()
	l.dash.Reset()
	l.combo.Reset()
	l.pose.SetRotation(entity.IdentityQuat())
	l.last = Step{}
	l.flush()
	l.logger.Info("locomotion reset")
}

// ID returns the character this controller drives
func (l *Locomotion) ID() entity.EntityID { return l.id }

// Apply handles one input event. Events that cannot act now are dropped.
func (l *Locomotion) Apply(intent Intent) {
	switch in := intent.(type) {
	case MoveIntent:
		l.intent = entity.NewMovementIntent(in.Axis.X, in.Axis.Y)
	case JumpIntent:
		l.jump.SetJumpPressed(in.Pressed)
	case RollIntent:
		if l.dash.Request(l.intent, l.body.IsGrounded()) {
			v := l.dash.Vector()
			l.logger.Debug("dash started", "x", v.X, "z", v.Z)
		}
	case AttackIntent:
		if l.combo.OnAttackPressed(l.body.IsGrounded()) {
			l.logger.Debug("attack started", "count", l.combo.Count())
		}
	}
}

// OnLungeWindowClosed is called by the attack timeline mid-swing.
func (l *Locomotion) OnLungeWindowClosed() {
	l.combo.OnAnimationHalfway()
}

// OnAttackAnimationEnd is called by the attack timeline when a swing finishes.
// The attack flag drop is pushed immediately so the next swing is seen as a
// fresh start.
func (l *Locomotion) OnAttackAnimationEnd() {
	l.combo.OnAttackAnimationEnd()
	l.flush()
}

// Tick advances the character by dt seconds.
// Order: facing, displacement, move, timers, animator flush.
func (l *Locomotion) Tick(dt float64) {
	l.rotate(dt)

	step := l.arbitrate()
	step.Issued = step.Velocity.Scale(dt)
	l.body.Move(step.Issued)
	l.last = step

	grounded := l.body.IsGrounded()
	l.jump.Tick(dt, grounded)
	l.combo.Tick(dt)
	l.dash.Tick(dt)

	l.flush()
}

func (l *Locomotion) rotate(dt float64) {
	if !l.intent.IsNonZero() {
		return
	}
	target := entity.LookRotation(l.intent.Direction())
	l.pose.SetRotation(entity.Slerp(l.pose.GetRotation(), target, l.speeds.turnRate*dt))
}

// arbitrate picks exactly one horizontal source: lunge, then dash, then walk.
func (l *Locomotion) arbitrate() Step {
	var (
		source     DisplacementSource
		horizontal entity.Vec3
	)
	switch {
	case l.combo.IsAttacking() && l.combo.CanLunge() && !l.dash.IsDashing():
		source = SourceLunge
		forward := l.pose.GetRotation().Forward().Horizontal().Normalized()
		horizontal = forward.Scale(l.speeds.attacking)
	case l.dash.IsDashing():
		source = SourceDash
		horizontal = l.dash.Vector().Scale(l.speeds.dashing)
	default:
		source = SourceWalk
		horizontal = l.intent.Direction().Scale(l.speeds.walk)
	}
	horizontal.Y = l.jump.VelocityY()
	return Step{Source: source, Velocity: horizontal}
}

func (l *Locomotion) currentParams() AnimParams {
	return AnimParams{
		Walking:     l.intent.IsNonZero(),
		Jumping:     l.jump.IsJumpAnimating(),
		Dashing:     l.dash.IsDashing(),
		IsAttacking: l.combo.IsAttacking(),
		AttackCount: l.combo.Count(),
	}
}

// flush writes changed animator parameters. The first flush writes all of
// them so the sink starts consistent.
func (l *Locomotion) flush() {
	next := l.currentParams()
	names := paramOrder
	if l.flushed {
		names = next.Diff(l.params)
	}
	l.params = next
	l.flushed = true
	next.WriteTo(l.sink, names)

	l.trackState()
}

func (l *Locomotion) trackState() {
	s := state.Derive(state.Flags{
		Walking:   l.params.Walking,
		Jumping:   l.jump.IsJumping(),
		Dashing:   l.params.Dashing,
		Attacking: l.params.IsAttacking,
	})
	if s == l.state {
		return
	}
	l.logger.Debug("locomotion state changed", "from", l.state, "to", s)
	l.state = s
}

// State returns the derived locomotion state
func (l *Locomotion) State() state.LocomotionState { return l.state }

// LastStep returns the displacement issued by the last Tick
func (l *Locomotion) LastStep() Step { return l.last }

// Params returns the animator parameters as of the last flush
func (l *Locomotion) Params() AnimParams { return l.params }

// Snapshot returns the current character state
func (l *Locomotion) Snapshot() Snapshot {
	return Snapshot{
		State:         l.state,
		Intent:        l.intent,
		Grounded:      l.body.IsGrounded(),
		VelocityY:     l.jump.VelocityY(),
		Jumping:       l.jump.IsJumping(),
		JumpAnimating: l.jump.IsJumpAnimating(),
		Dashing:       l.dash.IsDashing(),
		DashCooldown:  l.dash.CooldownRemaining(),
		Attacking:     l.combo.IsAttacking(),
		CanLunge:      l.combo.CanLunge(),
		AttackCount:   l.combo.Count(),
		Yaw:           l.pose.GetRotation().Yaw(),
		Step:          l.last,
	}
}

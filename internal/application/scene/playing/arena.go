package playing

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/swordstep/internal/application/system"
	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
	"github.com/younwookim/swordstep/internal/infrastructure/logger"
)

// PlayerID is the id of the controlled character
const PlayerID entity.EntityID = 1

// Stats summarizes a session
type Stats struct {
	Frames   int
	Jumps    int
	Dashes   int
	Attacks  int
	MaxCombo int
	Respawns int
}

// Arena is one character simulated in a stage. It has no rendering and no
// device access so recordings can be replayed headless.
type Arena struct {
	tuning   *config.TuningConfig
	stage    *entity.Stage
	physics  *system.PhysicsSystem
	body     *system.BodyHandle
	loco     *system.Locomotion
	timeline *system.AttackTimeline
	board    *system.ParamBoard
	logger   *slog.Logger

	dt           float64
	prev         system.InputState
	stats        Stats
	respawnsBase int
}

// NewArena builds the stage and spawns the player at its spawn point
func NewArena(cfg *config.GameConfig, log *slog.Logger) (*Arena, error) {
	log = logger.OrDiscard(log)
	stage := system.LoadStage(cfg.Stage)
	physics := system.NewPhysicsSystem(stage)
	body := physics.Spawn(PlayerID, entity.NewPose(stage.Spawn), cfg.Tuning.Locomotion.Radius)

	board := system.NewParamBoard(nil)
	timeline := system.NewAttackTimeline(cfg.Tuning.Animation.AttackClips, cfg.Tuning.Animation.LungeFraction, board)

	loco, err := system.NewLocomotion(PlayerID, cfg.Tuning, body, body.Pose(), timeline, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	timeline.Bind(loco)

	return &Arena{
		tuning:   cfg.Tuning,
		stage:    stage,
		physics:  physics,
		body:     body,
		loco:     loco,
		timeline: timeline,
		board:    board,
		logger:   log,
		dt:       1.0 / float64(cfg.Tuning.Display.TickRate),
	}, nil
}

// Step feeds one frame of input and advances the simulation by one tick
func (a *Arena) Step(in system.InputState) {
	before := a.loco.Params()
	for _, intent := range in.Intents(PlayerID, a.prev) {
		a.loco.Apply(intent)
	}
	a.prev = in

	a.loco.Tick(a.dt)
	a.timeline.Tick(a.dt)
	a.count(before, a.loco.Params())
	a.stats.Frames++
	a.stats.Respawns = a.body.Respawns() - a.respawnsBase
}

func (a *Arena) count(before, after system.AnimParams) {
	if after.Jumping && !before.Jumping {
		a.stats.Jumps++
	}
	if after.Dashing && !before.Dashing {
		a.stats.Dashes++
	}
	if after.IsAttacking && !before.IsAttacking {
		a.stats.Attacks++
	}
	if after.AttackCount > a.stats.MaxCombo {
		a.stats.MaxCombo = after.AttackCount
	}
}

// Reconfigure applies new tuning to the running session.
// The tick rate is fixed for a session; a different display.tick_rate is
// ignored so recordings keep a single step length.
func (a *Arena) Reconfigure(tuning *config.TuningConfig) error {
	next := *tuning
	if next.Display.TickRate != a.tuning.Display.TickRate {
		a.logger.Warn("tick rate change ignored until restart",
			"current", a.tuning.Display.TickRate, "requested", next.Display.TickRate)
		next.Display.TickRate = a.tuning.Display.TickRate
	}
	if err := a.loco.Reconfigure(&next); err != nil {
		return err
	}
	a.timeline.SetClips(next.Animation.AttackClips, next.Animation.LungeFraction)
	a.tuning = &next
	return nil
}

// Reset starts the session over: the player stands on the spawn point with
// no motion in progress and the stats are cleared.
func (a *Arena) Reset() {
	a.body.Teleport(a.stage.Spawn)
	a.prev = system.InputState{}
	a.loco.Reset()
	a.stats = Stats{}
	a.respawnsBase = a.body.Respawns()
}

// Snapshot returns the player's locomotion state
func (a *Arena) Snapshot() system.Snapshot { return a.loco.Snapshot() }

// Position returns the player's position
func (a *Arena) Position() entity.Vec3 { return a.body.Pose().Position }

// Pose returns the player's transform
func (a *Arena) Pose() *entity.Pose { return a.body.Pose() }

// Radius returns the player's collision radius
func (a *Arena) Radius() float64 { return a.body.Radius() }

// Stage returns the arena layout
func (a *Arena) Stage() *entity.Stage { return a.stage }

// Board returns the animator parameters
func (a *Arena) Board() *system.ParamBoard { return a.board }

// Stats returns the session summary
func (a *Arena) Stats() Stats { return a.stats }

// Tuning returns the active tuning
func (a *Arena) Tuning() *config.TuningConfig { return a.tuning }

package main

import (
	"log/slog"

	"github.com/younwookim/swordstep/internal/application/replay"
	"github.com/younwookim/swordstep/internal/application/scene/playing"
	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
	"github.com/younwookim/swordstep/internal/infrastructure/logger"
)

// ReplayResult is the end state of a replayed session
type ReplayResult struct {
	Stats    playing.Stats
	Position entity.Vec3
	Yaw      float64
}

// runReplay feeds every recorded frame through a fresh arena without a window.
// The recording's tick rate overrides the tuning so steps match the session.
func runReplay(cfg *config.GameConfig, data *replay.ReplayData, log *slog.Logger) (ReplayResult, error) {
	log = logger.OrDiscard(log)

	tuning := *cfg.Tuning
	if data.TickRate > 0 {
		tuning.Display.TickRate = data.TickRate
	}
	arena, err := playing.NewArena(&config.GameConfig{Tuning: &tuning, Stage: cfg.Stage}, log)
	if err != nil {
		return ReplayResult{}, err
	}

	replayer := replay.NewReplayer(*data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		arena.Step(input)
	}

	result := ReplayResult{
		Stats:    arena.Stats(),
		Position: arena.Position(),
		Yaw:      arena.Snapshot().Yaw,
	}
	log.Info("replay finished",
		"stage", data.Stage,
		"frames", result.Stats.Frames,
		"jumps", result.Stats.Jumps,
		"dashes", result.Stats.Dashes,
		"attacks", result.Stats.Attacks,
		"max_combo", result.Stats.MaxCombo,
		"respawns", result.Stats.Respawns,
		"x", result.Position.X,
		"y", result.Position.Y,
		"z", result.Position.Z)
	return result, nil
}

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration that cannot drive a character.
var ErrInvalidConfig = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate reports every problem in the tuning, joined.
func (c *TuningConfig) Validate() error {
	var errs []error

	if c.Display.TickRate <= 0 {
		errs = append(errs, invalid("display.tick_rate %d must be positive", c.Display.TickRate))
	}
	if c.Jump.MaxTime <= 0 {
		errs = append(errs, invalid("jump.max_time %v must be positive", c.Jump.MaxTime))
	}
	if c.Jump.MaxHeight <= 0 {
		errs = append(errs, invalid("jump.max_height %v must be positive", c.Jump.MaxHeight))
	}
	if c.Jump.FallMultiplier < 0 {
		errs = append(errs, invalid("jump.fall_multiplier %v must not be negative", c.Jump.FallMultiplier))
	}
	for name, v := range map[string]float64{
		"locomotion.walk_speed":      c.Locomotion.WalkSpeed,
		"locomotion.dashing_speed":   c.Locomotion.DashingSpeed,
		"locomotion.attacking_speed": c.Locomotion.AttackingSpeed,
		"locomotion.turn_rate":       c.Locomotion.TurnRate,
		"locomotion.radius":          c.Locomotion.Radius,
		"combo.reset_delay":          c.Combo.ResetDelay,
	} {
		if v < 0 {
			errs = append(errs, invalid("%s %v must not be negative", name, v))
		}
	}
	if c.Dash.Time < 0 {
		errs = append(errs, invalid("dash.time %v must not be negative", c.Dash.Time))
	}
	if c.Dash.CooldownTime < c.Dash.Time {
		errs = append(errs, invalid("dash.cooldown_time %v must be at least dash.time %v", c.Dash.CooldownTime, c.Dash.Time))
	}
	if len(c.Animation.AttackClips) == 0 {
		errs = append(errs, invalid("animation.attack_clips must not be empty"))
	}
	for i, clip := range c.Animation.AttackClips {
		if clip <= 0 {
			errs = append(errs, invalid("animation.attack_clips[%d] %v must be positive", i, clip))
		}
	}
	if c.Animation.LungeFraction <= 0 || c.Animation.LungeFraction > 1 {
		errs = append(errs, invalid("animation.lunge_fraction %v must be in (0,1]", c.Animation.LungeFraction))
	}
	if c.Input.DeadZone < 0 || c.Input.DeadZone >= 1 {
		errs = append(errs, invalid("input.dead_zone %v must be in [0,1)", c.Input.DeadZone))
	}

	return errors.Join(errs...)
}

// Validate checks the stage layout is usable.
func (s *StageConfig) Validate() error {
	var errs []error
	if s.TileSize <= 0 {
		errs = append(errs, invalid("stage %s: tile_size %v must be positive", s.ID, s.TileSize))
	}
	if len(s.Layout) == 0 {
		errs = append(errs, invalid("stage %s: layout must not be empty", s.ID))
	}
	return errors.Join(errs...)
}

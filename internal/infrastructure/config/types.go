package config

// TuningConfig is the root config for tuning.yaml
type TuningConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Jump       JumpConfig       `yaml:"jump"`
	Dash       DashConfig       `yaml:"dash"`
	Combo      ComboConfig      `yaml:"combo"`
	Animation  AnimationConfig  `yaml:"animation"`
	Input      InputConfig      `yaml:"input"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screen_width"`
	ScreenHeight  int     `yaml:"screen_height"`
	Scale         int     `yaml:"scale"`
	TickRate      int     `yaml:"tick_rate"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// LocomotionConfig holds horizontal speeds in world units per second
type LocomotionConfig struct {
	WalkSpeed      float64 `yaml:"walk_speed"`
	DashingSpeed   float64 `yaml:"dashing_speed"`
	AttackingSpeed float64 `yaml:"attacking_speed"`
	TurnRate       float64 `yaml:"turn_rate"` // slerp factor per second
	Radius         float64 `yaml:"radius"`    // collision radius on the ground plane
}

type JumpConfig struct {
	MaxHeight       float64 `yaml:"max_height"`
	MaxTime         float64 `yaml:"max_time"`
	GroundedGravity float64 `yaml:"grounded_gravity"`
	FallMultiplier  float64 `yaml:"fall_multiplier"`
}

type DashConfig struct {
	Time         float64 `yaml:"time"`
	CooldownTime float64 `yaml:"cooldown_time"`
}

type ComboConfig struct {
	ResetDelay float64 `yaml:"reset_delay"`
}

// AnimationConfig describes the attack clips the timeline plays.
// AttackClips is indexed by attack count; the last entry covers higher counts.
type AnimationConfig struct {
	AttackClips   []float64 `yaml:"attack_clips"`
	LungeFraction float64   `yaml:"lunge_fraction"`
}

type InputConfig struct {
	DeadZone float64 `yaml:"dead_zone"` // stick magnitude below which input is ignored
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultTuning returns the built-in tuning used when a field is absent.
func DefaultTuning() TuningConfig {
	return TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:   480,
			ScreenHeight:  320,
			Scale:         2,
			TickRate:      60,
			PixelsPerUnit: 16,
		},
		Locomotion: LocomotionConfig{
			WalkSpeed:      4,
			DashingSpeed:   12,
			AttackingSpeed: 2.5,
			TurnRate:       15,
			Radius:         0.4,
		},
		Jump: JumpConfig{
			MaxHeight:       1,
			MaxTime:         0.7,
			GroundedGravity: -0.05,
			FallMultiplier:  2,
		},
		Dash: DashConfig{
			Time:         0.3,
			CooldownTime: 2,
		},
		Combo: ComboConfig{
			ResetDelay: 0.5,
		},
		Animation: AnimationConfig{
			AttackClips:   []float64{0.45, 0.4, 0.4, 0.6},
			LungeFraction: 0.5,
		},
		Input: InputConfig{
			DeadZone: 0.2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

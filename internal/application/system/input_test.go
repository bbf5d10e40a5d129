package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
)

func TestNewInputSystem(t *testing.T) {
	cfg := &config.InputConfig{DeadZone: 0.2}

	sys := NewInputSystem(cfg)

	require.NotNil(t, sys)
	assert.Equal(t, *cfg, sys.Config())
}

func TestInputSystem_SetConfig(t *testing.T) {
	cfg := &config.InputConfig{DeadZone: 0.2}
	sys := NewInputSystem(cfg)

	// Later writes to the startup struct do not leak in
	cfg.DeadZone = 0.9
	assert.Equal(t, 0.2, sys.Config().DeadZone)

	sys.SetConfig(config.InputConfig{DeadZone: 0.5})
	assert.Equal(t, 0.5, sys.Config().DeadZone)
}

func TestShapeAxis(t *testing.T) {
	tests := []struct {
		name     string
		axis     entity.Vec2
		expected entity.Vec2
	}{
		{"zero", entity.Vec2{}, entity.Vec2{}},
		{"inside dead zone", entity.Vec2{X: 0.1, Y: 0.1}, entity.Vec2{}},
		{"partial stick", entity.Vec2{X: 0.5}, entity.Vec2{X: 0.5}},
		{"full stick", entity.Vec2{Y: -1}, entity.Vec2{Y: -1}},
		{"keyboard diagonal", entity.Vec2{X: 1, Y: 1}, entity.Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShapeAxis(tt.axis, 0.2)
			assert.InDelta(t, tt.expected.X, got.X, 1e-9)
			assert.InDelta(t, tt.expected.Y, got.Y, 1e-9)
		})
	}
}

func TestInputState_Intents(t *testing.T) {
	t.Run("idle frame yields nothing", func(t *testing.T) {
		assert.Empty(t, InputState{}.Intents(1, InputState{}))
	})

	t.Run("axis start change and cancel", func(t *testing.T) {
		start := InputState{Axis: entity.Vec2{X: 1}}
		assert.Equal(t, []Intent{MoveIntent{EntityID: 1, Axis: entity.Vec2{X: 1}}}, start.Intents(1, InputState{}))

		held := start
		assert.Empty(t, held.Intents(1, start))

		changed := InputState{Axis: entity.Vec2{Y: 1}}
		assert.Equal(t, []Intent{MoveIntent{EntityID: 1, Axis: entity.Vec2{Y: 1}}}, changed.Intents(1, start))

		cancel := InputState{}
		assert.Equal(t, []Intent{MoveIntent{EntityID: 1}}, cancel.Intents(1, changed))
	})

	t.Run("jump edges", func(t *testing.T) {
		press := InputState{Jump: true, JumpPressed: true}
		assert.Equal(t, []Intent{JumpIntent{EntityID: 2, Pressed: true}}, press.Intents(2, InputState{}))

		release := InputState{JumpReleased: true}
		assert.Equal(t, []Intent{JumpIntent{EntityID: 2, Pressed: false}}, release.Intents(2, press))
	})

	t.Run("move precedes triggers", func(t *testing.T) {
		in := InputState{Axis: entity.Vec2{X: -1}, Roll: true, Attack: true}

		intents := in.Intents(3, InputState{})

		require.Len(t, intents, 3)
		assert.IsType(t, MoveIntent{}, intents[0])
		assert.IsType(t, RollIntent{}, intents[1])
		assert.IsType(t, AttackIntent{}, intents[2])
	})
}

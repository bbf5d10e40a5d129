package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/swordstep/internal/domain/entity"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
)

// InputSystem reads keyboard, mouse and gamepad into InputState
type InputSystem struct {
	config   config.InputConfig
	gamepads []ebiten.GamepadID
}

// NewInputSystem creates a new input system. cfg is copied.
func NewInputSystem(cfg *config.InputConfig) *InputSystem {
	return &InputSystem{config: *cfg}
}

// SetConfig applies reloaded input tuning from the next frame on
func (s *InputSystem) SetConfig(cfg config.InputConfig) {
	s.config = cfg
}

// Config returns the active input tuning
func (s *InputSystem) Config() config.InputConfig { return s.config }

// InputState holds one frame of input
type InputState struct {
	Axis         entity.Vec2 // X strafe, Y along world Z
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Roll         bool
	Attack       bool
}

// GetInput reads the current input state.
// The camera looks down with +Z toward the bottom of the screen, so "up"
// keys push toward -Z.
func (s *InputSystem) GetInput() InputState {
	var axis entity.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		axis.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		axis.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		axis.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		axis.Y += 1
	}

	in := InputState{
		Jump:         ebiten.IsKeyPressed(ebiten.KeySpace),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Roll:         inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
		Attack:       inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if axis.IsZero() {
			axis = entity.Vec2{
				X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
				Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			}
		}
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.JumpReleased = in.JumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
		in.Roll = in.Roll || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		in.Attack = in.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	in.Axis = ShapeAxis(axis, s.config.DeadZone)
	return in
}

// ShapeAxis zeroes input inside the dead zone and limits it to the unit disk
func ShapeAxis(axis entity.Vec2, deadZone float64) entity.Vec2 {
	l := axis.Length()
	if l == 0 || l < deadZone {
		return entity.Vec2{}
	}
	if l > 1 {
		return axis.Normalized()
	}
	return axis
}

// Intents converts a frame of input into events for one character.
// The axis is only reported when it differs from prev.
func (s InputState) Intents(id entity.EntityID, prev InputState) []Intent {
	var intents []Intent
	if s.Axis != prev.Axis {
		intents = append(intents, MoveIntent{EntityID: id, Axis: s.Axis})
	}
	if s.JumpPressed {
		intents = append(intents, JumpIntent{EntityID: id, Pressed: true})
	}
	if s.JumpReleased {
		intents = append(intents, JumpIntent{EntityID: id, Pressed: false})
	}
	if s.Roll {
		intents = append(intents, RollIntent{EntityID: id})
	}
	if s.Attack {
		intents = append(intents, AttackIntent{EntityID: id})
	}
	return intents
}

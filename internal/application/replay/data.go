package replay

import (
	"github.com/younwookim/swordstep/internal/application/system"
	"github.com/younwookim/swordstep/internal/domain/entity"
)

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	AX float64 `json:"ax,omitempty"` // Axis X
	AY float64 `json:"ay,omitempty"` // Axis Y
	J  bool    `json:"j,omitempty"`  // Jump held
	JP bool    `json:"jp,omitempty"` // JumpPressed
	JR bool    `json:"jr,omitempty"` // JumpReleased
	Ro bool    `json:"ro,omitempty"` // Roll
	A  bool    `json:"a,omitempty"`  // Attack
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput captures one frame of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		AX: in.Axis.X,
		AY: in.Axis.Y,
		J:  in.Jump,
		JP: in.JumpPressed,
		JR: in.JumpReleased,
		Ro: in.Roll,
		A:  in.Attack,
	}
}

// InputState rebuilds the frame's input
func (f FrameInput) InputState() system.InputState {
	return system.InputState{
		Axis:         entity.Vec2{X: f.AX, Y: f.AY},
		Jump:         f.J,
		JumpPressed:  f.JP,
		JumpReleased: f.JR,
		Roll:         f.Ro,
		Attack:       f.A,
	}
}

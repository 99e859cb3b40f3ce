package kinematics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// InputState is one frame's worth of sampled input.
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool
	Jump     bool // held
	// JumpPressed is true only on the frame the jump key went from released to held.
	JumpPressed bool

	OrbitHeld    bool
	DragX, DragY float64 // pixels accumulated since the previous sample
}

// Moving reports whether any directional key is held.
func (in InputState) Moving() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// JumpPhase is the state of the jump state machine.
type JumpPhase int

const (
	Grounded JumpPhase = iota
	Airborne
)

func (p JumpPhase) String() string {
	if p == Airborne {
		return "airborne"
	}
	return "grounded"
}

type PlayerState struct {
	Position  mgl64.Vec3
	Yaw       float64
	VelocityY float64
	Grounded  bool
}

// Phase maps the grounded flag onto the jump state machine.
func (s PlayerState) Phase() JumpPhase {
	if s.Grounded {
		return Grounded
	}
	return Airborne
}

type CameraState struct {
	Yaw   float64
	Pitch float64
}

// CameraPose is where the camera sits and what it looks at.
type CameraPose struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
}

// Params holds the tuning constants. They are fixed for the life of a scene.
type Params struct {
	NormalSpeed float64
	SprintSpeed float64
	Gravity     float64
	JumpImpulse float64

	GroundHeight float64

	MinPitch         float64
	MaxPitch         float64
	OrbitDistance    float64
	MouseSensitivity float64
	EyeLift          float64 // added to the eye height above the orbit point
	HeadHeight       float64 // look-at height above the player origin
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		NormalSpeed:      0.1,
		SprintSpeed:      0.2,
		Gravity:          0.01,
		JumpImpulse:      0.2,
		GroundHeight:     0.5,
		MinPitch:         0.1,
		MaxPitch:         math.Pi / 2,
		OrbitDistance:    5,
		MouseSensitivity: 0.002,
		EyeLift:          1.5,
		HeadHeight:       1,
	}
}

// NewPlayerState returns a player standing at the origin on the ground.
func NewPlayerState(p Params) PlayerState {
	return PlayerState{
		Position: mgl64.Vec3{0, p.GroundHeight, 0},
		Grounded: true,
	}
}

// NewCameraState returns the camera behind the player at the lowest allowed pitch.
func NewCameraState(p Params) CameraState {
	return CameraState{Pitch: ClampPitch(0, p.MinPitch, p.MaxPitch)}
}

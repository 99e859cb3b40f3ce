package components

import (
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/kinematics"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions
// plus the mouse-drag accumulator for the orbit camera.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	OrbitHeld bool // orbit mouse button held as of the last poll

	cursorX, cursorY int
	hasCursor        bool
	dragX, dragY     float64
	jumpLatched      bool // jump edge seen since the last Sample
}

var Input = donburi.NewComponentType[InputData]()

// Swap starts a new frame: current becomes previous and current is cleared.
func (d *InputData) Swap() {
	d.Previous = d.Current
	d.Current = [cfg.ActionCount]bool{}
}

// Action returns the full ActionState for an action ID.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	curr := d.Current[id]
	prev := d.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// LatchEdges remembers this tick's jump edge until the next Sample, so ticks
// that run no simulation step do not lose it.
func (d *InputData) LatchEdges() {
	if d.Action(cfg.ActionJump).JustPressed {
		d.jumpLatched = true
	}
}

// TrackCursor records a cursor position. Movement only counts as drag while
// the orbit button was already held at the previous position, so the press
// itself never produces a jump in the camera.
func (d *InputData) TrackCursor(x, y int, held bool) {
	if held && d.OrbitHeld && d.hasCursor {
		d.AddDrag(float64(x-d.cursorX), float64(y-d.cursorY))
	}
	d.cursorX, d.cursorY, d.hasCursor = x, y, true
	d.OrbitHeld = held
}

// AddDrag accumulates drag movement in pixels.
func (d *InputData) AddDrag(dx, dy float64) {
	d.dragX += dx
	d.dragY += dy
}

// DrainDrag returns the accumulated drag and resets it.
func (d *InputData) DrainDrag() (dx, dy float64) {
	dx, dy = d.dragX, d.dragY
	d.dragX, d.dragY = 0, 0
	return dx, dy
}

// Discard drops drag and a latched jump that no step has consumed.
func (d *InputData) Discard() {
	d.DrainDrag()
	d.jumpLatched = false
}

// Sample converts this frame's actions into kinematics input and drains the
// drag accumulator and the latched jump edge.
func (d *InputData) Sample() kinematics.InputState {
	jump := d.Action(cfg.ActionJump)
	jumpPressed := jump.JustPressed || d.jumpLatched
	d.jumpLatched = false
	dx, dy := d.DrainDrag()
	return kinematics.InputState{
		Forward:     d.Current[cfg.ActionMoveForward],
		Backward:    d.Current[cfg.ActionMoveBackward],
		Left:        d.Current[cfg.ActionMoveLeft],
		Right:       d.Current[cfg.ActionMoveRight],
		Sprint:      d.Current[cfg.ActionSprint],
		Jump:        jump.Pressed,
		JumpPressed: jumpPressed,
		OrbitHeld:   d.OrbitHeld,
		DragX:       dx,
		DragY:       dy,
	}
}

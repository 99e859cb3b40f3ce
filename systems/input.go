package systems

import (
	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/kinematics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var cursorShape = ebiten.CursorShapeDefault

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Swap()

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.LatchEdges()

	x, y := ebiten.CursorPosition()
	input.TrackCursor(x, y, ebiten.IsMouseButtonPressed(cfg.Camera.OrbitButton))

	// Show a grab cursor while orbiting
	shape := ebiten.CursorShapeDefault
	if input.OrbitHeld {
		shape = ebiten.CursorShapeMove
	}
	if shape != cursorShape {
		ebiten.SetCursorShape(shape)
		cursorShape = shape
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

// SampleInput drains this frame's input into the form the kinematics step expects.
func SampleInput(ecs *ecs.ECS) kinematics.InputState {
	return getOrCreateInput(ecs).Sample()
}

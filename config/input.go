package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionJump
	ActionPause
	ActionToggleDebug
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveForward:  "forward",
	ActionMoveBackward: "backward",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionSprint:       "sprint",
	ActionJump:         "jump",
	ActionPause:        "pause",
	ActionToggleDebug:  "debug",
	ActionRestart:      "restart",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName looks up an action by its lowercase name.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	ResetInput()
}

// ResetInput restores the default key bindings.
func ResetInput() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward:  {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionMoveBackward: {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionMoveLeft:     {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight:    {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionSprint:       {Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
			ActionJump:         {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionPause:        {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
			ActionToggleDebug:  {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionRestart:      {Keys: []ebiten.Key{ebiten.KeyR}},
		},
	}
}

package systems

import (
	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/kinematics"
	"github.com/automoto/cubewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepDelta is the time per Update in reference frames. At the reference
// tick rate it is exactly 1.
func StepDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1
	}
	return float64(cfg.Sim.ReferenceTPS) / float64(tps)
}

// NewUpdatePlayer returns the system that advances the player and the orbit
// camera. The simulation always runs in whole reference frames, so the
// trajectory is the same at every tick rate.
func NewUpdatePlayer(params kinematics.Params) ecs.System {
	var clock kinematics.FixedStep
	return func(e *ecs.ECS) {
		steps := clock.Ready(StepDelta())
		if steps == 0 {
			// Input stays buffered until a step consumes it
			return
		}

		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		player := components.Player.Get(playerEntry)
		camera := components.Camera.Get(cameraEntry)

		// Sensitivity follows the pause menu; the rest of the tuning is fixed
		params.MouseSensitivity = GetOrCreateSettings(e).MouseSensitivity

		in := SampleInput(e)
		frame := kinematics.Advance(params, steps, in, player.State, camera.State)

		player.State = frame.Player
		camera.State = frame.Camera
		camera.Pose = frame.Pose

		switch {
		case frame.Jumped:
			TriggerSquash(playerEntry, cfg.SquashStretch.JumpScaleXZ, cfg.SquashStretch.JumpScaleY)
		case frame.Landed:
			TriggerSquash(playerEntry, cfg.SquashStretch.LandScaleXZ, cfg.SquashStretch.LandScaleY)
		}

		syncPlayerMesh(playerEntry)
	}
}

// syncPlayerMesh copies the simulated transform onto the drawable cube. The
// squash scale is anchored at the cube's base so it never sinks into the ground.
func syncPlayerMesh(entry *donburi.Entry) {
	state := components.Player.Get(entry).State
	mesh := components.Mesh.Get(entry)
	squash := components.Squash.Get(entry)

	pos := state.Position
	h := cfg.Player.Height
	pos[1] += (squash.ScaleY - 1) * h / 2

	mesh.Position = pos
	mesh.Yaw = state.Yaw
	mesh.Scale[0] = squash.ScaleXZ
	mesh.Scale[1] = squash.ScaleY
	mesh.Scale[2] = squash.ScaleXZ
}

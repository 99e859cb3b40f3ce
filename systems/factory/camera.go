package factory

import (
	"github.com/automoto/cubewalk/archetypes"
	"github.com/automoto/cubewalk/components"
	"github.com/automoto/cubewalk/kinematics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera places the orbit camera behind the player at its resting pose.
func CreateCamera(ecs *ecs.ECS, params kinematics.Params, target kinematics.PlayerState) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	state := kinematics.NewCameraState(params)
	components.Camera.SetValue(camera, components.CameraData{
		State: state,
		Pose:  kinematics.Pose(params, target.Position, state),
	})
	return camera
}

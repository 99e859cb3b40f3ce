package components

import (
	"github.com/automoto/cubewalk/kinematics"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	State kinematics.CameraState
	Pose  kinematics.CameraPose // recomputed every simulated frame
}

var Camera = donburi.NewComponentType[CameraData]()

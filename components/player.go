package components

import (
	"github.com/automoto/cubewalk/kinematics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State kinematics.PlayerState
}

var Player = donburi.NewComponentType[PlayerData]()

package factory

import (
	"github.com/automoto/cubewalk/archetypes"
	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/kinematics"
	"github.com/automoto/cubewalk/render3d"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, params kinematics.Params) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	state := kinematics.NewPlayerState(params)
	components.Player.SetValue(player, components.PlayerData{State: state})

	components.Mesh.SetValue(player, components.MeshData{Instance: render3d.Instance{
		Mesh:       render3d.NewBox(cfg.Player.Width, cfg.Player.Height, cfg.Player.Depth),
		Position:   state.Position,
		Yaw:        state.Yaw,
		Color:      cfg.Player.Color,
		Side:       render3d.FrontSide,
		Lit:        true,
		Layer:      cfg.PaintActors,
		CastShadow: true,
	}})

	components.Squash.SetValue(player, components.SquashData{
		ScaleXZ: 1,
		ScaleY:  1,
	})

	return player
}

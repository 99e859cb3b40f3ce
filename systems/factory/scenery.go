package factory

import (
	"github.com/automoto/cubewalk/archetypes"
	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/render3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGround(ecs *ecs.ECS) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Mesh.SetValue(ground, components.MeshData{Instance: render3d.Instance{
		Mesh:     render3d.NewPlane(cfg.Scene.GroundSize, cfg.Scene.GroundTiles),
		Position: mgl64.Vec3{0, cfg.GroundY(), 0},
		Color:    cfg.Scene.GroundColor,
		Side:     render3d.DoubleSide,
		Lit:      true,
		Layer:    cfg.PaintGround,
	}})
	return ground
}

// CreateSkybox creates an unlit box around the world, visible from inside.
func CreateSkybox(ecs *ecs.ECS) *donburi.Entry {
	sky := archetypes.Skybox.Spawn(ecs)
	size := cfg.Scene.SkyboxSize
	components.Mesh.SetValue(sky, components.MeshData{Instance: render3d.Instance{
		Mesh:  render3d.NewBox(size, size, size),
		Color: cfg.Scene.SkyColor,
		Side:  render3d.BackSide,
		Layer: cfg.PaintSky,
	}})
	return sky
}

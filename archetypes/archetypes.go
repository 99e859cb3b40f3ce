package archetypes

import (
	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Mesh,
		components.Squash,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Mesh,
	)
	Skybox = newArchetype(
		tags.Skybox,
		components.Mesh,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package systems

import (
	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSquash advances squash/stretch tweens and applies the scale to the mesh.
func UpdateSquash(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.Sim.ReferenceTPS))
	if tps := ebiten.TPS(); tps > 0 {
		dt = float32(1.0 / float64(tps))
	}

	components.Squash.Each(ecs.World, func(e *donburi.Entry) {
		advanceSquash(components.Squash.Get(e), dt)
		if e.HasComponent(components.Player) {
			syncPlayerMesh(e)
		}
	})
}

// advanceSquash steps both axes by dt seconds. Finished tweens are dropped
// and the axis snaps to rest scale.
func advanceSquash(ss *components.SquashData, dt float32) {
	if ss.TweenXZ != nil {
		v, done := ss.TweenXZ.Update(dt)
		ss.ScaleXZ = float64(v)
		if done {
			ss.ScaleXZ = 1
			ss.TweenXZ = nil
		}
	}
	if ss.TweenY != nil {
		v, done := ss.TweenY.Update(dt)
		ss.ScaleY = float64(v)
		if done {
			ss.ScaleY = 1
			ss.TweenY = nil
		}
	}
}

// TriggerSquash snaps an entity to the given scale and eases it back to 1.
func TriggerSquash(entry *donburi.Entry, scaleXZ, scaleY float64) {
	if !entry.HasComponent(components.Squash) {
		return
	}
	ss := components.Squash.Get(entry)
	d := cfg.SquashStretch.Duration
	ss.ScaleXZ = scaleXZ
	ss.ScaleY = scaleY
	ss.TweenXZ = gween.New(float32(scaleXZ), 1, d, ease.OutBack)
	ss.TweenY = gween.New(float32(scaleY), 1, d, ease.OutBack)
}

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashData drives the squash/stretch scale of a mesh. Nil tweens mean the
// mesh is at rest scale.
type SquashData struct {
	ScaleXZ float64
	ScaleY  float64
	TweenXZ *gween.Tween
	TweenY  *gween.Tween
}

var Squash = donburi.NewComponentType[SquashData]()

package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order.
const (
	Default ecs.LayerID = iota
	Overlay
)

// Paint layers for 3D instances. Lower layers are drawn first regardless of
// depth, which is safe because sky, ground and shadows never occlude actors.
const (
	PaintSky = iota
	PaintGround
	PaintShadow
	PaintActors
)

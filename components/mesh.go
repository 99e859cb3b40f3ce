package components

import (
	"github.com/automoto/cubewalk/render3d"
	"github.com/yohamta/donburi"
)

// MeshData is a drawable 3D instance. Systems that move an entity keep
// Instance.Position and Instance.Yaw in sync with its state.
type MeshData struct {
	render3d.Instance
}

var Mesh = donburi.NewComponentType[MeshData]()

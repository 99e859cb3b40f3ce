// Package render3d turns a handful of meshes and a camera into flat-shaded,
// screen-space triangles. It has no GPU or window dependency; the caller
// rasterizes the result.
package render3d

import "github.com/go-gl/mathgl/mgl64"

// Mesh is an indexed triangle list. Triangles wind counter-clockwise when
// seen from the side their normal points to.
type Mesh struct {
	Vertices  []mgl64.Vec3
	Triangles [][3]int
}

// NewBox returns a w×h×d box centered on the origin.
func NewBox(w, h, d float64) *Mesh {
	x, y, z := w/2, h/2, d/2
	m := &Mesh{
		Vertices: []mgl64.Vec3{
			{-x, -y, -z}, // 0
			{x, -y, -z},  // 1
			{x, y, -z},   // 2
			{-x, y, -z},  // 3
			{-x, -y, z},  // 4
			{x, -y, z},   // 5
			{x, y, z},    // 6
			{-x, y, z},   // 7
		},
	}
	quads := [][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	for _, q := range quads {
		m.addQuad(q[0], q[1], q[2], q[3])
	}
	return m
}

// NewPlane returns a size×size plane in XZ at y=0 facing +Y, split into
// tiles×tiles quads.
func NewPlane(size float64, tiles int) *Mesh {
	if tiles < 1 {
		tiles = 1
	}
	m := &Mesh{}
	step := size / float64(tiles)
	half := size / 2
	row := tiles + 1
	for i := 0; i <= tiles; i++ {
		for j := 0; j <= tiles; j++ {
			m.Vertices = append(m.Vertices, mgl64.Vec3{-half + float64(j)*step, 0, -half + float64(i)*step})
		}
	}
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			a := i*row + j
			m.addQuad(a+row, a+row+1, a+1, a)
		}
	}
	return m
}

func (m *Mesh) addQuad(a, b, c, d int) {
	m.Triangles = append(m.Triangles, [3]int{a, b, c}, [3]int{a, c, d})
}

// Normal returns the unnormalized face normal of triangle i in mesh space.
func (m *Mesh) Normal(i int) mgl64.Vec3 {
	t := m.Triangles[i]
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return b.Sub(a).Cross(c.Sub(a))
}

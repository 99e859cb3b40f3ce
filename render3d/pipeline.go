package render3d

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Side selects which faces of a mesh are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Instance places a mesh in the world.
type Instance struct {
	Mesh     *Mesh
	Position mgl64.Vec3
	Yaw      float64
	Scale    mgl64.Vec3 // zero means 1,1,1
	Color    color.RGBA
	Side     Side
	Lit      bool

	// Layer orders instances that never interpenetrate: lower layers are
	// painted first regardless of depth.
	Layer int

	CastShadow bool
}

// Model returns the instance's mesh-to-world transform.
func (in Instance) Model() mgl64.Mat4 {
	s := in.Scale
	if s == (mgl64.Vec3{}) {
		s = mgl64.Vec3{1, 1, 1}
	}
	return mgl64.Translate3D(in.Position.X(), in.Position.Y(), in.Position.Z()).
		Mul4(mgl64.HomogRotate3DY(in.Yaw)).
		Mul4(mgl64.Scale3D(s.X(), s.Y(), s.Z()))
}

// Light is one directional light plus ambient fill.
type Light struct {
	Direction mgl64.Vec3 // points from the scene toward the light
	Intensity float64
	Ambient   float64
}

// Shade scales c by the Lambert term for a surface with normal n.
func (l Light) Shade(c color.RGBA, n mgl64.Vec3) color.RGBA {
	k := l.Ambient
	if d := n.Normalize().Dot(l.Direction.Normalize()); d > 0 {
		k += l.Intensity * d
	}
	k = math.Min(k, 1)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * k)),
		G: uint8(math.Round(float64(c.G) * k)),
		B: uint8(math.Round(float64(c.B) * k)),
		A: c.A,
	}
}

// Shadow projects casters onto a horizontal plane along the light.
type Shadow struct {
	PlaneY float64
	Color  color.RGBA
	Layer  int
}

// Triangle is a screen-space triangle ready to rasterize.
type Triangle struct {
	Points [3]mgl64.Vec2
	Color  color.RGBA
	Depth  float64 // mean eye-space distance, larger is farther
	Layer  int
}

type worldTri struct {
	v     [3]mgl64.Vec3
	color color.RGBA
	layer int
}

// Renderer converts instances into painter-ordered screen triangles. The
// zero value is usable; the output slice is reused between calls.
type Renderer struct {
	out   []Triangle
	world []worldTri
}

// Render returns triangles sorted back to front. The slice is only valid
// until the next call.
func (r *Renderer) Render(v View, light Light, shadow *Shadow, instances []Instance) []Triangle {
	r.out = r.out[:0]
	r.world = r.world[:0]

	for _, in := range instances {
		r.collect(v, light, in)
		if shadow != nil && in.CastShadow {
			r.collectShadow(light, *shadow, in)
		}
	}

	viewM := v.ViewMatrix()
	proj := v.Projection()
	for _, t := range r.world {
		r.emit(v, viewM, proj, t)
	}

	sort.SliceStable(r.out, func(i, j int) bool {
		if r.out[i].Layer != r.out[j].Layer {
			return r.out[i].Layer < r.out[j].Layer
		}
		return r.out[i].Depth > r.out[j].Depth
	})
	return r.out
}

func (r *Renderer) collect(v View, light Light, in Instance) {
	model := in.Model()
	for _, t := range in.Mesh.Triangles {
		var w [3]mgl64.Vec3
		for k, idx := range t {
			w[k] = mgl64.TransformCoordinate(in.Mesh.Vertices[idx], model)
		}

		n := w[1].Sub(w[0]).Cross(w[2].Sub(w[0]))
		facing := n.Dot(v.Eye.Sub(w[0]))
		switch in.Side {
		case FrontSide:
			if facing <= 0 {
				continue
			}
		case BackSide:
			if facing >= 0 {
				continue
			}
			n = n.Mul(-1)
		case DoubleSide:
			if facing < 0 {
				n = n.Mul(-1)
			}
		}

		c := in.Color
		if in.Lit {
			c = light.Shade(c, n)
		}
		r.world = append(r.world, worldTri{v: w, color: c, layer: in.Layer})
	}
}

// collectShadow flattens the caster's light-facing faces onto the shadow
// plane. For a convex mesh those faces cover the silhouette exactly once.
func (r *Renderer) collectShadow(light Light, s Shadow, in Instance) {
	dir := light.Direction.Normalize()
	if dir.Y() <= 0 {
		return
	}
	model := in.Model()
	for _, t := range in.Mesh.Triangles {
		var w [3]mgl64.Vec3
		for k, idx := range t {
			w[k] = mgl64.TransformCoordinate(in.Mesh.Vertices[idx], model)
		}
		n := w[1].Sub(w[0]).Cross(w[2].Sub(w[0]))
		if n.Dot(dir) <= 0 {
			continue
		}
		for k := range w {
			w[k] = ProjectOntoPlane(w[k], dir, s.PlaneY)
		}
		r.world = append(r.world, worldTri{v: w, color: s.Color, layer: s.Layer})
	}
}

// ProjectOntoPlane slides p along dir until it reaches y = planeY.
func ProjectOntoPlane(p, dir mgl64.Vec3, planeY float64) mgl64.Vec3 {
	t := (p.Y() - planeY) / dir.Y()
	return p.Sub(dir.Mul(t))
}

func (r *Renderer) emit(v View, viewM, proj mgl64.Mat4, t worldTri) {
	var eye [3]mgl64.Vec3
	for k := range t.v {
		eye[k] = mgl64.TransformCoordinate(t.v[k], viewM)
	}

	poly := ClipNear(eye[:], v.Near)
	if len(poly) < 3 {
		return
	}

	depth := 0.0
	for _, p := range poly {
		depth -= p.Z()
	}
	depth /= float64(len(poly))

	first := v.ToScreen(proj, poly[0])
	prev := v.ToScreen(proj, poly[1])
	for k := 2; k < len(poly); k++ {
		cur := v.ToScreen(proj, poly[k])
		r.out = append(r.out, Triangle{
			Points: [3]mgl64.Vec2{first, prev, cur},
			Color:  t.color,
			Depth:  depth,
			Layer:  t.layer,
		})
		prev = cur
	}
}

// ClipNear clips an eye-space polygon against the plane z = -near and
// returns the part in front of the camera.
func ClipNear(poly []mgl64.Vec3, near float64) []mgl64.Vec3 {
	inside := func(p mgl64.Vec3) bool { return p.Z() <= -near }

	out := make([]mgl64.Vec3, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn != prevIn {
			t := (-near - prev.Z()) / (cur.Z() - prev.Z())
			out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

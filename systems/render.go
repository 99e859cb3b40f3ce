package systems

import (
	"image"
	"image/color"

	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/render3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Triangles are batched so indices fit in uint16.
const maxBatchVertices = 65535 / 3 * 3

var (
	whiteSubImage *ebiten.Image

	sceneRenderer render3d.Renderer
	instances     []render3d.Instance
	vertices      []ebiten.Vertex
	indices       []uint16
	trianglesOp   = &ebiten.DrawTrianglesOptions{}
)

// Lazy load the 1x1 white source; the inner pixel of a 3x3 image avoids
// sampling past its edge.
func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// DrawScene renders every Mesh entity from the camera's current pose.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Scene.SkyColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	pose := components.Camera.Get(cameraEntry).Pose
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	view := SceneView(pose.Eye, pose.Target, pose.Up, width, height)

	instances = instances[:0]
	components.Mesh.Each(ecs.World, func(e *donburi.Entry) {
		instances = append(instances, components.Mesh.Get(e).Instance)
	})

	tris := sceneRenderer.Render(view, SceneLight(), SceneShadow(), instances)
	drawTriangles(screen, tris)
}

// SceneView builds the perspective view for a screen of the given size.
// The aspect ratio follows the screen so resizing never distorts the scene.
func SceneView(eye, target, up mgl64.Vec3, width, height int) render3d.View {
	return render3d.View{
		Eye:         eye,
		Target:      target,
		Up:          up,
		FieldOfView: cfg.Camera.FieldOfView,
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
		Width:       float64(width),
		Height:      float64(height),
	}
}

// SceneLight is the directional light plus ambient fill from config.
func SceneLight() render3d.Light {
	p := cfg.Scene.LightPosition
	return render3d.Light{
		Direction: mgl64.Vec3{p[0], p[1], p[2]},
		Intensity: cfg.Scene.LightIntensity,
		Ambient:   cfg.Scene.AmbientIntensity,
	}
}

// SceneShadow projects casters onto the ground plane.
func SceneShadow() *render3d.Shadow {
	return &render3d.Shadow{
		PlaneY: cfg.GroundY(),
		Color:  cfg.Scene.ShadowColor,
		Layer:  cfg.PaintShadow,
	}
}

func drawTriangles(screen *ebiten.Image, tris []render3d.Triangle) {
	vertices = vertices[:0]
	indices = indices[:0]

	for _, t := range tris {
		if len(vertices)+3 > maxBatchVertices {
			flushTriangles(screen)
		}
		r := float32(t.Color.R) / 0xff
		g := float32(t.Color.G) / 0xff
		b := float32(t.Color.B) / 0xff
		a := float32(t.Color.A) / 0xff
		base := uint16(len(vertices))
		for _, p := range t.Points {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.X()),
				DstY:   float32(p.Y()),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			})
		}
		indices = append(indices, base, base+1, base+2)
	}
	flushTriangles(screen)
}

func flushTriangles(screen *ebiten.Image) {
	if len(indices) == 0 {
		return
	}
	screen.DrawTriangles(vertices, indices, whiteSource(), trianglesOp)
	vertices = vertices[:0]
	indices = indices[:0]
}

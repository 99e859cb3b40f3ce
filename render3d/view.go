package render3d

import "github.com/go-gl/mathgl/mgl64"

// View is a perspective camera looking at a target.
type View struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3

	FieldOfView float64 // vertical, degrees
	Near        float64
	Far         float64

	Width  float64 // viewport size in pixels
	Height float64
}

// Aspect is width over height. A degenerate viewport reports 1.
func (v View) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// ViewMatrix maps world space to eye space (camera looking down -Z).
func (v View) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(v.Eye, v.Target, v.Up)
}

// Projection maps eye space to clip space.
func (v View) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(v.FieldOfView), v.Aspect(), v.Near, v.Far)
}

// ToScreen projects an eye-space point in front of the near plane to pixels.
func (v View) ToScreen(proj mgl64.Mat4, p mgl64.Vec3) mgl64.Vec2 {
	clip := proj.Mul4x1(p.Vec4(1))
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return mgl64.Vec2{
		(ndcX + 1) / 2 * v.Width,
		(1 - ndcY) / 2 * v.Height,
	}
}

// Project maps a world-space point to pixels. ok is false when the point is
// behind the near plane.
func (v View) Project(p mgl64.Vec3) (screen mgl64.Vec2, ok bool) {
	eye := mgl64.TransformCoordinate(p, v.ViewMatrix())
	if eye.Z() > -v.Near {
		return mgl64.Vec2{}, false
	}
	return v.ToScreen(v.Projection(), eye), true
}

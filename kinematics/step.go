package kinematics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var up = mgl64.Vec3{0, 1, 0}

// Frame is the result of advancing the simulation by one step.
type Frame struct {
	Player PlayerState
	Camera CameraState
	Pose   CameraPose

	Jumped bool // Grounded -> Airborne this step
	Landed bool // Airborne -> Grounded this step
}

// Step advances the player and camera by one frame.
//
// dt is measured in reference frames: 1 is exactly one fixed step, so a caller
// running at the reference tick rate always passes 1. Movement, gravity and
// vertical integration scale linearly with dt.
func Step(p Params, dt float64, in InputState, player PlayerState, cam CameraState) Frame {
	cam = ApplyDrag(cam, in.DragX, in.DragY, p)

	var f Frame

	if in.JumpPressed && player.Grounded {
		player.VelocityY = p.JumpImpulse
		player.Grounded = false
		f.Jumped = true
	}

	player = moveHorizontal(p, dt, in, player, cam.Yaw)

	wasGrounded := player.Grounded
	player = integrateVertical(p, dt, player)
	if !wasGrounded && player.Grounded {
		f.Landed = true
	}

	f.Player = player
	f.Camera = cam
	f.Pose = Pose(p, player.Position, cam)
	return f
}

// Speed returns the horizontal speed for this frame's sprint state.
func Speed(p Params, sprint bool) float64 {
	if sprint {
		return p.SprintSpeed
	}
	return p.NormalSpeed
}

// Forward returns the horizontal unit vector for yaw.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// Right returns Forward rotated a quarter turn about +Y.
func Right(yaw float64) mgl64.Vec3 {
	return Forward(yaw + math.Pi/2)
}

func moveHorizontal(p Params, dt float64, in InputState, player PlayerState, yaw float64) PlayerState {
	speed := Speed(p, in.Sprint) * dt
	forward := Forward(yaw)
	right := Right(yaw)

	// Deltas are summed before touching the position so opposing keys cancel to exactly zero.
	var dx, dz float64
	if in.Forward {
		dx -= forward.X() * speed
		dz -= forward.Z() * speed
	}
	if in.Backward {
		dx += forward.X() * speed
		dz += forward.Z() * speed
	}
	if in.Left {
		dx -= right.X() * speed
		dz -= right.Z() * speed
	}
	if in.Right {
		dx += right.X() * speed
		dz += right.Z() * speed
	}
	player.Position[0] += dx
	player.Position[2] += dz

	if in.Moving() {
		player.Yaw = yaw
	}
	return player
}

func integrateVertical(p Params, dt float64, player PlayerState) PlayerState {
	player.VelocityY -= p.Gravity * dt
	player.Position[1] += player.VelocityY * dt

	if player.Position.Y() <= p.GroundHeight {
		player.Position[1] = p.GroundHeight
		player.VelocityY = 0
		player.Grounded = true
	}
	return player
}

// ApplyDrag turns accumulated mouse movement into camera yaw and pitch.
// Pitch is clamped on every call, whatever the size of the deltas.
func ApplyDrag(cam CameraState, dx, dy float64, p Params) CameraState {
	cam.Yaw -= dx * p.MouseSensitivity
	cam.Pitch -= dy * p.MouseSensitivity
	cam.Pitch = ClampPitch(cam.Pitch, p.MinPitch, p.MaxPitch)
	return cam
}

// ClampPitch limits pitch to [min, max]. NaN collapses to min.
func ClampPitch(pitch, min, max float64) float64 {
	if math.IsNaN(pitch) {
		return min
	}
	return mgl64.Clamp(pitch, min, max)
}

// OrbitOffset is the camera's displacement from the player for the given orbit.
func OrbitOffset(distance float64, cam CameraState) mgl64.Vec3 {
	cosPitch := math.Cos(cam.Pitch)
	return mgl64.Vec3{
		distance * math.Sin(cam.Yaw) * cosPitch,
		distance * math.Sin(cam.Pitch),
		distance * math.Cos(cam.Yaw) * cosPitch,
	}
}

// Pose places the camera on its orbit around position and aims it at head height.
func Pose(p Params, position mgl64.Vec3, cam CameraState) CameraPose {
	eye := position.Add(OrbitOffset(p.OrbitDistance, cam))
	eye[1] += p.EyeLift

	target := position
	target[1] += p.HeadHeight

	return CameraPose{Eye: eye, Target: target, Up: up}
}

package kinematics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestStepForwardAtZeroYaw(t *testing.T) {
	p := DefaultParams()
	f := Step(p, 1, InputState{Forward: true}, NewPlayerState(p), CameraState{Pitch: p.MinPitch})

	if !near(f.Player.Position.X(), 0) || !near(f.Player.Position.Z(), -0.1) {
		t.Errorf("position = %v, want (0, y, -0.1)", f.Player.Position)
	}
	if f.Player.Position.Y() != p.GroundHeight {
		t.Errorf("y = %v, want ground height %v", f.Player.Position.Y(), p.GroundHeight)
	}
}

func TestStepOpposingKeysCancel(t *testing.T) {
	p := DefaultParams()
	start := NewPlayerState(p)
	start.Position = mgl64.Vec3{3.7, p.GroundHeight, -12.3}

	tests := []struct {
		name string
		in   InputState
		yaw  float64
	}{
		{"forward and backward", InputState{Forward: true, Backward: true}, 0.73},
		{"left and right", InputState{Left: true, Right: true}, -2.1},
		{"all four sprinting", InputState{Forward: true, Backward: true, Left: true, Right: true, Sprint: true}, 1.234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Step(p, 1, tt.in, start, CameraState{Yaw: tt.yaw, Pitch: p.MinPitch})
			if f.Player.Position.X() != start.Position.X() || f.Player.Position.Z() != start.Position.Z() {
				t.Errorf("moved from %v to %v", start.Position, f.Player.Position)
			}
			// Holding keys still counts as moving, so the player turns to the camera.
			if f.Player.Yaw != tt.yaw {
				t.Errorf("yaw = %v, want %v", f.Player.Yaw, tt.yaw)
			}
		})
	}
}

func TestStepSprintSpeed(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name   string
		in     InputState
		expect float64
	}{
		{"walk right", InputState{Right: true}, p.NormalSpeed},
		{"sprint right", InputState{Right: true, Sprint: true}, p.SprintSpeed},
		{"sprint forward", InputState{Forward: true, Sprint: true}, p.SprintSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := NewPlayerState(p)
			f := Step(p, 1, tt.in, start, CameraState{Yaw: 0.4, Pitch: p.MinPitch})
			d := f.Player.Position.Sub(start.Position)
			d[1] = 0
			if !near(d.Len(), tt.expect) {
				t.Errorf("displacement = %v, want %v", d.Len(), tt.expect)
			}
		})
	}
}

func TestStepSprintIsReadEachFrame(t *testing.T) {
	p := DefaultParams()
	player := NewPlayerState(p)
	cam := CameraState{Pitch: p.MinPitch}

	f := Step(p, 1, InputState{Right: true, Sprint: true}, player, cam)
	f = Step(p, 1, InputState{Right: true}, f.Player, f.Camera)

	if !near(f.Player.Position.X(), p.SprintSpeed+p.NormalSpeed) {
		t.Errorf("x = %v, want %v", f.Player.Position.X(), p.SprintSpeed+p.NormalSpeed)
	}
}

func TestStepYawFollowsCameraOnlyWhileMoving(t *testing.T) {
	p := DefaultParams()
	player := NewPlayerState(p)
	player.Yaw = 0.5

	f := Step(p, 1, InputState{}, player, CameraState{Yaw: 2, Pitch: p.MinPitch})
	if f.Player.Yaw != 0.5 {
		t.Errorf("idle yaw = %v, want unchanged 0.5", f.Player.Yaw)
	}

	f = Step(p, 1, InputState{Left: true}, f.Player, f.Camera)
	if f.Player.Yaw != 2 {
		t.Errorf("moving yaw = %v, want camera yaw 2", f.Player.Yaw)
	}
}

func TestStepAirborneGravity(t *testing.T) {
	p := DefaultParams()
	player := PlayerState{
		Position:  mgl64.Vec3{0, 3, 0},
		VelocityY: 0.2,
	}

	f := Step(p, 1, InputState{}, player, CameraState{Pitch: p.MinPitch})

	if !near(f.Player.VelocityY, 0.19) {
		t.Errorf("velocity = %v, want 0.19", f.Player.VelocityY)
	}
	if !near(f.Player.Position.Y(), 3.19) {
		t.Errorf("y = %v, want 3.19", f.Player.Position.Y())
	}
	if f.Player.Grounded || f.Landed {
		t.Error("player should still be airborne")
	}
}

func TestStepLandingClampsToGround(t *testing.T) {
	p := DefaultParams()
	player := PlayerState{
		Position:  mgl64.Vec3{1, p.GroundHeight + 0.05, 1},
		VelocityY: -0.3,
	}

	f := Step(p, 1, InputState{}, player, CameraState{Pitch: p.MinPitch})

	if f.Player.Position.Y() != p.GroundHeight {
		t.Errorf("y = %v, want %v", f.Player.Position.Y(), p.GroundHeight)
	}
	if f.Player.VelocityY != 0 {
		t.Errorf("velocity = %v, want 0", f.Player.VelocityY)
	}
	if !f.Player.Grounded || !f.Landed {
		t.Errorf("grounded = %v landed = %v, want both true", f.Player.Grounded, f.Landed)
	}
}

func TestStepJumpIsEdgeTriggered(t *testing.T) {
	p := DefaultParams()
	player := NewPlayerState(p)
	cam := NewCameraState(p)

	f := Step(p, 1, InputState{Jump: true, JumpPressed: true}, player, cam)
	if !f.Jumped {
		t.Fatal("expected a jump on the key edge")
	}
	if f.Player.Phase() != Airborne {
		t.Fatalf("phase = %v, want airborne", f.Player.Phase())
	}
	if !near(f.Player.VelocityY, p.JumpImpulse-p.Gravity) {
		t.Errorf("velocity after jump frame = %v, want %v", f.Player.VelocityY, p.JumpImpulse-p.Gravity)
	}

	// Keep holding the key until the player comes back down.
	jumps := 1
	prevVelocity := f.Player.VelocityY
	for i := 0; i < 200; i++ {
		f = Step(p, 1, InputState{Jump: true}, f.Player, f.Camera)
		if f.Jumped {
			jumps++
		}
		if !f.Player.Grounded && f.Player.VelocityY > prevVelocity {
			t.Fatalf("frame %d: velocity rose from %v to %v while holding jump", i, prevVelocity, f.Player.VelocityY)
		}
		prevVelocity = f.Player.VelocityY
	}
	if jumps != 1 {
		t.Errorf("jumps = %d, want 1", jumps)
	}
	if f.Player.Phase() != Grounded {
		t.Errorf("phase = %v, want grounded after landing", f.Player.Phase())
	}
}

func TestStepJumpEdgeIgnoredWhileAirborne(t *testing.T) {
	p := DefaultParams()
	player := PlayerState{Position: mgl64.Vec3{0, 2, 0}, VelocityY: -0.05}

	f := Step(p, 1, InputState{Jump: true, JumpPressed: true}, player, NewCameraState(p))

	if f.Jumped {
		t.Error("jumped while airborne")
	}
	if !near(f.Player.VelocityY, -0.06) {
		t.Errorf("velocity = %v, want -0.06", f.Player.VelocityY)
	}
}

func TestStepFullJumpArc(t *testing.T) {
	p := DefaultParams()
	f := Step(p, 1, InputState{JumpPressed: true, Jump: true}, NewPlayerState(p), NewCameraState(p))

	frames := 1
	peak := f.Player.Position.Y()
	for !f.Landed {
		f = Step(p, 1, InputState{}, f.Player, f.Camera)
		frames++
		peak = math.Max(peak, f.Player.Position.Y())
		if frames > 1000 {
			t.Fatal("never landed")
		}
	}

	// v_n = 0.2 - 0.01n, so the rise peaks after 20 frames at 0.5 + sum(0.19..0.00).
	if !near(peak, p.GroundHeight+1.9) {
		t.Errorf("peak = %v, want %v", peak, p.GroundHeight+1.9)
	}
	// Frame 39 lands exactly on the ground in real arithmetic, so rounding decides between 39 and 40.
	if frames < 39 || frames > 40 {
		t.Errorf("airtime = %d frames, want 39 or 40", frames)
	}
}

func TestStepGroundInvariantUnderRandomInput(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(7))
	player := NewPlayerState(p)
	cam := NewCameraState(p)

	for i := 0; i < 5000; i++ {
		in := InputState{
			Forward:     rng.Intn(2) == 0,
			Backward:    rng.Intn(3) == 0,
			Left:        rng.Intn(2) == 0,
			Right:       rng.Intn(3) == 0,
			Sprint:      rng.Intn(2) == 0,
			JumpPressed: rng.Intn(10) == 0,
			DragX:       rng.NormFloat64() * 400,
			DragY:       rng.NormFloat64() * 400,
		}
		dt := 0.25 + rng.Float64()*2
		f := Step(p, dt, in, player, cam)
		player, cam = f.Player, f.Camera

		if player.Position.Y() < p.GroundHeight {
			t.Fatalf("frame %d: y = %v below ground", i, player.Position.Y())
		}
		if cam.Pitch < p.MinPitch || cam.Pitch > p.MaxPitch {
			t.Fatalf("frame %d: pitch = %v outside [%v, %v]", i, cam.Pitch, p.MinPitch, p.MaxPitch)
		}
		if player.Grounded && player.VelocityY != 0 {
			t.Fatalf("frame %d: grounded with velocity %v", i, player.VelocityY)
		}
	}
}

// jumpAtTPS simulates a jump pressed on the first tick at the given tick rate
// and returns the peak height and the wall time in seconds until landing.
func jumpAtTPS(t *testing.T, p Params, tps int) (peak, seconds float64) {
	t.Helper()
	var clock FixedStep
	elapsed := 60.0 / float64(tps)
	player, cam := NewPlayerState(p), NewCameraState(p)
	jump := true
	peak = player.Position.Y()

	for tick := 1; tick <= 10*tps; tick++ {
		n := clock.Ready(elapsed)
		if n == 0 {
			continue
		}
		f := Advance(p, n, InputState{Jump: true, JumpPressed: jump, Forward: true}, player, cam)
		jump = false
		player, cam = f.Player, f.Camera
		peak = math.Max(peak, player.Position.Y())
		if f.Landed {
			return peak, float64(tick) / float64(tps)
		}
	}
	t.Fatalf("tps %d: never landed", tps)
	return 0, 0
}

func TestJumpIsIndependentOfTickRate(t *testing.T) {
	p := DefaultParams()
	wantPeak, wantSeconds := jumpAtTPS(t, p, 60)
	if !near(wantPeak, p.GroundHeight+1.9) {
		t.Fatalf("peak at 60 TPS = %v, want %v", wantPeak, p.GroundHeight+1.9)
	}

	for _, tps := range []int{30, 120, 144} {
		peak, seconds := jumpAtTPS(t, p, tps)
		if peak != wantPeak {
			t.Errorf("tps %d: peak = %v, want %v", tps, peak, wantPeak)
		}
		// Wall-clock airtime differs by at most one tick of the slower rate.
		if math.Abs(seconds-wantSeconds) > 1.0/30 {
			t.Errorf("tps %d: airtime = %.3fs, want about %.3fs", tps, seconds, wantSeconds)
		}
	}
}

func TestFixedStepReady(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		ticks   int
		want    int
	}{
		{"reference rate", 1, 60, 60},
		{"half rate", 2, 30, 60},
		{"144 TPS", 60.0 / 144, 144, 60},
		{"stall is capped", 100, 1, MaxStepsPerTick},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clock FixedStep
			total := 0
			for i := 0; i < tt.ticks; i++ {
				total += clock.Ready(tt.elapsed)
			}
			if total != tt.want {
				t.Errorf("steps = %d, want %d", total, tt.want)
			}
		})
	}
}

func TestAdvanceConsumesEdgeAndDragOnce(t *testing.T) {
	p := DefaultParams()
	player, cam := NewPlayerState(p), NewCameraState(p)
	in := InputState{Forward: true, JumpPressed: true, Jump: true, DragX: 100}

	f := Advance(p, 2, in, player, cam)

	if !f.Jumped {
		t.Error("jump not reported")
	}
	// Impulse once, then two gravity steps.
	if !near(f.Player.VelocityY, p.JumpImpulse-2*p.Gravity) {
		t.Errorf("velocity = %v, want %v", f.Player.VelocityY, p.JumpImpulse-2*p.Gravity)
	}
	if !near(cam.Yaw-f.Camera.Yaw, 100*p.MouseSensitivity) {
		t.Errorf("yaw moved by %v, want %v", cam.Yaw-f.Camera.Yaw, 100*p.MouseSensitivity)
	}
	// Held keys move on both steps.
	wantZ := -2 * p.NormalSpeed * math.Cos(f.Camera.Yaw)
	if !near(f.Player.Position.Z(), wantZ) {
		t.Errorf("z = %v, want %v", f.Player.Position.Z(), wantZ)
	}

	if g := Advance(p, 0, in, player, cam); g.Player != player || g.Camera != cam || g.Jumped {
		t.Errorf("zero steps changed state: %+v", g)
	}
}

func TestApplyDragClampsPitch(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name      string
		dx, dy    float64
		wantPitch float64
		wantYaw   float64
	}{
		{"huge upward drag", 0, -1e12, p.MaxPitch, 0},
		{"huge downward drag", 0, 1e12, p.MinPitch, 0},
		{"small drag", 100, -100, p.MinPitch + 0.2, -0.2},
		{"nan drag", 0, math.NaN(), p.MinPitch, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := ApplyDrag(CameraState{Pitch: p.MinPitch}, tt.dx, tt.dy, p)
			if !near(cam.Pitch, tt.wantPitch) {
				t.Errorf("pitch = %v, want %v", cam.Pitch, tt.wantPitch)
			}
			if !near(cam.Yaw, tt.wantYaw) {
				t.Errorf("yaw = %v, want %v", cam.Yaw, tt.wantYaw)
			}
		})
	}
}

func TestStepCameraFollowsPlayer(t *testing.T) {
	p := DefaultParams()
	player := NewPlayerState(p)
	player.Position = mgl64.Vec3{2, 4, -3}
	player.Grounded = false
	cam := CameraState{Yaw: 0, Pitch: 0.5}

	pose := Pose(p, player.Position, cam)

	wantEye := mgl64.Vec3{
		2,
		4 + 5*math.Sin(0.5) + p.EyeLift,
		-3 + 5*math.Cos(0.5),
	}
	if !pose.Eye.ApproxEqualThreshold(wantEye, eps) {
		t.Errorf("eye = %v, want %v", pose.Eye, wantEye)
	}
	wantTarget := mgl64.Vec3{2, 4 + p.HeadHeight, -3}
	if !pose.Target.ApproxEqualThreshold(wantTarget, eps) {
		t.Errorf("target = %v, want %v", pose.Target, wantTarget)
	}

	// The orbit radius ignores the lift.
	offset := OrbitOffset(p.OrbitDistance, CameraState{Yaw: 1.3, Pitch: 0.9})
	if !near(offset.Len(), p.OrbitDistance) {
		t.Errorf("orbit radius = %v, want %v", offset.Len(), p.OrbitDistance)
	}
}

func TestForwardAndRightAreOrthonormal(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, math.Pi / 2, -2.5, 7} {
		f, r := Forward(yaw), Right(yaw)
		if !near(f.Len(), 1) || !near(r.Len(), 1) {
			t.Errorf("yaw %v: lengths %v, %v", yaw, f.Len(), r.Len())
		}
		if !near(f.Dot(r), 0) {
			t.Errorf("yaw %v: forward·right = %v", yaw, f.Dot(r))
		}
	}
}

package kinematics

// MaxStepsPerTick bounds catch-up after a stall. Time beyond it is dropped.
const MaxStepsPerTick = 8

// stepEpsilon absorbs rounding when fractional deltas sum to a whole step.
const stepEpsilon = 1e-9

// FixedStep turns elapsed time into whole reference-frame steps, so the
// trajectory is the same at every tick rate.
type FixedStep struct {
	Pending float64 // reference frames not yet simulated
}

// Ready adds elapsed reference frames and returns how many whole steps to run.
func (f *FixedStep) Ready(elapsed float64) int {
	f.Pending += elapsed
	n := 0
	for f.Pending >= 1-stepEpsilon && n < MaxStepsPerTick {
		f.Pending--
		n++
	}
	if n == MaxStepsPerTick && f.Pending >= 1 {
		f.Pending = 0
	}
	if f.Pending < 0 {
		f.Pending = 0
	}
	return n
}

// Advance runs n fixed steps of Step with dt = 1. Drag and the jump edge are
// consumed by the first step; held keys apply to every step. Jumped and
// Landed report whether any step jumped or landed. With n = 0 the state is
// returned unchanged.
func Advance(p Params, n int, in InputState, player PlayerState, cam CameraState) Frame {
	f := Frame{Player: player, Camera: cam, Pose: Pose(p, player.Position, cam)}
	for i := 0; i < n; i++ {
		s := Step(p, 1, in, f.Player, f.Camera)
		s.Jumped = s.Jumped || f.Jumped
		s.Landed = s.Landed || f.Landed
		f = s

		in.DragX, in.DragY = 0, 0
		in.JumpPressed = false
	}
	return f
}

// Package controls turns per-frame input into model orientation and viewer toggles.
// It has no windowing dependencies so the update rules can be tested headless.
package controls

import "github.com/go-gl/mathgl/mgl32"

// Action is a bit set of viewer commands.
type Action uint32

const (
	PitchUp Action = 1 << iota
	PitchDown
	YawLeft
	YawRight
	RollLeft
	RollRight
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	ToggleWireframe
	Screenshot
	Quit
)

// Has reports whether every bit of other is set in a.
func (a Action) Has(other Action) bool {
	return a&other == other
}

// Frame is the input gathered during one frame.
type Frame struct {
	DT      float32 // seconds since the previous frame
	Held    Action  // actions whose keys are currently down
	Pressed Action  // actions whose keys went down this frame
	MouseDX float32 // pixels, positive right
	MouseDY float32 // pixels, positive up
}

// Orientation is the model rotation in degrees around each axis.
type Orientation struct {
	Pitch float32 // X axis
	Yaw   float32 // Y axis
	Roll  float32 // Z axis
}

// Matrix returns the model matrix. X is applied first, then Y, then Z.
func (o Orientation) Matrix() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(o.Pitch))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(o.Yaw))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(o.Roll))
	return rz.Mul4(ry).Mul4(rx)
}

// State is the mutable viewer state driven by input.
type State struct {
	Orientation Orientation
	Wireframe   bool

	RotateSpeed float32 // degrees per second while a rotation key is held
	AutoRotate  float32 // degrees per second around Y, always applied
}

// Apply advances the state by one frame. It returns the actions that were
// pressed this frame and are not handled here, such as Screenshot and Quit.
func (s *State) Apply(f Frame) Action {
	step := s.RotateSpeed * f.DT

	s.Orientation.Pitch += axis(f.Held, PitchUp, PitchDown) * step
	s.Orientation.Yaw += axis(f.Held, YawLeft, YawRight) * step
	s.Orientation.Roll += axis(f.Held, RollLeft, RollRight) * step
	s.Orientation.Yaw += s.AutoRotate * f.DT

	s.Orientation.Pitch = wrapDegrees(s.Orientation.Pitch)
	s.Orientation.Yaw = wrapDegrees(s.Orientation.Yaw)
	s.Orientation.Roll = wrapDegrees(s.Orientation.Roll)

	if f.Pressed.Has(ToggleWireframe) {
		s.Wireframe = !s.Wireframe
	}

	return f.Pressed &^ ToggleWireframe
}

// Movement returns the camera movement intent as (forward, right), each in [-1, 1].
func (f Frame) Movement() (forward, right float32) {
	return axis(f.Held, MoveForward, MoveBack), axis(f.Held, MoveRight, MoveLeft)
}

// axis returns +1 if only pos is held, -1 if only neg is held, else 0.
func axis(held, pos, neg Action) float32 {
	var v float32
	if held.Has(pos) {
		v++
	}
	if held.Has(neg) {
		v--
	}
	return v
}

// wrapDegrees keeps an angle in (-360, 360) so long sessions do not lose precision.
func wrapDegrees(a float32) float32 {
	for a >= 360 {
		a -= 360
	}
	for a <= -360 {
		a += 360
	}
	return a
}

// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// FlyCamera is a free-fly camera steered by mouse look and WASD movement.
type FlyCamera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Orientation in degrees. Yaw -90 looks down -Z.
	Yaw   float32
	Pitch float32

	// Constraints
	MaxPitch float32

	// Sensitivity
	MoveSpeed   float32 // units per second
	Sensitivity float32 // degrees per pixel

	// Projection
	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	front mgl32.Vec3
}

// NewFlyCamera creates a camera at (0, 0, 5) looking toward the origin.
func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Position:    mgl32.Vec3{0, 0, 5},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90,
		Pitch:       0,
		MaxPitch:    89,
		MoveSpeed:   2.5,
		Sensitivity: 0.1,
		FOV:         45,
		Near:        0.1,
		Far:         100,
	}
	c.updateFront()
	return c
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() mgl32.Vec3 {
	return c.front
}

// Right returns the unit vector to the camera's right.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.front.Cross(c.WorldUp).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.WorldUp)
}

// ProjectionMatrix returns the perspective projection for the given viewport.
func (c *FlyCamera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// HandleLook updates yaw and pitch from a mouse delta in pixels.
// Positive dy looks up.
func (c *FlyCamera) HandleLook(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	// Clamp pitch so the view never flips over the pole
	c.Pitch = mgl32.Clamp(c.Pitch, -c.MaxPitch, c.MaxPitch)

	c.updateFront()
}

// HandleMovement moves the camera along its front and right vectors.
// forward and right are intents in [-1, 1]; dt is in seconds.
func (c *FlyCamera) HandleMovement(forward, right, dt float32) {
	step := c.MoveSpeed * dt
	if forward != 0 {
		c.Position = c.Position.Add(c.front.Mul(forward * step))
	}
	if right != 0 {
		c.Position = c.Position.Add(c.Right().Mul(right * step))
	}
}

// LookAt points the camera at target without moving it.
func (c *FlyCamera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	c.Pitch = mgl32.RadToDeg(float32(gomath.Asin(float64(dir.Y()))))
	c.Pitch = mgl32.Clamp(c.Pitch, -c.MaxPitch, c.MaxPitch)
	c.Yaw = mgl32.RadToDeg(float32(gomath.Atan2(float64(dir.Z()), float64(dir.X()))))
	c.updateFront()
}

// SyncOrientation recomputes the view direction after Yaw or Pitch were set directly.
func (c *FlyCamera) SyncOrientation() {
	c.Pitch = mgl32.Clamp(c.Pitch, -c.MaxPitch, c.MaxPitch)
	c.updateFront()
}

func (c *FlyCamera) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

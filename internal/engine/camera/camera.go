// Package camera provides the orbit camera that feeds view matrices and
// billboard basis vectors to the scene.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit orbits around a target point using spherical coordinates.
type Orbit struct {
	// Target point to orbit around
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32 // Distance from target
	Yaw      float32 // Horizontal angle, radians
	Pitch    float32 // Vertical angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32
}

// NewOrbit creates an orbit camera with defaults sized for the desert scene.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:    30,
		Yaw:         0,
		Pitch:       0.4,
		MinDistance: 2,
		MaxDistance: 500,
		MinPitch:    -1.4,
		MaxPitch:    1.4,
		RotateSpeed: 0.005,
		ZoomSpeed:   0.1,
		PanSpeed:    1,
	}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() mgl32.Vec3 {
	offset := mgl32.Vec3{
		c.Distance * math32.Cos(c.Pitch) * math32.Cos(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		c.Distance * math32.Cos(c.Pitch) * math32.Sin(c.Yaw),
	}
	return c.Target.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Basis returns the camera right and up unit vectors that billboard quads
// are aligned with. They are the first two rows of the view rotation.
func (c *Orbit) Basis() (right, up mgl32.Vec3) {
	view := c.ViewMatrix()
	right = mgl32.Vec3{view.At(0, 0), view.At(0, 1), view.At(0, 2)}
	up = mgl32.Vec3{view.At(1, 0), view.At(1, 1), view.At(1, 2)}
	return right, up
}

// Rotate adjusts yaw and pitch from a drag delta, clamping pitch so the
// camera never flips over the poles.
func (c *Orbit) Rotate(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.RotateSpeed
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.RotateSpeed, c.MinPitch, c.MaxPitch)
}

// Zoom adjusts distance from a scroll delta, scaled so zooming feels
// consistent at any range.
func (c *Orbit) Zoom(delta float32) {
	c.Distance = mgl32.Clamp(c.Distance-delta*c.Distance*c.ZoomSpeed, c.MinDistance, c.MaxDistance)
}

// PanHorizontal slides the target along the camera right direction.
func (c *Orbit) PanHorizontal(amount float32) {
	right, _ := c.Basis()
	c.Target = c.Target.Add(right.Mul(amount * c.PanSpeed))
}

// PanForward slides the target along the view direction projected onto the
// ground plane, so panning never gains altitude.
func (c *Orbit) PanForward(amount float32) {
	forward := c.Target.Sub(c.Position())
	horizontal := mgl32.Vec3{forward.X(), 0, forward.Z()}
	if horizontal.Len() < 1e-5 {
		return
	}
	c.Target = c.Target.Add(horizontal.Normalize().Mul(amount * c.PanSpeed))
}

// PanVertical slides the target straight up or down.
func (c *Orbit) PanVertical(amount float32) {
	c.Target = c.Target.Add(mgl32.Vec3{0, amount * c.PanSpeed, 0})
}

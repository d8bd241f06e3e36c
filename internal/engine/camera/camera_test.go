package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBasisOrthonormal(t *testing.T) {
	c := NewOrbit()
	c.Rotate(300, -150)

	right, up := c.Basis()

	if !mgl32.FloatEqualThreshold(right.Len(), 1, 1e-5) {
		t.Errorf("right length = %v, want 1", right.Len())
	}
	if !mgl32.FloatEqualThreshold(up.Len(), 1, 1e-5) {
		t.Errorf("up length = %v, want 1", up.Len())
	}
	if dot := right.Dot(up); dot < -1e-5 || dot > 1e-5 {
		t.Errorf("right . up = %v, want 0", dot)
	}
}

func TestPositionDistance(t *testing.T) {
	c := NewOrbit()
	c.Target = mgl32.Vec3{5, 2, -3}
	c.Distance = 42

	got := c.Position().Sub(c.Target).Len()
	if !mgl32.FloatEqualThreshold(got, 42, 1e-3) {
		t.Errorf("distance to target = %v, want 42", got)
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewOrbit()

	c.Rotate(0, 1e6)
	if c.Pitch > c.MaxPitch {
		t.Errorf("pitch %v exceeds max %v", c.Pitch, c.MaxPitch)
	}

	c.Rotate(0, -1e6)
	if c.Pitch < c.MinPitch {
		t.Errorf("pitch %v below min %v", c.Pitch, c.MinPitch)
	}
}

func TestZoomClamp(t *testing.T) {
	c := NewOrbit()

	c.Zoom(1e6)
	if c.Distance < c.MinDistance {
		t.Errorf("distance %v below min %v", c.Distance, c.MinDistance)
	}

	c.Zoom(-1e6)
	if c.Distance > c.MaxDistance {
		t.Errorf("distance %v exceeds max %v", c.Distance, c.MaxDistance)
	}
}

func TestPanForwardStaysLevel(t *testing.T) {
	c := NewOrbit()
	startY := c.Target.Y()

	c.PanForward(10)
	if c.Target.Y() != startY {
		t.Errorf("target y changed from %v to %v during forward pan", startY, c.Target.Y())
	}
}

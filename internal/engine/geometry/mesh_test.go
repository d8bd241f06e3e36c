package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func triangleMesh() *Mesh {
	return NewMesh([]Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
	}, []uint32{0, 1, 2})
}

func TestNewMeshBounds(t *testing.T) {
	m := NewMesh([]Vertex{
		{Position: mgl32.Vec3{-1, 2, 3}},
		{Position: mgl32.Vec3{4, -5, 6}},
		{Position: mgl32.Vec3{0, 0, -7}},
	}, nil)

	if m.MinBounds() != (mgl32.Vec3{-1, -5, -7}) {
		t.Errorf("min bounds = %v, want (-1,-5,-7)", m.MinBounds())
	}
	if m.MaxBounds() != (mgl32.Vec3{4, 2, 6}) {
		t.Errorf("max bounds = %v, want (4,2,6)", m.MaxBounds())
	}
	if m.Center() != (mgl32.Vec3{1.5, -1.5, -0.5}) {
		t.Errorf("center = %v, want (1.5,-1.5,-0.5)", m.Center())
	}
}

func TestEmptyMesh(t *testing.T) {
	m := NewMesh(nil, nil)

	if !m.IsEmpty() {
		t.Error("expected empty mesh")
	}
	if m.MinBounds() != (mgl32.Vec3{}) || m.MaxBounds() != (mgl32.Vec3{}) {
		t.Errorf("empty mesh bounds = %v..%v, want zero", m.MinBounds(), m.MaxBounds())
	}
}

func TestSetVerticesRecomputesBounds(t *testing.T) {
	m := triangleMesh()

	m.SetVertices([]Vertex{
		{Position: mgl32.Vec3{10, 10, 10}},
		{Position: mgl32.Vec3{20, 20, 20}},
	})

	if m.MinBounds() != (mgl32.Vec3{10, 10, 10}) {
		t.Errorf("min bounds = %v, want (10,10,10)", m.MinBounds())
	}
	if m.MaxBounds() != (mgl32.Vec3{20, 20, 20}) {
		t.Errorf("max bounds = %v, want (20,20,20)", m.MaxBounds())
	}
}

func TestRecalculateNormals(t *testing.T) {
	m := triangleMesh()
	m.RecalculateNormals()

	want := mgl32.Vec3{0, 0, 1}
	for i, v := range m.Vertices() {
		if v.Normal.Sub(want).Len() > 1e-6 {
			t.Errorf("vertex %d: normal = %v, want %v", i, v.Normal, want)
		}
	}
}

func TestRecalculateNormalsDegenerate(t *testing.T) {
	// All three corners coincide; the face normal is zero and must not be
	// normalized into NaN.
	m := NewMesh([]Vertex{
		{Position: mgl32.Vec3{1, 1, 1}},
		{Position: mgl32.Vec3{1, 1, 1}},
		{Position: mgl32.Vec3{1, 1, 1}},
	}, []uint32{0, 1, 2})
	m.RecalculateNormals()

	for i, v := range m.Vertices() {
		if v.Normal != (mgl32.Vec3{}) {
			t.Errorf("vertex %d: normal = %v, want zero", i, v.Normal)
		}
	}
}

package geometry

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a vertex array plus a triangle index array with a derived
// axis-aligned bounding box. Index count is always a multiple of 3 and
// every index refers to a valid vertex.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
	min      mgl32.Vec3
	max      mgl32.Vec3
}

// NewMesh creates a mesh from vertex and index data. The mesh takes
// ownership of both slices.
func NewMesh(vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{vertices: vertices, indices: indices}
	m.RecalculateBounds()
	return m
}

// Vertices returns the vertex array. Callers must not append to it.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// Indices returns the triangle index array.
func (m *Mesh) Indices() []uint32 { return m.indices }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int { return len(m.indices) }

// IsEmpty reports whether the mesh has no vertices.
func (m *Mesh) IsEmpty() bool { return len(m.vertices) == 0 }

// MinBounds returns the minimum corner of the bounding box.
func (m *Mesh) MinBounds() mgl32.Vec3 { return m.min }

// MaxBounds returns the maximum corner of the bounding box.
func (m *Mesh) MaxBounds() mgl32.Vec3 { return m.max }

// Center returns the center of the bounding box.
func (m *Mesh) Center() mgl32.Vec3 { return m.min.Add(m.max).Mul(0.5) }

// SetVertices replaces the vertex array and recomputes the bounding box.
func (m *Mesh) SetVertices(vertices []Vertex) {
	m.vertices = vertices
	m.RecalculateBounds()
}

// SetIndices replaces the triangle index array.
func (m *Mesh) SetIndices(indices []uint32) {
	m.indices = indices
}

// RecalculateBounds recomputes the bounding box from the vertex positions.
func (m *Mesh) RecalculateBounds() {
	if len(m.vertices) == 0 {
		m.min = mgl32.Vec3{}
		m.max = mgl32.Vec3{}
		return
	}

	m.min = m.vertices[0].Position
	m.max = m.vertices[0].Position
	for i := 1; i < len(m.vertices); i++ {
		p := m.vertices[i].Position
		for axis := 0; axis < 3; axis++ {
			if p[axis] < m.min[axis] {
				m.min[axis] = p[axis]
			}
			if p[axis] > m.max[axis] {
				m.max[axis] = p[axis]
			}
		}
	}
}

// RecalculateNormals rebuilds vertex normals by accumulating area-weighted
// face normals. Degenerate faces contribute nothing.
func (m *Mesh) RecalculateNormals() {
	for i := range m.vertices {
		m.vertices[i].Normal = mgl32.Vec3{}
	}

	for i := 0; i+2 < len(m.indices); i += 3 {
		i0, i1, i2 := m.indices[i], m.indices[i+1], m.indices[i+2]

		v0 := m.vertices[i0].Position
		v1 := m.vertices[i1].Position
		v2 := m.vertices[i2].Position

		faceNormal := v1.Sub(v0).Cross(v2.Sub(v0))

		m.vertices[i0].Normal = m.vertices[i0].Normal.Add(faceNormal)
		m.vertices[i1].Normal = m.vertices[i1].Normal.Add(faceNormal)
		m.vertices[i2].Normal = m.vertices[i2].Normal.Add(faceNormal)
	}

	for i := range m.vertices {
		if m.vertices[i].Normal.Len() > 1e-4 {
			m.vertices[i].Normal = m.vertices[i].Normal.Normalize()
		}
	}
}

// Package geometry provides mesh data structures and procedural primitive
// generation for the desert scene.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// Vertex holds the per-vertex attributes shared by every mesh in the scene.
// It is a plain value type: two vertices are equal only when every field
// matches exactly, which is what mesh merging relies on.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
	Color    mgl32.Vec3
}

// Package particle implements a pooled particle simulation with
// camera-facing billboard geometry output.
package particle

import "github.com/go-gl/mathgl/mgl32"

// Particle is one slot in a system's pool. A slot with Life <= 0 is dead
// and available for recycling.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Color    mgl32.Vec4 // RGBA, alpha drives fade-out
	Life     float32    // Remaining life in seconds
	MaxLife  float32    // Initial life, kept for age interpolation
	Size     float32    // Billboard half-extent scale
}

// Alive reports whether the particle still simulates.
func (p *Particle) Alive() bool { return p.Life > 0 }

// Age returns normalized lifetime progress: 0 just born, 1 about to die.
// A particle with zero MaxLife counts as fully aged.
func (p *Particle) Age() float32 {
	if p.MaxLife > 0 {
		return 1 - p.Life/p.MaxLife
	}
	return 1
}

// Vertex is one corner of a billboard quad, laid out for a dynamic vertex
// buffer that is re-uploaded every frame.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	UV       mgl32.Vec2
	Size     float32
}

package particle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// EmitterConfig describes one emission profile. It is copied into the
// system at construction; later edits to the caller's copy have no effect.
type EmitterConfig struct {
	Position         mgl32.Vec3
	PositionVariance mgl32.Vec3 // Uniform random offset range per axis

	Velocity         mgl32.Vec3
	VelocityVariance mgl32.Vec3

	StartColor mgl32.Vec4
	EndColor   mgl32.Vec4

	StartSize float32
	EndSize   float32

	MinLife float32
	MaxLife float32

	EmissionRate float32 // Particles per second
	MaxParticles int     // Pool capacity

	Gravity mgl32.Vec3
	Drag    float32 // Linear per-frame dampening; keep Drag*dt < 1

	Looping  bool
	Duration float32 // Seconds before auto-deactivation; 0 = infinite
}

// DefaultEmitterConfig returns a generic upward-fading white emitter.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		PositionVariance: mgl32.Vec3{1, 1, 1},
		Velocity:         mgl32.Vec3{0, 5, 0},
		VelocityVariance: mgl32.Vec3{1, 1, 1},
		StartColor:       mgl32.Vec4{1, 1, 1, 1},
		EndColor:         mgl32.Vec4{1, 1, 1, 0},
		StartSize:        1,
		EndSize:          0.1,
		MinLife:          1,
		MaxLife:          3,
		EmissionRate:     50,
		MaxParticles:     1000,
		Gravity:          mgl32.Vec3{0, -9.81, 0},
		Drag:             0.1,
		Looping:          true,
	}
}

// System owns a fixed pool of particles, integrates their physics each
// frame, and builds a transient billboard vertex/index buffer on demand.
// It is single-threaded: Update and GenerateVertices are driven strictly
// sequentially by the host frame loop.
type System struct {
	config    EmitterConfig
	particles []Particle

	// Scratch output, reused across frames to avoid reallocation. Callers
	// must copy if they retain it past the next GenerateVertices call.
	vertices []Vertex
	indices  []uint32

	active              bool
	emissionAccumulator float32
	systemTime          float32
	dropped             uint64

	rng *rand.Rand
}

// NewSystem creates an active system with all pool slots dead. The
// configuration is validated up front so the per-frame methods never fail.
func NewSystem(config EmitterConfig) (*System, error) {
	if config.MaxParticles < 1 {
		return nil, fmt.Errorf("particle: max particles must be at least 1, got %d", config.MaxParticles)
	}
	if config.MinLife > config.MaxLife {
		return nil, fmt.Errorf("particle: min life %.3f exceeds max life %.3f", config.MinLife, config.MaxLife)
	}
	if config.EmissionRate < 0 {
		return nil, fmt.Errorf("particle: emission rate must not be negative, got %.3f", config.EmissionRate)
	}

	return &System{
		config:    config,
		particles: make([]Particle, config.MaxParticles),
		vertices:  make([]Vertex, 0, config.MaxParticles*4),
		indices:   make([]uint32, 0, config.MaxParticles*6),
		active:    true,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// NewEffect creates a system from a built-in preset at the given position.
// Preset tables are valid by construction, so no error is possible.
func NewEffect(effect Effect, position mgl32.Vec3) *System {
	cfg := Preset(effect)
	cfg.Position = position
	s, _ := NewSystem(cfg)
	return s
}

// Config returns a copy of the emitter configuration.
func (s *System) Config() EmitterConfig { return s.config }

// SetPosition moves the emitter. Alive particles are unaffected.
func (s *System) SetPosition(position mgl32.Vec3) { s.config.Position = position }

// Start resumes emission.
func (s *System) Start() { s.active = true }

// Stop halts emission. Alive particles keep simulating until dead.
func (s *System) Stop() { s.active = false }

// Active reports whether the system is emitting.
func (s *System) Active() bool { return s.active }

// AliveCount returns the number of live particles in the pool.
func (s *System) AliveCount() int {
	count := 0
	for i := range s.particles {
		if s.particles[i].Alive() {
			count++
		}
	}
	return count
}

// DroppedEmissions returns how many emissions were discarded because the
// pool was exhausted. Diagnostic only; the hot path never reports them.
func (s *System) DroppedEmissions() uint64 { return s.dropped }

// Update advances the simulation by dt seconds: emit, integrate, age.
// A particle whose life crosses zero this frame is skipped starting next
// frame; it is not removed mid-iteration.
func (s *System) Update(dt float32) {
	if !s.active && s.AliveCount() == 0 {
		return
	}

	s.systemTime += dt

	if !s.config.Looping && s.config.Duration > 0 && s.systemTime > s.config.Duration {
		s.active = false
	}

	if s.active {
		// Fractional-rate emission with deterministic integer timing.
		s.emissionAccumulator += s.config.EmissionRate * dt
		for s.emissionAccumulator >= 1 {
			s.emitParticle()
			s.emissionAccumulator--
		}
	}

	for i := range s.particles {
		p := &s.particles[i]
		if !p.Alive() {
			continue
		}

		p.Velocity = p.Velocity.Add(s.config.Gravity.Mul(dt))
		p.Velocity = p.Velocity.Mul(1 - s.config.Drag*dt)
		p.Position = p.Position.Add(p.Velocity.Mul(dt))

		p.Life -= dt

		age := p.Age()
		p.Color = lerpVec4(s.config.StartColor, s.config.EndColor, age)
		p.Size = lerp(s.config.StartSize, s.config.EndSize, age)
	}
}

// emitParticle recycles the first dead pool slot. When the pool is
// exhausted the emission is dropped silently.
func (s *System) emitParticle() {
	for i := range s.particles {
		p := &s.particles[i]
		if p.Alive() {
			continue
		}

		p.Position = s.config.Position.Add(mgl32.Vec3{
			s.randomRange(-s.config.PositionVariance.X(), s.config.PositionVariance.X()),
			s.randomRange(-s.config.PositionVariance.Y(), s.config.PositionVariance.Y()),
			s.randomRange(-s.config.PositionVariance.Z(), s.config.PositionVariance.Z()),
		})
		p.Velocity = s.config.Velocity.Add(mgl32.Vec3{
			s.randomRange(-s.config.VelocityVariance.X(), s.config.VelocityVariance.X()),
			s.randomRange(-s.config.VelocityVariance.Y(), s.config.VelocityVariance.Y()),
			s.randomRange(-s.config.VelocityVariance.Z(), s.config.VelocityVariance.Z()),
		})

		p.Life = s.randomRange(s.config.MinLife, s.config.MaxLife)
		p.MaxLife = p.Life
		p.Color = s.config.StartColor
		p.Size = s.config.StartSize

		return
	}

	s.dropped++
}

// GenerateVertices rebuilds the billboard buffers for every alive particle
// in pool order. The supplied camera basis vectors orient the quads; each
// quad is square in camera space with half-extent equal to particle size.
func (s *System) GenerateVertices(cameraRight, cameraUp mgl32.Vec3) {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	var base uint32
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Alive() {
			continue
		}

		right := cameraRight.Mul(p.Size)
		up := cameraUp.Mul(p.Size)

		s.vertices = append(s.vertices,
			Vertex{Position: p.Position.Sub(right).Sub(up), Color: p.Color, UV: mgl32.Vec2{0, 0}, Size: p.Size},
			Vertex{Position: p.Position.Add(right).Sub(up), Color: p.Color, UV: mgl32.Vec2{1, 0}, Size: p.Size},
			Vertex{Position: p.Position.Add(right).Add(up), Color: p.Color, UV: mgl32.Vec2{1, 1}, Size: p.Size},
			Vertex{Position: p.Position.Sub(right).Add(up), Color: p.Color, UV: mgl32.Vec2{0, 1}, Size: p.Size},
		)

		s.indices = append(s.indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
		base += 4
	}
}

// Vertices returns the billboard vertex buffer built by the last
// GenerateVertices call. Transient; valid until the next call.
func (s *System) Vertices() []Vertex { return s.vertices }

// Indices returns the billboard index buffer built by the last
// GenerateVertices call. Transient; valid until the next call.
func (s *System) Indices() []uint32 { return s.indices }

// VertexCount returns the size of the current billboard vertex buffer.
func (s *System) VertexCount() int { return len(s.vertices) }

// IndexCount returns the size of the current billboard index buffer.
func (s *System) IndexCount() int { return len(s.indices) }

func (s *System) randomRange(min, max float32) float32 {
	return min + s.rng.Float32()*(max-min)
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func lerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

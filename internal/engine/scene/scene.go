// Package scene assembles the desert demo: a globe, a ground plane,
// procedural cacti, and particle effects, stepped once per frame.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sandglobe/internal/config"
	"github.com/Faultbox/sandglobe/internal/engine/flora"
	"github.com/Faultbox/sandglobe/internal/engine/geometry"
	"github.com/Faultbox/sandglobe/internal/engine/particle"
	"github.com/Faultbox/sandglobe/internal/logger"
)

// Scene colors.
var (
	globeColor  = mgl32.Vec3{0.85, 0.75, 0.55}
	groundColor = mgl32.Vec3{0.76, 0.70, 0.50}
	cactusColor = mgl32.Vec3{0.2, 0.6, 0.2}
)

// Scene owns the static meshes, the cacti, and every live particle system.
// All mutation happens inside Update and the explicit state modifiers; the
// scene is single-threaded by contract.
type Scene struct {
	globe  *geometry.Mesh
	ground *geometry.Mesh

	cacti        []*flora.Cactus
	cactusMeshes []*geometry.Mesh

	// Ambient effects from config plus transient fire systems keyed by
	// the burning cactus index.
	effects []*particle.System
	fires   map[int]*particle.System

	elapsed float32
}

// New builds the scene described by the configuration.
func New(cfg config.SceneConfig) (*Scene, error) {
	s := &Scene{
		globe:  geometry.Sphere(cfg.GlobeRadius, cfg.GlobeSegments, cfg.GlobeRings, globeColor),
		ground: geometry.Plane(cfg.GroundSize, cfg.GroundSize, cfg.GroundSubdivisions, cfg.GroundSubdivisions, groundColor),
		fires:  make(map[int]*particle.System),
	}

	for _, cc := range cfg.Cacti {
		cactus := flora.New(flora.Config{
			Position:    mgl32.Vec3{cc.Position[0], cc.Position[1], cc.Position[2]},
			Height:      cc.Height,
			TrunkRadius: cc.TrunkRadius,
			NumArms:     cc.Arms,
			ArmHeight:   cc.ArmHeight,
			Color:       cactusColor,
			Segments:    cc.Segments,
		})
		s.cacti = append(s.cacti, cactus)
		s.cactusMeshes = append(s.cactusMeshes, cactus.GenerateMesh())
	}

	for i, ec := range cfg.Effects {
		effect, err := particle.ParseEffect(ec.Type)
		if err != nil {
			return nil, fmt.Errorf("scene: effect %d: %w", i, err)
		}
		pos := mgl32.Vec3{ec.Position[0], ec.Position[1], ec.Position[2]}
		s.effects = append(s.effects, particle.NewEffect(effect, pos))
	}

	logger.Info("scene assembled",
		zap.Int("cacti", len(s.cacti)),
		zap.Int("effects", len(s.effects)),
		zap.Int("static_vertices", s.globe.VertexCount()+s.ground.VertexCount()),
	)

	return s, nil
}

// Update advances every particle system by dt seconds.
func (s *Scene) Update(dt float32) {
	s.elapsed += dt

	for _, sys := range s.effects {
		sys.Update(dt)
	}
	for _, sys := range s.fires {
		sys.Update(dt)
	}
}

// GenerateBillboards rebuilds the billboard buffers of every system for the
// given camera basis. Call once per frame after Update.
func (s *Scene) GenerateBillboards(cameraRight, cameraUp mgl32.Vec3) {
	for _, sys := range s.effects {
		sys.GenerateVertices(cameraRight, cameraUp)
	}
	for _, sys := range s.fires {
		sys.GenerateVertices(cameraRight, cameraUp)
	}
}

// Ignite marks a cactus as burning and attaches a fire effect at its trunk.
// Igniting an already burning cactus is a no-op.
func (s *Scene) Ignite(i int) error {
	if i < 0 || i >= len(s.cacti) {
		return fmt.Errorf("scene: no cactus %d", i)
	}

	cactus := s.cacti[i]
	if cactus.IsBurning() {
		return nil
	}
	cactus.SetBurning(true)

	// Seat the flames partway up the trunk.
	pos := cactus.Position().Add(mgl32.Vec3{0, cactus.Height() * cactus.GrowthFactor() * 0.5, 0})
	s.fires[i] = particle.NewEffect(particle.Fire, pos)

	logger.Info("cactus ignited", zap.Int("cactus", i))
	return nil
}

// Extinguish stops the fire effect on a cactus. Leftover flames burn out on
// their own over the following frames.
func (s *Scene) Extinguish(i int) {
	if i < 0 || i >= len(s.cacti) {
		return
	}
	s.cacti[i].SetBurning(false)
	if fire, ok := s.fires[i]; ok {
		fire.Stop()
	}
}

// GrowCactus adjusts a cactus growth factor and regenerates its mesh.
func (s *Scene) GrowCactus(i int, amount float32) {
	if i < 0 || i >= len(s.cacti) {
		return
	}
	s.cacti[i].Grow(amount)
	s.cactusMeshes[i] = s.cacti[i].GenerateMesh()
}

// Meshes returns the static meshes plus the current cactus meshes, in draw
// order: globe, ground, cacti.
func (s *Scene) Meshes() []*geometry.Mesh {
	meshes := make([]*geometry.Mesh, 0, 2+len(s.cactusMeshes))
	meshes = append(meshes, s.globe, s.ground)
	meshes = append(meshes, s.cactusMeshes...)
	return meshes
}

// Cactus returns the i-th cactus, or nil when out of range.
func (s *Scene) Cactus(i int) *flora.Cactus {
	if i < 0 || i >= len(s.cacti) {
		return nil
	}
	return s.cacti[i]
}

// CactusCount returns the number of cacti in the scene.
func (s *Scene) CactusCount() int { return len(s.cacti) }

// Systems returns every live particle system: config effects first, then
// fire systems.
func (s *Scene) Systems() []*particle.System {
	systems := make([]*particle.System, 0, len(s.effects)+len(s.fires))
	systems = append(systems, s.effects...)
	for _, sys := range s.fires {
		systems = append(systems, sys)
	}
	return systems
}

// AliveParticles returns the total live particle count across all systems.
func (s *Scene) AliveParticles() int {
	total := 0
	for _, sys := range s.Systems() {
		total += sys.AliveCount()
	}
	return total
}

// Elapsed returns the total simulated time in seconds.
func (s *Scene) Elapsed() float32 { return s.elapsed }

package particle

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Effect names a built-in emitter preset.
type Effect int

// Built-in effect presets.
const (
	Fire Effect = iota
	Smoke
	Sand
	Snow
	Sparks
)

// String returns the lowercase effect name.
func (e Effect) String() string {
	switch e {
	case Fire:
		return "fire"
	case Smoke:
		return "smoke"
	case Sand:
		return "sand"
	case Snow:
		return "snow"
	case Sparks:
		return "sparks"
	default:
		return fmt.Sprintf("effect(%d)", int(e))
	}
}

// ParseEffect resolves a lowercase effect name as used in config files.
func ParseEffect(name string) (Effect, error) {
	switch name {
	case "fire":
		return Fire, nil
	case "smoke":
		return Smoke, nil
	case "sand":
		return Sand, nil
	case "snow":
		return Snow, nil
	case "sparks":
		return Sparks, nil
	default:
		return 0, fmt.Errorf("unknown particle effect %q", name)
	}
}

// Preset returns the emitter configuration for a built-in effect. Unknown
// values fall back to the default configuration.
func Preset(effect Effect) EmitterConfig {
	cfg := DefaultEmitterConfig()

	switch effect {
	case Fire:
		cfg.Velocity = mgl32.Vec3{0, 8, 0}
		cfg.VelocityVariance = mgl32.Vec3{2, 3, 2}
		cfg.PositionVariance = mgl32.Vec3{0.5, 0.1, 0.5}
		cfg.StartColor = mgl32.Vec4{1, 0.6, 0.1, 1}
		cfg.EndColor = mgl32.Vec4{1, 0, 0, 0}
		cfg.StartSize = 1.5
		cfg.EndSize = 0.2
		cfg.MinLife = 0.5
		cfg.MaxLife = 1.5
		cfg.Gravity = mgl32.Vec3{0, 2, 0} // hot air rises
		cfg.Drag = 0.5
		cfg.EmissionRate = 80
		cfg.MaxParticles = 500

	case Smoke:
		cfg.Velocity = mgl32.Vec3{0, 3, 0}
		cfg.VelocityVariance = mgl32.Vec3{1, 1, 1}
		cfg.PositionVariance = mgl32.Vec3{0.3, 0, 0.3}
		cfg.StartColor = mgl32.Vec4{0.3, 0.3, 0.3, 0.8}
		cfg.EndColor = mgl32.Vec4{0.1, 0.1, 0.1, 0}
		cfg.StartSize = 0.5
		cfg.EndSize = 3
		cfg.MinLife = 2
		cfg.MaxLife = 4
		cfg.Gravity = mgl32.Vec3{0, 0.5, 0}
		cfg.Drag = 0.2
		cfg.EmissionRate = 20
		cfg.MaxParticles = 200

	case Sand:
		cfg.Velocity = mgl32.Vec3{15, 2, 0} // prevailing wind
		cfg.VelocityVariance = mgl32.Vec3{5, 2, 3}
		cfg.PositionVariance = mgl32.Vec3{50, 0.5, 50}
		cfg.StartColor = mgl32.Vec4{0.76, 0.70, 0.50, 0.6}
		cfg.EndColor = mgl32.Vec4{0.76, 0.70, 0.50, 0}
		cfg.StartSize = 0.3
		cfg.EndSize = 0.1
		cfg.MinLife = 2
		cfg.MaxLife = 5
		cfg.Gravity = mgl32.Vec3{0, -2, 0}
		cfg.Drag = 0.1
		cfg.EmissionRate = 100
		cfg.MaxParticles = 1000

	case Snow:
		cfg.Velocity = mgl32.Vec3{0, -3, 0}
		cfg.VelocityVariance = mgl32.Vec3{2, 1, 2}
		cfg.PositionVariance = mgl32.Vec3{80, 50, 80}
		cfg.StartColor = mgl32.Vec4{1, 1, 1, 0.9}
		cfg.EndColor = mgl32.Vec4{1, 1, 1, 0}
		cfg.StartSize = 0.3
		cfg.EndSize = 0.2
		cfg.MinLife = 5
		cfg.MaxLife = 10
		cfg.Gravity = mgl32.Vec3{0, -1, 0}
		cfg.Drag = 0.3
		cfg.EmissionRate = 50
		cfg.MaxParticles = 800

	case Sparks:
		cfg.Velocity = mgl32.Vec3{0, 15, 0}
		cfg.VelocityVariance = mgl32.Vec3{8, 5, 8}
		cfg.PositionVariance = mgl32.Vec3{0.2, 0, 0.2}
		cfg.StartColor = mgl32.Vec4{1, 0.9, 0.3, 1}
		cfg.EndColor = mgl32.Vec4{1, 0.3, 0, 0}
		cfg.StartSize = 0.2
		cfg.EndSize = 0.05
		cfg.MinLife = 0.3
		cfg.MaxLife = 1
		cfg.Gravity = mgl32.Vec3{0, -15, 0}
		cfg.Drag = 0.05
		cfg.EmissionRate = 150
		cfg.MaxParticles = 300
	}

	return cfg
}

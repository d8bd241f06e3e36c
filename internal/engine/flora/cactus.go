// Package flora builds composite desert vegetation meshes from geometry
// primitives.
package flora

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sandglobe/internal/engine/geometry"
)

// Growth factor bounds. Saguaro-style cacti scale between a tenth of and
// four times their configured size.
const (
	minGrowthFactor = 0.1
	maxGrowthFactor = 4.0
)

// Config holds the shape parameters of a single cactus.
type Config struct {
	Position    mgl32.Vec3 // World position of the trunk base
	Height      float32    // Trunk height
	TrunkRadius float32    // Trunk radius
	NumArms     int        // Number of side arms (0-4)
	ArmHeight   float32    // Arm attach height as fraction of trunk height
	Color       mgl32.Vec3
	Segments    int // Cylinder segments (LOD)
}

// DefaultConfig returns the shape of a typical two-armed saguaro.
func DefaultConfig() Config {
	return Config{
		Height:      5.0,
		TrunkRadius: 0.5,
		NumArms:     2,
		ArmHeight:   0.6,
		Color:       mgl32.Vec3{0.2, 0.6, 0.2},
		Segments:    12,
	}
}

// Cactus generates saguaro-style cactus meshes and tracks growth and
// burning state. Geometry is regenerated on demand; state changes alone
// never touch vertex data.
type Cactus struct {
	config       Config
	growthFactor float32
	burning      bool
}

// New creates a cactus with the given configuration at full growth.
func New(config Config) *Cactus {
	return &Cactus{config: config, growthFactor: 1}
}

// Config returns the cactus configuration.
func (c *Cactus) Config() Config { return c.config }

// SetConfig replaces the cactus configuration.
func (c *Cactus) SetConfig(config Config) { c.config = config }

// Position returns the world position of the trunk base.
func (c *Cactus) Position() mgl32.Vec3 { return c.config.Position }

// Height returns the configured trunk height before growth scaling.
func (c *Cactus) Height() float32 { return c.config.Height }

// GrowthFactor returns the current growth multiplier.
func (c *Cactus) GrowthFactor() float32 { return c.growthFactor }

// SetGrowthFactor sets the growth multiplier, clamped to the valid range.
func (c *Cactus) SetGrowthFactor(factor float32) {
	c.growthFactor = mgl32.Clamp(factor, minGrowthFactor, maxGrowthFactor)
}

// Grow adjusts the growth multiplier by amount, clamped to the valid range.
// The mesh is unchanged until GenerateMesh is called again.
func (c *Cactus) Grow(amount float32) {
	c.SetGrowthFactor(c.growthFactor + amount)
}

// IsBurning reports whether an external fire effect should be attached.
func (c *Cactus) IsBurning() bool { return c.burning }

// SetBurning flags the cactus for an external fire effect. No internal
// behavior changes.
func (c *Cactus) SetBurning(burning bool) { c.burning = burning }

// GenerateMesh builds the cactus as one merged mesh: a capped trunk
// cylinder plus up to four two-segment bent arms. Arm indices are rebased
// onto the combined vertex array; seam vertices between parts stay
// duplicated on purpose.
func (c *Cactus) GenerateMesh() *geometry.Mesh {
	var allVertices []geometry.Vertex
	var allIndices []uint32

	actualHeight := c.config.Height * c.growthFactor
	actualRadius := c.config.TrunkRadius * c.growthFactor

	trunk := geometry.Cylinder(actualRadius, actualHeight, c.config.Segments, c.config.Color)

	// The cylinder is centered at the origin; lift it so the base sits at
	// the configured world position.
	for _, v := range trunk.Vertices() {
		v.Position[1] += actualHeight * 0.5
		v.Position = v.Position.Add(c.config.Position)
		allVertices = append(allVertices, v)
	}
	allIndices = append(allIndices, trunk.Indices()...)

	for i := 0; i < c.config.NumArms; i++ {
		// Fixed 45 degree offset so arms never align with the +X axis.
		angle := float32(i)/float32(c.config.NumArms)*2*math32.Pi + math32.Pi*0.25

		attachHeight := actualHeight * c.config.ArmHeight
		armLength := actualHeight * 0.4

		arm := c.generateArm(attachHeight, angle, armLength)

		indexOffset := uint32(len(allVertices))
		allVertices = append(allVertices, arm.Vertices()...)
		for _, idx := range arm.Indices() {
			allIndices = append(allIndices, idx+indexOffset)
		}
	}

	return geometry.NewMesh(allVertices, allIndices)
}

// generateArm builds one arm: a horizontal elbow cylinder rotated out of
// the trunk and a vertical upper section sitting at its end. Both parts are
// placed with explicit affine transforms composed right to left.
func (c *Cactus) generateArm(attachHeight, angle, armLength float32) *geometry.Mesh {
	var armVertices []geometry.Vertex
	var armIndices []uint32

	armRadius := c.config.TrunkRadius * 0.6 * c.growthFactor
	elbowLength := armLength * 0.5

	horizontal := geometry.Cylinder(armRadius, elbowLength, c.config.Segments, c.config.Color)
	vertical := geometry.Cylinder(armRadius, armLength*0.6, c.config.Segments, c.config.Color)

	pos := c.config.Position
	horizTransform := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Translate3D(0, attachHeight, 0)).
		Mul4(mgl32.HomogRotate3DY(angle)).
		Mul4(mgl32.HomogRotate3DZ(math32.Pi / 2)).
		Mul4(mgl32.Translate3D(0, elbowLength*0.5+c.config.TrunkRadius, 0))

	armVertices = appendTransformed(armVertices, horizontal.Vertices(), horizTransform)
	armIndices = append(armIndices, horizontal.Indices()...)

	vertTransform := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Translate3D(0, attachHeight, 0)).
		Mul4(mgl32.HomogRotate3DY(angle)).
		Mul4(mgl32.Translate3D(elbowLength+c.config.TrunkRadius, armLength*0.3, 0))

	indexOffset := uint32(len(armVertices))
	armVertices = appendTransformed(armVertices, vertical.Vertices(), vertTransform)
	for _, idx := range vertical.Indices() {
		armIndices = append(armIndices, idx+indexOffset)
	}

	return geometry.NewMesh(armVertices, armIndices)
}

// appendTransformed appends vertices transformed by the given affine matrix.
// Normals go through the inverse-transpose of the linear part and are
// re-normalized.
func appendTransformed(dst []geometry.Vertex, src []geometry.Vertex, transform mgl32.Mat4) []geometry.Vertex {
	normalMatrix := transform.Mat3().Inv().Transpose()

	for _, v := range src {
		v.Position = mgl32.TransformCoordinate(v.Position, transform)
		v.Normal = normalMatrix.Mul3x1(v.Normal).Normalize()
		dst = append(dst, v)
	}
	return dst
}

package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Index winding in the generators below is fixed; downstream back-face
// culling depends on it. Degenerate resolution parameters are clamped to
// their minimum rather than rejected, so every call yields a valid mesh.

// Sphere generates a UV sphere centered at the origin. Rings sweep the polar
// angle from north to south pole, segments sweep the azimuth.
func Sphere(radius float32, segments, rings int, color mgl32.Vec3) *Mesh {
	if segments < 1 {
		segments = 1
	}
	if rings < 1 {
		rings = 1
	}

	vertices := make([]Vertex, 0, (rings+1)*(segments+1))
	indices := make([]uint32, 0, 6*segments*rings)

	for ring := 0; ring <= rings; ring++ {
		phi := math32.Pi * float32(ring) / float32(rings)
		sinPhi := math32.Sin(phi)
		cosPhi := math32.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)

			// On a unit sphere the normal is the position direction.
			normal := mgl32.Vec3{sinPhi * math32.Cos(theta), cosPhi, sinPhi * math32.Sin(theta)}

			vertices = append(vertices, Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV: mgl32.Vec2{
					float32(seg) / float32(segments),
					float32(ring) / float32(rings),
				},
				Color: color,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			indices = append(indices,
				current, next, current+1,
				current+1, next, next+1,
			)
		}
	}

	return NewMesh(vertices, indices)
}

// Plane generates a subdivided grid centered at the origin in the XZ plane,
// facing up.
func Plane(width, depth float32, subdivisionsX, subdivisionsZ int, color mgl32.Vec3) *Mesh {
	if subdivisionsX < 1 {
		subdivisionsX = 1
	}
	if subdivisionsZ < 1 {
		subdivisionsZ = 1
	}

	vertices := make([]Vertex, 0, (subdivisionsX+1)*(subdivisionsZ+1))
	indices := make([]uint32, 0, 6*subdivisionsX*subdivisionsZ)

	halfWidth := width * 0.5
	halfDepth := depth * 0.5

	for z := 0; z <= subdivisionsZ; z++ {
		for x := 0; x <= subdivisionsX; x++ {
			u := float32(x) / float32(subdivisionsX)
			v := float32(z) / float32(subdivisionsZ)

			vertices = append(vertices, Vertex{
				Position: mgl32.Vec3{-halfWidth + width*u, 0, -halfDepth + depth*v},
				Normal:   mgl32.Vec3{0, 1, 0},
				UV:       mgl32.Vec2{u, v},
				Color:    color,
			})
		}
	}

	for z := 0; z < subdivisionsZ; z++ {
		for x := 0; x < subdivisionsX; x++ {
			topLeft := uint32(z*(subdivisionsX+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisionsX) + 1
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return NewMesh(vertices, indices)
}

// Cylinder generates a capped cylinder centered at the origin. Cap vertices
// are not shared with the side rings: the side uses an unwrapped strip UV
// while the caps use polar UVs, and the normals differ.
func Cylinder(radius, height float32, segments int, color mgl32.Vec3) *Mesh {
	if segments < 3 {
		segments = 3
	}

	vertices := make([]Vertex, 0, 2*(segments+1)+2*(segments+2))
	indices := make([]uint32, 0, 6*segments+6*segments)

	halfHeight := height * 0.5

	// Side rings, bottom then top.
	for i := 0; i <= 1; i++ {
		y := -halfHeight
		if i == 1 {
			y = halfHeight
		}

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			cosTheta := math32.Cos(theta)
			sinTheta := math32.Sin(theta)

			vertices = append(vertices, Vertex{
				Position: mgl32.Vec3{radius * cosTheta, y, radius * sinTheta},
				Normal:   mgl32.Vec3{cosTheta, 0, sinTheta},
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(i)},
				Color:    color,
			})
		}
	}

	for seg := 0; seg < segments; seg++ {
		bottom := uint32(seg)
		top := bottom + uint32(segments) + 1

		indices = append(indices,
			bottom, bottom+1, top,
			top, bottom+1, top+1,
		)
	}

	appendCap(&vertices, &indices, radius, halfHeight, 1, segments, color)
	appendCap(&vertices, &indices, radius, -halfHeight, -1, segments, color)

	return NewMesh(vertices, indices)
}

// appendCap adds a disc at the given height with a dedicated center vertex.
// normalY selects the facing direction and the cap winding.
func appendCap(vertices *[]Vertex, indices *[]uint32, radius, y, normalY float32, segments int, color mgl32.Vec3) {
	center := uint32(len(*vertices))
	normal := mgl32.Vec3{0, normalY, 0}

	*vertices = append(*vertices, Vertex{
		Position: mgl32.Vec3{0, y, 0},
		Normal:   normal,
		UV:       mgl32.Vec2{0.5, 0.5},
		Color:    color,
	})

	for seg := 0; seg <= segments; seg++ {
		theta := 2 * math32.Pi * float32(seg) / float32(segments)
		cosTheta := math32.Cos(theta)
		sinTheta := math32.Sin(theta)

		*vertices = append(*vertices, Vertex{
			Position: mgl32.Vec3{radius * cosTheta, y, radius * sinTheta},
			Normal:   normal,
			UV:       mgl32.Vec2{0.5 + 0.5*cosTheta, 0.5 + 0.5*sinTheta},
			Color:    color,
		})
	}

	for seg := 0; seg < segments; seg++ {
		if normalY > 0 {
			*indices = append(*indices, center, center+2+uint32(seg), center+1+uint32(seg))
		} else {
			*indices = append(*indices, center, center+1+uint32(seg), center+2+uint32(seg))
		}
	}
}

// Cone generates a truncated cone (frustum) centered at the origin. Side
// normals come from the slope of the profile, so they stay meaningful even
// when the top ring collapses to an apex. A bottom cap is added only when
// the base radius is non-degenerate; no top cap is ever generated.
func Cone(baseRadius, topRadius, height float32, segments int, color mgl32.Vec3) *Mesh {
	if segments < 3 {
		segments = 3
	}

	vertices := make([]Vertex, 0, 2*(segments+1)+segments+2)
	var indices []uint32

	halfHeight := height * 0.5

	slope := (baseRadius - topRadius) / height
	invLen := 1 / math32.Sqrt(1+slope*slope)
	normalY := slope * invLen
	normalXZ := invLen

	for i := 0; i <= 1; i++ {
		y := -halfHeight
		radius := baseRadius
		if i == 1 {
			y = halfHeight
			radius = topRadius
		}

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			cosTheta := math32.Cos(theta)
			sinTheta := math32.Sin(theta)

			normal := mgl32.Vec3{normalXZ * cosTheta, normalY, normalXZ * sinTheta}.Normalize()

			vertices = append(vertices, Vertex{
				Position: mgl32.Vec3{radius * cosTheta, y, radius * sinTheta},
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(i)},
				Color:    color,
			})
		}
	}

	for seg := 0; seg < segments; seg++ {
		bottom := uint32(seg)
		top := bottom + uint32(segments) + 1

		indices = append(indices,
			bottom, bottom+1, top,
			top, bottom+1, top+1,
		)
	}

	if baseRadius > 0.001 {
		appendCap(&vertices, &indices, baseRadius, -halfHeight, -1, segments, color)
	}

	return NewMesh(vertices, indices)
}

package scene

import (
	"github.com/chewxy/math32"

	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
)

// CreateCube generates an axis-aligned cube mesh
func CreateCube(size float32) *Mesh {
	s := size / 2

	vertices := []core.Vertex{
		// Front face
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
		// Back face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
		// Top face
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
		// Bottom face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		// Right face
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
		// Left face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return CreateMeshFromData("Cube", vertices, indices)
}

// CreateSphere generates a UV-sphere mesh
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2.0 * math32.Pi / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			position := normal.Mul(radius)
			uv := math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)}

			vertices = append(vertices, core.Vertex{
				Position: position,
				Normal:   normal,
				UV:       uv,
				Color:    core.ColorWhite,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateTorus generates a torus mesh
func CreateTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= majorSegments; i++ {
		theta := float32(i) * 2.0 * math32.Pi / float32(majorSegments)
		sinTheta, cosTheta := math32.Sincos(theta)

		for j := 0; j <= minorSegments; j++ {
			phi := float32(j) * 2.0 * math32.Pi / float32(minorSegments)
			sinPhi, cosPhi := math32.Sincos(phi)

			x := (majorRadius + minorRadius*cosPhi) * cosTheta
			y := minorRadius * sinPhi
			z := (majorRadius + minorRadius*cosPhi) * sinTheta

			nx := cosPhi * cosTheta
			ny := sinPhi
			nz := cosPhi * sinTheta

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: x, Y: y, Z: z},
				Normal:   math.Vec3{X: nx, Y: ny, Z: nz}.Normalize(),
				UV:       math.Vec2{X: float32(i) / float32(majorSegments), Y: float32(j) / float32(minorSegments)},
				Color:    core.ColorWhite,
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			current := uint32(i*(minorSegments+1) + j)
			next := uint32((i+1)*(minorSegments+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Torus", vertices, indices)
}

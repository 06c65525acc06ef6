package scene

import (
	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
)

// WireframeFromMesh converts a triangle mesh into a line mesh made of its
// unique edges, tinted with the given color and rendered unlit.
func WireframeFromMesh(src *Mesh, color core.Color) *Mesh {
	type edge struct{ a, b uint32 }
	seen := map[edge]bool{}

	var indices []uint32
	addEdge := func(a, b uint32) {
		if a > b {
			a, b = b, a
		}
		e := edge{a, b}
		if seen[e] {
			return
		}
		seen[e] = true
		indices = append(indices, a, b)
	}

	for i := 0; i+2 < len(src.Indices); i += 3 {
		i0, i1, i2 := src.Indices[i], src.Indices[i+1], src.Indices[i+2]
		addEdge(i0, i1)
		addEdge(i1, i2)
		addEdge(i2, i0)
	}

	vertices := make([]core.Vertex, len(src.Vertices))
	for i, v := range src.Vertices {
		vertices[i] = core.Vertex{
			Position: v.Position,
			Normal:   math.Vec3Up,
			Color:    color,
		}
	}

	m := CreateMeshFromData(src.Name+"Wire", vertices, indices)
	m.DrawMode = DrawLines

	mat := DefaultMaterial()
	mat.Name = src.Name + "WireMaterial"
	mat.Albedo = color
	mat.Unlit = true
	m.Material = mat

	return m
}

// CreateErrorIndicator builds the translucent red wireframe box shown in
// place of a model whose asset failed to load.
func CreateErrorIndicator() *Mesh {
	red := core.Color{R: 1, G: 0.2, B: 0.2, A: 0.5}
	normal := math.Vec3Up

	var vertices []core.Vertex
	var indices []uint32

	addLine := func(a, b math.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: normal, Color: red},
			core.Vertex{Position: b, Normal: normal, Color: red},
		)
		indices = append(indices, base, base+1)
	}

	// Bottom face (y = -1)
	addLine(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: -1, Z: -1})
	addLine(math.Vec3{X: 1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: -1, Z: 1})
	addLine(math.Vec3{X: 1, Y: -1, Z: 1}, math.Vec3{X: -1, Y: -1, Z: 1})
	addLine(math.Vec3{X: -1, Y: -1, Z: 1}, math.Vec3{X: -1, Y: -1, Z: -1})
	// Top face (y = +1)
	addLine(math.Vec3{X: -1, Y: 1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: -1})
	addLine(math.Vec3{X: 1, Y: 1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	addLine(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: -1, Y: 1, Z: 1})
	addLine(math.Vec3{X: -1, Y: 1, Z: 1}, math.Vec3{X: -1, Y: 1, Z: -1})
	// Vertical edges
	addLine(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: -1, Y: 1, Z: -1})
	addLine(math.Vec3{X: 1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: -1})
	addLine(math.Vec3{X: 1, Y: -1, Z: 1}, math.Vec3{X: 1, Y: 1, Z: 1})
	addLine(math.Vec3{X: -1, Y: -1, Z: 1}, math.Vec3{X: -1, Y: 1, Z: 1})

	m := CreateMeshFromData("LoadError", vertices, indices)
	m.DrawMode = DrawLines

	mat := DefaultMaterial()
	mat.Name = "LoadErrorMaterial"
	mat.Albedo = red
	mat.Unlit = true
	m.Material = mat

	return m
}

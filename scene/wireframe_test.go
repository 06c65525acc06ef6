package scene

import (
	"testing"

	"github.com/sean-bowman/portfolio/core"
)

func TestWireframeFromCube(t *testing.T) {
	wire := WireframeFromMesh(CreateCube(1), core.ColorGreen)

	if wire.DrawMode != DrawLines {
		t.Fatalf("DrawMode = %v, want DrawLines", wire.DrawMode)
	}
	// 6 faces, each two triangles sharing a diagonal: 5 unique edges per
	// face, 30 total, two indices each.
	if len(wire.Indices) != 60 {
		t.Errorf("index count = %d, want 60", len(wire.Indices))
	}
	if !wire.Material.Unlit {
		t.Error("wireframe material should be unlit")
	}
	if wire.Material.Albedo != core.ColorGreen {
		t.Errorf("albedo = %v, want green", wire.Material.Albedo)
	}
}

func TestWireframeDeduplicatesEdges(t *testing.T) {
	// Two triangles sharing an edge: 5 unique edges.
	src := CreateMeshFromData("Quad", make([]core.Vertex, 4), []uint32{0, 1, 2, 0, 2, 3})
	wire := WireframeFromMesh(src, core.ColorWhite)
	if len(wire.Indices) != 10 {
		t.Errorf("index count = %d, want 10", len(wire.Indices))
	}
}

func TestCreateErrorIndicator(t *testing.T) {
	m := CreateErrorIndicator()
	if m.Name != "LoadError" {
		t.Errorf("name = %q, want LoadError", m.Name)
	}
	if m.DrawMode != DrawLines {
		t.Error("error indicator should draw lines")
	}
	if len(m.Indices) != 24 {
		t.Errorf("index count = %d, want 24 (12 box edges)", len(m.Indices))
	}
	if m.Material.Albedo.A != 0.5 {
		t.Errorf("alpha = %f, want 0.5", m.Material.Albedo.A)
	}
	if m.Material.Albedo.R != 1 {
		t.Errorf("red = %f, want 1", m.Material.Albedo.R)
	}
}

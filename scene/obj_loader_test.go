package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOBJTriangle(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) != 3 {
		t.Errorf("vertex count = %d, want 3", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 3 {
		t.Errorf("index count = %d, want 3", len(mesh.Indices))
	}
	// Flat normal of a CCW triangle in the XY plane points along +Z.
	n := mesh.Vertices[0].Normal
	if n.Z < 0.99 {
		t.Errorf("normal = %v, want +Z", n)
	}
}

func TestLoadOBJQuadTriangulation(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Indices) != 6 {
		t.Errorf("index count = %d, want 6 (two triangles)", len(mesh.Indices))
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("vertex count = %d, want 4 (shared corners deduplicated)", len(mesh.Vertices))
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Indices) != 3 {
		t.Errorf("index count = %d, want 3", len(mesh.Indices))
	}
}

func TestLoadOBJBounds(t *testing.T) {
	path := writeOBJ(t, `
v -2 -1 -0.5
v 2 0 0
v 0 1 0.5
f 1 2 3
`)
	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	if !mesh.HasLocalAABB {
		t.Fatal("mesh should carry bounds")
	}
	if !almostEqual(mesh.LocalAABB.Min.X, -2) || !almostEqual(mesh.LocalAABB.Max.X, 2) {
		t.Errorf("bounds X = [%f, %f], want [-2, 2]", mesh.LocalAABB.Min.X, mesh.LocalAABB.Max.X)
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ("does-not-exist.obj"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAssetUnknownExtension(t *testing.T) {
	if _, err := LoadAsset("model.fbx"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadAsset loads a geometry file by extension: .glb/.gltf or .obj.
func LoadAsset(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return LoadGLTF(path)
	case ".obj":
		return LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported asset format %q", path)
	}
}

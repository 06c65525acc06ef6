package scene

import "github.com/sean-bowman/portfolio/core"

// Material describes surface appearance properties for a mesh.
type Material struct {
	Name      string
	Albedo    core.Color // base diffuse color
	Specular  core.Color // Phong specular highlight color
	Shininess float32    // Phong shininess exponent (1–256+)
	Unlit     bool       // skip lighting calculation — output raw albedo color
}

// DefaultMaterial returns a plain white matte Phong material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		Albedo:    core.ColorWhite,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 32,
	}
}

// NewMaterial creates a Phong material with the given albedo color.
func NewMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:      name,
		Albedo:    albedo,
		Specular:  core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		Shininess: 32,
	}
}

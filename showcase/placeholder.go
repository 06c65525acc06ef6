package showcase

import (
	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/scene"
)

// PlaceholderMesh builds the stand-in wireframe for a card without an
// asset. The shape cycles with the card index so adjacent cards differ:
// cube, sphere, torus, then around again.
func PlaceholderMesh(index int, accent core.Color) *scene.Mesh {
	var solid *scene.Mesh
	switch index % 3 {
	case 0:
		solid = scene.CreateCube(1.5)
	case 1:
		solid = scene.CreateSphere(0.9, 24, 16)
	default:
		solid = scene.CreateTorus(0.8, 0.3, 32, 16)
	}
	return scene.WireframeFromMesh(solid, accent)
}

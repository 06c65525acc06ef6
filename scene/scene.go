package scene

import (
	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
)

// Scene manages a collection of nodes, the lights, and the active camera
type Scene struct {
	Root     *Node
	Camera   *Camera
	Lights   []*Light
	Ambient  core.Color
	SkyColor core.Color
}

// Light types
const (
	LightTypeDirectional = iota
	LightTypePoint
)

// Light represents a light source
type Light struct {
	Type      int
	Position  math.Vec3
	Direction math.Vec3
	Color     core.Color
	Intensity float32
}

func NewScene() *Scene {
	return &Scene{
		Root:     NewNode("Root"),
		Lights:   make([]*Light, 0),
		Ambient:  core.Color{R: 0.35, G: 0.35, B: 0.35, A: 1.0},
		SkyColor: core.Color{R: 0.09, G: 0.09, B: 0.12, A: 1.0},
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// AddDefaultLights installs the fixed showcase rig: one key directional
// light, one cooler fill from the opposite side.
func (s *Scene) AddDefaultLights() {
	s.AddLight(&Light{
		Type:      LightTypeDirectional,
		Direction: math.Vec3{X: 0.5, Y: -1, Z: -0.5}.Normalize(),
		Color:     core.ColorWhite,
		Intensity: 0.8,
	})
	s.AddLight(&Light{
		Type:      LightTypeDirectional,
		Direction: math.Vec3{X: -0.5, Y: -0.3, Z: 0.5}.Normalize(),
		Color:     core.Color{R: 0.6, G: 0.7, B: 1.0, A: 1.0},
		Intensity: 0.4,
	})
}

// GetVisibleNodes returns all nodes with meshes that are visible
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node

	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			visible = append(visible, node)
		}
	})

	return visible
}

// MeshCount returns the number of nodes carrying a mesh, visible or not.
func (s *Scene) MeshCount() int {
	count := 0
	s.Root.Traverse(func(node *Node) {
		if node.Mesh != nil {
			count++
		}
	})
	return count
}

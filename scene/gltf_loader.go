package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
)

// LoadGLTF opens a .glb or .gltf file and returns its geometry merged into a
// single mesh, with every node's transform baked into the vertex positions.
// Materials and textures are ignored; the showcase applies its own accent
// material after fitting.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var vertices []core.Vertex
	var indices []uint32

	var walk func(idx int, parent math.Mat4)
	walk = func(idx int, parent math.Mat4) {
		if idx < 0 || idx >= len(doc.Nodes) {
			return
		}
		gn := doc.Nodes[idx]

		t := gn.TranslationOrDefault()
		sc := gn.ScaleOrDefault()
		r := gn.RotationOrDefault() // [x, y, z, w]

		// Row-vector matrices compose left to right, so scale/rotation/
		// translation chain in application order and the parent comes last.
		local := math.Mat4Scale(math.Vec3{X: float32(sc[0]), Y: float32(sc[1]), Z: float32(sc[2])}).
			Mul(math.Quaternion{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])}.ToMat4()).
			Mul(math.Mat4Translation(math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])}))
		world := local.Mul(parent)

		if gn.Mesh != nil && int(*gn.Mesh) < len(doc.Meshes) {
			for pi, prim := range doc.Meshes[*gn.Mesh].Primitives {
				if err := appendGLTFPrimitive(doc, *prim, world, &vertices, &indices); err != nil {
					fmt.Printf("gltf: node %d prim %d: %v\n", idx, pi, err)
				}
			}
		}

		for _, child := range gn.Children {
			walk(child, world)
		}
	}

	for _, idx := range gltfRootNodes(doc) {
		walk(idx, math.Mat4Identity())
	}

	if len(vertices) == 0 {
		return nil, fmt.Errorf("no geometry found in %q", path)
	}

	return CreateMeshFromData(path, vertices, indices), nil
}

// gltfRootNodes returns the default scene's roots, or every parentless node
// when the file declares no default scene.
func gltfRootNodes(doc *gltf.Document) []int {
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}

	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// appendGLTFPrimitive reads one glTF mesh primitive, transforms it by world,
// and appends it to the merged vertex/index slices.
func appendGLTFPrimitive(doc *gltf.Document, prim gltf.Primitive, world math.Mat4, vertices *[]core.Vertex, indices *[]uint32) error {
	// Positions are required
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}

	base := uint32(len(*vertices))
	for i, p := range positions {
		v := core.Vertex{
			Position: world.MulVec3(math.Vec3{X: p[0], Y: p[1], Z: p[2]}),
			Normal:   math.Vec3Up,
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = world.MulDir(math.Vec3{X: n[0], Y: n[1], Z: n[2]}).Normalize()
		}
		*vertices = append(*vertices, v)
	}

	if prim.Indices != nil {
		primIndices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		for _, idx := range primIndices {
			*indices = append(*indices, base+idx)
		}
	} else {
		for i := range positions {
			*indices = append(*indices, base+uint32(i))
		}
	}

	return nil
}

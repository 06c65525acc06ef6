package scene

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
)

// objFace is an already-triangulated face (three vertex references).
// Indices are raw OBJ values: 1-based, negative = relative to the end of
// the pool, 0 = absent.
type objFace struct {
	vIdx, vtIdx, vnIdx [3]int
}

// LoadOBJ parses a Wavefront .obj file into a single merged Mesh. Material
// directives are ignored; the showcase applies its own accent material.
// The returned mesh is CPU-side only; upload GPU resources via the renderer.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	// Indexed OBJ data pools
	var positions []math.Vec3
	var normals []math.Vec3
	var uvs []math.Vec2
	var faces []objFace

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 32)
			y, _ := strconv.ParseFloat(fields[2], 32)
			z, _ := strconv.ParseFloat(fields[3], 32)
			positions = append(positions, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})

		case "vn":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 32)
			y, _ := strconv.ParseFloat(fields[2], 32)
			z, _ := strconv.ParseFloat(fields[3], 32)
			normals = append(normals, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})

		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(fields[1], 32)
			v, _ := strconv.ParseFloat(fields[2], 32)
			uvs = append(uvs, math.Vec2{X: float32(u), Y: float32(v)})

		case "f":
			// Fan-triangulate polygon (handles 3+ vertices)
			if len(fields) < 4 {
				continue
			}
			type fv struct{ v, vt, vn int }
			var fverts []fv
			for _, tok := range fields[1:] {
				fverts = append(fverts, parseFaceVertex(tok))
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(fverts); i++ {
				f0, f1, f2 := fverts[0], fverts[i], fverts[i+1]
				faces = append(faces, objFace{
					vIdx:  [3]int{f0.v, f1.v, f2.v},
					vtIdx: [3]int{f0.vt, f1.vt, f2.vt},
					vnIdx: [3]int{f0.vn, f1.vn, f2.vn},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}

	if len(faces) == 0 {
		return nil, fmt.Errorf("no geometry found in %q", path)
	}

	return buildMeshFromOBJ(path, faces, positions, normals, uvs), nil
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
// Returns raw OBJ indices (0 if absent).
func parseFaceVertex(tok string) struct{ v, vt, vn int } {
	parseIdx := func(s string) int {
		if s == "" {
			return 0
		}
		n, _ := strconv.Atoi(s)
		return n
	}
	parts := strings.Split(tok, "/")
	var res struct{ v, vt, vn int }
	if len(parts) > 0 {
		res.v = parseIdx(parts[0])
	}
	if len(parts) > 1 {
		res.vt = parseIdx(parts[1])
	}
	if len(parts) > 2 {
		res.vn = parseIdx(parts[2])
	}
	return res
}

// buildMeshFromOBJ converts parsed face data into a deduplicated Mesh.
func buildMeshFromOBJ(
	name string,
	faces []objFace,
	positions []math.Vec3,
	normals []math.Vec3,
	uvs []math.Vec2,
) *Mesh {
	type key struct{ v, vt, vn int }
	vertMap := map[key]uint32{}
	var vertices []core.Vertex
	var indices []uint32

	// Raw OBJ index → 0-based pool index. Positive is 1-based, negative
	// counts back from the end, 0 means absent.
	resolve := func(raw, poolLen int) int {
		switch {
		case raw > 0:
			return raw - 1
		case raw < 0:
			return poolLen + raw
		default:
			return -1
		}
	}
	safePos := func(raw int) math.Vec3 {
		if i := resolve(raw, len(positions)); i >= 0 && i < len(positions) {
			return positions[i]
		}
		return math.Vec3Zero
	}
	safeNorm := func(raw int) math.Vec3 {
		if i := resolve(raw, len(normals)); i >= 0 && i < len(normals) {
			return normals[i]
		}
		return math.Vec3Up
	}
	safeUV := func(raw int) math.Vec2 {
		if i := resolve(raw, len(uvs)); i >= 0 && i < len(uvs) {
			return uvs[i]
		}
		return math.Vec2{}
	}

	hasNormals := len(normals) > 0

	for _, face := range faces {
		for c := 0; c < 3; c++ {
			k := key{face.vIdx[c], face.vtIdx[c], face.vnIdx[c]}
			if idx, ok := vertMap[k]; ok {
				indices = append(indices, idx)
			} else {
				v := core.Vertex{
					Position: safePos(k.v),
					Normal:   safeNorm(k.vn),
					UV:       safeUV(k.vt),
					Color:    core.ColorWhite,
				}
				idx = uint32(len(vertices))
				vertices = append(vertices, v)
				vertMap[k] = idx
				indices = append(indices, idx)
			}
		}
	}

	// Derive normals when the OBJ carried none
	if !hasNormals {
		generateNormals(vertices, indices)
	}

	return CreateMeshFromData(name, vertices, indices)
}

// generateNormals computes area-weighted vertex normals in place.
func generateNormals(vertices []core.Vertex, indices []uint32) {
	accum := make([]math.Vec3, len(vertices))
	counts := make([]int, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Position
		v1 := vertices[i1].Position
		v2 := vertices[i2].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0)) // area-weighted normal
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
		counts[i0]++
		counts[i1]++
		counts[i2]++
	}
	for i := range vertices {
		if counts[i] > 0 {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}

package core

import (
	"fmt"
	"strconv"

	"github.com/sean-bowman/portfolio/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

// ParseHexColor parses "#rrggbb" or "#rgb" into a Color with alpha 1.
func ParseHexColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("color %q: missing '#' prefix", s)
	}
	hex := s[1:]

	var r, g, b uint64
	var err error
	switch len(hex) {
	case 6:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}
	case 3:
		r, err = strconv.ParseUint(hex[0:1], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[1:2], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[2:3], 16, 8)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return Color{}, fmt.Errorf("color %q: want #rgb or #rrggbb", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}

	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1,
	}, nil
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}

type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

func (t Transform) GetMatrix() math.Mat4 {
	translation := math.Mat4Translation(t.Position)
	rotation := t.Rotation.ToMat4()
	scale := math.Mat4Scale(t.Scale)
	return translation.Mul(rotation).Mul(scale)
}

// Rect is an axis-aligned screen-space rectangle in pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Expand grows the rectangle by margin pixels on every side.
func (r Rect) Expand(margin int) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}

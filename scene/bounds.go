package scene

import (
	"github.com/sean-bowman/portfolio/math"
)

// AABB is an axis-aligned bounding box in local space.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxExtent returns the largest dimension of the box.
func (b AABB) MaxExtent() float32 {
	s := b.Size()
	ext := s.X
	if s.Y > ext {
		ext = s.Y
	}
	if s.Z > ext {
		ext = s.Z
	}
	return ext
}

// FitScale returns the uniform scale factor that maps the box's largest
// dimension to targetSize. Degenerate boxes map to 1.
func FitScale(b AABB, targetSize float32) float32 {
	ext := b.MaxExtent()
	if ext <= 0 {
		return 1
	}
	return targetSize / ext
}

// FitTransform returns the translation offset and uniform scale that center
// the box on its centroid and map its largest dimension to targetSize.
// Node transforms translate before scaling, so the offset is the plain
// negated centroid.
func FitTransform(b AABB, targetSize float32) (offset math.Vec3, scale float32) {
	scale = FitScale(b, targetSize)
	offset = b.Center().Negate()
	return offset, scale
}

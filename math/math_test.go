package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	// Zero vector stays put
	if Vec3Zero.Normalize() != Vec3Zero {
		t.Error("Normalize: expected zero vector to remain zero")
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	point := NewVec4(0, 0, 0, 1)
	result := point.MulMat(m)

	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4Scale(t *testing.T) {
	m := Mat4Scale(NewVec3(2, 3, 4))
	result := m.MulVec3(NewVec3(1, 1, 1))
	expected := NewVec3(2, 3, 4)
	if result != expected {
		t.Errorf("Scale: expected %v, got %v", expected, result)
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degree rotation around Y axis
	q := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2))

	// Rotating the X unit vector 90 degrees around Y gives -Z
	result := q.RotateVector(Vec3Right)

	tolerance := float32(0.001)
	if math.Abs(float64(result.X-0)) > float64(tolerance) ||
		math.Abs(float64(result.Y-0)) > float64(tolerance) ||
		math.Abs(float64(result.Z+1)) > float64(tolerance) {
		t.Errorf("Quaternion rotation: expected approximately (0,0,-1), got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(16.0 / 9.0)

	m := Mat4Perspective(fov, aspect, 0.1, 100.0)

	if m[0][0] == 0 {
		t.Error("Perspective: expected non-zero X scale")
	}
	if m[1][1] == 0 {
		t.Error("Perspective: expected non-zero Y scale")
	}

	// Doubling the aspect ratio halves the X scale exactly
	wide := Mat4Perspective(fov, aspect*2, 0.1, 100.0)
	if math.Abs(float64(wide[0][0]-m[0][0]/2)) > 0.0001 {
		t.Errorf("Perspective: expected X scale %v, got %v", m[0][0]/2, wide[0][0])
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)

	m := Mat4LookAt(eye, target, Vec3Up)

	// The view matrix transforms the eye position to the origin
	result := m.MulVec(eye.ToVec4(1))

	tolerance := float32(0.001)
	if math.Abs(float64(result.X)) > float64(tolerance) ||
		math.Abs(float64(result.Y)) > float64(tolerance) ||
		math.Abs(float64(result.Z)) > float64(tolerance) {
		t.Errorf("LookAt: expected eye to transform to origin, got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(Radians(90))
	result := m.TransformPoint([3]float32{0, 1, 0})

	// +Y turns toward +Z
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]-1) > 0.001 {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", result)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 1.0, 0.01, 5000)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// The eye lands on the view-space origin
	p := m.TransformVec3(eye)
	if abs(p.X) > 1e-5 || abs(p.Y) > 1e-5 || abs(p.Z) > 1e-5 {
		t.Errorf("eye in view space: got %v, want origin", p)
	}
}

func TestDecomposeRecompose(t *testing.T) {
	cases := map[string]Mat4{
		"boat": Scale(0.001, 0.001, 0.001).
			Mul(RotateX(Radians(270))).
			Mul(RotateY(Radians(90))).
			Mul(Translate(0.8, 0, 1.4)),
		"hammerhead": Scale(0.003, 0.003, 0.003).
			Mul(Translate(0.1, 0.1, -1.2)).
			Mul(RotateY(Radians(270))),
		"translated": Translate(-3.25, 7.5, 120),
		"identity":   Identity(),
	}

	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			pos, local := Decompose(m)
			if local[12] != 0 || local[13] != 0 || local[14] != 0 {
				t.Errorf("local translation not cleared: %v", local)
			}
			got := Recompose(pos.X, pos.Y, pos.Z, local)
			for i := 0; i < 16; i++ {
				if got[i] != m[i] {
					t.Errorf("element %d: got %v, want %v", i, got[i], m[i])
				}
			}
		})
	}
}

func TestReflectY(t *testing.T) {
	r := ReflectY()
	p := r.TransformPoint([3]float32{1, 2, 3})
	if p != [3]float32{1, -2, 3} {
		t.Errorf("ReflectY: got %v, want (1, -2, 3)", p)
	}
}

func TestWithoutTranslation(t *testing.T) {
	m := RotateY(Radians(30)).Mul(Translate(4, 5, 6))
	m = Translate(1, 2, 3).Mul(m)
	nt := m.WithoutTranslation()

	if nt[12] != 0 || nt[13] != 0 || nt[14] != 0 {
		t.Errorf("translation not cleared: %v", nt)
	}
	for _, i := range []int{0, 1, 2, 4, 5, 6, 8, 9, 10, 15} {
		if nt[i] != m[i] {
			t.Errorf("element %d changed: got %v, want %v", i, nt[i], m[i])
		}
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateZ(Radians(40)))
	p := m.Mul(m.Inverse())
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(p[i]-id[i]) > 1e-5 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, p[i], id[i])
		}
	}

	var singular Mat4
	if singular.Inverse() != Identity() {
		t.Error("inverse of a singular matrix should fall back to identity")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

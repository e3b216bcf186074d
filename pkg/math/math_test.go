package math

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec3_Operations(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %+v", sum)
	}

	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %+v", diff)
	}

	if dot := a.Dot(b); dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	cross := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if cross != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: got %+v", cross)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if !approxEqual(v.Length(), 1) {
		t.Errorf("expected unit length, got %v", v.Length())
	}

	// Zero vector stays zero
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalize: got %+v", z)
	}
}

func TestQuatFromRPY_Zero(t *testing.T) {
	q := QuatFromRPY(0, 0, 0)
	id := QuatIdentity()
	if !approxEqual(q.X, id.X) || !approxEqual(q.Y, id.Y) ||
		!approxEqual(q.Z, id.Z) || !approxEqual(q.W, id.W) {
		t.Errorf("expected identity, got %+v", q)
	}
}

func TestQuatFromRPY_SingleAxis(t *testing.T) {
	// Pure roll of pi/2 should equal an axis-angle rotation around X
	q := QuatFromRPY(math.Pi/2, 0, 0)
	want := QuatFromAxisAngle(Vec3{1, 0, 0}, math.Pi/2)

	if !approxEqual(q.X, want.X) || !approxEqual(q.W, want.W) {
		t.Errorf("roll pi/2: got %+v, want %+v", q, want)
	}

	// Pure yaw of pi should equal an axis-angle rotation around Z
	q = QuatFromRPY(0, 0, math.Pi)
	want = QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi)
	if !approxEqual(q.Z, want.Z) || !approxEqual(q.W, want.W) {
		t.Errorf("yaw pi: got %+v, want %+v", q, want)
	}
}

func TestQuat_ToMat4_Identity(t *testing.T) {
	m := QuatIdentity().ToMat4()
	if m != Identity() {
		t.Errorf("expected identity matrix, got %v", m)
	}
}

func TestQuat_ToMat4_Rotation(t *testing.T) {
	// 90 degree rotation around Z maps (1,0,0) to (0,1,0)
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2)
	p := q.ToMat4().TransformPoint(Vec3{1, 0, 0})

	if !approxEqual(p.X, 0) || !approxEqual(p.Y, 1) || !approxEqual(p.Z, 0) {
		t.Errorf("expected (0,1,0), got %+v", p)
	}
}

func TestQuat_Normalize(t *testing.T) {
	q := Quat{X: 2, Y: 0, Z: 0, W: 0}.Normalize()
	if !approxEqual(q.X, 1) {
		t.Errorf("expected X=1, got %+v", q)
	}

	// Degenerate quaternion falls back to identity
	if z := (Quat{}).Normalize(); z != QuatIdentity() {
		t.Errorf("expected identity fallback, got %+v", z)
	}
}

func TestMat4_Translation(t *testing.T) {
	m := Translate(1, 2, 3)
	if m.Translation() != (Vec3{1, 2, 3}) {
		t.Errorf("Translation: got %+v", m.Translation())
	}

	m.SetTranslation(Vec3{4, 5, 6})
	if m.Translation() != (Vec3{4, 5, 6}) {
		t.Errorf("SetTranslation: got %+v", m.Translation())
	}
}

func TestMat4_Mul(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Translate(0, 2, 0)
	p := a.Mul(b).TransformPoint(Vec3{0, 0, 0})
	if p != (Vec3{1, 2, 0}) {
		t.Errorf("expected (1,2,0), got %+v", p)
	}
}

func TestFromRotationTranslation(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2)
	m := FromRotationTranslation(q, Vec3{10, 0, 0})

	p := m.TransformPoint(Vec3{1, 0, 0})
	if !approxEqual(p.X, 10) || !approxEqual(p.Y, 1) || !approxEqual(p.Z, 0) {
		t.Errorf("expected (10,1,0), got %+v", p)
	}

	// Direction transform ignores translation
	d := m.TransformDirection(Vec3{1, 0, 0})
	if !approxEqual(d.X, 0) || !approxEqual(d.Y, 1) {
		t.Errorf("expected (0,1,0), got %+v", d)
	}
}

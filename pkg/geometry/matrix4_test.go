package geometry

import (
	"math"
	"testing"
)

func TestMatrix4Identity(t *testing.T) {
	v := NewVector3(1, 2, 3)
	if Identity().MulPoint(v) != v {
		t.Errorf("Identity should leave points unchanged, got %v", Identity().MulPoint(v))
	}
}

func TestMatrix4Translation(t *testing.T) {
	m := Translation(1, 2, 3)

	point := m.MulPoint(NewVector3(1, 1, 1))
	if point.Distance(NewVector3(2, 3, 4)) > 1e-10 {
		t.Errorf("MulPoint failed: got %v", point)
	}

	dir := m.MulDirection(NewVector3(1, 1, 1))
	if dir.Distance(NewVector3(1, 1, 1)) > 1e-10 {
		t.Errorf("MulDirection must ignore translation, got %v", dir)
	}
}

func TestMatrix4RotationX(t *testing.T) {
	m := RotationX(math.Pi / 2)

	// A quarter turn about X takes +Y to +Z
	rotated := m.MulPoint(NewVector3(0, 1, 0))
	if rotated.Distance(NewVector3(0, 0, 1)) > 1e-10 {
		t.Errorf("RotationX failed: got %v", rotated)
	}
}

func TestMatrix4RotationZ(t *testing.T) {
	m := RotationZ(math.Pi / 2)

	// A quarter turn about Z takes +X to +Y
	rotated := m.MulPoint(NewVector3(1, 0, 0))
	if rotated.Distance(NewVector3(0, 1, 0)) > 1e-10 {
		t.Errorf("RotationZ failed: got %v", rotated)
	}
}

func TestMatrix4Mul(t *testing.T) {
	m := Translation(5, 0, 0).Mul(RotationZ(math.Pi / 2))

	// Rotate first, then translate
	point := m.MulPoint(NewVector3(1, 0, 0))
	if point.Distance(NewVector3(5, 1, 0)) > 1e-10 {
		t.Errorf("Composed transform failed: got %v", point)
	}
}

func TestMatrix4Inverse(t *testing.T) {
	m := Translation(3, -2, 7).Mul(RotationY(0.8)).Mul(RotationX(-0.3))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	original := NewVector3(1.5, -4.0, 2.5)
	roundTrip := inv.MulPoint(m.MulPoint(original))
	if roundTrip.Distance(original) > 1e-10 {
		t.Errorf("Inverse round trip failed: expected %v, got %v", original, roundTrip)
	}
}

func TestMatrix4InverseSingular(t *testing.T) {
	var zero Matrix4
	if _, err := zero.Inverse(); err == nil {
		t.Error("Expected an error for a singular matrix")
	}
}

package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with legs 3 and 4
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.CalculateNormal()
	expected := NewVector3(0, 0, 1)
	if normal.Distance(expected) > 1e-10 {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)
	if center.Distance(expected) > 1e-10 {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleEdges(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	edges := tri.Edges()
	if edges[0][0] != tri.V1 || edges[0][1] != tri.V2 {
		t.Errorf("Edge 0 should run V1->V2, got %v->%v", edges[0][0], edges[0][1])
	}
	if edges[2][0] != tri.V3 || edges[2][1] != tri.V1 {
		t.Errorf("Edge 2 should run V3->V1, got %v->%v", edges[2][0], edges[2][1])
	}
}

func TestTriangleIntersectRayHit(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(-1, -1, 0),
		NewVector3(1, -1, 0),
		NewVector3(0, 1, 0),
	)

	dist, hit := tri.IntersectRay(NewVector3(0, 0, 5), NewVector3(0, 0, -1))
	if !hit {
		t.Fatal("Expected ray to hit the triangle")
	}
	if math.Abs(dist-5.0) > 1e-10 {
		t.Errorf("Hit distance failed: expected 5.0, got %v", dist)
	}
}

func TestTriangleIntersectRayMiss(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(-1, -1, 0),
		NewVector3(1, -1, 0),
		NewVector3(0, 1, 0),
	)

	if _, hit := tri.IntersectRay(NewVector3(5, 5, 5), NewVector3(0, 0, -1)); hit {
		t.Error("Ray outside the triangle should miss")
	}
	// Ray pointing away from the triangle
	if _, hit := tri.IntersectRay(NewVector3(0, 0, 5), NewVector3(0, 0, 1)); hit {
		t.Error("Ray pointing away should miss")
	}
	// Ray parallel to the triangle plane
	if _, hit := tri.IntersectRay(NewVector3(0, 0, 5), NewVector3(1, 0, 0)); hit {
		t.Error("Parallel ray should miss")
	}
}

func TestTriangleTransform(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	moved := tri.Transform(Translation(10, 0, 0))
	if moved.V1.Distance(NewVector3(10, 0, 0)) > 1e-10 {
		t.Errorf("Translation failed: got %v", moved.V1)
	}
	// Normal is a direction and must not translate
	if moved.Normal.Distance(tri.Normal) > 1e-10 {
		t.Errorf("Normal must be unaffected by translation, got %v", moved.Normal)
	}
}

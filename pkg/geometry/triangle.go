package geometry

import "math"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the normal vector for the triangle
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// Edges returns the three edges as ordered point pairs
func (t Triangle) Edges() [3][2]Vector3 {
	return [3][2]Vector3{
		{t.V1, t.V2},
		{t.V2, t.V3},
		{t.V3, t.V1},
	}
}

// Bounds returns the axis-aligned bounding box of the triangle
func (t Triangle) Bounds() BoundingBox {
	bbox := NewBoundingBox()
	bbox.Extend(t.V1)
	bbox.Extend(t.V2)
	bbox.Extend(t.V3)
	return bbox
}

// IntersectRay computes the intersection of a ray with the triangle using
// the Möller–Trumbore algorithm. It returns the ray parameter t and true
// when the ray hits the triangle at origin + dir*t with t > 0.
func (t Triangle) IntersectRay(origin, dir Vector3) (float64, bool) {
	const epsilon = 1e-12

	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)

	h := dir.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		// Ray is parallel to the triangle plane
		return 0, false
	}

	f := 1.0 / a
	s := origin.Sub(t.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	dist := f * edge2.Dot(q)
	if dist <= epsilon {
		return 0, false
	}
	return dist, true
}

// Transform returns the triangle with all vertices and the normal mapped
// through the given matrix (points as positions, the normal as a direction)
func (t Triangle) Transform(m Matrix4) Triangle {
	return Triangle{
		Normal: m.MulDirection(t.Normal),
		V1:     m.MulPoint(t.V1),
		V2:     m.MulPoint(t.V2),
		V3:     m.MulPoint(t.V3),
	}
}

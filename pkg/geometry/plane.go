package geometry

import "math"

// Plane represents a plane in point-normal form. A point p lies on the
// plane when Normal·p + D == 0; SignedDistance is positive on the side
// the normal points to.
type Plane struct {
	Normal Vector3
	D      float64
}

// NewPlane creates a plane from a (not necessarily unit) normal and a
// point the plane passes through. The normal is normalized.
func NewPlane(normal, point Vector3) Plane {
	n := normal.Normalize()
	return Plane{
		Normal: n,
		D:      -n.Dot(point),
	}
}

// SignedDistance returns the distance of a point to the plane, positive
// on the normal side
func (p Plane) SignedDistance(point Vector3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Anchor returns a point on the plane (the projection of the origin)
func (p Plane) Anchor() Vector3 {
	return p.Normal.Mul(-p.D)
}

// IntersectSegment computes the crossing of the segment [a, b] with the
// plane. It returns the crossing point and true when the segment ends lie
// on opposite sides (an endpoint exactly on the plane counts as a
// crossing). Segments lying within the plane report no crossing.
func (p Plane) IntersectSegment(a, b Vector3) (Vector3, bool) {
	da := p.SignedDistance(a)
	db := p.SignedDistance(b)

	if da == db {
		// Parallel to the plane, possibly coplanar
		return Vector3{}, false
	}
	straddles := (da >= 0 && db <= 0) || (da <= 0 && db >= 0)
	if !straddles {
		return Vector3{}, false
	}

	t := da / (da - db)
	return a.Add(b.Sub(a).Mul(t)), true
}

// IsParallel reports whether two planes are parallel or nearly so, in
// which case their intersection line is undefined
func (p Plane) IsParallel(other Plane) bool {
	return p.Normal.Cross(other.Normal).Length() < 1e-10
}

// Transform maps the plane through the given matrix. This is exact for
// rigid transforms (rotation + translation), which is the only kind of
// world transform used here.
func (p Plane) Transform(m Matrix4) Plane {
	return NewPlane(m.MulDirection(p.Normal), m.MulPoint(p.Anchor()))
}

// Flipped returns the plane with its normal reversed
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Mul(-1), D: -p.D}
}

// Contains reports whether a point lies on the plane within tol
func (p Plane) Contains(point Vector3, tol float64) bool {
	return math.Abs(p.SignedDistance(point)) <= tol
}

package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates a new, empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExtendBox expands the bounding box to include another box
func (b *BoundingBox) ExtendBox(other BoundingBox) {
	b.Min = b.Min.Min(other.Min)
	b.Max = b.Max.Max(other.Max)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// IntersectsPlane reports whether the plane passes through the box.
// The box straddles the plane when the signed distance of its center is
// smaller than the projection of its half-extent onto the plane normal.
func (b BoundingBox) IntersectsPlane(p Plane) bool {
	half := b.Size().Mul(0.5)
	radius := math.Abs(p.Normal.X)*half.X +
		math.Abs(p.Normal.Y)*half.Y +
		math.Abs(p.Normal.Z)*half.Z
	return math.Abs(p.SignedDistance(b.Center())) <= radius
}

// IntersectsRay reports whether a ray starting at origin with direction
// dir passes through the box, using the slab method. Rays originating
// inside the box intersect it.
func (b BoundingBox) IntersectsRay(origin, dir Vector3) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	orig := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(d[axis]) < 1e-15 {
			// Ray parallel to this slab: outside means no hit
			if orig[axis] < lo[axis] || orig[axis] > hi[axis] {
				return false
			}
			continue
		}
		t1 := (lo[axis] - orig[axis]) / d[axis]
		t2 := (hi[axis] - orig[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return tMax >= 0
}

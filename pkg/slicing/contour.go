// Package slicing computes cross-section contours of meshes: it extracts
// the raw segments where a plane cuts a mesh, stitches them into ordered
// polylines and intersects polylines with a second plane.
package slicing

import (
	"github.com/philipparndt/scanalign/pkg/geometry"
)

// Segment is one triangle's intersection with the cutting plane, as an
// ordered pair of world-space points
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Length returns the segment length
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Reversed returns the segment with its endpoints swapped
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Polyline is an ordered point sequence where consecutive points are
// connected by a real mesh edge crossing. Closed polylines do not repeat
// the first point at the end.
type Polyline struct {
	Points []geometry.Vector3
	Closed bool
}

// Length returns the total polyline length, including the closing edge
// for closed polylines
func (p Polyline) Length() float64 {
	if len(p.Points) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].Distance(p.Points[i])
	}
	if p.Closed {
		total += p.Points[len(p.Points)-1].Distance(p.Points[0])
	}
	return total
}

package slicing

import "github.com/philipparndt/scanalign/pkg/geometry"

// CrossingPoints returns the points where the polyline crosses the
// plane, in traversal order. An edge crosses when the signed distances
// of its endpoints differ in sign; an endpoint exactly on the plane
// counts for both of its edges, so such a vertex may be reported twice.
// No crossings is a normal outcome, not an error.
func CrossingPoints(p Polyline, plane geometry.Plane) []geometry.Vector3 {
	var crossings []geometry.Vector3

	n := len(p.Points)
	if n < 2 {
		return nil
	}

	edges := n - 1
	if p.Closed {
		edges = n
	}
	for i := 0; i < edges; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if pt, ok := plane.IntersectSegment(a, b); ok {
			crossings = append(crossings, pt)
		}
	}
	return crossings
}

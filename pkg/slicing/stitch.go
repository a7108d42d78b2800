package slicing

import "github.com/philipparndt/scanalign/pkg/geometry"

// StitchTolerance is the endpoint coincidence tolerance used when
// joining segments into polylines
const StitchTolerance = 1e-6

// Stitch assembles unordered segments into ordered polylines. A segment
// extends a growing polyline (at either end, possibly reversed) when one
// of its endpoints coincides with a polyline endpoint within tol; the
// scan over the remaining segments repeats until a full pass adds
// nothing, then the polyline is finalized and the next one seeded.
//
// The result is invariant to the input segment order, up to the point
// sequences being reversed and the polylines being listed in a different
// order. A ring whose ends meet within tol is marked Closed and does not
// repeat its first point.
func Stitch(segments []Segment, tol float64) []Polyline {
	used := make([]bool, len(segments))
	var polylines []Polyline

	for seed := range segments {
		if used[seed] {
			continue
		}
		used[seed] = true
		points := []geometry.Vector3{segments[seed].Start, segments[seed].End}

		for {
			extended := false
			for i, seg := range segments {
				if used[i] {
					continue
				}
				first := points[0]
				last := points[len(points)-1]

				switch {
				case seg.Start.NearlyEquals(last, tol):
					points = append(points, seg.End)
				case seg.End.NearlyEquals(last, tol):
					points = append(points, seg.Start)
				case seg.End.NearlyEquals(first, tol):
					points = append([]geometry.Vector3{seg.Start}, points...)
				case seg.Start.NearlyEquals(first, tol):
					points = append([]geometry.Vector3{seg.End}, points...)
				default:
					continue
				}
				used[i] = true
				extended = true
			}
			if !extended {
				break
			}
		}

		polylines = append(polylines, finalize(points, tol))
	}
	return polylines
}

func finalize(points []geometry.Vector3, tol float64) Polyline {
	closed := false
	if len(points) > 2 && points[0].NearlyEquals(points[len(points)-1], tol) {
		points = points[:len(points)-1]
		closed = true
	}
	return Polyline{Points: points, Closed: closed}
}

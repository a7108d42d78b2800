// Package align derives the rigid alignment of two scanned surfaces from
// two user-picked reference planes. It builds the selection planes,
// extracts landmark points from the plane/contour intersection and
// computes the two sequential single-axis rotation angles that bring the
// landmarks into the canonical configuration.
//
// Axis convention: X is lateral, Y is height, Z is depth.
package align

import (
	"errors"
	"math"
	"sort"

	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/mesh"
	"github.com/philipparndt/scanalign/pkg/slicing"
)

var (
	// ErrParallelPlanes is returned when the two selection planes are
	// parallel and their intersection line is undefined
	ErrParallelPlanes = errors.New("selection planes are parallel")

	// ErrNoLandmarks is returned when neither contour/plane pairing
	// yields landmark points; the assembly is left unrotated
	ErrNoLandmarks = errors.New("no landmark points found for the selected planes")
)

// probeLift is how far the probe ray origin is lifted off the picked
// facet before casting back through the surface
const probeLift = 1e-3

// PickedFace is a pick event on a mesh surface: the intersection point
// and the face normal, both in the mesh's local frame
type PickedFace struct {
	Point  geometry.Vector3
	Normal geometry.Vector3
}

// SelectionPlane builds the world-space reference plane for a picked
// face. Instead of anchoring the plane on the outer skin at the pick
// point, a probe ray is cast from just above the pick point back along
// the inward normal; the midpoint of the two nearest surface hits
// centers the plane within the thin scanned shell.
func SelectionPlane(m *mesh.Mesh, pick PickedFace) geometry.Plane {
	normal := pick.Normal.Normalize()
	origin := pick.Point.Add(normal.Mul(probeLift))
	inward := normal.Mul(-1)

	anchor := pick.Point
	if t1, t2, ok := twoNearestHits(m, origin, inward); ok {
		anchor = origin.Add(inward.Mul((t1 + t2) / 2))
	}

	world := m.WorldTransform()
	return geometry.NewPlane(world.MulDirection(normal), world.MulPoint(anchor))
}

// twoNearestHits casts a ray against the mesh in its local frame and
// returns the two nearest hit parameters
func twoNearestHits(m *mesh.Mesh, origin, dir geometry.Vector3) (float64, float64, bool) {
	var hits []float64
	for _, ti := range m.SpatialIndex().CandidatesAlongRay(origin, dir) {
		if t, ok := m.Triangles[ti].IntersectRay(origin, dir); ok {
			hits = append(hits, t)
		}
	}
	if len(hits) < 2 {
		return 0, 0, false
	}
	sort.Float64s(hits)
	return hits[0], hits[1], true
}

// Landmarks finds the two landmark points for selection planes p1 (on
// mesh a) and p2 (on mesh b): mesh a's contour under p1 is intersected
// with p2, and if that yields no points the roles are swapped and mesh
// b's contour under p2 is intersected with p1. Exactly one attempt is
// expected to succeed for a valid two-plane selection.
func Landmarks(a *mesh.Mesh, p1 geometry.Plane, b *mesh.Mesh, p2 geometry.Plane) (geometry.Vector3, geometry.Vector3, error) {
	if p1.IsParallel(p2) {
		return geometry.Vector3{}, geometry.Vector3{}, ErrParallelPlanes
	}

	points, err := contourCrossings(a, p1, p2)
	if err != nil {
		return geometry.Vector3{}, geometry.Vector3{}, err
	}
	if len(points) < 2 {
		points, err = contourCrossings(b, p2, p1)
		if err != nil {
			return geometry.Vector3{}, geometry.Vector3{}, err
		}
	}
	if len(points) < 2 {
		return geometry.Vector3{}, geometry.Vector3{}, ErrNoLandmarks
	}
	return points[0], points[1], nil
}

// contourCrossings cuts the mesh with cutPlane and intersects the first
// stitched polyline with crossPlane. Only the first polyline component
// is used; disjoint secondary loops are ignored.
func contourCrossings(m *mesh.Mesh, cutPlane, crossPlane geometry.Plane) ([]geometry.Vector3, error) {
	segments, err := slicing.ExtractContour(m, cutPlane)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}
	polylines := slicing.Stitch(segments, slicing.StitchTolerance)
	if len(polylines) == 0 {
		return nil, nil
	}
	return slicing.CrossingPoints(polylines[0], crossPlane), nil
}

// PhaseOneAngle is the rotation about the lateral (X) axis that
// equalizes the depth coordinate of the two landmark points
func PhaseOneAngle(p1, p2 geometry.Vector3) float64 {
	return math.Atan2(p2.Z-p1.Z, p1.Y-p2.Y)
}

// PhaseTwoAngle is the rotation about the depth (Z) axis that equalizes
// the lateral coordinate of the two landmark points. It is computed from
// the original, pre-phase-one point coordinates, matching the observed
// behavior of the system this replaces.
func PhaseTwoAngle(p1, p2 geometry.Vector3) float64 {
	return math.Atan2(p1.X-p2.X, p1.Y-p2.Y)
}

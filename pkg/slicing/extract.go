package slicing

import (
	"fmt"

	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/mesh"
)

// DedupTolerance merges coincident crossing points when a degenerate
// triangle (vertex on the plane, or coplanar) reports three of them.
// Fixed, not scale-adaptive: meshes far from unit scale may need care.
const DedupTolerance = 1e-5

// ExtractContour cuts a mesh with a world-space plane and returns the
// unordered segments of the cross section. The plane is transformed into
// the mesh's local frame, candidate triangles come from the mesh's
// spatial index, and the resulting points are mapped back to world
// space. An empty result means the plane misses the mesh.
func ExtractContour(m *mesh.Mesh, worldPlane geometry.Plane) ([]Segment, error) {
	world := m.WorldTransform()
	inverse, err := world.Inverse()
	if err != nil {
		return nil, fmt.Errorf("mesh %q has a non-invertible world transform: %w", m.Name, err)
	}
	local := worldPlane.Transform(inverse)

	var segments []Segment
	for _, ti := range m.SpatialIndex().CandidatesNearPlane(local) {
		a, b, ok := trianglePlaneCrossing(m.Triangles[ti], local)
		if !ok {
			continue
		}
		segments = append(segments, Segment{
			Start: world.MulPoint(a),
			End:   world.MulPoint(b),
		})
	}
	return segments, nil
}

// trianglePlaneCrossing intersects one triangle with the plane. A
// non-degenerate crossing yields exactly two points; a triangle with a
// vertex on the plane reports that vertex through both adjacent edges,
// so three raw points are reduced by dropping one of the coincident pair.
func trianglePlaneCrossing(t geometry.Triangle, p geometry.Plane) (geometry.Vector3, geometry.Vector3, bool) {
	var points []geometry.Vector3
	for _, edge := range t.Edges() {
		if pt, ok := p.IntersectSegment(edge[0], edge[1]); ok {
			points = append(points, pt)
		}
	}

	if len(points) == 3 {
		points = dropNearDuplicate(points)
	}
	if len(points) != 2 {
		return geometry.Vector3{}, geometry.Vector3{}, false
	}
	// A triangle touching the plane in a single vertex yields a
	// zero-length pair, which carries no contour information
	if points[0].NearlyEquals(points[1], DedupTolerance) {
		return geometry.Vector3{}, geometry.Vector3{}, false
	}
	return points[0], points[1], true
}

func dropNearDuplicate(points []geometry.Vector3) []geometry.Vector3 {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].NearlyEquals(points[j], DedupTolerance) {
				return append(points[:j], points[j+1:]...)
			}
		}
	}
	// No coincident pair: keep the first two, matching the fixed
	// two-point contract
	return points[:2]
}

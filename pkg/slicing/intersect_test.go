package slicing

import (
	"math"
	"testing"

	"github.com/philipparndt/scanalign/pkg/geometry"
)

func xPlane(x float64) geometry.Plane {
	return geometry.NewPlane(geometry.NewVector3(1, 0, 0), geometry.NewVector3(x, 0, 0))
}

func cubeRing(t *testing.T, edge float64) Polyline {
	t.Helper()
	segments, err := ExtractContour(cubeMesh(edge), zPlane(0))
	if err != nil {
		t.Fatalf("ExtractContour failed: %v", err)
	}
	polylines := Stitch(segments, StitchTolerance)
	if len(polylines) != 1 {
		t.Fatalf("Expected one polyline, got %d", len(polylines))
	}
	return polylines[0]
}

func TestCrossingPointsSquareContour(t *testing.T) {
	ring := cubeRing(t, 2.0)

	// A plane crossing the interiors of two opposite sides of the square
	crossings := CrossingPoints(ring, xPlane(0.5))
	if len(crossings) != 2 {
		t.Fatalf("Expected exactly 2 crossing points, got %d", len(crossings))
	}
	for i, pt := range crossings {
		if math.Abs(pt.X-0.5) > 1e-10 {
			t.Errorf("Crossing %d should lie on x=0.5, got %v", i, pt)
		}
		if math.Abs(math.Abs(pt.Y)-1.0) > 1e-10 {
			t.Errorf("Crossing %d should lie on a side y=±1, got %v", i, pt)
		}
	}
}

func TestCrossingPointsPlaneOutsideContour(t *testing.T) {
	ring := cubeRing(t, 2.0)

	if got := CrossingPoints(ring, xPlane(5)); len(got) != 0 {
		t.Errorf("Plane outside the contour extent should yield no crossings, got %d", len(got))
	}
}

func TestCrossingPointsVertexOnPlaneReportedTwice(t *testing.T) {
	ring := cubeRing(t, 2.0)

	// x=0 passes exactly through the two diagonal-crossing vertices at
	// (0, ±1, 0); each is reported by both of its adjacent edges
	crossings := CrossingPoints(ring, xPlane(0))
	if len(crossings) != 4 {
		t.Fatalf("Vertex-on-plane crossings are not deduplicated: expected 4, got %d", len(crossings))
	}
}

func TestCrossingPointsOpenChain(t *testing.T) {
	chain := Polyline{Points: []geometry.Vector3{
		geometry.NewVector3(-1, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 1, 0),
	}}

	crossings := CrossingPoints(chain, xPlane(0))
	if len(crossings) != 1 {
		t.Fatalf("Expected one crossing on the open chain, got %d", len(crossings))
	}
	if crossings[0].Distance(geometry.NewVector3(0, 0, 0)) > 1e-10 {
		t.Errorf("Crossing point failed: got %v", crossings[0])
	}
}

func TestCrossingPointsTraversalOrder(t *testing.T) {
	chain := Polyline{Points: []geometry.Vector3{
		geometry.NewVector3(-1, 0, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(-1, 2, 0),
		geometry.NewVector3(1, 3, 0),
	}}

	crossings := CrossingPoints(chain, xPlane(0))
	if len(crossings) != 3 {
		t.Fatalf("Expected three crossings, got %d", len(crossings))
	}
	for i := 1; i < len(crossings); i++ {
		if crossings[i].Y <= crossings[i-1].Y {
			t.Errorf("Crossings must appear in traversal order: %v", crossings)
		}
	}
}

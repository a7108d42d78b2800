package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/scanalign/pkg/geometry"
)

func quadMesh() *Mesh {
	m := New("quad", nil)
	t1 := geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 1, 0))
	t2 := geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(0, 1, 0))
	m.AddTriangle(t1)
	m.AddTriangle(t2)
	return m
}

func TestMeshBoundingBoxAndArea(t *testing.T) {
	m := quadMesh()

	bbox := m.BoundingBox()
	if bbox.Min != geometry.NewVector3(0, 0, 0) || bbox.Max != geometry.NewVector3(1, 1, 0) {
		t.Errorf("BoundingBox failed: got %v..%v", bbox.Min, bbox.Max)
	}
	if math.Abs(m.SurfaceArea()-1.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 1.0, got %v", m.SurfaceArea())
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount failed: got %d", m.TriangleCount())
	}
}

func TestMeshSpatialIndexIsCached(t *testing.T) {
	m := quadMesh()

	first := m.SpatialIndex()
	if first == nil {
		t.Fatal("SpatialIndex should build lazily")
	}
	if m.SpatialIndex() != first {
		t.Error("Repeated SpatialIndex calls should return the cached index")
	}

	m.InvalidateIndex()
	if m.SpatialIndex() == first {
		t.Error("InvalidateIndex should force a rebuild")
	}
}

func TestMeshDefaultTransformIsIdentity(t *testing.T) {
	m := quadMesh()
	if m.WorldTransform() != geometry.Identity() {
		t.Errorf("New mesh should have an identity world transform, got %v", m.WorldTransform())
	}

	moved := geometry.Translation(1, 2, 3)
	m.SetWorldTransform(moved)
	if m.WorldTransform() != moved {
		t.Error("SetWorldTransform should replace the transform")
	}
}

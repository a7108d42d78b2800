// Package mesh holds the triangle-soup scan model with its world
// transform and a lazily built spatial index.
package mesh

import (
	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/spatial"
)

// Mesh is a collection of triangles in a local frame, positioned in the
// world by a rigid transform. The spatial index is built over the local
// triangles on first use and cached; scan geometry is static, so the
// cache is only dropped by an explicit InvalidateIndex call.
type Mesh struct {
	Name      string
	Triangles []geometry.Triangle

	transform geometry.Matrix4
	index     *spatial.Index
}

// New creates a mesh with an identity world transform
func New(name string, triangles []geometry.Triangle) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: triangles,
		transform: geometry.Identity(),
	}
}

// AddTriangle appends a triangle. Callers mutating geometry after the
// index was built must call InvalidateIndex themselves.
func (m *Mesh) AddTriangle(t geometry.Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// WorldTransform returns the mesh's world transform
func (m *Mesh) WorldTransform() geometry.Matrix4 {
	return m.transform
}

// SetWorldTransform repositions the mesh in the world. The spatial index
// is built in the local frame and stays valid.
func (m *Mesh) SetWorldTransform(t geometry.Matrix4) {
	m.transform = t
}

// SpatialIndex returns the cached spatial index, building it on first use
func (m *Mesh) SpatialIndex() *spatial.Index {
	if m.index == nil {
		m.index = spatial.Build(m.Triangles)
	}
	return m.index
}

// InvalidateIndex drops the cached spatial index. Only needed after
// mutating Triangles.
func (m *Mesh) InvalidateIndex() {
	m.index = nil
}

// BoundingBox calculates the local-frame bounding box of the mesh
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, t := range m.Triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

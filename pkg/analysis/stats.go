// Package analysis computes summary statistics of a scan mesh for the
// info command and the viewer status line.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/mesh"
)

// Stats contains summary measurements of a mesh
type Stats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh computes Stats for a mesh
func AnalyzeMesh(m *mesh.Mesh) Stats {
	stats := Stats{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		TriangleCount: m.TriangleCount(),
		MinEdgeLength: math.MaxFloat64,
	}
	stats.Dimensions = stats.BoundingBox.Size()

	total := 0.0
	for _, t := range m.Triangles {
		for _, edge := range t.Edges() {
			length := edge[0].Distance(edge[1])
			total += length
			stats.MinEdgeLength = math.Min(stats.MinEdgeLength, length)
			stats.MaxEdgeLength = math.Max(stats.MaxEdgeLength, length)
			stats.EdgeCount++
		}
	}
	if stats.EdgeCount > 0 {
		stats.AvgEdgeLength = total / float64(stats.EdgeCount)
	} else {
		stats.MinEdgeLength = 0
	}
	return stats
}

// FormatVector formats a point for CLI output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Package spatial provides a bounding-volume hierarchy over mesh
// triangles. It accelerates plane and ray queries by culling whole
// subtrees whose bounds cannot intersect the query; the exact
// per-triangle tests remain the caller's job, so the index may return
// false positives but never omits a true intersection.
package spatial

import (
	"sort"

	"github.com/philipparndt/scanalign/pkg/geometry"
)

// MaxLeafSize is the maximum number of triangles stored in a leaf node.
// Small leaves keep plane culling fine-grained.
const MaxLeafSize = 3

type node struct {
	bounds geometry.BoundingBox
	left   int // child index, -1 for leaves
	right  int
	start  int // leaf: range into Index.order
	count  int
}

// Index is an immutable bounding-volume hierarchy over a triangle slice.
// Once built it is safe for repeated queries for the lifetime of the
// geometry it was built from.
type Index struct {
	nodes []node
	order []int // triangle indices, permuted during construction
}

// Build constructs the hierarchy by recursive median split on the
// longest axis of the triangle centroid bounds
func Build(triangles []geometry.Triangle) *Index {
	idx := &Index{order: make([]int, len(triangles))}
	for i := range idx.order {
		idx.order[i] = i
	}
	if len(triangles) > 0 {
		idx.build(triangles, 0, len(triangles))
	}
	return idx
}

func (idx *Index) build(triangles []geometry.Triangle, start, end int) int {
	bounds := geometry.NewBoundingBox()
	for _, ti := range idx.order[start:end] {
		bounds.ExtendBox(triangles[ti].Bounds())
	}

	self := len(idx.nodes)
	idx.nodes = append(idx.nodes, node{bounds: bounds, left: -1, right: -1, start: start, count: end - start})

	if end-start <= MaxLeafSize {
		return self
	}

	// Split on the longest axis of the node bounds, at the centroid median
	size := bounds.Size()
	axis := 0
	if size.Y > size.X && size.Y >= size.Z {
		axis = 1
	} else if size.Z > size.X && size.Z > size.Y {
		axis = 2
	}

	part := idx.order[start:end]
	sort.Slice(part, func(i, j int) bool {
		return centroidAxis(triangles[part[i]], axis) < centroidAxis(triangles[part[j]], axis)
	})

	mid := start + (end-start)/2
	left := idx.build(triangles, start, mid)
	right := idx.build(triangles, mid, end)
	idx.nodes[self].left = left
	idx.nodes[self].right = right
	idx.nodes[self].count = 0
	return self
}

func centroidAxis(t geometry.Triangle, axis int) float64 {
	c := t.Center()
	switch axis {
	case 1:
		return c.Y
	case 2:
		return c.Z
	}
	return c.X
}

// Bounds returns the bounding box of the whole indexed geometry
func (idx *Index) Bounds() geometry.BoundingBox {
	if len(idx.nodes) == 0 {
		return geometry.NewBoundingBox()
	}
	return idx.nodes[0].bounds
}

// CandidatesNearPlane returns the indices of all triangles whose leaf
// bounds straddle the plane. The result is a superset of the triangles
// that truly intersect it.
func (idx *Index) CandidatesNearPlane(p geometry.Plane) []int {
	return idx.collect(func(b geometry.BoundingBox) bool {
		return b.IntersectsPlane(p)
	})
}

// CandidatesAlongRay returns the indices of all triangles whose leaf
// bounds the ray passes through
func (idx *Index) CandidatesAlongRay(origin, dir geometry.Vector3) []int {
	return idx.collect(func(b geometry.BoundingBox) bool {
		return b.IntersectsRay(origin, dir)
	})
}

func (idx *Index) collect(hits func(geometry.BoundingBox) bool) []int {
	if len(idx.nodes) == 0 {
		return nil
	}

	var result []int
	stack := []int{0}
	for len(stack) > 0 {
		ni := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := idx.nodes[ni]
		if !hits(n.bounds) {
			continue
		}
		if n.left < 0 {
			result = append(result, idx.order[n.start:n.start+n.count]...)
			continue
		}
		stack = append(stack, n.left, n.right)
	}
	return result
}

package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

const asciiCube = `solid test-plate
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 1 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid test-plate
`

func TestReadASCII(t *testing.T) {
	m, err := Read(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if m.Name != "test-plate" {
		t.Errorf("Name failed: got %q", m.Name)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", m.TriangleCount())
	}
	if math.Abs(m.SurfaceArea()-1.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 1.0, got %v", m.SurfaceArea())
	}
}

func TestReadBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary-plate")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(1))

	facet := [12]float32{
		0, 0, 1, // normal
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	}
	binary.Write(&buf, binary.LittleEndian, facet)
	binary.Write(&buf, binary.LittleEndian, uint16(0))

	m, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if m.Name != "binary-plate" {
		t.Errorf("Name failed: got %q", m.Name)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("Expected 1 triangle, got %d", m.TriangleCount())
	}
	if math.Abs(m.Triangles[0].Area()-0.5) > 1e-10 {
		t.Errorf("Area failed: expected 0.5, got %v", m.Triangles[0].Area())
	}
}

func TestReadTruncatedBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(5)) // promises 5 facets, delivers none

	if _, err := Read(&buf); err == nil {
		t.Error("Truncated binary STL should fail")
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Error("Empty input should fail")
	}
}

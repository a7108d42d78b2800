// Package stl loads STL files (ASCII or binary, auto-detected) into a
// mesh.Mesh.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/mesh"
)

// Load reads an STL file and returns a mesh named after the file
func Load(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	m, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return m, nil
}

// Read parses STL data from a reader, detecting ASCII vs. binary from
// the leading "solid" keyword
func Read(r io.Reader) (*mesh.Mesh, error) {
	buffered := bufio.NewReader(r)
	head, err := buffered.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if bytes.Equal(head, []byte("solid")) {
		return readASCII(buffered)
	}
	return readBinary(buffered)
}

func readASCII(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New("", nil)
	scanner := bufio.NewScanner(r)

	var normal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				normal = parseVector(fields[2], fields[3], fields[4])
			}
		case "vertex":
			if len(fields) >= 4 {
				vertices = append(vertices, parseVector(fields[1], fields[2], fields[3]))
			}
		case "endfacet":
			if len(vertices) == 3 {
				m.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return m, nil
}

func parseVector(x, y, z string) geometry.Vector3 {
	vx, _ := strconv.ParseFloat(x, 64)
	vy, _ := strconv.ParseFloat(y, 64)
	vz, _ := strconv.ParseFloat(z, 64)
	return geometry.NewVector3(vx, vy, vz)
}

func readBinary(r io.Reader) (*mesh.Mesh, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read binary header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	name := string(bytes.TrimRight(header, "\x00 "))
	m := mesh.New(name, make([]geometry.Triangle, 0, count))

	// 12 floats (normal + 3 vertices) and a 2-byte attribute per facet
	var facet struct {
		Values    [12]float32
		Attribute uint16
	}
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		v := facet.Values
		m.AddTriangle(geometry.NewTriangle(
			vec(v[0], v[1], v[2]),
			vec(v[3], v[4], v[5]),
			vec(v[6], v[7], v[8]),
			vec(v[9], v[10], v[11]),
		))
	}
	return m, nil
}

func vec(x, y, z float32) geometry.Vector3 {
	return geometry.NewVector3(float64(x), float64(y), float64(z))
}

// Package model loads small Wavefront OBJ meshes for the wireframe 3D
// viewer. Only vertices and faces are read; normals, texture coordinates,
// groups and materials are skipped.
package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MaxVertices bounds what the viewer will try to draw each frame.
const MaxVertices = 20000

var ErrEmpty = errors.New("model has no edges")

type Vec3 struct {
	X, Y, Z float64
}

// RotateY turns v by a radians around the vertical axis.
func (v Vec3) RotateY(a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateX tilts v by a radians around the horizontal axis.
func (v Vec3) RotateX(a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Mesh is a wireframe: vertices and the unique edges between them.
type Mesh struct {
	Name     string
	Vertices []Vec3
	Edges    [][2]int
}

// Load reads and normalises the OBJ file at path.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", filepath.Base(path), err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Parse reads OBJ text. The mesh comes back centred on the origin with
// its farthest vertex at distance 1.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	seen := make(map[[2]int]bool)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "o":
			if len(fields) > 1 && m.Name == "" {
				m.Name = strings.Join(fields[1:], " ")
			}
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if len(m.Vertices) == MaxVertices {
				return nil, fmt.Errorf("line %d: more than %d vertices", line, MaxVertices)
			}
			m.Vertices = append(m.Vertices, v)
		case "f", "l":
			idx, err := parseFace(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.addEdges(idx, fields[0] == "f", seen)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.Edges) == 0 {
		return nil, ErrEmpty
	}
	m.normalize()
	return m, nil
}

func parseVertex(fields []string) (Vec3, error) {
	if len(fields) < 3 {
		return Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Vec3{}, fmt.Errorf("bad coordinate %q", fields[i])
		}
		c[i] = f
	}
	return Vec3{c[0], c[1], c[2]}, nil
}

// parseFace resolves "i", "i/t", "i//n" and negative (relative) indices
// to zero-based vertex indices.
func parseFace(fields []string, n int) ([]int, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("element needs at least 2 vertices, got %d", len(fields))
	}
	idx := make([]int, len(fields))
	for i, f := range fields {
		ref, _, _ := strings.Cut(f, "/")
		k, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("bad vertex reference %q", f)
		}
		if k < 0 {
			k = n + k + 1
		}
		if k < 1 || k > n {
			return nil, fmt.Errorf("vertex %s out of range (have %d)", ref, n)
		}
		idx[i] = k - 1
	}
	return idx, nil
}

func (m *Mesh) addEdges(idx []int, closed bool, seen map[[2]int]bool) {
	add := func(a, b int) {
		if a == b {
			return
		}
		e := [2]int{min(a, b), max(a, b)}
		if !seen[e] {
			seen[e] = true
			m.Edges = append(m.Edges, e)
		}
	}
	for i := 1; i < len(idx); i++ {
		add(idx[i-1], idx[i])
	}
	if closed && len(idx) > 2 {
		add(idx[len(idx)-1], idx[0])
	}
}

func (m *Mesh) normalize() {
	var lo, hi Vec3
	for i, v := range m.Vertices {
		if i == 0 {
			lo, hi = v, v
			continue
		}
		lo = Vec3{math.Min(lo.X, v.X), math.Min(lo.Y, v.Y), math.Min(lo.Z, v.Z)}
		hi = Vec3{math.Max(hi.X, v.X), math.Max(hi.Y, v.Y), math.Max(hi.Z, v.Z)}
	}
	mid := Vec3{(lo.X + hi.X) / 2, (lo.Y + hi.Y) / 2, (lo.Z + hi.Z) / 2}

	r := 0.0
	for i, v := range m.Vertices {
		v = Vec3{v.X - mid.X, v.Y - mid.Y, v.Z - mid.Z}
		m.Vertices[i] = v
		r = math.Max(r, v.Len())
	}
	if r == 0 {
		return
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = Vec3{v.X / r, v.Y / r, v.Z / r}
	}
}

package model

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tetra = `# tetrahedron
o tetra
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1/1 2/2 4/4
f 1//1 3//3 4//4
f -3 -2 -1
`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(tetra))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Name != "tetra" {
		t.Errorf("Expected name tetra, got %q", m.Name)
	}
	if len(m.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(m.Vertices))
	}
	if len(m.Edges) != 6 {
		t.Errorf("Expected 6 unique edges, got %d: %v", len(m.Edges), m.Edges)
	}

	far := 0.0
	for _, v := range m.Vertices {
		far = math.Max(far, v.Len())
	}
	if math.Abs(far-1) > 1e-9 {
		t.Errorf("Expected farthest vertex at 1, got %v", far)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 x 2\n"},
		{"nan coordinate", "v 1 NaN 2\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nf 0 1\n"},
		{"bad reference", "v 0 0 0\nv 1 0 0\nf a b\n"},
		{"no faces", "v 0 0 0\nv 1 0 0\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.data)); err == nil {
				t.Errorf("Expected error for %q", tt.data)
			}
		})
	}

	if _, err := Parse(strings.NewReader("")); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 2 0 0\nl 1 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write model: %v", err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Name != "shape" || len(m.Edges) != 1 {
		t.Errorf("Expected one-edge mesh named shape, got %q with %d edges", m.Name, len(m.Edges))
	}

	if _, err := Load(filepath.Join(dir, "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestBundledModel(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "static", "models", "gem.obj"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Vertices) != 8 || len(m.Edges) != 18 {
		t.Errorf("Expected 8 vertices and 18 edges, got %d and %d", len(m.Vertices), len(m.Edges))
	}
}

func TestRotate(t *testing.T) {
	v := Vec3{1, 0, 0}.RotateY(math.Pi / 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Z+1) > 1e-9 {
		t.Errorf("RotateY(90°) of +X = %+v, want -Z", v)
	}
	v = Vec3{0, 1, 0}.RotateX(math.Pi / 2)
	if math.Abs(v.Y) > 1e-9 || math.Abs(v.Z-1) > 1e-9 {
		t.Errorf("RotateX(90°) of +Y = %+v, want +Z", v)
	}
}

package bezier

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTessellateCounts(t *testing.T) {
	for _, step := range []float64{1, 0.5, 0.3, 0.1, 0.05, 0.02} {
		mesh, err := Tessellate(DefaultControlGrid(), step)
		if err != nil {
			t.Fatalf("Tessellate(%v): %v", step, err)
		}

		n, _ := GridSize(step)
		if mesh.GridSize != n {
			t.Errorf("step %v: GridSize = %d, want %d", step, mesh.GridSize, n)
		}
		if len(mesh.Vertices) != n*n {
			t.Errorf("step %v: %d vertices, want %d", step, len(mesh.Vertices), n*n)
		}
		if len(mesh.Indices) != 6*(n-1)*(n-1) {
			t.Errorf("step %v: %d indices, want %d", step, len(mesh.Indices), 6*(n-1)*(n-1))
		}
		if len(mesh.Normals) != len(mesh.Vertices) {
			t.Errorf("step %v: %d normals for %d vertices", step, len(mesh.Normals), len(mesh.Vertices))
		}
	}
}

func TestTessellateRegression(t *testing.T) {
	mesh, err := Tessellate(DefaultControlGrid(), 0.02)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	if len(mesh.Vertices) != 2601 {
		t.Errorf("expected 2601 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 15000 {
		t.Errorf("expected 15000 indices, got %d", len(mesh.Indices))
	}

	want := mgl32.Vec3{-1.5, -1.5, 0}
	if mesh.Vertices[0] != want {
		t.Errorf("vertex 0 = %v, want %v", mesh.Vertices[0], want)
	}

	// Last sample lands on the far corner, not short of it.
	last := mesh.Vertices[len(mesh.Vertices)-1]
	if !vecNear(last, mgl32.Vec3{1.5, 1.5, 0}, tolerance) {
		t.Errorf("last vertex = %v, want (1.5, 1.5, 0)", last)
	}
}

func TestTessellateInvalidStep(t *testing.T) {
	for _, step := range []float64{0, -1, 1.01, 1e-5, 1e-300} {
		if _, err := Tessellate(DefaultControlGrid(), step); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("Tessellate(step=%v): expected ErrInvalidStep, got %v", step, err)
		}
	}
}

func TestTessellateIndicesInRange(t *testing.T) {
	mesh, err := Tessellate(skewedGrid(), 0.05)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	for k, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d at %d out of range (%d vertices)", idx, k, len(mesh.Vertices))
		}
	}
}

func TestTessellateUnitNormals(t *testing.T) {
	for _, g := range []ControlGrid{DefaultControlGrid(), skewedGrid()} {
		mesh, err := Tessellate(g, 0.02)
		if err != nil {
			t.Fatalf("Tessellate: %v", err)
		}
		for i, n := range mesh.Normals {
			if l := n.Len(); l < 1-tolerance || l > 1+tolerance {
				t.Fatalf("normal %d = %v has length %v", i, n, l)
			}
		}
	}
}

func TestTessellateFacesPositiveZ(t *testing.T) {
	mesh, err := Tessellate(DefaultControlGrid(), 0.1)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	// The dome's apex normal points straight up the Z axis.
	center := mesh.GridSize/2*mesh.GridSize + mesh.GridSize/2
	if n := mesh.Normals[center]; !vecNear(n, mgl32.Vec3{0, 0, 1}, 1e-4) {
		t.Errorf("apex normal = %v, want (0, 0, 1)", n)
	}
	for i, n := range mesh.Normals {
		if n.Z() <= 0 {
			t.Errorf("normal %d = %v faces away from +Z", i, n)
		}
	}
}

func TestTessellateMirrorSymmetry(t *testing.T) {
	// DefaultControlGrid is symmetric about u = 0.5 (the YZ plane).
	mesh, err := Tessellate(DefaultControlGrid(), 0.02)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	n := mesh.GridSize
	for i := range n {
		for j := range n {
			a := mesh.Vertices[i*n+j]
			b := mesh.Vertices[(n-1-i)*n+j]
			mirrored := mgl32.Vec3{-b.X(), b.Y(), b.Z()}
			if !vecNear(a, mirrored, tolerance) {
				t.Fatalf("vertex (%d,%d) = %v is not the mirror of %v", i, j, a, b)
			}
		}
	}
}

func TestTessellateBounds(t *testing.T) {
	mesh, err := Tessellate(DefaultControlGrid(), 0.1)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	if !vecNear(mesh.Bounds.Min, mgl32.Vec3{-1.5, -1.5, 0}, tolerance) {
		t.Errorf("Bounds.Min = %v", mesh.Bounds.Min)
	}
	if !mgl32.FloatEqualThreshold(mesh.Bounds.Max.X(), 1.5, tolerance) ||
		!mgl32.FloatEqualThreshold(mesh.Bounds.Max.Y(), 1.5, tolerance) {
		t.Errorf("Bounds.Max = %v", mesh.Bounds.Max)
	}
	if !vecNear(mesh.Bounds.Center(), mgl32.Vec3{0, 0, mesh.Bounds.Max.Z() / 2}, tolerance) {
		t.Errorf("Bounds.Center() = %v", mesh.Bounds.Center())
	}
}

func TestGenerateIndicesWinding(t *testing.T) {
	got := GenerateIndices(3)
	want := []uint32{
		0, 3, 1, 1, 3, 4,
		1, 4, 2, 2, 4, 5,
		3, 6, 4, 4, 6, 7,
		4, 7, 5, 5, 7, 8,
	}

	if len(got) != len(want) {
		t.Fatalf("got %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestGenerateIndicesSmallGrid(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if got := GenerateIndices(n); len(got) != 0 {
			t.Errorf("GenerateIndices(%d) returned %d indices", n, len(got))
		}
	}
}

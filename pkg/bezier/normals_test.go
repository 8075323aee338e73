package bezier

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComputeNormalsFlatQuad(t *testing.T) {
	vertices := []mgl32.Vec3{
		{0, 0, 0}, {0, 1, 0},
		{1, 0, 0}, {1, 1, 0},
	}
	indices := GenerateIndices(2)

	normals, err := ComputeNormals(vertices, indices)
	if err != nil {
		t.Fatalf("ComputeNormals: %v", err)
	}

	want := mgl32.Vec3{0, 0, 1}
	for i, n := range normals {
		if !vecNear(n, want, tolerance) {
			t.Errorf("normal %d = %v, want %v", i, n, want)
		}
	}
}

func TestComputeNormalsUnweightedAverage(t *testing.T) {
	// Two triangles share vertex 0: one in the XY plane, one in the XZ plane.
	vertices := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 5},
	}
	indices := []uint32{0, 1, 2, 0, 3, 1}

	normals, err := ComputeNormals(vertices, indices)
	if err != nil {
		t.Fatalf("ComputeNormals: %v", err)
	}

	// Face normals are +Z and +Y; the larger triangle must not dominate.
	want := mgl32.Vec3{0, 1, 1}.Normalize()
	if !vecNear(normals[0], want, tolerance) {
		t.Errorf("shared normal = %v, want %v", normals[0], want)
	}
	if !vecNear(normals[2], mgl32.Vec3{0, 0, 1}, tolerance) {
		t.Errorf("normal 2 = %v, want +Z", normals[2])
	}
}

func TestComputeNormalsDegenerate(t *testing.T) {
	vertices := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{2, 2, 2}, {3, 3, 3}, {4, 4, 4}, // collinear
		{9, 9, 9}, // isolated
	}
	indices := []uint32{0, 1, 2, 3, 4, 5, 0, 0, 1}

	normals, err := ComputeNormals(vertices, indices)
	if err != nil {
		t.Fatalf("ComputeNormals: %v", err)
	}

	for i, n := range normals {
		if isNaN(n) {
			t.Fatalf("normal %d is NaN: %v", i, n)
		}
	}
	for _, i := range []int{3, 4, 5, 6} {
		if normals[i] != (mgl32.Vec3{}) {
			t.Errorf("normal %d = %v, want zero vector", i, normals[i])
		}
	}
	if !vecNear(normals[0], mgl32.Vec3{0, 0, 1}, tolerance) {
		t.Errorf("normal 0 = %v, want +Z", normals[0])
	}
}

func TestComputeNormalsInvalidIndices(t *testing.T) {
	vertices := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	tests := []struct {
		name    string
		indices []uint32
	}{
		{"not triangles", []uint32{0, 1}},
		{"out of range", []uint32{0, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeNormals(vertices, tt.indices); !errors.Is(err, ErrInvalidIndices) {
				t.Errorf("expected ErrInvalidIndices, got %v", err)
			}
		})
	}
}

func TestComputeNormalsEmpty(t *testing.T) {
	normals, err := ComputeNormals(nil, nil)
	if err != nil {
		t.Fatalf("ComputeNormals: %v", err)
	}
	if len(normals) != 0 {
		t.Errorf("expected no normals, got %d", len(normals))
	}
}

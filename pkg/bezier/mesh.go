package bezier

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// gridEpsilon absorbs representation error in 1/step so that steps such as
// 0.1 or 0.02 yield whole-number grid sizes.
const gridEpsilon = 1e-9

// MaxGridSize is the largest accepted number of samples per direction.
// It keeps every vertex index of a MaxGridSize² grid within uint32.
const MaxGridSize = 4096

// Mesh holds a tessellated patch ready for GPU upload.
// Vertices, Normals and Indices are immutable once returned.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Indices  []uint32
	GridSize int // Samples per parametric direction
	Bounds   Bounds
}

// Bounds is the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// GridSize returns the number of samples per parametric direction for step.
// Steps so small that the grid would exceed MaxGridSize are rejected.
func GridSize(step float64) (int, error) {
	if !(step > 0 && step <= 1) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidStep, step)
	}

	// Compare in float64 before converting; 1/step can exceed any int.
	cells := math.Floor(1/step + gridEpsilon)
	if cells+1 > MaxGridSize {
		return 0, fmt.Errorf("%w: step %v needs %.0f samples per side, max %d",
			ErrInvalidStep, step, cells+1, MaxGridSize)
	}
	return int(cells) + 1, nil
}

// Tessellate samples the patch on a regular (u, v) grid with the given step and
// returns the vertices, triangle indices and smoothed normals.
//
// Vertices are stored grid-major: index i*GridSize+j holds the sample at
// (u, v) = (i*step, j*step), clamped to 1.
func Tessellate(grid ControlGrid, step float64) (*Mesh, error) {
	n, err := GridSize(step)
	if err != nil {
		return nil, err
	}

	vertices := make([]mgl32.Vec3, 0, n*n)
	bounds := Bounds{
		Min: mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}

	for i := range n {
		u := float32(math.Min(float64(i)*step, 1))
		for j := range n {
			v := float32(math.Min(float64(j)*step, 1))
			p := grid.SurfacePoint(u, v)
			updateBounds(&bounds, p)
			vertices = append(vertices, p)
		}
	}

	indices := GenerateIndices(n)

	normals, err := ComputeNormals(vertices, indices)
	if err != nil {
		return nil, fmt.Errorf("computing normals: %w", err)
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
		GridSize: n,
		Bounds:   bounds,
	}, nil
}

// GenerateIndices returns two triangles per cell of a gridSize x gridSize
// vertex grid. Grids smaller than 2x2 have no cells.
func GenerateIndices(gridSize int) []uint32 {
	if gridSize < 2 {
		return []uint32{}
	}

	cells := gridSize - 1
	indices := make([]uint32, 0, 6*cells*cells)
	n := uint32(gridSize)

	for i := uint32(0); i < n-1; i++ {
		for j := uint32(0); j < n-1; j++ {
			topLeft := i*n + j
			topRight := topLeft + 1
			bottomLeft := (i+1)*n + j
			bottomRight := bottomLeft + 1

			// Winding determines the front face; keep it stable.
			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}
	return indices
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}

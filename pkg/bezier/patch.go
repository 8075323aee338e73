// Package bezier tessellates bicubic Bézier patches into indexed triangle meshes
// with smooth per-vertex normals.
package bezier

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidGrid is returned when control points do not form a 4x4 grid.
	ErrInvalidGrid = errors.New("bezier: control grid must be 4x4")

	// ErrInvalidStep is returned when the tessellation step is outside (0, 1].
	ErrInvalidStep = errors.New("bezier: step must be in (0, 1]")

	// ErrInvalidIndices is returned when an index list does not describe
	// triangles over the given vertices.
	ErrInvalidIndices = errors.New("bezier: invalid triangle indices")
)

// ControlGrid holds the 16 control points of a bicubic patch.
// The first index runs along u, the second along v.
type ControlGrid [4][4]mgl32.Vec3

// DefaultControlGrid returns the dome-shaped patch shown by the viewer when no
// control points are configured. u runs along +X and v along +Y, so the
// generated triangles face +Z.
func DefaultControlGrid() ControlGrid {
	return ControlGrid{
		{{-1.5, -1.5, 0}, {-1.5, -0.5, 1}, {-1.5, 0.5, 1}, {-1.5, 1.5, 0}},
		{{-0.5, -1.5, 1}, {-0.5, -0.5, 2}, {-0.5, 0.5, 2}, {-0.5, 1.5, 1}},
		{{0.5, -1.5, 1}, {0.5, -0.5, 2}, {0.5, 0.5, 2}, {0.5, 1.5, 1}},
		{{1.5, -1.5, 0}, {1.5, -0.5, 1}, {1.5, 0.5, 1}, {1.5, 1.5, 0}},
	}
}

// NewControlGrid builds a grid from rows of points.
// Returns ErrInvalidGrid unless rows is exactly 4 rows of 4 points.
func NewControlGrid(rows [][]mgl32.Vec3) (ControlGrid, error) {
	var g ControlGrid
	if len(rows) != 4 {
		return g, fmt.Errorf("%w: got %d rows", ErrInvalidGrid, len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			return g, fmt.Errorf("%w: row %d has %d points", ErrInvalidGrid, i, len(row))
		}
		copy(g[i][:], row)
	}
	return g, nil
}

// CubicBezier evaluates a cubic Bézier curve at t using the Bernstein form.
func CubicBezier(p0, p1, p2, p3 mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	uu := u * u
	tt := t * t

	return p0.Mul(uu * u).
		Add(p1.Mul(3 * uu * t)).
		Add(p2.Mul(3 * u * tt)).
		Add(p3.Mul(tt * t))
}

// SurfacePoint evaluates the patch at (u, v). Parameters are clamped to [0, 1].
func (g *ControlGrid) SurfacePoint(u, v float32) mgl32.Vec3 {
	u = mgl32.Clamp(u, 0, 1)
	v = mgl32.Clamp(v, 0, 1)

	// Reduce each column along u, then the resulting curve along v.
	var col [4]mgl32.Vec3
	for j := 0; j < 4; j++ {
		col[j] = CubicBezier(g[0][j], g[1][j], g[2][j], g[3][j], u)
	}
	return CubicBezier(col[0], col[1], col[2], col[3], v)
}

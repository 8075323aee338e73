package bezier

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// degenerateLenSq is the squared cross-product length below which a triangle
// is treated as having no area.
const degenerateLenSq = 1e-12

// ComputeNormals returns one normal per vertex, computed as the normalized sum
// of the unit face normals of every triangle that references the vertex.
//
// Zero-area triangles contribute nothing. A vertex with no contributing
// triangle gets the zero vector.
func ComputeNormals(vertices []mgl32.Vec3, indices []uint32) ([]mgl32.Vec3, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 3", ErrInvalidIndices, len(indices))
	}
	for k, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("%w: index %d at position %d out of range [0,%d)",
				ErrInvalidIndices, idx, k, len(vertices))
		}
	}

	normals := make([]mgl32.Vec3, len(vertices))

	for t := 0; t < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]

		edge1 := vertices[i1].Sub(vertices[i0])
		edge2 := vertices[i2].Sub(vertices[i0])
		face, ok := normalize(edge1.Cross(edge2))
		if !ok {
			continue
		}

		normals[i0] = normals[i0].Add(face)
		normals[i1] = normals[i1].Add(face)
		normals[i2] = normals[i2].Add(face)
	}

	for i := range normals {
		normals[i], _ = normalize(normals[i])
	}
	return normals, nil
}

// normalize returns v scaled to unit length, or the zero vector and false if v
// is too short to have a direction.
func normalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	if v.Dot(v) < degenerateLenSq {
		return mgl32.Vec3{}, false
	}
	return v.Normalize(), true
}

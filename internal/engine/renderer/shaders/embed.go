// Package shaders holds the embedded GLSL sources used by the renderer.
package shaders

import _ "embed"

//go:embed surface.vert
var SurfaceVertex string

//go:embed surface.frag
var SurfaceFragment string

// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/bezierview/internal/engine/renderer/shaders"
	"github.com/Faultbox/bezierview/internal/engine/shader"
	"github.com/Faultbox/bezierview/internal/logger"
	"github.com/Faultbox/bezierview/pkg/bezier"
)

var (
	// ErrNoMesh is returned by Draw before a mesh has been uploaded.
	ErrNoMesh = errors.New("no mesh uploaded")
	// ErrEmptyMesh is returned when uploading a mesh without geometry.
	ErrEmptyMesh = errors.New("empty mesh")
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Light describes the single point light and surface material.
type Light struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	ObjectColor mgl32.Vec3
	Ambient     float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	// Surface mesh buffers
	vao        uint32
	vboPos     uint32
	vboNormal  uint32
	ebo        uint32
	indexCount int32

	wireframe bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.NewProgram(shaders.SurfaceVertex, shaders.SurfaceFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program

	return r, nil
}

// UploadMesh copies the mesh into GPU buffers, replacing any previous mesh.
func (r *Renderer) UploadMesh(mesh *bezier.Mesh) error {
	if mesh == nil || len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return ErrEmptyMesh
	}
	if len(mesh.Normals) != len(mesh.Vertices) {
		return fmt.Errorf("upload mesh: %d normals for %d vertices", len(mesh.Normals), len(mesh.Vertices))
	}

	r.deleteMesh()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Positions (location 0)
	gl.GenBuffers(1, &r.vboPos)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboPos)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*3*4, gl.Ptr(&mesh.Vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	// Normals (location 1)
	gl.GenBuffers(1, &r.vboNormal)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboNormal)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Normals)*3*4, gl.Ptr(&mesh.Normals[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.indexCount = int32(len(mesh.Indices))
	r.log.Debug("mesh uploaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
	)
	return nil
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the uploaded mesh with the given transforms and light.
func (r *Renderer) Draw(model, view, projection mgl32.Mat4, light Light) error {
	if r.vao == 0 {
		return ErrNoMesh
	}

	r.program.Use()
	r.program.SetMat4("uModel", model)
	r.program.SetMat4("uView", view)
	r.program.SetMat4("uProjection", projection)
	r.program.SetVec3("lightPos", light.Position)
	r.program.SetVec3("lightColor", light.Color)
	r.program.SetVec3("objectColor", light.ObjectColor)
	r.program.SetFloat("ambientStrength", light.Ambient)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	return nil
}

// SetWireframe switches between line and fill polygon modes.
func (r *Renderer) SetWireframe(on bool) {
	if on == r.wireframe {
		return
	}
	r.wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	r.log.Debug("polygon mode changed", zap.Bool("wireframe", on))
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.deleteMesh()
	if r.program != nil {
		r.program.Delete()
	}
}

func (r *Renderer) deleteMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	for _, buf := range []*uint32{&r.vboPos, &r.vboNormal, &r.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	r.indexCount = 0
}

// Package viewer implements the main render loop for the Bézier surface viewer.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/bezierview/internal/config"
	"github.com/Faultbox/bezierview/internal/controls"
	"github.com/Faultbox/bezierview/internal/engine/camera"
	"github.com/Faultbox/bezierview/internal/engine/debug"
	"github.com/Faultbox/bezierview/internal/engine/input"
	"github.com/Faultbox/bezierview/internal/engine/renderer"
	"github.com/Faultbox/bezierview/internal/engine/window"
	"github.com/Faultbox/bezierview/internal/logger"
	"github.com/Faultbox/bezierview/pkg/bezier"
)

// Viewer owns the window, GL resources and the interactive state.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	camera     *camera.FlyCamera
	screenshot *debug.ScreenshotCapture

	mesh  *bezier.Mesh
	state controls.State
	light renderer.Light

	running bool
}

// New tessellates the configured surface, opens the window and uploads the mesh.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
		state: controls.State{
			Wireframe:   cfg.Render.Wireframe,
			RotateSpeed: cfg.Model.RotateSpeed,
			AutoRotate:  cfg.Model.AutoRotate,
		},
		light:      LightFromConfig(cfg.Lighting),
		camera:     CameraFromConfig(cfg.Camera),
		screenshot: debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "bezierview"),
	}

	// Tessellate before touching SDL so bad surface input fails fast
	var err error
	v.mesh, err = BuildMesh(cfg, v.log)
	if err != nil {
		return nil, err
	}
	if cfg.Camera.FrameSurface {
		v.camera.LookAt(v.mesh.Bounds.Center())
	}

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Fullscreen:   cfg.Window.Fullscreen,
		VSync:        cfg.Window.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Render.ClearColor,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.renderer.UploadMesh(v.mesh); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}
	v.renderer.SetWireframe(v.state.Wireframe)

	v.input = input.New(input.DefaultBindings())

	v.log.Info("viewer initialized")
	return v, nil
}

// BuildMesh tessellates the configured control grid and logs mesh statistics.
func BuildMesh(cfg *config.Config, log *zap.Logger) (*bezier.Mesh, error) {
	grid, err := cfg.ControlGrid()
	if err != nil {
		return nil, fmt.Errorf("control grid: %w", err)
	}

	start := time.Now()
	mesh, err := bezier.Tessellate(grid, cfg.Surface.Step)
	if err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}

	size := mesh.Bounds.Size()
	log.Info("surface tessellated",
		zap.Float64("step", cfg.Surface.Step),
		zap.Int("gridSize", mesh.GridSize),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", len(mesh.Indices)/3),
		zap.Float32s("boundsMin", mesh.Bounds.Min[:]),
		zap.Float32s("boundsMax", mesh.Bounds.Max[:]),
		zap.Float32s("boundsSize", size[:]),
		zap.Duration("elapsed", time.Since(start)),
	)
	return mesh, nil
}

// LightFromConfig converts the lighting section into renderer uniforms.
func LightFromConfig(lc config.LightingConfig) renderer.Light {
	return renderer.Light{
		Position:    mgl32.Vec3(lc.Position),
		Color:       mgl32.Vec3(lc.Color),
		ObjectColor: mgl32.Vec3(lc.ObjectColor),
		Ambient:     lc.Ambient,
	}
}

// CameraFromConfig builds a fly camera from the camera section.
func CameraFromConfig(cc config.CameraConfig) *camera.FlyCamera {
	c := camera.NewFlyCamera()
	c.Position = mgl32.Vec3(cc.Position)
	c.Yaw = cc.Yaw
	c.Pitch = cc.Pitch
	c.FOV = cc.FOV
	c.Near = cc.Near
	c.Far = cc.Far
	c.MoveSpeed = cc.MoveSpeed
	c.Sensitivity = cc.Sensitivity
	c.SyncOrientation()
	return c
}

// Run starts the main render loop. It returns when the window closes or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				// SDL reports window units; the viewport needs pixels
				width, height := v.window.DrawableSize()
				v.renderer.Resize(width, height)
			}
		}

		// 2. Update state
		frame := v.input.Frame(dt)
		actions := v.update(frame)

		// 3. Render
		if err := v.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// Read back before the swap so the back buffer holds this frame
		if actions.Has(controls.Screenshot) {
			v.saveScreenshot()
		}

		// 4. Present (swap buffers)
		v.window.SwapBuffers()

		if actions.Has(controls.Quit) {
			v.running = false
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dtMs", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
		v.renderer = nil
	}
	if v.window != nil {
		v.window.Close()
		v.window = nil
	}
}

// update applies one frame of input and returns the one-shot actions left for the loop.
func (v *Viewer) update(frame controls.Frame) controls.Action {
	wasWireframe := v.state.Wireframe
	actions := v.state.Apply(frame)
	if v.state.Wireframe != wasWireframe {
		v.renderer.SetWireframe(v.state.Wireframe)
	}

	v.camera.HandleLook(frame.MouseDX, frame.MouseDY)
	forward, right := frame.Movement()
	v.camera.HandleMovement(forward, right, frame.DT)

	return actions
}

// render draws the current frame.
func (v *Viewer) render() error {
	v.renderer.Begin()

	width, height := v.renderer.Size()
	return v.renderer.Draw(
		v.state.Orientation.Matrix(),
		v.camera.ViewMatrix(),
		v.camera.ProjectionMatrix(width, height),
		v.light,
	)
}

func (v *Viewer) saveScreenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshot.CaptureFromPixels(pixels, width, height)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

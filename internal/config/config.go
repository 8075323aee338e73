// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Camera   CameraConfig   `yaml:"camera"`
	Model    ModelConfig    `yaml:"model"`
	Lighting LightingConfig `yaml:"lighting"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SurfaceConfig describes the patch to tessellate.
type SurfaceConfig struct {
	// Step is the parametric sampling interval in (0, 1].
	Step float64 `yaml:"step"`

	// ControlPoints is a 4x4 grid indexed [u][v]. Empty means the built-in patch.
	ControlPoints [][][3]float32 `yaml:"control_points,omitempty"`
}

// CameraConfig holds the free-fly camera start state and tuning.
type CameraConfig struct {
	Position     [3]float32 `yaml:"position"`
	Yaw          float32    `yaml:"yaw"`   // degrees
	Pitch        float32    `yaml:"pitch"` // degrees
	FOV          float32    `yaml:"fov"`   // vertical, degrees
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	MoveSpeed    float32    `yaml:"move_speed"`    // units per second
	Sensitivity  float32    `yaml:"sensitivity"`   // degrees per pixel
	FrameSurface bool       `yaml:"frame_surface"` // aim at the mesh center at startup, overriding yaw/pitch
}

// ModelConfig holds model rotation settings.
type ModelConfig struct {
	RotateSpeed float32 `yaml:"rotate_speed"` // degrees per second while a key is held
	AutoRotate  float32 `yaml:"auto_rotate"`  // degrees per second around Y
}

// LightingConfig holds the single point light and surface color.
type LightingConfig struct {
	Position    [3]float32 `yaml:"position"`
	Color       [3]float32 `yaml:"color"`
	ObjectColor [3]float32 `yaml:"object_color"`
	Ambient     float32    `yaml:"ambient"`
}

// RenderConfig holds rendering toggles.
type RenderConfig struct {
	Wireframe     bool       `yaml:"wireframe"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Bezier Viewer",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Surface: SurfaceConfig{
			Step: 0.02,
		},
		Camera: CameraConfig{
			Position:     [3]float32{0, 0, 5},
			Yaw:          -90,
			Pitch:        0,
			FOV:          45,
			Near:         0.1,
			Far:          100,
			MoveSpeed:    2.5,
			Sensitivity:  0.1,
			FrameSurface: true,
		},
		Model: ModelConfig{
			RotateSpeed: 100,
			AutoRotate:  0,
		},
		Lighting: LightingConfig{
			Position:    [3]float32{2, 2, 2},
			Color:       [3]float32{1, 1, 1},
			ObjectColor: [3]float32{1, 0.5, 0.2},
			Ambient:     0.1,
		},
		Render: RenderConfig{
			Wireframe:     false,
			ClearColor:    [3]float32{0.1, 0.1, 0.1},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

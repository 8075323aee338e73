package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bezierview/pkg/bezier"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks settings that would otherwise fail later during startup.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	if _, err := bezier.GridSize(c.Surface.Step); err != nil {
		return fmt.Errorf("%w: surface.step: %w", ErrInvalid, err)
	}
	if _, err := c.ControlGrid(); err != nil {
		return fmt.Errorf("%w: surface.control_points: %w", ErrInvalid, err)
	}

	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip range [%v, %v]", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera.fov %v", ErrInvalid, c.Camera.FOV)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}

	return nil
}

// ControlGrid returns the configured patch, or the built-in one when none is set.
func (c *Config) ControlGrid() (bezier.ControlGrid, error) {
	if len(c.Surface.ControlPoints) == 0 {
		return bezier.DefaultControlGrid(), nil
	}

	rows := make([][]mgl32.Vec3, len(c.Surface.ControlPoints))
	for i, row := range c.Surface.ControlPoints {
		rows[i] = make([]mgl32.Vec3, len(row))
		for j, p := range row {
			rows[i][j] = mgl32.Vec3(p)
		}
	}
	return bezier.NewControlGrid(rows)
}

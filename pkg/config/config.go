// Package config holds the demo's tunables. The defaults are embedded in the binary;
// nothing is read from flags or the environment.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/capsule3d/pkg/camera"
	"github.com/leterax/capsule3d/pkg/motion"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full demo configuration as laid out in defaults.yaml
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Player  PlayerConfig  `yaml:"player"`
	Capsule CapsuleConfig `yaml:"capsule"`
	Grid    GridConfig    `yaml:"grid"`
	HUD     HUDConfig     `yaml:"hud"`
}

// WindowConfig sizes the window and paces the frame loop
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	VSync      bool   `yaml:"vsync"`
	Background Color  `yaml:"background"`
}

// CameraConfig is the starting camera and its follow offset
type CameraConfig struct {
	Position       mgl32.Vec3 `yaml:"position"`
	Target         mgl32.Vec3 `yaml:"target"`
	Up             mgl32.Vec3 `yaml:"up"`
	Fovy           float32    `yaml:"fovy"`
	Projection     string     `yaml:"projection"`
	FollowDistance float32    `yaml:"follow_distance"`
}

// PlayerConfig tunes the character controller
type PlayerConfig struct {
	Start          mgl32.Vec3 `yaml:"start"`
	InitialHeading float32    `yaml:"initial_heading"`
	MoveSpeed      float32    `yaml:"move_speed"`
	TurnSpeed      float32    `yaml:"turn_speed"`
	JumpVelocity   float32    `yaml:"jump_velocity"`
	Gravity        float32    `yaml:"gravity"`
	HeightScale    float32    `yaml:"height_scale"`
}

// CapsuleConfig describes the character mesh and its facing marker
type CapsuleConfig struct {
	Radius       float32 `yaml:"radius"`
	Height       float32 `yaml:"height"`
	Slices       int     `yaml:"slices"`
	Rings        int     `yaml:"rings"`
	Color        Color   `yaml:"color"`
	MarkerRadius float32 `yaml:"marker_radius"`
	MarkerColor  Color   `yaml:"marker_color"`
}

// GridConfig describes the ground grid
type GridConfig struct {
	Slices    int     `yaml:"slices"`
	Spacing   float32 `yaml:"spacing"`
	Color     Color   `yaml:"color"`
	AxisColor Color   `yaml:"axis_color"`
}

// HUDConfig holds the overlay text
type HUDConfig struct {
	Welcome string `yaml:"welcome"`
}

// Default returns the embedded configuration
func Default() (*Config, error) {
	cfg, err := Parse(defaultsYAML)
	if err != nil {
		return nil, fmt.Errorf("config: defaults.yaml: %w", err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot drive the demo
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Camera.Fovy <= 0:
		return fmt.Errorf("%w: camera fovy %v", ErrInvalid, c.Camera.Fovy)
	case c.Camera.Up.Len() == 0:
		return fmt.Errorf("%w: camera up vector is zero", ErrInvalid)
	case c.Player.MoveSpeed < 0 || c.Player.TurnSpeed <= 0:
		return fmt.Errorf("%w: player speeds move=%v turn=%v", ErrInvalid, c.Player.MoveSpeed, c.Player.TurnSpeed)
	case c.Player.Gravity < 0 || c.Player.HeightScale <= 0 || c.Player.JumpVelocity < 0:
		return fmt.Errorf("%w: player jump gravity=%v scale=%v velocity=%v",
			ErrInvalid, c.Player.Gravity, c.Player.HeightScale, c.Player.JumpVelocity)
	case c.Capsule.Radius <= 0 || c.Capsule.Height < 0 || c.Capsule.MarkerRadius <= 0:
		return fmt.Errorf("%w: capsule radius=%v height=%v marker=%v",
			ErrInvalid, c.Capsule.Radius, c.Capsule.Height, c.Capsule.MarkerRadius)
	case c.Capsule.Slices < 3 || c.Capsule.Rings < 1:
		return fmt.Errorf("%w: capsule tessellation slices=%d rings=%d", ErrInvalid, c.Capsule.Slices, c.Capsule.Rings)
	case c.Grid.Slices < 1 || c.Grid.Spacing <= 0:
		return fmt.Errorf("%w: grid slices=%d spacing=%v", ErrInvalid, c.Grid.Slices, c.Grid.Spacing)
	}

	if _, err := camera.ParseProjection(c.Camera.Projection); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Tuning converts the player section for the motion controller
func (c *Config) Tuning() motion.Tuning {
	p := c.Player
	return motion.Tuning{
		Start:          p.Start,
		InitialHeading: p.InitialHeading,
		MoveSpeed:      p.MoveSpeed,
		TurnSpeed:      p.TurnSpeed,
		JumpVelocity:   p.JumpVelocity,
		Gravity:        p.Gravity,
		HeightScale:    p.HeightScale,
	}
}

// NewCamera builds the starting camera. The projection was checked by Validate.
func (c *Config) NewCamera() camera.Camera {
	projection, _ := camera.ParseProjection(c.Camera.Projection)
	return camera.Camera{
		Position:       c.Camera.Position,
		Target:         c.Camera.Target,
		Up:             c.Camera.Up,
		Fovy:           c.Camera.Fovy,
		Projection:     projection,
		FollowDistance: c.Camera.FollowDistance,
	}
}

package config

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/leterax/capsule3d/pkg/camera"
	"github.com/leterax/capsule3d/pkg/motion"
)

func TestDefaultMatchesBuiltins(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window size: got %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TargetFPS != 60 {
		t.Errorf("target fps: got %d, want 60", cfg.Window.TargetFPS)
	}
	if got, want := cfg.Tuning(), motion.DefaultTuning(); got != want {
		t.Errorf("tuning: got %+v, want %+v", got, want)
	}
	if got, want := cfg.NewCamera(), camera.New(); got != want {
		t.Errorf("camera: got %+v, want %+v", got, want)
	}
	if cfg.Capsule.Color != RGB(211, 176, 131) {
		t.Errorf("capsule color: got %v", cfg.Capsule.Color)
	}
	if cfg.HUD.Welcome != "Welcome to the third dimension!" {
		t.Errorf("welcome text: got %q", cfg.HUD.Welcome)
	}
}

func TestColorUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{`"#D3B083"`, RGB(211, 176, 131), false},
		{`"f5f5f5"`, RGB(245, 245, 245), false},
		{`"#000000"`, RGB(0, 0, 0), false},
		{`"#12345"`, Color{}, true},
		{`"#GGGGGG"`, Color{}, true},
		{`[1, 2, 3]`, Color{}, true},
	}

	for _, tt := range tests {
		var c Color
		err := yaml.Unmarshal([]byte(tt.in), &c)
		if (err != nil) != tt.wantErr {
			t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && c != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, c, tt.want)
		}
	}
}

func TestColorMarshal(t *testing.T) {
	out, err := yaml.Marshal(struct {
		C Color `yaml:"c"`
	}{RGB(211, 176, 131)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "#D3B083") {
		t.Errorf("expected hex color in %q", out)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative fps", func(c *Config) { c.Window.TargetFPS = -1 }},
		{"zero fovy", func(c *Config) { c.Camera.Fovy = 0 }},
		{"zero up", func(c *Config) { c.Camera.Up = c.Camera.Up.Mul(0) }},
		{"unknown projection", func(c *Config) { c.Camera.Projection = "fisheye" }},
		{"zero turn speed", func(c *Config) { c.Player.TurnSpeed = 0 }},
		{"negative gravity", func(c *Config) { c.Player.Gravity = -1 }},
		{"zero radius", func(c *Config) { c.Capsule.Radius = 0 }},
		{"too few slices", func(c *Config) { c.Capsule.Slices = 2 }},
		{"zero grid spacing", func(c *Config) { c.Grid.Spacing = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			if err != nil {
				t.Fatalf("Failed to load defaults: %v", err)
			}
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("window: [")); err == nil {
		t.Error("expected a syntax error")
	}
	if _, err := Parse([]byte("window:\n  width: 0\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for an empty config, got %v", err)
	}
}

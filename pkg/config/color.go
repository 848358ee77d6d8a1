package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Color is an RGB color written as "#RRGGBB" in YAML
type Color struct {
	mgl32.Vec3
}

// RGB builds a Color from 8-bit channels
func RGB(r, g, b uint8) Color {
	return Color{mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}}
}

// UnmarshalYAML parses "#RRGGBB"
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	*c = RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	return nil
}

// MarshalYAML writes the color back as "#RRGGBB"
func (c Color) MarshalYAML() (any, error) {
	r := uint8(c.X()*255 + 0.5)
	g := uint8(c.Y()*255 + 0.5)
	b := uint8(c.Z()*255 + 0.5)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), nil
}

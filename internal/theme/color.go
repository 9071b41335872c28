package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is a non-premultiplied sRGB color with components in [0, 1].
type Color struct {
	Red   float32 `yaml:"red"`
	Green float32 `yaml:"green"`
	Blue  float32 `yaml:"blue"`
	Alpha float32 `yaml:"alpha"`
}

// RGBA builds a color from float components.
func RGBA(r, g, b, a float32) Color {
	return Color{Red: r, Green: g, Blue: b, Alpha: a}
}

// FromHex parses "#rrggbb" into an opaque color.
func FromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	return fromColorful(c, 1), nil
}

func mustHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}

	return c
}

func fromColorful(c colorful.Color, alpha float32) Color {
	c = c.Clamped()

	return Color{Red: float32(c.R), Green: float32(c.G), Blue: float32(c.B), Alpha: alpha}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.Red), G: float64(c.Green), B: float64(c.Blue)}
}

// Hex returns "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(alpha float32) Color {
	c.Alpha = alpha
	return c
}

// Mix blends c toward other by t in [0, 1] in linear RGB. The result keeps
// c's alpha.
func (c Color) Mix(other Color, t float64) Color {
	return fromColorful(c.colorful().BlendLinearRgb(other.colorful(), t), c.Alpha)
}

// Lightness returns CIE L* scaled to [0, 1].
func (c Color) Lightness() float64 {
	l, _, _ := c.colorful().Lab()
	return math.Max(0, math.Min(1, l))
}

// UnmarshalYAML accepts either a (red, green, blue[, alpha]) mapping, as
// written by cosmic-config, or a "#rrggbb" string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parsed, err := FromHex(value.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	raw := struct {
		Red   float32  `yaml:"red"`
		Green float32  `yaml:"green"`
		Blue  float32  `yaml:"blue"`
		Alpha *float32 `yaml:"alpha"`
	}{}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*c = Color{Red: raw.Red, Green: raw.Green, Blue: raw.Blue, Alpha: 1}
	if raw.Alpha != nil {
		c.Alpha = *raw.Alpha
	}

	return nil
}

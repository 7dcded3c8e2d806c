package cardkit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Color is an RGB color value object. Each component is in the range [0, 1].
// Color has no identity: two colors with equal components are the same color.
type Color struct {
	R, G, B float64
}

// RGB creates a color from components, clamping each to [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// ParseHex creates a Color from a 6-hex-digit string such as "#FF0000".
// The leading '#' is optional.
func ParseHex(hex string) (Color, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return Color{}, validationf("color", "hex color must be 6 digits (#RRGGBB), got %q", hex)
	}
	var r, g, b uint32
	if !parseHexByte(hex[0:2], &r) || !parseHexByte(hex[2:4], &g) || !parseHexByte(hex[4:6], &b) {
		return Color{}, validationf("color", "invalid hex digits in %q", hex)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

// MustHex is like ParseHex but panics on invalid input. Intended for
// package-level constants and tests.
func MustHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as a 7-character "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		int(clamp01(c.R)*255+0.5), int(clamp01(c.G)*255+0.5), int(clamp01(c.B)*255+0.5))
}

// MarshalYAML encodes the color as its hex string.
func (c Color) MarshalYAML() (any, error) { return c.Hex(), nil }

// UnmarshalYAML decodes a "#RRGGBB" scalar.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var hex string
	if err := node.Decode(&hex); err != nil {
		return err
	}
	parsed, err := ParseHex(hex)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Valid reports whether every component is within [0, 1].
func (c Color) Valid() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// parseHexByte parses a two-digit hex byte into val.
func parseHexByte(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors used in card designs.
var (
	White  = RGB(1, 1, 1)
	Black  = RGB(0, 0, 0)
	Red    = RGB(0.8, 0.1, 0.1)
	Green  = RGB(0.2, 0.5, 0.2)
	Blue   = RGB(0.1, 0.3, 0.7)
	Gold   = RGB(1, 0.84, 0)
	Silver = RGB(0.75, 0.75, 0.75)
)

// validateHexField checks an optional hex color string field, returning a
// ValidationError naming the field on failure. Empty strings are allowed and
// mean "absent".
func validateHexField(field, hex string) error {
	if hex == "" {
		return nil
	}
	if _, err := ParseHex(hex); err != nil {
		return validationf(field, "invalid hex color %q", hex)
	}
	return nil
}

// Package color provides the ARGB color value type used by text layers.
//
// Colors are plain values; all operations return new colors. Luminance and
// blending are delegated to go-colorful so the contrast computation uses
// proper linearized sRGB rather than naive byte averages.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color with an alpha channel.
type Color struct {
	A, R, G, B uint8
}

// Transparent is the fully transparent color.
var Transparent = Color{}

// Common opaque colors.
var (
	Black = Color{A: 255}
	White = Color{A: 255, R: 255, G: 255, B: 255}
)

// FromRGB creates an opaque color from RGB components.
func FromRGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// FromARGB creates a color from alpha and RGB components.
func FromARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromHex parses a color from a hex string ("#RRGGBB" or "#RGB",
// leading # optional). The result is fully opaque.
func FromHex(hex string) (Color, error) {
	if len(hex) > 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
	}
	if len(hex) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return Color{
		A: 255,
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
	}, nil
}

// FromPacked unpacks a color from its packed ARGB integer form.
func FromPacked(argb uint32) Color {
	return Color{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// Packed returns the color as a packed ARGB integer, the form carried by
// color-changed notifications.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// colorful converts to a go-colorful color, dropping alpha.
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Luminance returns the relative luminance of the color in [0, 1],
// computed from linearized sRGB (the Y component of CIE XYZ).
func (c Color) Luminance() float64 {
	_, y, _ := c.colorful().Xyz()
	return y
}

// Contrast returns black for light colors and white for dark ones, judged
// by relative luminance against a 0.5 threshold. The receiver's alpha is
// preserved so translucent fills keep translucent counterparts.
func (c Color) Contrast() Color {
	out := White
	if c.Luminance() > 0.5 {
		out = Black
	}
	out.A = c.A
	return out
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// WithOpacity returns the color with its alpha scaled by the given factor
// in [0, 1].
func (c Color) WithOpacity(opacity float64) Color {
	c.A = uint8(math.Round(float64(c.A) * opacity))
	return c
}

// Blend mixes the color with other in linear RGB. Amount 0 returns c,
// amount 1 returns other. Alpha is interpolated linearly.
func (c Color) Blend(other Color, amount float64) Color {
	mixed := c.colorful().BlendRgb(other.colorful(), amount).Clamped()
	return Color{
		A: uint8(math.Round(float64(c.A)*(1-amount) + float64(other.A)*amount)),
		R: uint8(math.Round(mixed.R * 255)),
		G: uint8(math.Round(mixed.G * 255)),
		B: uint8(math.Round(mixed.B * 255)),
	}
}

// IsTransparent returns true if the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// Hex returns the "#RRGGBB" form of the color, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns a readable form of the color.
func (c Color) String() string {
	if c.IsTransparent() {
		return "transparent"
	}
	if c.A == 255 {
		return c.Hex()
	}
	return fmt.Sprintf("#%02X%02X%02X@%d%%", c.R, c.G, c.B, int(math.Round(float64(c.A)/255*100)))
}

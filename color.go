package doodle

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents a color in HSLA space.
// Hue is in degrees [0, 360); Saturation, Lightness and Alpha are in [0, 1].
//
// Colors are immutable values: every transform returns a new Color, and
// equality is structural (two Colors are == iff all four channels are equal).
// Constructors normalize their inputs (hue wraps mod 360, the other channels
// clamp to [0, 1]) rather than rejecting them.
type Color struct {
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      float64
}

// HSL creates an opaque Color from hue (degrees), saturation and lightness.
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1)
}

// HSLA creates a Color from hue (degrees), saturation, lightness and alpha.
// Out-of-range inputs are normalized, never rejected.
func HSLA(h, s, l, a float64) Color {
	return Color{
		Hue:        wrapDegrees(h),
		Saturation: clamp01(s),
		Lightness:  clamp01(l),
		Alpha:      clamp01(a),
	}
}

// RGB creates an opaque Color from red, green and blue components in [0, 1].
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA creates a Color from red, green, blue and alpha components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	h, s, l := colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}.Hsl()
	return HSLA(h, s, l, a)
}

// ParseHex parses a hex color string into an opaque Color.
// Supports "RRGGBB" and "RGB" forms, with or without a leading '#'.
func ParseHex(hex string) (Color, error) {
	s := hex
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("doodle: invalid hex color %q: %w", hex, err)
	}
	h, sat, l := col.Hsl()
	return HSLA(h, sat, l, 1), nil
}

// MustHex is like ParseHex but panics on a malformed string.
// Intended for color literals in source code.
func MustHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	col, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent input carries no usable channel data.
		return Color{}
	}
	_, _, _, a := c.RGBA()
	h, s, l := col.Hsl()
	return HSLA(h, s, l, float64(a)/65535)
}

// Spin returns a new Color with the hue rotated by the given number of
// degrees. The other channels are unchanged. Spin is total: any angle,
// including negative ones, wraps mod 360.
func (c Color) Spin(degrees float64) Color {
	c.Hue = wrapDegrees(c.Hue + degrees)
	return c
}

// FadeOutBy returns a new Color with the alpha reduced by amount,
// clamped to [0, 1].
func (c Color) FadeOutBy(amount float64) Color {
	c.Alpha = clamp01(c.Alpha - amount)
	return c
}

// FadeInBy returns a new Color with the alpha increased by amount,
// clamped to [0, 1].
func (c Color) FadeInBy(amount float64) Color {
	c.Alpha = clamp01(c.Alpha + amount)
	return c
}

// WithAlpha returns a new Color with the alpha set to a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = clamp01(a)
	return c
}

// Saturate returns a new Color with the saturation increased by amount,
// clamped to [0, 1].
func (c Color) Saturate(amount float64) Color {
	c.Saturation = clamp01(c.Saturation + amount)
	return c
}

// Desaturate returns a new Color with the saturation reduced by amount,
// clamped to [0, 1].
func (c Color) Desaturate(amount float64) Color {
	c.Saturation = clamp01(c.Saturation - amount)
	return c
}

// Lighten returns a new Color with the lightness increased by amount,
// clamped to [0, 1].
func (c Color) Lighten(amount float64) Color {
	c.Lightness = clamp01(c.Lightness + amount)
	return c
}

// Darken returns a new Color with the lightness reduced by amount,
// clamped to [0, 1].
func (c Color) Darken(amount float64) Color {
	c.Lightness = clamp01(c.Lightness - amount)
	return c
}

// RGBA implements the color.Color interface. The returned components are
// alpha-premultiplied, 16 bits per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	col := colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped()
	r = uint32(col.R*c.Alpha*65535 + 0.5)
	g = uint32(col.G*c.Alpha*65535 + 0.5)
	b = uint32(col.B*c.Alpha*65535 + 0.5)
	a = uint32(c.Alpha*65535 + 0.5)
	return
}

// NRGBA returns the color as a non-premultiplied 8-bit color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(c.Alpha)*255 + 0.5)}
}

// Hex returns the color as a "#rrggbb" hex string. Alpha is not encoded.
func (c Color) Hex() string {
	return colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped().Hex()
}

// String returns a compact textual form, e.g. "hsla(225, 0.73, 0.57, 1)".
func (c Color) String() string {
	return fmt.Sprintf("hsla(%.4g, %.4g, %.4g, %.4g)",
		c.Hue, c.Saturation, c.Lightness, c.Alpha)
}

// wrapDegrees normalizes an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

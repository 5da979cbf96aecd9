package doodle

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Common colors, taken from the SVG 1.1 palette in golang.org/x/image/colornames
// and converted to HSLA. All are fully opaque.
var (
	Black     = FromColor(colornames.Black)
	White     = FromColor(colornames.White)
	Red       = FromColor(colornames.Red)
	Green     = FromColor(colornames.Green)
	Blue      = FromColor(colornames.Blue)
	Yellow    = FromColor(colornames.Yellow)
	Cyan      = FromColor(colornames.Cyan)
	Magenta   = FromColor(colornames.Magenta)
	Orange    = FromColor(colornames.Orange)
	Purple    = FromColor(colornames.Purple)
	Pink      = FromColor(colornames.Pink)
	Gold      = FromColor(colornames.Gold)
	Crimson   = FromColor(colornames.Crimson)
	RoyalBlue = FromColor(colornames.Royalblue)
	SkyBlue   = FromColor(colornames.Skyblue)
	SeaGreen  = FromColor(colornames.Seagreen)
)

// Named looks up a color by its SVG 1.1 name ("royalblue", "seagreen", ...).
// Lookup is case-insensitive. The second return value reports whether the
// name is known.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

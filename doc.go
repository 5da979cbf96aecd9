// Package doodle provides a small compositional 2D picture-description
// library for Go.
//
// # Overview
//
// doodle describes pictures as immutable values. An Image is a tree of
// primitive shapes (squares, circles), composites (Beside, On) and style
// layers (FillColor, StrokeColor, StrokeWidth). Nothing here rasterizes:
// the library's contract is that a finished Image value, together with
// its Layout, fully describes shape, position and style for whatever
// backend consumes it.
//
// # Quick Start
//
//	import doodle "github.com/jocovi55/creative-scala"
//
//	// Two squares side by side, the left one royal blue.
//	img := doodle.Square(20).FillColor(doodle.RoyalBlue).Beside(doodle.Square(30))
//
//	box := img.Bounds()       // Box{Width: 50, Height: 30}
//	ops := img.Layout()       // placed, styled primitives in paint order
//
// # Value Semantics
//
// Every combinator returns a new Image; no method mutates its receiver.
// The same holds for Color: Spin, FadeOutBy and friends return fresh
// values. Trees may therefore share subtrees freely.
//
// # Coordinate System
//
// Layout uses standard computer graphics coordinates:
//   - Origin at the bounding-box center of the root image
//   - X increases right
//   - Y increases down
//   - Hue angles in degrees, 0 is red, increases toward green
//
// Beside aligns bottoms on a shared baseline; On centers its operands on
// a common origin, first operand painted last (on top).
package doodle

// Version is the current version of the library.
const Version = "0.1.0"

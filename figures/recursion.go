// Package figures builds small recursive pictures on top of the doodle
// image model: rows of growing or color-shifting boxes and stacks of
// concentric or fading circles.
//
// Every figure is a structural recursion over a count: the base case
// yields doodle.Empty, and each step combines one layer with the
// recursion on count-1. Two equivalent strategies are provided as
// generic helpers. Build threads auxiliary state through the recursion
// and transforms it per step; BuildIndexed computes each layer from its
// step index in closed form. A figure written with one can always be
// rewritten with the other.
package figures

import (
	doodle "github.com/jocovi55/creative-scala"
)

// Build constructs an image by structural recursion over count, carrying
// auxiliary state of type S.
//
// When count is zero the result is doodle.Empty. Otherwise one layer is
// built from the current state and combined with the recursion on
// count-1 and next(state). combine receives the current layer first and
// the already-built remainder second.
//
// Build panics if count is negative: a negative count is a caller error,
// not a degenerate picture. Recursion depth, and therefore stack usage,
// is linear in count.
func Build[S any](count int, state S, next func(S) S, layer func(S) doodle.Image, combine func(layer, rest doodle.Image) doodle.Image) doodle.Image {
	if count < 0 {
		panic("figures: negative count")
	}
	if count == 0 {
		return doodle.Empty
	}
	return combine(layer(state), Build(count-1, next(state), next, layer, combine))
}

// BuildIndexed constructs an image by structural recursion over count,
// computing each layer from its zero-based step index instead of carried
// state. Layer 0 is the outermost combine operand, matching Build's
// ordering, so the two helpers produce Equal images for equivalent layer
// functions.
//
// BuildIndexed panics if count is negative.
func BuildIndexed(count int, layer func(i int) doodle.Image, combine func(layer, rest doodle.Image) doodle.Image) doodle.Image {
	if count < 0 {
		panic("figures: negative count")
	}
	var rec func(i int) doodle.Image
	rec = func(i int) doodle.Image {
		if i == count {
			return doodle.Empty
		}
		return combine(layer(i), rec(i+1))
	}
	return rec(0)
}

package doodle

import "math"

// ShapeKind identifies the primitive shape of a Placed entry.
type ShapeKind int

const (
	// ShapeSquare is an axis-aligned square; Size is the side length.
	ShapeSquare ShapeKind = iota
	// ShapeCircle is a circle; Size is the radius.
	ShapeCircle
)

// Placed is one primitive shape resolved to its final position and style.
// A slice of Placed values is everything a rendering backend needs to
// draw an image.
type Placed struct {
	// Shape is the primitive kind.
	Shape ShapeKind

	// Size is the side length for squares and the radius for circles.
	Size float64

	// At is the shape's center, relative to the bounding-box center of
	// the root image. Y grows downward.
	At Point

	// Style is the fully resolved style for this shape.
	Style Style
}

// Layout resolves the image tree into placed, styled primitives in paint
// order: back-to-front for On, left-to-right for Beside. Degenerate
// (zero-size) shapes are still emitted so that callers see the full
// structure; backends may skip them.
//
// Positions follow the rules documented on Beside and On: Beside aligns
// operand bottoms on a shared baseline, On centers operands on a common
// origin.
func (img Image) Layout() []Placed {
	var out []Placed
	place(img.root(), Point{}, Style{}, &out)
	Logger().Debug("layout resolved",
		"primitives", len(out),
		"bounds", img.Bounds())
	return out
}

func place(n node, at Point, outer Style, out *[]Placed) {
	switch n := n.(type) {
	case emptyNode:
	case squareNode:
		*out = append(*out, Placed{Shape: ShapeSquare, Size: n.side, At: at, Style: outer})
	case circleNode:
		*out = append(*out, Placed{Shape: ShapeCircle, Size: n.radius, At: at, Style: outer})
	case besideNode:
		l, r := bounds(n.left), bounds(n.right)
		width := l.Width + r.Width
		height := math.Max(l.Height, r.Height)
		// Bottoms sit on the combined box's bottom edge (+height/2, y down).
		leftAt := at.Add(Pt(-width/2+l.Width/2, height/2-l.Height/2))
		rightAt := at.Add(Pt(-width/2+l.Width+r.Width/2, height/2-r.Height/2))
		place(n.left, leftAt, outer, out)
		place(n.right, rightAt, outer, out)
	case onNode:
		place(n.bottom, at, outer, out)
		place(n.top, at, outer, out)
	case styleNode:
		place(n.child, at, n.delta.overriddenBy(outer), out)
	}
}

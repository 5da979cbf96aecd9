package doodle

import (
	"fmt"
	"math"
)

// Image is an immutable description of a 2D picture: a tree of primitive
// shapes, composites and style layers. The zero value is the empty image.
//
// Images are built with the Square, Circle and Empty constructors and
// combined with the Beside, On and style combinators. Every combinator
// returns a new Image; the operand tree is never mutated once built, so
// subtrees may be shared freely between images.
type Image struct {
	n node
}

// Empty is the zero-size image. It is the identity element for both
// Beside and On: combining any image with Empty yields an image
// equivalent to the other operand.
var Empty = Image{n: emptyNode{}}

// node is the sealed variant type behind Image.
// Only types in this package implement it.
type node interface {
	// nodeMarker is an unexported method that seals this interface.
	nodeMarker()
}

type emptyNode struct{}

// squareNode is an axis-aligned square with the given side length.
type squareNode struct {
	side float64
}

// circleNode is a circle with the given radius.
type circleNode struct {
	radius float64
}

// besideNode places right immediately to the right of left,
// bottoms aligned on a shared baseline.
type besideNode struct {
	left, right node
}

// onNode layers top over bottom, both centered on a common origin.
type onNode struct {
	top, bottom node
}

// styleNode attaches one style attribute to child. Nested style nodes
// resolve outermost-first, so the most recent setting of an attribute wins.
type styleNode struct {
	child node
	delta Style
}

func (emptyNode) nodeMarker()  {}
func (squareNode) nodeMarker() {}
func (circleNode) nodeMarker() {}
func (besideNode) nodeMarker() {}
func (onNode) nodeMarker()     {}
func (styleNode) nodeMarker()  {}

// root returns the underlying node, mapping the zero Image to empty.
func (img Image) root() node {
	if img.n == nil {
		return emptyNode{}
	}
	return img.n
}

// Square creates a square image with the given side length, centered on
// its own origin. A negative side is normalized to zero, producing a
// degenerate (invisible) image rather than an error.
func Square(side float64) Image {
	return Image{n: squareNode{side: math.Max(side, 0)}}
}

// Circle creates a circle image with the given radius, centered on its
// own origin. A negative radius is normalized to zero.
func Circle(radius float64) Image {
	return Image{n: circleNode{radius: math.Max(radius, 0)}}
}

// Beside returns a new image placing right immediately to the right of
// the receiver, bottoms aligned on a shared baseline. The combined width
// is the sum of the two widths; the height is the larger of the two.
// Beside is associative but not commutative; Empty is an identity.
func (img Image) Beside(right Image) Image {
	return Image{n: besideNode{left: img.root(), right: right.root()}}
}

// On returns a new image layering the receiver over below, both centered
// on a common origin. The combined bounding box is the component-wise
// maximum of the two. Order affects paint order only (the receiver is
// painted last, on top), not geometry. Empty is an identity.
func (img Image) On(below Image) Image {
	return Image{n: onNode{top: img.root(), bottom: below.root()}}
}

// FillColor returns a new image with the fill color set to c.
// A later FillColor call overrides an earlier one; stroke attributes
// are unaffected.
func (img Image) FillColor(c Color) Image {
	return Image{n: styleNode{child: img.root(), delta: Style{Fill: c, HasFill: true}}}
}

// StrokeColor returns a new image with the stroke color set to c.
func (img Image) StrokeColor(c Color) Image {
	return Image{n: styleNode{child: img.root(), delta: Style{Stroke: c, HasStroke: true}}}
}

// StrokeWidth returns a new image with the stroke width set to w.
// A negative width is normalized to zero.
func (img Image) StrokeWidth(w float64) Image {
	return Image{n: styleNode{
		child: img.root(),
		delta: Style{StrokeWidth: math.Max(w, 0), HasStrokeWidth: true},
	}}
}

// Equal reports whether two images are structurally equivalent.
// Empty operands of Beside and On are discarded before comparison, so
// Empty.Beside(a), a.Beside(Empty) and a are all Equal. Style layers and
// channel values compare exactly.
func (img Image) Equal(other Image) bool {
	return normalize(img.root()) == normalize(other.root())
}

// normalize rewrites a tree bottom-up, dropping Empty operands from
// composites. The result of normalizing equivalent trees is identical,
// which makes plain interface equality sufficient in Equal: every node
// variant is a comparable struct.
func normalize(n node) node {
	switch n := n.(type) {
	case besideNode:
		l, r := normalize(n.left), normalize(n.right)
		if l == (emptyNode{}) {
			return r
		}
		if r == (emptyNode{}) {
			return l
		}
		return besideNode{left: l, right: r}
	case onNode:
		t, b := normalize(n.top), normalize(n.bottom)
		if t == (emptyNode{}) {
			return b
		}
		if b == (emptyNode{}) {
			return t
		}
		return onNode{top: t, bottom: b}
	case styleNode:
		return styleNode{child: normalize(n.child), delta: n.delta}
	default:
		return n
	}
}

// String returns the image in combinator notation, e.g.
// "beside(square(10), on(circle(5), empty))".
func (img Image) String() string {
	return describe(img.root())
}

func describe(n node) string {
	switch n := n.(type) {
	case emptyNode:
		return "empty"
	case squareNode:
		return fmt.Sprintf("square(%g)", n.side)
	case circleNode:
		return fmt.Sprintf("circle(%g)", n.radius)
	case besideNode:
		return fmt.Sprintf("beside(%s, %s)", describe(n.left), describe(n.right))
	case onNode:
		return fmt.Sprintf("on(%s, %s)", describe(n.top), describe(n.bottom))
	case styleNode:
		switch {
		case n.delta.HasFill:
			return fmt.Sprintf("fill(%s, %s)", describe(n.child), n.delta.Fill)
		case n.delta.HasStroke:
			return fmt.Sprintf("stroke(%s, %s)", describe(n.child), n.delta.Stroke)
		default:
			return fmt.Sprintf("strokeWidth(%s, %g)", describe(n.child), n.delta.StrokeWidth)
		}
	default:
		return "unknown"
	}
}

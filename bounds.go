package doodle

import "math"

// Box is the bounding box of an image: its total width and height.
// Boxes are centered on the image's origin, so a box extends Width/2
// to each side and Height/2 above and below.
type Box struct {
	Width, Height float64
}

// Bounds returns the bounding box of the image.
//
// Primitive boxes are side×side for squares and 2r×2r for circles.
// Beside sums widths and takes the larger height; On takes the
// component-wise maximum. Style layers do not affect geometry (stroke
// width is not included in the box).
func (img Image) Bounds() Box {
	return bounds(img.root())
}

func bounds(n node) Box {
	switch n := n.(type) {
	case emptyNode:
		return Box{}
	case squareNode:
		return Box{Width: n.side, Height: n.side}
	case circleNode:
		return Box{Width: 2 * n.radius, Height: 2 * n.radius}
	case besideNode:
		l, r := bounds(n.left), bounds(n.right)
		return Box{
			Width:  l.Width + r.Width,
			Height: math.Max(l.Height, r.Height),
		}
	case onNode:
		t, b := bounds(n.top), bounds(n.bottom)
		return Box{
			Width:  math.Max(t.Width, b.Width),
			Height: math.Max(t.Height, b.Height),
		}
	case styleNode:
		return bounds(n.child)
	default:
		return Box{}
	}
}

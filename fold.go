package doodle

// Algebra defines one handler per image variant for Fold. All fields
// must be non-nil.
//
// Fold is the structural traversal offered to external consumers:
// backends and analyses can reduce an image tree to any summary value
// without depending on the package's internal representation.
type Algebra[T any] struct {
	// Empty handles the empty image.
	Empty func() T

	// Square handles a square primitive with the given side length.
	Square func(side float64) T

	// Circle handles a circle primitive with the given radius.
	Circle func(radius float64) T

	// Beside combines the already-folded left and right operands.
	Beside func(left, right T) T

	// On combines the already-folded top and bottom operands.
	On func(top, bottom T) T

	// Styled handles a style layer wrapping an already-folded child.
	// delta carries only the attribute set by that layer.
	Styled func(child T, delta Style) T
}

// Fold reduces an image tree bottom-up using the given algebra.
func Fold[T any](img Image, alg Algebra[T]) T {
	return foldNode(img.root(), alg)
}

func foldNode[T any](n node, alg Algebra[T]) T {
	switch n := n.(type) {
	case emptyNode:
		return alg.Empty()
	case squareNode:
		return alg.Square(n.side)
	case circleNode:
		return alg.Circle(n.radius)
	case besideNode:
		return alg.Beside(foldNode(n.left, alg), foldNode(n.right, alg))
	case onNode:
		return alg.On(foldNode(n.top, alg), foldNode(n.bottom, alg))
	case styleNode:
		return alg.Styled(foldNode(n.child, alg), n.delta)
	default:
		return alg.Empty()
	}
}

// Count returns the number of primitive shapes in the image.
func (img Image) Count() int {
	return Fold(img, Algebra[int]{
		Empty:  func() int { return 0 },
		Square: func(float64) int { return 1 },
		Circle: func(float64) int { return 1 },
		Beside: func(l, r int) int { return l + r },
		On:     func(t, b int) int { return t + b },
		Styled: func(c int, _ Style) int { return c },
	})
}

// Depth returns the height of the image tree. Empty has depth zero,
// a bare primitive has depth one. Useful for reasoning about the stack
// depth of recursively built images.
func (img Image) Depth() int {
	return Fold(img, Algebra[int]{
		Empty:  func() int { return 0 },
		Square: func(float64) int { return 1 },
		Circle: func(float64) int { return 1 },
		Beside: func(l, r int) int { return 1 + max(l, r) },
		On:     func(t, b int) int { return 1 + max(t, b) },
		Styled: func(c int, _ Style) int { return 1 + c },
	})
}

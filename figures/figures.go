package figures

import (
	doodle "github.com/jocovi55/creative-scala"
)

// Per-step transforms shared by the figures below.
const (
	growStep    = 10   // side increase per growing box
	gradientHue = 15   // hue spin per gradient box, degrees
	boxSide     = 50   // side of each gradient box
	circleStep  = 5    // radius increase per concentric circle
	fadeStep    = 7    // radius increase per fading circle
	fadeAmount  = 0.05 // alpha lost per fading circle
)

// GrowingBoxes builds a row of count squares, left to right, starting at
// the given side length and growing by 10 per step:
//
//	GrowingBoxes(3, 10) ≡ Square(10).Beside(Square(20).Beside(Square(30).Beside(Empty)))
func GrowingBoxes(count int, side float64) doodle.Image {
	return Build(count, side,
		func(s float64) float64 { return s + growStep },
		func(s float64) doodle.Image { return doodle.Square(s) },
		doodle.Image.Beside,
	)
}

// GrowingBoxesClosedForm is GrowingBoxes with each side computed from the
// step index instead of carried through the recursion. The two produce
// Equal images; they differ only in where the per-layer formula lives.
func GrowingBoxesClosedForm(count int, side float64) doodle.Image {
	return BuildIndexed(count,
		func(i int) doodle.Image { return doodle.Square(side + growStep*float64(i)) },
		doodle.Image.Beside,
	)
}

// GradientBoxes builds a row of count 50-unit squares, left to right,
// filled with the given color spun 15 degrees further at each step.
func GradientBoxes(count int, c doodle.Color) doodle.Image {
	return Build(count, c,
		func(c doodle.Color) doodle.Color { return c.Spin(gradientHue) },
		func(c doodle.Color) doodle.Image { return doodle.Square(boxSide).FillColor(c) },
		doodle.Image.Beside,
	)
}

// ConcentricCircles builds count circles layered on a common center,
// starting at the given radius and growing by 5 per step. The first
// (smallest) circle is painted last, on top.
func ConcentricCircles(count int, radius float64) doodle.Image {
	return Build(count, radius,
		func(r float64) float64 { return r + circleStep },
		func(r float64) doodle.Image { return doodle.Circle(r) },
		doodle.Image.On,
	)
}

// ConcentricCirclesClosedForm is ConcentricCircles with each radius
// computed from the step index. Produces an image Equal to
// ConcentricCircles for the same arguments.
func ConcentricCirclesClosedForm(count int, radius float64) doodle.Image {
	return BuildIndexed(count,
		func(i int) doodle.Image { return doodle.Circle(radius + circleStep*float64(i)) },
		doodle.Image.On,
	)
}

// fadeState carries both auxiliary parameters of FadeCircles.
type fadeState struct {
	radius float64
	color  doodle.Color
}

// FadeCircles builds count circles layered on a common center, starting
// at the given radius and color; each step grows the radius by 7 and
// fades the fill out by 0.05. The first (smallest, most opaque) circle
// is painted on top.
func FadeCircles(count int, radius float64, c doodle.Color) doodle.Image {
	return Build(count, fadeState{radius: radius, color: c},
		func(s fadeState) fadeState {
			return fadeState{radius: s.radius + fadeStep, color: s.color.FadeOutBy(fadeAmount)}
		},
		func(s fadeState) doodle.Image { return doodle.Circle(s.radius).FillColor(s.color) },
		doodle.Image.On,
	)
}

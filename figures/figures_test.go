package figures

import (
	"testing"

	doodle "github.com/jocovi55/creative-scala"
)

func TestGrowingBoxes_Structure(t *testing.T) {
	got := GrowingBoxes(3, 10)
	want := doodle.Square(10).
		Beside(doodle.Square(20).
			Beside(doodle.Square(30).
				Beside(doodle.Empty)))
	if !got.Equal(want) {
		t.Errorf("GrowingBoxes(3, 10) = %s, want %s", got, want)
	}
}

func TestGrowingBoxes_ZeroCount(t *testing.T) {
	for _, size := range []float64{0, 10, 1e6} {
		if got := GrowingBoxes(0, size); !got.Equal(doodle.Empty) {
			t.Errorf("GrowingBoxes(0, %g) = %s, want empty", size, got)
		}
	}
}

func TestGradientBoxes_FillColors(t *testing.T) {
	got := GradientBoxes(2, doodle.RoyalBlue)
	want := doodle.Square(50).FillColor(doodle.RoyalBlue).
		Beside(doodle.Square(50).FillColor(doodle.RoyalBlue.Spin(15)).
			Beside(doodle.Empty))
	if !got.Equal(want) {
		t.Errorf("GradientBoxes(2, royalBlue) = %s, want %s", got, want)
	}

	// Emission order is left to right.
	placed := got.Layout()
	if len(placed) != 2 {
		t.Fatalf("got %d placed shapes, want 2", len(placed))
	}
	if placed[0].Style.Fill != doodle.RoyalBlue {
		t.Errorf("first box fill = %v, want royalBlue", placed[0].Style.Fill)
	}
	if placed[1].Style.Fill != doodle.RoyalBlue.Spin(15) {
		t.Errorf("second box fill = %v, want royalBlue spun 15", placed[1].Style.Fill)
	}
}

func TestConcentricCircles_Structure(t *testing.T) {
	got := ConcentricCircles(2, 50)
	want := doodle.Circle(50).
		On(doodle.Circle(55).
			On(doodle.Empty))
	if !got.Equal(want) {
		t.Errorf("ConcentricCircles(2, 50) = %s, want %s", got, want)
	}

	// The first (innermost) circle is painted last, on top.
	placed := got.Layout()
	if len(placed) != 2 {
		t.Fatalf("got %d placed shapes, want 2", len(placed))
	}
	if placed[0].Size != 55 || placed[1].Size != 50 {
		t.Errorf("paint-order radii = [%g, %g], want [55, 50]", placed[0].Size, placed[1].Size)
	}
}

func TestFadeCircles_AlphasAndSizes(t *testing.T) {
	got := FadeCircles(2, 50, doodle.Red)
	want := doodle.Circle(50).FillColor(doodle.Red).
		On(doodle.Circle(57).FillColor(doodle.Red.FadeOutBy(0.05)).
			On(doodle.Empty))
	if !got.Equal(want) {
		t.Errorf("FadeCircles(2, 50, red) = %s, want %s", got, want)
	}

	placed := got.Layout()
	if len(placed) != 2 {
		t.Fatalf("got %d placed shapes, want 2", len(placed))
	}
	// Paint order is back-to-front: the faded outer circle first.
	if placed[0].Size != 57 || placed[0].Style.Fill.Alpha != 0.95 {
		t.Errorf("outer circle = size %g alpha %g, want 57 and 0.95",
			placed[0].Size, placed[0].Style.Fill.Alpha)
	}
	if placed[1].Size != 50 || placed[1].Style.Fill.Alpha != 1.0 {
		t.Errorf("inner circle = size %g alpha %g, want 50 and 1",
			placed[1].Size, placed[1].Style.Fill.Alpha)
	}
}

func TestClosedFormVariantsMatch(t *testing.T) {
	for count := 0; count <= 5; count++ {
		aux := GrowingBoxes(count, 10)
		closed := GrowingBoxesClosedForm(count, 10)
		if !aux.Equal(closed) {
			t.Errorf("GrowingBoxes variants differ at count %d: %s vs %s", count, aux, closed)
		}

		auxC := ConcentricCircles(count, 50)
		closedC := ConcentricCirclesClosedForm(count, 50)
		if !auxC.Equal(closedC) {
			t.Errorf("ConcentricCircles variants differ at count %d: %s vs %s", count, auxC, closedC)
		}
	}
}

func TestNegativeCountPanics(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"Build", func() { GrowingBoxes(-1, 10) }},
		{"BuildIndexed", func() { GrowingBoxesClosedForm(-1, 10) }},
		{"GradientBoxes", func() { GradientBoxes(-3, doodle.RoyalBlue) }},
		{"FadeCircles", func() { FadeCircles(-1, 50, doodle.Red) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("negative count did not panic")
				}
			}()
			tt.call()
		})
	}
}

func TestBuild_CombineOrder(t *testing.T) {
	// combine receives the current layer first, the remainder second.
	got := Build(2, 1.0,
		func(s float64) float64 { return s * 2 },
		func(s float64) doodle.Image { return doodle.Circle(s) },
		doodle.Image.On,
	)
	want := doodle.Circle(1).On(doodle.Circle(2).On(doodle.Empty))
	if !got.Equal(want) {
		t.Errorf("Build = %s, want %s", got, want)
	}
}

func TestFigureCounts(t *testing.T) {
	for count := 0; count <= 4; count++ {
		if got := GrowingBoxes(count, 10).Count(); got != count {
			t.Errorf("GrowingBoxes(%d).Count() = %d", count, got)
		}
		if got := FadeCircles(count, 50, doodle.Red).Count(); got != count {
			t.Errorf("FadeCircles(%d).Count() = %d", count, got)
		}
	}
}

package doodle

import (
	"testing"
)

func TestEmpty_IsBesideIdentity(t *testing.T) {
	a := Square(10).FillColor(Red)

	if !Empty.Beside(a).Equal(a) {
		t.Error("Beside(Empty, a) not equivalent to a")
	}
	if !a.Beside(Empty).Equal(a) {
		t.Error("Beside(a, Empty) not equivalent to a")
	}
}

func TestEmpty_IsOnIdentity(t *testing.T) {
	a := Circle(5).StrokeColor(Blue)

	if !Empty.On(a).Equal(a) {
		t.Error("On(Empty, a) not equivalent to a")
	}
	if !a.On(Empty).Equal(a) {
		t.Error("On(a, Empty) not equivalent to a")
	}
}

func TestZeroImage_IsEmpty(t *testing.T) {
	var zero Image
	if !zero.Equal(Empty) {
		t.Error("zero Image not equal to Empty")
	}
	if got := zero.Bounds(); got != (Box{}) {
		t.Errorf("zero Image bounds = %v, want zero box", got)
	}
	if got := len(zero.Layout()); got != 0 {
		t.Errorf("zero Image layout has %d entries, want 0", got)
	}
}

func TestEqual_DistinguishesStructure(t *testing.T) {
	tests := []struct {
		name string
		a, b Image
		want bool
	}{
		{"same primitive", Square(10), Square(10), true},
		{"different size", Square(10), Square(11), false},
		{"different shape", Square(10), Circle(5), false},
		{"beside order matters", Square(10).Beside(Square(20)), Square(20).Beside(Square(10)), false},
		{"nested empties collapse", Square(10).Beside(Empty.On(Empty)), Square(10), true},
		{"same style", Square(10).FillColor(Red), Square(10).FillColor(Red), true},
		{"different fill", Square(10).FillColor(Red), Square(10).FillColor(Blue), false},
		{"style layer is significant", Square(10).FillColor(Red), Square(10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		img  Image
		want Box
	}{
		{"empty", Empty, Box{}},
		{"square", Square(10), Box{Width: 10, Height: 10}},
		{"circle", Circle(50), Box{Width: 100, Height: 100}},
		{"negative side normalizes", Square(-5), Box{}},
		{"beside sums widths", Square(10).Beside(Square(20)), Box{Width: 30, Height: 20}},
		{"beside with empty", Square(10).Beside(Empty), Box{Width: 10, Height: 10}},
		{"on takes max", Circle(10).On(Square(30)), Box{Width: 30, Height: 30}},
		{"style does not change geometry", Square(10).FillColor(Red).StrokeWidth(4), Box{Width: 10, Height: 10}},
		{
			"mixed tree",
			Circle(10).On(Square(30)).Beside(Square(10)),
			Box{Width: 40, Height: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.img.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDegenerateSizes(t *testing.T) {
	if !Square(-5).Equal(Square(0)) {
		t.Error("negative side did not normalize to zero")
	}
	if !Circle(-1).Equal(Circle(0)) {
		t.Error("negative radius did not normalize to zero")
	}
	// Degenerate shapes are still part of the structure.
	if got := Square(0).Count(); got != 1 {
		t.Errorf("Square(0).Count() = %d, want 1", got)
	}
}

func TestString(t *testing.T) {
	img := Square(10).FillColor(HSL(0, 1, 0.5)).Beside(Circle(5).On(Empty))
	want := "beside(fill(square(10), hsla(0, 1, 0.5, 1)), on(circle(5), empty))"
	if got := img.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

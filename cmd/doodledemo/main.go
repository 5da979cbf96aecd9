// Command doodledemo prints the recursive figures from the figures
// package in combinator notation, together with their bounds and
// resolved layout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	doodle "github.com/jocovi55/creative-scala"
	"github.com/jocovi55/creative-scala/figures"
)

func main() {
	var (
		count   = flag.Int("count", 3, "number of recursive layers")
		size    = flag.Float64("size", 10, "starting size (side or radius)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		doodle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *count < 0 {
		fmt.Fprintln(os.Stderr, "count must be nonnegative")
		os.Exit(2)
	}

	demos := []struct {
		name string
		img  doodle.Image
	}{
		{"growingBoxes", figures.GrowingBoxes(*count, *size)},
		{"gradientBoxes", figures.GradientBoxes(*count, doodle.RoyalBlue)},
		{"concentricCircles", figures.ConcentricCircles(*count, *size)},
		{"fadeCircles", figures.FadeCircles(*count, *size, doodle.Red)},
	}

	for _, d := range demos {
		box := d.img.Bounds()
		fmt.Printf("%s(%d):\n", d.name, *count)
		fmt.Printf("  %s\n", d.img)
		fmt.Printf("  bounds %gx%g, %d shapes, depth %d\n",
			box.Width, box.Height, d.img.Count(), d.img.Depth())
		for _, p := range d.img.Layout() {
			shape := "square"
			if p.Shape == doodle.ShapeCircle {
				shape = "circle"
			}
			fmt.Printf("    %s size=%g at=(%g, %g)", shape, p.Size, p.At.X, p.At.Y)
			if p.Style.HasFill {
				fmt.Printf(" fill=%s", p.Style.Fill)
			}
			fmt.Println()
		}
	}
}

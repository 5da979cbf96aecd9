package doodle

// Style is the resolved styling of a primitive shape: an optional fill
// color, an optional stroke color and an optional stroke width. The Has*
// flags record which attributes were set; unset attributes are left to
// the consuming backend's defaults.
type Style struct {
	// Fill is the fill color. Meaningful only when HasFill is true.
	Fill Color

	// Stroke is the stroke (outline) color. Meaningful only when
	// HasStroke is true.
	Stroke Color

	// StrokeWidth is the stroke width, always nonnegative. Meaningful
	// only when HasStrokeWidth is true.
	StrokeWidth float64

	HasFill        bool
	HasStroke      bool
	HasStrokeWidth bool
}

// overriddenBy overlays outer on s. Attributes already set in outer win;
// attributes set only in s fill the gaps. Used while resolving nested
// style layers, where the outermost (most recent) setting takes
// precedence.
func (s Style) overriddenBy(outer Style) Style {
	out := outer
	if !out.HasFill && s.HasFill {
		out.Fill, out.HasFill = s.Fill, true
	}
	if !out.HasStroke && s.HasStroke {
		out.Stroke, out.HasStroke = s.Stroke, true
	}
	if !out.HasStrokeWidth && s.HasStrokeWidth {
		out.StrokeWidth, out.HasStrokeWidth = s.StrokeWidth, true
	}
	return out
}

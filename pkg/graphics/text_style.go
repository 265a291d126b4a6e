package graphics

// FontWeight selects the text weight.
type FontWeight int

const (
	// FontWeightNormal is the regular text weight.
	FontWeightNormal FontWeight = iota
	// FontWeightBold is the bold text weight.
	FontWeightBold
)

// TextStyle describes how a run of text should be drawn. Rendering is the
// host's responsibility; velt only carries the description through the
// style service into draw commands.
type TextStyle struct {
	// FontFamily names the font. Empty means the host default.
	FontFamily string

	// FontSize is the size in logical pixels. Zero means the host default.
	FontSize float64

	// Weight selects normal or bold.
	Weight FontWeight

	// Color is the fill color of the glyphs.
	Color Color
}

// WithColor returns a copy of the style with the given color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

package layout

import "github.com/go-velt/velt/pkg/graphics"

// StripMode selects how segment widths are computed.
type StripMode int

const (
	// StripEqual splits the available width evenly across segments.
	StripEqual StripMode = iota
	// StripIntrinsic sizes each segment to its content width.
	StripIntrinsic
)

// Strip computes the segment rectangles of a tab bar or segmented
// button. Widths are the intrinsic content widths, consulted only in
// StripIntrinsic mode. Rectangles are relative to the container origin.
func Strip(widths []float64, mode StripMode, availableWidth, height, spacing float64) []graphics.Rect {
	count := len(widths)
	if count == 0 {
		return nil
	}

	segments := make([]graphics.Rect, count)
	var x float64
	switch mode {
	case StripEqual:
		width := (availableWidth - spacing*float64(count-1)) / float64(count)
		if width < 0 {
			width = 0
		}
		for i := range segments {
			segments[i] = graphics.RectFromLTWH(x, 0, width, height)
			x += width + spacing
		}
	default:
		for i, width := range widths {
			if width < 0 {
				width = 0
			}
			segments[i] = graphics.RectFromLTWH(x, 0, width, height)
			x += width + spacing
		}
	}
	return segments
}

// ClampIndex clamps an index into [0, count). Counts below one return 0.
func ClampIndex(index, count int) int {
	if count < 1 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}

// HitSegment returns the index of the segment containing x, or -1.
// Segments are as returned by Strip, offset by originX.
func HitSegment(segments []graphics.Rect, originX, x float64) int {
	for i, segment := range segments {
		if x >= originX+segment.Left && x < originX+segment.Right {
			return i
		}
	}
	return -1
}

package overlay

import "github.com/go-velt/velt/pkg/graphics"

// Place computes the screen rectangle for overlay content of the given
// size relative to an anchor, within a viewport.
//
// The preferred position is below the anchor, left-aligned with it. If
// the content overflows the viewport on an axis, the overlay flips to the
// opposite side of the anchor on that axis. After flipping, both axes are
// clamped into the viewport by translation only; content is never
// resized.
func Place(anchor graphics.Rect, content graphics.Size, viewport graphics.Rect) graphics.Rect {
	x := anchor.Left
	y := anchor.Bottom

	// Flip per axis when the preferred side overflows.
	if x+content.Width > viewport.Right {
		x = anchor.Right - content.Width
	}
	if y+content.Height > viewport.Bottom {
		y = anchor.Top - content.Height
	}

	// Clamp by translation. Done after flipping so a near-edge anchor
	// opens toward the free side instead of being cut mid-content.
	x = clampAxis(x, content.Width, viewport.Left, viewport.Right)
	y = clampAxis(y, content.Height, viewport.Top, viewport.Bottom)

	return graphics.RectFromLTWH(x, y, content.Width, content.Height)
}

// clampAxis translates a 1D span into [min, max]. Spans larger than the
// viewport pin to the leading edge.
func clampAxis(pos, extent, min, max float64) float64 {
	if pos+extent > max {
		pos = max - extent
	}
	if pos < min {
		pos = min
	}
	return pos
}

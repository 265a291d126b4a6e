// Package floating provides the bare floating-element primitive: request
// builders and alignment helpers for positioning non-modal layers. The
// picker components build their popups on it; badges use its corner
// alignment.
package floating

import (
	"fmt"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/graphics"
)

// PopupID returns the conventional instance id for a popup owned by the
// given instance.
func PopupID(owner core.ID) core.ID {
	return core.ID(fmt.Sprintf("%s/popup", owner))
}

// Request builds a floating-class overlay request anchored to a
// rectangle. Floating layers do not participate in exclusivity.
func Request(owner core.ID, anchor graphics.Rect, content core.Node, dismissOnOutsideClick bool) *core.OverlayRequest {
	return &core.OverlayRequest{
		Owner:                 owner,
		Anchor:                anchor,
		Content:               content,
		Class:                 core.ClassFloating,
		DismissOnOutsideClick: dismissOnOutsideClick,
	}
}

// Alignment names a corner or edge of an anchor rectangle.
type Alignment int

const (
	// TopLeft aligns to the anchor's top-left corner.
	TopLeft Alignment = iota
	// TopRight aligns to the anchor's top-right corner.
	TopRight
	// BottomLeft aligns to the anchor's bottom-left corner.
	BottomLeft
	// BottomRight aligns to the anchor's bottom-right corner.
	BottomRight
)

// Align centers content of the given size on a corner of the anchor.
func Align(anchor graphics.Rect, content graphics.Size, alignment Alignment) graphics.Rect {
	var corner graphics.Offset
	switch alignment {
	case TopLeft:
		corner = graphics.Offset{X: anchor.Left, Y: anchor.Top}
	case TopRight:
		corner = graphics.Offset{X: anchor.Right, Y: anchor.Top}
	case BottomLeft:
		corner = graphics.Offset{X: anchor.Left, Y: anchor.Bottom}
	default:
		corner = graphics.Offset{X: anchor.Right, Y: anchor.Bottom}
	}
	return graphics.RectFromLTWH(
		corner.X-content.Width/2,
		corner.Y-content.Height/2,
		content.Width,
		content.Height,
	)
}

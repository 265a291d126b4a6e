package floating_test

import (
	"testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/widgets/floating"
)

func TestPopupID_DerivesFromOwner(t *testing.T) {
	if got := floating.PopupID("field"); got != "field/popup" {
		t.Fatalf("popup id = %q, want %q", got, "field/popup")
	}
}

func TestRequest_BuildsFloatingClass(t *testing.T) {
	anchor := graphics.RectFromLTWH(10, 20, 30, 40)
	request := floating.Request("field", anchor, nil, true)

	if request.Class != core.ClassFloating {
		t.Fatalf("class = %v, want floating", request.Class)
	}
	if request.Owner != "field" {
		t.Fatalf("owner = %q", request.Owner)
	}
	if request.Anchor != anchor {
		t.Fatalf("anchor = %+v", request.Anchor)
	}
	if !request.DismissOnOutsideClick {
		t.Fatalf("dismiss flag dropped")
	}
}

func TestAlign_OversizedContentCentersOnCorner(t *testing.T) {
	anchor := graphics.RectFromLTWH(0, 0, 10, 10)
	rect := floating.Align(anchor, graphics.Size{Width: 40, Height: 20}, floating.BottomRight)
	if rect.Left != -10 || rect.Top != 0 || rect.Width() != 40 || rect.Height() != 20 {
		t.Fatalf("rect = %+v", rect)
	}
}

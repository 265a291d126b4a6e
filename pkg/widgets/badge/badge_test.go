package badge_test

import (
	"testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
	veltest "github.com/go-velt/velt/pkg/testing"
	"github.com/go-velt/velt/pkg/widgets/badge"
	"github.com/go-velt/velt/pkg/widgets/floating"
)

// icon is a probe anchor with a fixed size that records presses.
type iconState struct {
	Presses int
}

type icon struct{}

func (icon) Component() string { return style.ComponentCard }

func (icon) Measure(available graphics.Size, st iconState) graphics.Size {
	return graphics.Size{Width: 32, Height: 32}
}

func (icon) Layout(assigned graphics.Rect, st iconState) []core.Placement { return nil }

func (icon) Draw(canvas host.Canvas, bounds graphics.Rect, st iconState, sty style.Resolver) {
	canvas.FillRect(bounds, graphics.Color(0xFF888888))
}

func (icon) HandleEvent(ev event.Event, bounds graphics.Rect, st *iconState) core.Reaction {
	if ev.Kind == event.PointerPressed && bounds.Contains(ev.Position) {
		st.Presses++
		return core.Consumed()
	}
	return core.Ignored()
}

func TestBadge_MeasureMatchesAnchor(t *testing.T) {
	b := badge.Badge{Label: "99+", Anchor: core.Bind("icon", icon{}, &iconState{})}
	size := b.Measure(graphics.Size{Width: 200, Height: 200}, badge.State{})
	if size.Width != 32 || size.Height != 32 {
		t.Fatalf("size = %v, want the anchor's 32x32", size)
	}
}

func TestBadge_AloneMeasuresLabel(t *testing.T) {
	b := badge.Badge{Label: "12", Measurer: host.FixedMeasurer{}}
	size := b.Measure(graphics.Size{Width: 200, Height: 200}, badge.State{})

	// "12" at font size 11 measures 11x11 under the fixed metrics, plus
	// 8 points of horizontal and 2 of vertical slack.
	if size.Width != 19 || size.Height != 13 {
		t.Fatalf("size = %v, want 19x13", size)
	}
}

// narrowMeasurer reports glyphs narrower than they are tall.
type narrowMeasurer struct{}

func (narrowMeasurer) MeasureText(text string, sty graphics.TextStyle) graphics.Size {
	return graphics.Size{Width: 3 * float64(len(text)), Height: 11}
}

func TestBadge_NarrowLabelStaysRound(t *testing.T) {
	b := badge.Badge{Label: "3", Measurer: narrowMeasurer{}}
	size := b.Measure(graphics.Size{Width: 200, Height: 200}, badge.State{})
	if size.Width != size.Height {
		t.Fatalf("size = %v, want square", size)
	}
}

func TestBadge_DrawPinsToCorner(t *testing.T) {
	tt := veltest.NewTester(t)
	bounds := graphics.RectFromLTWH(100, 100, 32, 32)
	b := badge.Badge{
		Label:    "3",
		Anchor:   core.Bind("icon", icon{}, &iconState{}),
		Corner:   floating.TopRight,
		Measurer: host.FixedMeasurer{},
	}
	tt.Mount(core.Bind("badge", b, &badge.State{}), bounds)

	canvas := tt.Draw()
	if !canvas.HasText("3") {
		t.Fatalf("drawn texts %v do not include the badge label", canvas.Texts())
	}
	// The pill is the only rounded fill and centers on the anchor's
	// top-right corner.
	pills := canvas.Count("FillRRect")
	if pills != 1 {
		t.Fatalf("rounded fills = %d, want 1", pills)
	}
	for _, op := range canvas.Ops {
		if op.Name != "FillRRect" {
			continue
		}
		center := op.Bounds.Center()
		if center.X != bounds.Right || center.Y != bounds.Top {
			t.Fatalf("badge centered at %v, want the top-right corner", center)
		}
	}
}

func TestBadge_EmptyLabelHidesBadge(t *testing.T) {
	tt := veltest.NewTester(t)
	bounds := graphics.RectFromLTWH(100, 100, 32, 32)
	b := badge.Badge{Anchor: core.Bind("icon", icon{}, &iconState{})}
	tt.Mount(core.Bind("badge", b, &badge.State{}), bounds)

	canvas := tt.Draw()
	if canvas.Count("FillRRect") != 0 {
		t.Fatalf("hidden badge still drew its pill")
	}
	if canvas.Count("FillRect") != 1 {
		t.Fatalf("anchor fill missing")
	}
}

func TestBadge_EventsPassToAnchor(t *testing.T) {
	anchorState := &iconState{}
	tt := veltest.NewTester(t)
	bounds := graphics.RectFromLTWH(100, 100, 32, 32)
	b := badge.Badge{Label: "3", Anchor: core.Bind("icon", icon{}, anchorState)}
	tt.Mount(core.Bind("badge", b, &badge.State{}), bounds)

	tt.Click(110, 110)
	if anchorState.Presses != 1 {
		t.Fatalf("anchor presses = %d, want 1", anchorState.Presses)
	}
}

func TestAlign_Corners(t *testing.T) {
	anchor := graphics.RectFromLTWH(100, 100, 32, 32)
	content := graphics.Size{Width: 10, Height: 10}

	cases := []struct {
		alignment floating.Alignment
		x, y      float64
	}{
		{floating.TopLeft, 100, 100},
		{floating.TopRight, 132, 100},
		{floating.BottomLeft, 100, 132},
		{floating.BottomRight, 132, 132},
	}
	for _, tc := range cases {
		rect := floating.Align(anchor, content, tc.alignment)
		center := rect.Center()
		if center.X != tc.x || center.Y != tc.y {
			t.Fatalf("alignment %d centered at %v, want (%v, %v)", tc.alignment, center, tc.x, tc.y)
		}
	}
}

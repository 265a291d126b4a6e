package segmentedbutton_test

import (
	"testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	veltest "github.com/go-velt/velt/pkg/testing"
	"github.com/go-velt/velt/pkg/widgets/segmentedbutton"
)

var stripBounds = graphics.RectFromLTWH(0, 0, 300, 28)

func segments() []segmentedbutton.Segment {
	return []segmentedbutton.Segment{
		{Label: "Day"},
		{Label: "Week", Disabled: true},
		{Label: "Month"},
	}
}

func mountStrip(t *testing.T, s segmentedbutton.SegmentedButton, st *segmentedbutton.State) *veltest.Tester {
	t.Helper()
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind(s.ID, s, st), stripBounds)
	return tt
}

func TestSegmentedButton_ClickSelects(t *testing.T) {
	var changed []int
	st := segmentedbutton.NewState(0)
	tt := mountStrip(t, segmentedbutton.SegmentedButton{
		ID: "sb", Segments: segments(), Equal: true,
		OnChanged: func(i int) { changed = append(changed, i) },
	}, st)

	tt.Click(250, 14) // third 100-wide segment
	if st.Selected != 2 {
		t.Fatalf("selected = %d", st.Selected)
	}
	if len(changed) != 1 || changed[0] != 2 {
		t.Errorf("OnChanged calls = %v", changed)
	}

	// Re-clicking the selected segment is a no-op.
	tt.Click(250, 14)
	if len(changed) != 1 {
		t.Errorf("OnChanged ran for the already-selected segment: %v", changed)
	}
}

func TestSegmentedButton_DisabledSegmentInert(t *testing.T) {
	st := segmentedbutton.NewState(0)
	tt := mountStrip(t, segmentedbutton.SegmentedButton{
		ID: "sb", Segments: segments(), Equal: true,
	}, st)

	tt.Click(150, 14)
	if st.Selected != 0 {
		t.Errorf("selected = %d, disabled segment must not select", st.Selected)
	}
}

func TestSegmentedButton_ArrowKeysMoveSelection(t *testing.T) {
	st := segmentedbutton.NewState(0)
	tt := mountStrip(t, segmentedbutton.SegmentedButton{
		ID: "sb", Segments: segments(), Equal: true,
	}, st)
	tt.Key(event.KeyTab)

	tt.Key(event.KeyRight) // skips the disabled middle segment
	if st.Selected != 2 {
		t.Fatalf("selected = %d after right", st.Selected)
	}
	tt.Key(event.KeyRight) // wraps
	if st.Selected != 0 {
		t.Fatalf("selected = %d after wrapping", st.Selected)
	}
	tt.Key(event.KeyLeft)
	if st.Selected != 2 {
		t.Fatalf("selected = %d after left", st.Selected)
	}
}

func TestSegmentedButton_MultiTogglesIndependently(t *testing.T) {
	var changed []int
	st := segmentedbutton.NewMultiState(3)
	tt := mountStrip(t, segmentedbutton.SegmentedButton{
		ID: "sb", Segments: segments(), Equal: true, Multi: true,
		OnChanged: func(i int) { changed = append(changed, i) },
	}, st)

	tt.Click(50, 14)
	tt.Click(250, 14)
	if !st.Multi[0] || st.Multi[1] || !st.Multi[2] {
		t.Fatalf("multi = %v", st.Multi)
	}

	// A second click toggles back off.
	tt.Click(50, 14)
	if st.Multi[0] {
		t.Error("first segment still on after toggling off")
	}
	if len(changed) != 3 {
		t.Errorf("OnChanged calls = %v", changed)
	}
}

func TestSegmentedButton_MultiArrowsMoveFocusOnly(t *testing.T) {
	st := segmentedbutton.NewMultiState(3)
	tt := mountStrip(t, segmentedbutton.SegmentedButton{
		ID: "sb", Segments: segments(), Equal: true, Multi: true,
	}, st)
	tt.Key(event.KeyTab)

	tt.Key(event.KeyRight)
	if st.Multi[0] || st.Multi[1] || st.Multi[2] {
		t.Fatal("arrow key toggled a segment in multi mode")
	}
	if st.Focus != 2 {
		t.Fatalf("focus = %d, want 2 past the disabled segment", st.Focus)
	}

	tt.Key(event.KeySpace)
	if !st.Multi[2] {
		t.Error("space did not toggle the focused segment")
	}
}

func TestSegmentedButton_MultiStateGrowsOnDemand(t *testing.T) {
	// A caller-supplied short state grows to the segment count.
	st := &segmentedbutton.State{Hovered: -1}
	tt := mountStrip(t, segmentedbutton.SegmentedButton{
		ID: "sb", Segments: segments(), Equal: true, Multi: true,
	}, st)

	tt.Click(250, 14)
	if len(st.Multi) != 3 || !st.Multi[2] {
		t.Errorf("multi = %v", st.Multi)
	}
}

func TestSegmentedButton_HoverClearsOnExit(t *testing.T) {
	st := segmentedbutton.NewState(0)
	s := segmentedbutton.SegmentedButton{ID: "sb", Segments: segments(), Equal: true}

	move := func(x, y float64) {
		s.HandleEvent(event.Event{
			Kind:     event.PointerMoved,
			Position: graphics.Offset{X: x, Y: y},
		}, stripBounds, st)
	}

	move(50, 14)
	if st.Hovered != 0 {
		t.Fatalf("hovered = %d", st.Hovered)
	}
	move(50, 200) // the container forwards exit moves so hover can clear
	if st.Hovered != -1 {
		t.Errorf("hovered = %d after exit", st.Hovered)
	}
}

func TestSegmentedButton_DisabledStripIgnoresInput(t *testing.T) {
	st := segmentedbutton.NewState(0)
	tt := mountStrip(t, segmentedbutton.SegmentedButton{
		ID: "sb", Segments: segments(), Equal: true, Disabled: true,
	}, st)

	if got := tt.Press(250, 14); got != event.Ignored {
		t.Fatalf("press = %v", got)
	}
	if st.Selected != 0 {
		t.Error("disabled strip changed selection")
	}
}

package split_test

import (
	"testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
	veltest "github.com/go-velt/velt/pkg/testing"
	"github.com/go-velt/velt/pkg/widgets/split"
)

var splitBounds = graphics.RectFromLTWH(0, 0, 400, 300)

// pane is a probe pane that records the input it receives.
type paneState struct {
	Presses int
	Keys    int
}

type pane struct {
	consumeKeys bool
}

func (p pane) Component() string { return style.ComponentCard }

func (p pane) Measure(available graphics.Size, st paneState) graphics.Size {
	return available
}

func (p pane) Layout(assigned graphics.Rect, st paneState) []core.Placement {
	return nil
}

func (p pane) Draw(canvas host.Canvas, bounds graphics.Rect, st paneState, sty style.Resolver) {}

func (p pane) HandleEvent(ev event.Event, bounds graphics.Rect, st *paneState) core.Reaction {
	switch ev.Kind {
	case event.PointerPressed:
		st.Presses++
		return core.Consumed()
	case event.KeyPressed:
		st.Keys++
		if p.consumeKeys {
			return core.Consumed()
		}
	}
	return core.Ignored()
}

func TestSplit_LayoutSplitsAtPosition(t *testing.T) {
	s := split.Split{ID: "split"}
	placements := s.Layout(splitBounds, split.State{Position: 100})

	if len(placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(placements))
	}
	first, second := placements[0].Bounds, placements[1].Bounds
	if first.Right != 100 || first.Left != 0 || first.Height() != 300 {
		t.Fatalf("first pane = %+v", first)
	}
	if second.Left != 104 || second.Right != 400 {
		t.Fatalf("second pane = %+v", second)
	}
}

func TestSplit_NegativePositionCenters(t *testing.T) {
	s := split.Split{ID: "split"}
	placements := s.Layout(splitBounds, *split.NewState(-1))

	// Centered divider leaves (400-4)/2 on each side.
	if placements[0].Bounds.Right != 198 {
		t.Fatalf("first pane right = %v, want 198", placements[0].Bounds.Right)
	}
	if placements[1].Bounds.Left != 202 {
		t.Fatalf("second pane left = %v, want 202", placements[1].Bounds.Left)
	}
}

func TestSplit_DragMovesDividerUnderCapture(t *testing.T) {
	var resized []float64
	st := split.NewState(100)
	s := split.Split{
		ID:        "split",
		OnResized: func(p float64) { resized = append(resized, p) },
	}
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind("split", s, st), splitBounds)

	tt.Press(102, 150)
	if !st.Dragging {
		t.Fatalf("press on the divider did not start a drag")
	}
	tt.MoveTo(250, 150)
	if st.Position != 250 {
		t.Fatalf("position during drag = %v, want 250", st.Position)
	}
	tt.Release(250, 150)
	if st.Dragging {
		t.Fatalf("drag survived the release")
	}

	tt.MoveTo(300, 150)
	if st.Position != 250 {
		t.Fatalf("position moved after release: %v", st.Position)
	}
	if len(resized) != 1 || resized[0] != 250 {
		t.Fatalf("OnResized saw %v", resized)
	}
}

func TestSplit_DragClampsToPaneMinimums(t *testing.T) {
	st := split.NewState(100)
	s := split.Split{ID: "split", MinFirst: 50, MinSecond: 60}
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind("split", s, st), splitBounds)

	tt.Press(102, 150)
	tt.MoveTo(10, 150)
	if st.Position != 50 {
		t.Fatalf("position = %v, want clamped to MinFirst", st.Position)
	}
	tt.MoveTo(390, 150)
	if st.Position != 400-60-4 {
		t.Fatalf("position = %v, want clamped to %v", st.Position, 400-60-4)
	}
	tt.Release(390, 150)
}

func TestSplit_OverfullMinimumsFavorFirstPane(t *testing.T) {
	narrow := graphics.RectFromLTWH(0, 0, 100, 300)
	s := split.Split{ID: "split", MinFirst: 80, MinSecond: 60}
	placements := s.Layout(narrow, split.State{Position: 50})

	if placements[0].Bounds.Width() != 80 {
		t.Fatalf("first pane width = %v, want MinFirst", placements[0].Bounds.Width())
	}
}

func TestSplit_PointerRoutesToPaneUnderPointer(t *testing.T) {
	firstState := &paneState{}
	secondState := &paneState{}
	st := split.NewState(100)
	s := split.Split{
		ID:     "split",
		First:  core.Bind("first", pane{}, firstState),
		Second: core.Bind("second", pane{}, secondState),
	}
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind("split", s, st), splitBounds)

	tt.Click(50, 150)
	tt.Click(300, 150)
	if firstState.Presses != 1 || secondState.Presses != 1 {
		t.Fatalf("presses = %d/%d, want 1/1", firstState.Presses, secondState.Presses)
	}
}

func TestSplit_KeysOfferedToEachPane(t *testing.T) {
	firstState := &paneState{}
	secondState := &paneState{}
	s := split.Split{
		ID:     "split",
		First:  core.Bind("first", pane{}, firstState),
		Second: core.Bind("second", pane{consumeKeys: true}, secondState),
	}
	st := split.NewState(100)

	s.HandleEvent(event.Event{Kind: event.KeyPressed, Key: event.KeyEnter}, splitBounds, st)
	if firstState.Keys != 1 || secondState.Keys != 1 {
		t.Fatalf("keys = %d/%d, want offered to both", firstState.Keys, secondState.Keys)
	}

	// A consuming first pane stops the offer.
	s.First = core.Bind("first", pane{consumeKeys: true}, firstState)
	s.HandleEvent(event.Event{Kind: event.KeyPressed, Key: event.KeyEnter}, splitBounds, st)
	if firstState.Keys != 2 || secondState.Keys != 1 {
		t.Fatalf("keys = %d/%d after consuming first pane", firstState.Keys, secondState.Keys)
	}
}

func TestSplit_VerticalAxisDragsVertically(t *testing.T) {
	st := split.NewState(100)
	s := split.Split{ID: "split", Axis: split.Vertical}
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind("split", s, st), splitBounds)

	tt.Press(200, 102)
	tt.MoveTo(200, 180)
	tt.Release(200, 180)
	if st.Position != 180 {
		t.Fatalf("position = %v, want 180", st.Position)
	}
}

func TestSplit_DisabledFreezesDivider(t *testing.T) {
	st := split.NewState(100)
	s := split.Split{ID: "split", Disabled: true}
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind("split", s, st), splitBounds)

	tt.Press(102, 150)
	if st.Dragging {
		t.Fatalf("disabled split started a drag")
	}
	if st.Position != 100 {
		t.Fatalf("position = %v, want unchanged", st.Position)
	}
}

package selectionlist_test

import (
	"testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	veltest "github.com/go-velt/velt/pkg/testing"
	"github.com/go-velt/velt/pkg/widgets/selectionlist"
)

var listBounds = graphics.RectFromLTWH(40, 40, 160, 104)

func options() []string {
	return []string{"North", "East", "South", "West"}
}

func mountList(t *testing.T, list selectionlist.SelectionList, st *selectionlist.State) *veltest.Tester {
	t.Helper()
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind(list.ID, list, st), listBounds)
	return tt
}

// rowY is the vertical center of one 26 point row.
func rowY(index int) float64 {
	return listBounds.Top + float64(index)*26 + 13
}

func TestSelectionList_ClickSelectsRow(t *testing.T) {
	var changed []int
	st := selectionlist.NewState(-1)
	tt := mountList(t, selectionlist.SelectionList{
		ID: "list", Options: options(),
		OnChanged: func(i int) { changed = append(changed, i) },
	}, st)

	tt.Click(listBounds.Left+20, rowY(2))
	if st.Selected != 2 {
		t.Fatalf("selected = %d, want 2", st.Selected)
	}

	// Clicking the selected row again changes nothing.
	tt.Click(listBounds.Left+20, rowY(2))
	if len(changed) != 1 || changed[0] != 2 {
		t.Fatalf("OnChanged saw %v", changed)
	}
}

func TestSelectionList_ArrowKeysWalkRows(t *testing.T) {
	st := selectionlist.NewState(0)
	tt := mountList(t, selectionlist.SelectionList{ID: "list", Options: options()}, st)

	tt.Key(event.KeyTab)
	tt.Key(event.KeyDown)
	tt.Key(event.KeyDown)
	if st.Selected != 2 {
		t.Fatalf("selected after two downs = %d, want 2", st.Selected)
	}
	tt.Key(event.KeyUp)
	if st.Selected != 1 {
		t.Fatalf("selected after up = %d, want 1", st.Selected)
	}

	// Down clamps at the last row rather than wrapping.
	tt.Key(event.KeyEnd)
	tt.Key(event.KeyDown)
	if st.Selected != 3 {
		t.Fatalf("selected after down at last = %d, want 3", st.Selected)
	}
	tt.Key(event.KeyHome)
	tt.Key(event.KeyUp)
	if st.Selected != 0 {
		t.Fatalf("selected after up at first = %d, want 0", st.Selected)
	}
}

func TestSelectionList_UpFromNoneSelectsLast(t *testing.T) {
	st := selectionlist.NewState(-1)
	tt := mountList(t, selectionlist.SelectionList{ID: "list", Options: options()}, st)

	tt.Key(event.KeyTab)
	tt.Key(event.KeyUp)
	if st.Selected != 3 {
		t.Fatalf("selected after up from none = %d, want last row", st.Selected)
	}
}

func TestSelectionList_DownFromNoneSelectsFirst(t *testing.T) {
	st := selectionlist.NewState(-1)
	tt := mountList(t, selectionlist.SelectionList{ID: "list", Options: options()}, st)

	tt.Key(event.KeyTab)
	tt.Key(event.KeyDown)
	if st.Selected != 0 {
		t.Fatalf("selected after down from none = %d, want 0", st.Selected)
	}
}

func TestSelectionList_HoverTracksRows(t *testing.T) {
	st := selectionlist.NewState(0)
	list := selectionlist.SelectionList{ID: "list", Options: options()}
	tt := mountList(t, list, st)

	tt.MoveTo(listBounds.Left+20, rowY(1))
	if st.Hovered != 1 {
		t.Fatalf("hovered = %d, want 1", st.Hovered)
	}

	// The router only delivers moves inside the bounds, so exit moves
	// go to the widget directly.
	list.HandleEvent(event.Event{
		Kind:     event.PointerMoved,
		Position: graphics.Offset{X: 10, Y: 10},
	}, listBounds, st)
	if st.Hovered != -1 {
		t.Fatalf("hovered = %d after leaving, want -1", st.Hovered)
	}
}

func TestSelectionList_OutOfRangeSelectionClamps(t *testing.T) {
	st := selectionlist.NewState(99)
	tt := mountList(t, selectionlist.SelectionList{ID: "list", Options: options()}, st)

	tt.Key(event.KeyTab)
	tt.Key(event.KeyDown)
	if st.Selected != 3 {
		t.Fatalf("selected = %d, want clamped to last row", st.Selected)
	}
}

func TestSelectionList_DisabledIgnoresInput(t *testing.T) {
	st := selectionlist.NewState(1)
	list := selectionlist.SelectionList{ID: "list", Options: options(), Disabled: true}
	tt := mountList(t, list, st)

	if list.Focusable() {
		t.Fatalf("disabled list is focusable")
	}
	if got := tt.Click(listBounds.Left+20, rowY(3)); got == event.Consumed {
		t.Fatalf("disabled list consumed a press")
	}
	if st.Selected != 1 {
		t.Fatalf("selected = %d, want unchanged", st.Selected)
	}
}

func TestSelectionList_EmptyListNotFocusable(t *testing.T) {
	list := selectionlist.SelectionList{ID: "list"}
	if list.Focusable() {
		t.Fatalf("empty list is focusable")
	}
	size := list.Measure(graphics.Size{Width: 200, Height: 200}, selectionlist.State{Hovered: -1})
	if size.Width != 0 || size.Height != 0 {
		t.Fatalf("empty list measured %v", size)
	}
}

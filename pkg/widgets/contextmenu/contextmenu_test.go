package contextmenu_test

import (
	"testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
	veltest "github.com/go-velt/velt/pkg/testing"
	"github.com/go-velt/velt/pkg/widgets/contextmenu"
)

var triggerBounds = graphics.RectFromLTWH(0, 0, 800, 600)

func items(selected *string) []contextmenu.Item {
	pick := func(label string) func() {
		return func() { *selected = label }
	}
	return []contextmenu.Item{
		{Label: "Cut", OnSelect: pick("Cut")},
		{Label: "Copy", OnSelect: pick("Copy")},
		{Label: "Paste", Disabled: true, OnSelect: pick("Paste")},
		{Label: "Delete", OnSelect: pick("Delete")},
	}
}

func mountMenu(t *testing.T, menu contextmenu.ContextMenu, st *contextmenu.State) *veltest.Tester {
	t.Helper()
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind(menu.ID, menu, st), triggerBounds)
	return tt
}

func TestContextMenu_RightClickOpensAtCursor(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected)}, st)

	if got := tt.RightClick(200, 150); got != event.Consumed {
		t.Fatalf("right click = %v", got)
	}
	active := tt.Overlays.Top()
	if active == nil || !st.Open {
		t.Fatal("menu did not open")
	}
	if active.Class != core.ClassContextMenu {
		t.Errorf("class = %v", active.Class)
	}
	if active.Bounds.Left != 200 || active.Bounds.Top != 150 {
		t.Errorf("menu at (%v, %v), want the press point", active.Bounds.Left, active.Bounds.Top)
	}
}

func TestContextMenu_FlipsAtViewportEdge(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected)}, st)

	tt.RightClick(795, 590)
	active := tt.Overlays.Top()
	if active == nil {
		t.Fatal("menu did not open")
	}
	if active.Bounds.Right > 800 || active.Bounds.Bottom > 600 {
		t.Errorf("menu %v spills past the viewport", active.Bounds)
	}
	// Near the corner the menu opens up and to the left of the cursor.
	if active.Bounds.Right != 795 {
		t.Errorf("right = %v, want flipped against the cursor", active.Bounds.Right)
	}
	if active.Bounds.Bottom != 590 {
		t.Errorf("bottom = %v, want flipped above the cursor", active.Bounds.Bottom)
	}
}

func TestContextMenu_ClickSelectsItem(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected)}, st)

	tt.RightClick(200, 150)
	active := tt.Overlays.Top()

	// Second row: "Copy".
	rowX := active.Bounds.Left + 4 + 20
	rowY := active.Bounds.Top + 4 + 26 + 13
	tt.Click(rowX, rowY)

	if selected != "Copy" {
		t.Errorf("selected = %q", selected)
	}
	if tt.Overlays.Len() != 0 || st.Open {
		t.Error("menu still open after choosing")
	}
}

func TestContextMenu_DisabledItemInert(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected)}, st)

	tt.RightClick(200, 150)
	active := tt.Overlays.Top()

	// Third row: the disabled "Paste".
	rowY := active.Bounds.Top + 4 + 2*26 + 13
	tt.Click(active.Bounds.Left+20, rowY)

	if selected != "" {
		t.Errorf("selected = %q, disabled item must be inert", selected)
	}
	if tt.Overlays.Len() != 1 {
		t.Error("disabled item closed the menu")
	}
}

func TestContextMenu_KeyboardSkipsDisabled(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected)}, st)

	tt.RightClick(200, 150)
	tt.Key(event.KeyDown) // Cut
	tt.Key(event.KeyDown) // Copy
	tt.Key(event.KeyDown) // skips Paste, lands on Delete
	if st.Highlight != 3 {
		t.Fatalf("highlight = %d, want 3", st.Highlight)
	}
	tt.Key(event.KeyDown) // wraps to Cut
	if st.Highlight != 0 {
		t.Fatalf("highlight = %d, want wrapped to 0", st.Highlight)
	}
	tt.Key(event.KeyUp) // wraps back, skipping Paste
	if st.Highlight != 3 {
		t.Fatalf("highlight = %d, want 3", st.Highlight)
	}

	tt.Key(event.KeyEnter)
	if selected != "Delete" {
		t.Errorf("selected = %q", selected)
	}
	if tt.Overlays.Len() != 0 {
		t.Error("enter did not close the menu")
	}
}

func TestContextMenu_EscapeCloses(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected)}, st)

	tt.RightClick(200, 150)
	tt.Key(event.KeyEscape)
	if tt.Overlays.Len() != 0 || st.Open {
		t.Error("escape did not close the menu")
	}
}

func TestContextMenu_OutsidePressDismissesWithoutReopening(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected)}, st)

	tt.RightClick(200, 150)
	// The dismissal consumes the outside press; it does not open a second
	// menu on the same click.
	tt.RightClick(400, 300)
	if tt.Overlays.Len() != 0 || st.Open {
		t.Fatal("outside right click did not dismiss")
	}

	// The next right click opens fresh at the new point.
	tt.RightClick(400, 300)
	if got := tt.Overlays.Top(); got == nil || got.Bounds.Left != 400 {
		t.Errorf("reopened menu = %+v, want anchored at the new press point", got)
	}
}

func TestContextMenu_PrimaryInputReachesUnderlay(t *testing.T) {
	var selected string
	underState := underlayState{}
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{
		ID:       "cm",
		Items:    items(&selected),
		Underlay: core.Bind("cm/under", underlay{}, &underState),
	}, st)

	tt.Click(100, 100)
	if underState.Presses != 1 {
		t.Errorf("underlay presses = %d", underState.Presses)
	}
	if tt.Overlays.Len() != 0 {
		t.Error("primary click opened the menu")
	}
}

// underlay is a press-counting node wrapped by the trigger.
type underlay struct{}

type underlayState struct {
	Presses int
}

func (underlay) Component() string { return "underlay" }

func (underlay) Measure(available graphics.Size, st underlayState) graphics.Size {
	return available
}

func (underlay) Layout(assigned graphics.Rect, st underlayState) []core.Placement { return nil }

func (underlay) Draw(canvas host.Canvas, bounds graphics.Rect, st underlayState, sty style.Resolver) {
}

func (underlay) HandleEvent(ev event.Event, bounds graphics.Rect, st *underlayState) core.Reaction {
	if ev.Kind == event.PointerPressed && ev.Button == event.ButtonPrimary {
		st.Presses++
		return core.Consumed()
	}
	return core.Ignored()
}

func TestContextMenu_DisabledTriggerIgnoresSecondary(t *testing.T) {
	var selected string
	st := contextmenu.NewState()
	tt := mountMenu(t, contextmenu.ContextMenu{ID: "cm", Items: items(&selected), Disabled: true}, st)

	tt.RightClick(200, 150)
	if tt.Overlays.Len() != 0 || st.Open {
		t.Error("disabled trigger opened a menu")
	}
}

package spinner_test

import (
	"testing"
	"time"

	"github.com/go-velt/velt/pkg/animation"
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/style"
	veltest "github.com/go-velt/velt/pkg/testing"
	"github.com/go-velt/velt/pkg/widgets/spinner"
)

func TestSpinner_MeasureUsesDiameter(t *testing.T) {
	s := spinner.Spinner{}
	size := s.Measure(graphics.Size{Width: 500, Height: 500}, *spinner.NewState())
	if size.Width != 24 || size.Height != 24 {
		t.Errorf("default size = %v", size)
	}

	s.Diameter = 40
	size = s.Measure(graphics.Size{Width: 500, Height: 500}, *spinner.NewState())
	if size.Width != 40 {
		t.Errorf("size = %v", size)
	}
}

func TestSpinner_TickAdvancesPhase(t *testing.T) {
	st := spinner.NewState()
	s := spinner.Spinner{}

	if !s.Tick(100*time.Millisecond, st) {
		t.Fatal("tick reported no change")
	}
	if st.Loop.Phase == 0 {
		t.Error("phase did not advance")
	}
	if st.Loop.Phase < 0 || st.Loop.Phase >= 1 {
		t.Errorf("phase %v escaped [0, 1)", st.Loop.Phase)
	}
}

func TestSpinner_ClockDrivesRedraws(t *testing.T) {
	st := spinner.NewState()
	node := core.Bind("spin", spinner.Spinner{}, st)

	clock := animation.NewClock()
	var redraws int
	clock.Add(node, func() { redraws++ })

	for i := 0; i < 3; i++ {
		clock.Step(16 * time.Millisecond)
	}
	if redraws != 3 {
		t.Errorf("redraws = %d", redraws)
	}

	clock.Remove("spin")
	phase := st.Loop.Phase
	clock.Step(16 * time.Millisecond)
	if st.Loop.Phase != phase {
		t.Error("removed spinner still ticked")
	}
}

func TestSpinner_DrawEmitsArc(t *testing.T) {
	canvas := &veltest.RecordingCanvas{}
	st := spinner.NewState()
	spinner.Spinner{}.Draw(canvas, graphics.RectFromLTWH(0, 0, 24, 24), *st, style.Light())
	if canvas.Count("Arc") != 1 {
		t.Errorf("arcs = %d", canvas.Count("Arc"))
	}
}

func TestSpinner_InertToInput(t *testing.T) {
	st := spinner.NewState()
	reaction := spinner.Spinner{}.HandleEvent(event.Event{
		Kind:     event.PointerPressed,
		Button:   event.ButtonPrimary,
		Position: graphics.Offset{X: 10, Y: 10},
	}, graphics.RectFromLTWH(0, 0, 24, 24), st)
	if reaction.Status != event.Ignored {
		t.Errorf("reaction = %+v", reaction)
	}
}

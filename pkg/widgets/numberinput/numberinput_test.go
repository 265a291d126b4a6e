package numberinput_test

import (
	"testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	veltest "github.com/go-velt/velt/pkg/testing"
	"github.com/go-velt/velt/pkg/widgets/numberinput"
)

var fieldBounds = graphics.RectFromLTWH(50, 50, 140, 32)

func mountInput(t *testing.T, in numberinput.NumberInput, st *numberinput.State) *veltest.Tester {
	t.Helper()
	tt := veltest.NewTester(t)
	tt.Mount(core.Bind(in.ID, in, st), fieldBounds)
	return tt
}

func TestNumberInput_ButtonsStepValue(t *testing.T) {
	var changed []float64
	st := numberinput.NewState(5)
	tt := mountInput(t, numberinput.NumberInput{
		ID: "qty", Min: 0, Max: 10,
		OnChanged: func(v float64) { changed = append(changed, v) },
	}, st)

	// The increment button spans the right 24 points of the field.
	tt.Click(fieldBounds.Right-12, fieldBounds.Top+16)
	if st.Value != 6 {
		t.Fatalf("value after increment = %v, want 6", st.Value)
	}

	// The decrement button spans the left 24 points.
	tt.Click(fieldBounds.Left+12, fieldBounds.Top+16)
	tt.Click(fieldBounds.Left+12, fieldBounds.Top+16)
	if st.Value != 4 {
		t.Fatalf("value after two decrements = %v, want 4", st.Value)
	}
	if len(changed) != 3 || changed[0] != 6 || changed[2] != 4 {
		t.Fatalf("OnChanged saw %v", changed)
	}
}

func TestNumberInput_ClampsAtBounds(t *testing.T) {
	calls := 0
	st := numberinput.NewState(10)
	tt := mountInput(t, numberinput.NumberInput{
		ID: "qty", Min: 0, Max: 10,
		OnChanged: func(float64) { calls++ },
	}, st)

	result := tt.Click(fieldBounds.Right-12, fieldBounds.Top+16)
	if result != event.Consumed {
		t.Fatalf("press on increment button fell through")
	}
	if st.Value != 10 || calls != 0 {
		t.Fatalf("value = %v, calls = %d, want clamped at 10 with no callback", st.Value, calls)
	}

	st.Value = 0
	tt.Click(fieldBounds.Left+12, fieldBounds.Top+16)
	if st.Value != 0 || calls != 0 {
		t.Fatalf("value = %v, calls = %d, want clamped at 0 with no callback", st.Value, calls)
	}
}

func TestNumberInput_ScrollSteps(t *testing.T) {
	st := numberinput.NewState(5)
	tt := mountInput(t, numberinput.NumberInput{ID: "qty", Min: 0, Max: 10, Step: 2}, st)

	center := fieldBounds.Center()
	tt.Scroll(center.X, center.Y, -1)
	if st.Value != 7 {
		t.Fatalf("value after scroll up = %v, want 7", st.Value)
	}
	tt.Scroll(center.X, center.Y, 1)
	tt.Scroll(center.X, center.Y, 1)
	if st.Value != 3 {
		t.Fatalf("value after two scrolls down = %v, want 3", st.Value)
	}

	if got := tt.Scroll(10, 10, -1); got == event.Consumed {
		t.Fatalf("scroll outside the field was consumed")
	}
	if st.Value != 3 {
		t.Fatalf("value changed by outside scroll: %v", st.Value)
	}
}

func TestNumberInput_KeysAdjustAndJump(t *testing.T) {
	st := numberinput.NewState(5)
	tt := mountInput(t, numberinput.NumberInput{ID: "qty", Min: 1, Max: 9}, st)

	tt.Key(event.KeyTab)
	tt.Key(event.KeyUp)
	if st.Value != 6 {
		t.Fatalf("value after up = %v, want 6", st.Value)
	}
	tt.Key(event.KeyDown)
	tt.Key(event.KeyDown)
	if st.Value != 4 {
		t.Fatalf("value after two downs = %v, want 4", st.Value)
	}
	tt.Key(event.KeyHome)
	if st.Value != 1 {
		t.Fatalf("value after home = %v, want min", st.Value)
	}
	tt.Key(event.KeyEnd)
	if st.Value != 9 {
		t.Fatalf("value after end = %v, want max", st.Value)
	}
}

func TestNumberInput_InvertedRangeCollapsesToMin(t *testing.T) {
	st := numberinput.NewState(7)
	tt := mountInput(t, numberinput.NumberInput{ID: "qty", Min: 4, Max: 2}, st)

	tt.Key(event.KeyTab)
	tt.Key(event.KeyEnd)
	if st.Value != 4 {
		t.Fatalf("value after end in inverted range = %v, want 4", st.Value)
	}
	tt.Key(event.KeyUp)
	if st.Value != 4 {
		t.Fatalf("value escaped collapsed range: %v", st.Value)
	}
}

func TestNumberInput_DisabledIgnoresInput(t *testing.T) {
	st := numberinput.NewState(5)
	in := numberinput.NumberInput{ID: "qty", Min: 0, Max: 10, Disabled: true}
	tt := mountInput(t, in, st)

	if in.Focusable() {
		t.Fatalf("disabled input is focusable")
	}
	if got := tt.Click(fieldBounds.Right-12, fieldBounds.Top+16); got == event.Consumed {
		t.Fatalf("disabled input consumed a press")
	}
	center := fieldBounds.Center()
	tt.Scroll(center.X, center.Y, -1)
	if st.Value != 5 {
		t.Fatalf("disabled input changed value: %v", st.Value)
	}
}

func TestNumberInput_MeasureIncludesButtons(t *testing.T) {
	in := numberinput.NumberInput{ID: "qty", Min: 0, Max: 10, Measurer: host.FixedMeasurer{}}
	size := in.Measure(graphics.Size{Width: 400, Height: 100}, numberinput.State{Value: 5})

	// "5" at font size 14 measures 7x14 under the fixed metrics, plus
	// padding and the two 24 point buttons.
	if size.Width != 7+2*8+2*24 {
		t.Fatalf("width = %v, want 71", size.Width)
	}
	if size.Height != 26 {
		t.Fatalf("height = %v, want 26", size.Height)
	}

	narrow := in.Measure(graphics.Size{Width: 60, Height: 100}, numberinput.State{Value: 5})
	if narrow.Width != 60 {
		t.Fatalf("width in narrow space = %v, want clamped to 60", narrow.Width)
	}
}

func TestNumberInput_DecimalsFormatting(t *testing.T) {
	st := numberinput.NewState(1.25)
	tt := mountInput(t, numberinput.NumberInput{ID: "qty", Min: 0, Max: 5, Decimals: 2}, st)

	canvas := tt.Draw()
	if !canvas.HasText("1.25") {
		t.Fatalf("drawn texts %v do not include the formatted value", canvas.Texts())
	}
}

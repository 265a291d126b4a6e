package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-velt/velt/pkg/animation"
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

func TestRamp_StepNeverOvershoots(t *testing.T) {
	ramp := animation.Ramp{Value: 0, Target: 1, Rate: 2}
	if !ramp.Step(400 * time.Millisecond) {
		t.Fatal("step reported no change")
	}
	if math.Abs(ramp.Value-0.8) > 1e-9 {
		t.Fatalf("value = %v, want 0.8", ramp.Value)
	}
	// A long step lands exactly on the target instead of passing it.
	ramp.Step(10 * time.Second)
	if ramp.Value != 1 {
		t.Errorf("value = %v, want pinned at the target", ramp.Value)
	}
	if ramp.Status() != animation.StatusIdle {
		t.Error("ramp still animating at the target")
	}
	if ramp.Step(16 * time.Millisecond) {
		t.Error("idle ramp reported a change")
	}
}

func TestRamp_StepsDownward(t *testing.T) {
	ramp := animation.Ramp{Value: 1, Target: 0.25, Rate: 1}
	ramp.Step(500 * time.Millisecond)
	if math.Abs(ramp.Value-0.5) > 1e-9 {
		t.Fatalf("value = %v, want 0.5", ramp.Value)
	}
	ramp.Step(time.Second)
	if ramp.Value != 0.25 {
		t.Errorf("value = %v, want the target", ramp.Value)
	}
}

func TestRamp_FrozenWithoutRate(t *testing.T) {
	ramp := animation.Ramp{Value: 0, Target: 1}
	if ramp.Step(time.Second) || ramp.Value != 0 {
		t.Error("rateless ramp advanced")
	}
	if ramp.Status() != animation.StatusIdle {
		t.Error("rateless ramp reported animating")
	}
}

func TestLoop_PhaseWraps(t *testing.T) {
	loop := animation.Loop{Rate: 1}
	loop.Step(250 * time.Millisecond)
	if math.Abs(loop.Phase-0.25) > 1e-9 {
		t.Fatalf("phase = %v, want 0.25", loop.Phase)
	}
	loop.Step(time.Second) // a full cycle lands back on the same phase
	if math.Abs(loop.Phase-0.25) > 1e-9 {
		t.Errorf("phase = %v, want 0.25 after wrapping", loop.Phase)
	}
	if loop.Phase < 0 || loop.Phase >= 1 {
		t.Errorf("phase %v escaped [0, 1)", loop.Phase)
	}
}

func TestLoop_FrozenWithoutRate(t *testing.T) {
	loop := animation.Loop{}
	if loop.Step(time.Second) || loop.Phase != 0 {
		t.Error("rateless loop advanced")
	}
}

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":      animation.LinearCurve,
		"ease":        animation.Ease,
		"ease-in":     animation.EaseIn,
		"ease-out":    animation.EaseOut,
		"ease-in-out": animation.EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v", name, got)
		}
		// Monotone non-decreasing over a coarse sweep.
		prev := 0.0
		for s := 0.1; s <= 1.0; s += 0.1 {
			got := curve(s)
			if got < prev-1e-9 {
				t.Errorf("%s decreases at t=%v", name, s)
			}
			prev = got
		}
	}
}

func TestCubicBezier_MidpointSymmetry(t *testing.T) {
	curve := animation.CubicBezier(0.4, 0, 0.2, 1)
	mid := curve(0.5)
	if mid <= 0 || mid >= 1 {
		t.Errorf("midpoint = %v, want strictly inside (0, 1)", mid)
	}
	// Out-of-range inputs clamp.
	if curve(-2) != 0 || curve(3) != 1 {
		t.Error("out-of-range input not clamped")
	}
}

// pulseState carries a loop for the clock tests.
type pulseState struct {
	Loop animation.Loop
}

// pulse is a minimal animated widget.
type pulse struct{}

func (pulse) Component() string { return "pulse" }

func (pulse) Measure(available graphics.Size, st pulseState) graphics.Size {
	return graphics.Size{Width: 10, Height: 10}
}

func (pulse) Layout(assigned graphics.Rect, st pulseState) []core.Placement { return nil }

func (pulse) Draw(canvas host.Canvas, bounds graphics.Rect, st pulseState, sty style.Resolver) {}

func (pulse) HandleEvent(ev event.Event, bounds graphics.Rect, st *pulseState) core.Reaction {
	return core.Ignored()
}

func (pulse) Tick(dt time.Duration, st *pulseState) bool {
	return st.Loop.Step(dt)
}

func TestClock_StepInvalidatesChangedInstances(t *testing.T) {
	clock := animation.NewClock()
	running := pulseState{Loop: animation.Loop{Rate: 1}}
	frozen := pulseState{}

	var redraws int
	clock.Add(core.Bind("running", pulse{}, &running), func() { redraws++ })
	clock.Add(core.Bind("frozen", pulse{}, &frozen), func() { t.Error("frozen instance invalidated") })

	if !clock.Step(100 * time.Millisecond) {
		t.Fatal("step reported no change")
	}
	if redraws != 1 {
		t.Errorf("redraws = %d, want 1", redraws)
	}
	if running.Loop.Phase == 0 {
		t.Error("running loop did not advance")
	}
	if frozen.Loop.Phase != 0 {
		t.Error("frozen loop advanced")
	}
}

func TestClock_AddDeduplicatesAndRemoveStops(t *testing.T) {
	clock := animation.NewClock()
	st := pulseState{Loop: animation.Loop{Rate: 1}}
	node := core.Bind("spin", pulse{}, &st)

	clock.Add(node, nil)
	clock.Add(node, nil)
	if clock.Len() != 1 {
		t.Fatalf("len = %d after duplicate add", clock.Len())
	}

	clock.Remove("spin")
	clock.Remove("spin") // unknown id is a no-op
	if clock.Len() != 0 {
		t.Fatalf("len = %d after remove", clock.Len())
	}
	if clock.Step(time.Second) {
		t.Error("empty clock reported a change")
	}
	if st.Loop.Phase != 0 {
		t.Error("removed instance still ticked")
	}
}

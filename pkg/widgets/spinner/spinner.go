// Package spinner provides an indeterminate progress indicator: an arc
// sweeping around a circle, driven by the animation clock for as long as
// the instance stays registered with it.
package spinner

import (
	"math"
	"time"

	"github.com/go-velt/velt/pkg/animation"
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// DefaultRate is the rotation speed in cycles per second.
const DefaultRate = 1.0

// State is the caller-owned state of one spinner.
type State struct {
	// Loop is the rotation phase controller.
	Loop animation.Loop
}

// NewState creates state rotating at the default rate.
func NewState() *State {
	return &State{Loop: animation.Loop{Rate: DefaultRate}}
}

// Spinner is the indicator widget.
type Spinner struct {
	// Diameter is the indicator size. Zero means 24.
	Diameter float64

	// StrokeWidth is the arc thickness. Zero means 3.
	StrokeWidth float64
}

// Component implements core.Widget.
func (s Spinner) Component() string {
	return style.ComponentSpinner
}

// Measure implements core.Widget.
func (s Spinner) Measure(available graphics.Size, st State) graphics.Size {
	d := s.diameter()
	return graphics.Size{Width: d, Height: d}
}

// Layout implements core.Widget.
func (s Spinner) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget. The arc's start angle follows the loop
// phase; the sweep breathes between a quarter and three quarters of the
// circle on the same phase.
func (s Spinner) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentSpinner, 0)
	center := bounds.Center()
	radius := s.diameter()/2 - s.strokeWidth()/2

	start := st.Loop.Phase * 2 * math.Pi
	sweep := math.Pi * (0.5 + 0.5*math.Sin(st.Loop.Phase*2*math.Pi)*0.5)
	canvas.Arc(center, radius, start, sweep, s.strokeWidth(), visual.Accent)
}

// HandleEvent implements core.Widget. Spinners are inert.
func (s Spinner) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	return core.Ignored()
}

// Tick implements core.Animated.
func (s Spinner) Tick(dt time.Duration, st *State) bool {
	return st.Loop.Step(dt)
}

func (s Spinner) diameter() float64 {
	if s.Diameter > 0 {
		return s.Diameter
	}
	return 24
}

func (s Spinner) strokeWidth() float64 {
	if s.StrokeWidth > 0 {
		return s.StrokeWidth
	}
	return 3
}

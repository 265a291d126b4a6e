// Package slidebar provides a determinate progress bar whose fill glides
// toward the caller's target instead of jumping. The ramp terminates at
// the target; an idle bar requests no redraws.
package slidebar

import (
	"time"

	"github.com/go-velt/velt/pkg/animation"
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// DefaultRate is the fill speed in fractions per second.
const DefaultRate = 2.0

// State is the caller-owned state of one slide bar.
type State struct {
	// Ramp is the animated fill controller. Value and Target are
	// fractions in [0, 1].
	Ramp animation.Ramp
}

// NewState creates state resting at the given fraction.
func NewState(fraction float64) *State {
	fraction = clamp01(fraction)
	return &State{Ramp: animation.Ramp{Value: fraction, Target: fraction, Rate: DefaultRate}}
}

// SetTarget retargets the ramp; the fill glides there on following
// ticks.
func (s *State) SetTarget(fraction float64) {
	s.Ramp.Target = clamp01(fraction)
}

// SlideBar is the progress bar widget.
type SlideBar struct {
	// Height is the bar thickness. Zero means 6.
	Height float64
}

// Component implements core.Widget.
func (b SlideBar) Component() string {
	return style.ComponentSlideBar
}

// Measure implements core.Widget.
func (b SlideBar) Measure(available graphics.Size, st State) graphics.Size {
	return graphics.Size{Width: available.Width, Height: b.height()}
}

// Layout implements core.Widget.
func (b SlideBar) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget. The drawn fraction runs through an
// ease-in-out curve so the glide reads smooth at both ends.
func (b SlideBar) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentSlideBar, 0)
	radius := graphics.CircularRadius(b.height() / 2)
	canvas.FillRRect(graphics.RRectFromRectAndRadius(bounds, radius), visual.Background.WithAlpha(0.4))

	fraction := animation.EaseInOut(clamp01(st.Ramp.Value))
	if fraction <= 0 {
		return
	}
	fill := graphics.Rect{
		Left:   bounds.Left,
		Top:    bounds.Top,
		Right:  bounds.Left + bounds.Width()*fraction,
		Bottom: bounds.Bottom,
	}
	canvas.FillRRect(graphics.RRectFromRectAndRadius(fill, radius), visual.Accent)
}

// HandleEvent implements core.Widget. Slide bars are display-only.
func (b SlideBar) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	return core.Ignored()
}

// Tick implements core.Animated.
func (b SlideBar) Tick(dt time.Duration, st *State) bool {
	return st.Ramp.Step(dt)
}

func (b SlideBar) height() float64 {
	if b.Height > 0 {
		return b.Height
	}
	return 6
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

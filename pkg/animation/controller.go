package animation

import (
	"fmt"
	"math"
	"time"
)

// Status reports whether a controller is advancing.
type Status int

const (
	// StatusIdle means the controller is at rest and ticks are no-ops.
	StatusIdle Status = iota
	// StatusAnimating means ticks are advancing the value.
	StatusAnimating
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAnimating:
		return "animating"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Ramp advances a value toward a target at a constant rate and stops on
// arrival. Slide bars and auto-dismiss timers are ramps.
//
// Ramp is a value type meant to be embedded in component state; Step is
// called only from a widget's Tick, which holds the state exclusively.
type Ramp struct {
	// Value is the current position.
	Value float64
	// Target is where the ramp stops.
	Target float64
	// Rate is the advance speed in units per second. Zero or negative
	// rates freeze the ramp.
	Rate float64
}

// Status reports whether the ramp still has distance to cover.
func (r *Ramp) Status() Status {
	if r.Rate > 0 && r.Value != r.Target {
		return StatusAnimating
	}
	return StatusIdle
}

// Step advances the value by dt and reports whether it changed. The
// value never overshoots the target.
func (r *Ramp) Step(dt time.Duration) bool {
	if r.Status() == StatusIdle || dt <= 0 {
		return false
	}
	distance := r.Rate * dt.Seconds()
	if r.Value < r.Target {
		r.Value = math.Min(r.Value+distance, r.Target)
	} else {
		r.Value = math.Max(r.Value-distance, r.Target)
	}
	return true
}

// Loop advances a phase in [0, 1) that wraps indefinitely. Spinners are
// loops: they animate for as long as the instance stays registered with
// the clock.
type Loop struct {
	// Phase is the current position in [0, 1).
	Phase float64
	// Rate is the number of full cycles per second. Zero or negative
	// rates freeze the loop.
	Rate float64
}

// Step advances the phase by dt and reports whether it changed.
func (l *Loop) Step(dt time.Duration) bool {
	if l.Rate <= 0 || dt <= 0 {
		return false
	}
	l.Phase = math.Mod(l.Phase+l.Rate*dt.Seconds(), 1)
	if l.Phase < 0 {
		l.Phase += 1
	}
	return true
}

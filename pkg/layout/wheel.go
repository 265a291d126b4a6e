package layout

import (
	"math"

	"github.com/go-velt/velt/pkg/graphics"
)

// WheelPick maps a pointer position within a circular hue/saturation
// control to (hue, saturation). The angle from the wheel center gives the
// hue in degrees, zero at the positive x axis growing clockwise; the
// radius, normalized by the wheel radius and clamped to the unit circle,
// gives the saturation.
//
// A press at the exact center has no defined angle; it returns
// saturation 0 and ok=false so the caller keeps the prior hue.
func WheelPick(pointer graphics.Offset, bounds graphics.Rect) (hue, saturation float64, ok bool) {
	center := bounds.Center()
	radius := wheelRadius(bounds)
	dx := pointer.X - center.X
	dy := pointer.Y - center.Y

	distance := math.Hypot(dx, dy)
	if distance == 0 || radius <= 0 {
		return 0, 0, false
	}

	angle := math.Atan2(dy, dx)
	hue = angle * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	saturation = math.Min(distance/radius, 1)
	return hue, saturation, true
}

// WheelPoint is the inverse of WheelPick: the position of a
// (hue, saturation) pair on the wheel.
func WheelPoint(hue, saturation float64, bounds graphics.Rect) graphics.Offset {
	center := bounds.Center()
	radius := wheelRadius(bounds)
	angle := hue * math.Pi / 180
	distance := math.Min(math.Max(saturation, 0), 1) * radius
	return graphics.Offset{
		X: center.X + math.Cos(angle)*distance,
		Y: center.Y + math.Sin(angle)*distance,
	}
}

// SliderPick maps a pointer position on a horizontal slider track to a
// fraction in [0, 1]. Positions outside the track clamp to its ends.
func SliderPick(pointer graphics.Offset, track graphics.Rect) float64 {
	width := track.Width()
	if width <= 0 {
		return 0
	}
	fraction := (pointer.X - track.Left) / width
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// SliderPoint is the inverse of SliderPick: the x position of a fraction
// on the track.
func SliderPoint(fraction float64, track graphics.Rect) float64 {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return track.Left + fraction*track.Width()
}

// wheelRadius returns the radius of the largest circle fitting bounds.
func wheelRadius(bounds graphics.Rect) float64 {
	return math.Min(bounds.Width(), bounds.Height()) / 2
}

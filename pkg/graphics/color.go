package graphics

import "math"

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Lighten returns the color blended toward white by amount (0-1).
func (c Color) Lighten(amount float64) Color {
	return c.blend(ColorWhite, amount)
}

// Darken returns the color blended toward black by amount (0-1).
func (c Color) Darken(amount float64) Color {
	return c.blend(ColorBlack, amount)
}

// blend mixes c toward other by amount, preserving c's alpha.
func (c Color) blend(other Color, amount float64) Color {
	amount = clamp01(amount)
	r1, g1, b1, a1 := c.RGBAF()
	r2, g2, b2, _ := other.RGBAF()
	mix := func(x, y float64) uint8 {
		return uint8(math.Round(clamp01(x+(y-x)*amount) * maxByte))
	}
	return RGBA(mix(r1, r2), mix(g1, g2), mix(b1, b2), a1)
}

// HSVA constructs a Color from hue (degrees, wraps modulo 360),
// saturation, value and alpha (all 0-1).
func HSVA(hue, saturation, value, alpha float64) Color {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	saturation = clamp01(saturation)
	value = clamp01(value)

	c := value * saturation
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := value - c

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	toByte := func(v float64) uint8 {
		return uint8(math.Round(clamp01(v+m) * maxByte))
	}
	return RGBA(toByte(r), toByte(g), toByte(b), alpha)
}

// HSVA returns the hue (degrees), saturation, value and alpha components.
// For achromatic colors the hue is 0.
func (c Color) HSVA() (hue, saturation, value, alpha float64) {
	r, g, b, a := c.RGBAF()
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	switch {
	case delta == 0:
		hue = 0
	case max == r:
		hue = 60 * math.Mod((g-b)/delta, 6)
	case max == g:
		hue = 60 * ((b-r)/delta + 2)
	default:
		hue = 60 * ((r-g)/delta + 4)
	}
	if hue < 0 {
		hue += 360
	}

	if max > 0 {
		saturation = delta / max
	}
	return hue, saturation, max, a
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

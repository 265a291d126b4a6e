package style

import (
	"golang.org/x/image/colornames"

	"github.com/go-velt/velt/pkg/graphics"
)

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   Named("steelblue"),
		OnPrimary: Named("white"),
		Surface:   Named("white"),
		OnSurface: Named("black").WithAlpha(0.87),
		Outline:   Named("gray"),
		Scrim:     Named("black").WithAlpha(0.4),
		Error:     Named("crimson"),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   Named("cornflowerblue"),
		OnPrimary: Named("black"),
		Surface:   graphics.RGB(0x1e, 0x1e, 0x1e),
		OnSurface: Named("white").WithAlpha(0.87),
		Outline:   Named("dimgray"),
		Scrim:     Named("black").WithAlpha(0.6),
		Error:     Named("tomato"),
	}
}

// Named resolves an SVG 1.1 color name to a Color. Unknown names resolve
// to opaque black.
func Named(name string) graphics.Color {
	c, ok := colornames.Map[name]
	if !ok {
		return graphics.ColorBlack
	}
	return graphics.RGBA8(c.R, c.G, c.B, c.A)
}

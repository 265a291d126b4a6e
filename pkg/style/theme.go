package style

import "github.com/go-velt/velt/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme.
	BrightnessDark
)

// ColorScheme defines the palette a Theme derives component visuals from.
type ColorScheme struct {
	// Primary is the accent color for selections and active elements.
	Primary graphics.Color
	// OnPrimary is the foreground color used on Primary fills.
	OnPrimary graphics.Color
	// Surface is the background of panels, popups and cards.
	Surface graphics.Color
	// OnSurface is the foreground color used on Surface fills.
	OnSurface graphics.Color
	// Outline is the default border color.
	Outline graphics.Color
	// Scrim is the color of modal backdrops, usually translucent.
	Scrim graphics.Color
	// Error is the color for invalid or destructive elements.
	Error graphics.Color
}

// Theme is the default Resolver implementation. Visuals are derived from
// the ColorScheme and adjusted per interaction flag; per-component
// overrides take precedence over derivation.
type Theme struct {
	// Colors is the palette visuals are derived from.
	Colors ColorScheme

	// Brightness is informational; it selects the derivation direction
	// for hover and press adjustments.
	Brightness Brightness

	// Text is the base text style. Its Color field is overwritten by the
	// resolved Foreground.
	Text graphics.TextStyle

	// Overrides replaces the derived base visual for a component name.
	// Flag adjustments still apply on top of an override.
	Overrides map[string]Visual
}

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{
		Colors:     LightColorScheme(),
		Brightness: BrightnessLight,
		Text:       graphics.TextStyle{FontSize: 14},
	}
}

// Dark returns the default dark theme.
func Dark() *Theme {
	return &Theme{
		Colors:     DarkColorScheme(),
		Brightness: BrightnessDark,
		Text:       graphics.TextStyle{FontSize: 14},
	}
}

// Resolve implements Resolver.
func (t *Theme) Resolve(component string, flags Flags) Visual {
	base, ok := t.Overrides[component]
	if !ok {
		base = t.base(component)
	}
	return t.adjust(base, flags)
}

// base derives the unadjusted visual for a component name.
func (t *Theme) base(component string) Visual {
	c := t.Colors
	v := Visual{
		Background:   c.Surface,
		Foreground:   c.OnSurface,
		Border:       c.Outline,
		Accent:       c.Primary,
		OnAccent:     c.OnPrimary,
		BorderWidth:  1,
		BorderRadius: 4,
		Text:         t.Text.WithColor(c.OnSurface),
		Padding:      graphics.UniformInsets(8),
		Spacing:      4,
	}
	switch component {
	case ComponentModal:
		v.Background = c.Scrim
		v.BorderWidth = 0
	case ComponentContextMenu, ComponentFloating:
		v.BorderRadius = 6
		v.Padding = graphics.UniformInsets(4)
	case ComponentBadge:
		v.Background = c.Error
		v.Foreground = c.OnPrimary
		v.Text = t.Text.WithColor(c.OnPrimary)
		v.BorderWidth = 0
		v.BorderRadius = 8
		v.Padding = graphics.SymmetricInsets(4, 1)
	case ComponentCard:
		v.BorderRadius = 8
		v.Padding = graphics.UniformInsets(12)
	case ComponentSpinner, ComponentSlideBar:
		v.BorderWidth = 0
	}
	return v
}

// adjust applies interaction-flag adjustments to a base visual.
func (t *Theme) adjust(v Visual, flags Flags) Visual {
	hoverShift := 0.08
	pressShift := 0.16
	if t.Brightness == BrightnessDark {
		// Dark surfaces read better lightened than darkened.
		hoverShift, pressShift = -hoverShift, -pressShift
	}

	if flags.Has(FlagSelected) || flags.Has(FlagActive) {
		v.Background = v.Accent
		v.Foreground = v.OnAccent
		v.Text = v.Text.WithColor(v.OnAccent)
	}
	if flags.Has(FlagHovered) && !flags.Has(FlagDisabled) {
		v.Background = shift(v.Background, hoverShift)
	}
	if flags.Has(FlagActive) {
		v.Background = shift(v.Background, pressShift)
	}
	if flags.Has(FlagFocused) {
		v.Border = v.Accent
		v.BorderWidth = v.BorderWidth + 1
	}
	if flags.Has(FlagMuted) {
		v.Foreground = v.Foreground.WithAlpha(0.45)
		v.Text = v.Text.WithColor(v.Foreground)
	}
	if flags.Has(FlagDisabled) {
		v.Background = v.Background.WithAlpha(0.5)
		v.Foreground = v.Foreground.WithAlpha(0.38)
		v.Border = v.Border.WithAlpha(0.38)
		v.Text = v.Text.WithColor(v.Foreground)
	}
	return v
}

// shift darkens for positive amounts and lightens for negative ones.
func shift(c graphics.Color, amount float64) graphics.Color {
	if amount >= 0 {
		return c.Darken(amount)
	}
	return c.Lighten(-amount)
}

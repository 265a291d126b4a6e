// Package style provides the style-resolution service consumed by draw
// code. Components never hardcode visuals; they ask a Resolver for the
// Visual matching their component name and interaction flags. The default
// Resolver is Theme, which derives per-component visuals from a color
// scheme and optional overrides, loadable from a YAML theme file.
package style

import "github.com/go-velt/velt/pkg/graphics"

// Flags is a bit set describing the interaction state a visual is
// resolved for.
type Flags uint8

const (
	// FlagHovered is set while the pointer is over the element.
	FlagHovered Flags = 1 << iota
	// FlagActive is set while the element is pressed or open.
	FlagActive
	// FlagFocused is set while the element holds keyboard focus.
	FlagFocused
	// FlagSelected is set for the selected item of a collection.
	FlagSelected
	// FlagDisabled is set for non-interactive elements.
	FlagDisabled
	// FlagMuted is set for de-emphasized elements, such as the
	// adjacent-month cells of a calendar.
	FlagMuted
)

// Has reports whether all bits in f2 are set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Visual is the resolved appearance of one element in one state.
type Visual struct {
	// Background is the fill color.
	Background graphics.Color
	// Foreground is the text and icon color.
	Foreground graphics.Color
	// Border is the outline color.
	Border graphics.Color
	// Accent is the emphasis color for selections and progress fills.
	Accent graphics.Color
	// OnAccent is the foreground color used on top of Accent fills.
	OnAccent graphics.Color
	// BorderWidth is the outline stroke width.
	BorderWidth float64
	// BorderRadius is the corner radius.
	BorderRadius float64
	// Text is the text style, with Color matching Foreground.
	Text graphics.TextStyle
	// Padding is the content padding.
	Padding graphics.Insets
	// Spacing is the gap between sibling elements.
	Spacing float64
}

// Resolver resolves the appearance of a component class in a given
// interaction state. Implementations must be pure lookups: resolving
// must not mutate anything, since it runs during the draw phase.
type Resolver interface {
	Resolve(component string, flags Flags) Visual
}

// Component name constants used by the built-in widgets. Custom
// components may use any string; Theme falls back to base visuals for
// names it has no override for.
const (
	ComponentDatePicker      = "date_picker"
	ComponentTimePicker      = "time_picker"
	ComponentColorPicker     = "color_picker"
	ComponentModal           = "modal"
	ComponentContextMenu     = "context_menu"
	ComponentFloating        = "floating_element"
	ComponentGrid            = "grid"
	ComponentTabBar          = "tab_bar"
	ComponentSegmentedButton = "segmented_button"
	ComponentSpinner         = "spinner"
	ComponentSlideBar        = "slide_bar"
	ComponentNumberInput     = "number_input"
	ComponentSelectionList   = "selection_list"
	ComponentSplit           = "split"
	ComponentBadge           = "badge"
	ComponentCard            = "card"
)

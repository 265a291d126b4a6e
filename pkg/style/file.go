package style

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-velt/velt/pkg/graphics"
)

// SchemaVersion is the theme file schema this release reads. Files with a
// different major version are rejected.
const SchemaVersion = "v1"

// themeFile is the YAML shape of a theme file.
type themeFile struct {
	Version    string               `yaml:"version"`
	Brightness string               `yaml:"brightness"`
	Colors     map[string]string    `yaml:"colors"`
	Text       textFile             `yaml:"text"`
	Overrides  map[string]visualRaw `yaml:"overrides"`
}

type textFile struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// visualRaw holds override fields; absent fields keep the derived value.
type visualRaw struct {
	Background   *string  `yaml:"background"`
	Foreground   *string  `yaml:"foreground"`
	Border       *string  `yaml:"border"`
	Accent       *string  `yaml:"accent"`
	OnAccent     *string  `yaml:"on_accent"`
	BorderWidth  *float64 `yaml:"border_width"`
	BorderRadius *float64 `yaml:"border_radius"`
	Padding      *float64 `yaml:"padding"`
	Spacing      *float64 `yaml:"spacing"`
}

// ParseTheme reads a YAML theme file into a Theme. The file's version
// must share SchemaVersion's major version.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("style: parse theme: %w", err)
	}

	version := file.Version
	if version == "" {
		version = SchemaVersion
	}
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("style: invalid theme version %q", file.Version)
	}
	if semver.Major(version) != semver.Major(SchemaVersion) {
		return nil, fmt.Errorf("style: theme version %s incompatible with schema %s", version, SchemaVersion)
	}

	theme := Light()
	if file.Brightness == "dark" {
		theme = Dark()
	}

	if err := applyColors(&theme.Colors, file.Colors); err != nil {
		return nil, err
	}
	if file.Text.Family != "" {
		theme.Text.FontFamily = file.Text.Family
	}
	if file.Text.Size > 0 {
		theme.Text.FontSize = file.Text.Size
	}

	if len(file.Overrides) > 0 {
		theme.Overrides = make(map[string]Visual, len(file.Overrides))
		for component, raw := range file.Overrides {
			visual, err := applyOverride(theme.base(component), raw)
			if err != nil {
				return nil, fmt.Errorf("style: override %s: %w", component, err)
			}
			theme.Overrides[component] = visual
		}
	}
	return theme, nil
}

// applyColors overwrites scheme fields named in the file.
func applyColors(scheme *ColorScheme, colors map[string]string) error {
	for name, value := range colors {
		parsed, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("style: color %s: %w", name, err)
		}
		switch name {
		case "primary":
			scheme.Primary = parsed
		case "on_primary":
			scheme.OnPrimary = parsed
		case "surface":
			scheme.Surface = parsed
		case "on_surface":
			scheme.OnSurface = parsed
		case "outline":
			scheme.Outline = parsed
		case "scrim":
			scheme.Scrim = parsed
		case "error":
			scheme.Error = parsed
		default:
			return fmt.Errorf("style: unknown color role %q", name)
		}
	}
	return nil
}

// applyOverride merges non-nil raw fields into the derived visual.
func applyOverride(base Visual, raw visualRaw) (Visual, error) {
	assign := func(dst *graphics.Color, src *string) error {
		if src == nil {
			return nil
		}
		parsed, err := ParseColor(*src)
		if err != nil {
			return err
		}
		*dst = parsed
		return nil
	}
	if err := assign(&base.Background, raw.Background); err != nil {
		return base, err
	}
	if err := assign(&base.Foreground, raw.Foreground); err != nil {
		return base, err
	}
	if err := assign(&base.Border, raw.Border); err != nil {
		return base, err
	}
	if err := assign(&base.Accent, raw.Accent); err != nil {
		return base, err
	}
	if err := assign(&base.OnAccent, raw.OnAccent); err != nil {
		return base, err
	}
	if raw.BorderWidth != nil {
		base.BorderWidth = *raw.BorderWidth
	}
	if raw.BorderRadius != nil {
		base.BorderRadius = *raw.BorderRadius
	}
	if raw.Padding != nil {
		base.Padding = graphics.UniformInsets(*raw.Padding)
	}
	if raw.Spacing != nil {
		base.Spacing = *raw.Spacing
	}
	base.Text = base.Text.WithColor(base.Foreground)
	return base, nil
}

// ParseColor parses "#RRGGBB", "#AARRGGBB", or an SVG 1.1 color name.
func ParseColor(value string) (graphics.Color, error) {
	if hex, ok := strings.CutPrefix(value, "#"); ok {
		switch len(hex) {
		case 6:
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid hex color %q", value)
			}
			return graphics.Color(0xFF000000 | uint32(n)), nil
		case 8:
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid hex color %q", value)
			}
			return graphics.Color(uint32(n)), nil
		default:
			return 0, fmt.Errorf("invalid hex color %q", value)
		}
	}
	if _, ok := colornames.Map[value]; !ok {
		return 0, fmt.Errorf("unknown color name %q", value)
	}
	return Named(value), nil
}

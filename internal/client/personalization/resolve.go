package personalization

import (
	"fmt"

	"github.com/daybookapp/daybook/internal/client/models"
)

// Variable is one named style value pushed into the application sink.
type Variable struct {
	Name  string
	Value string
}

// Defaults returns the built-in configuration used before any stored settings
// are loaded.
func Defaults() models.Settings {
	theme := ResolveTheme(DefaultThemeKey)
	return models.Settings{
		Theme:           DefaultThemeKey,
		PrimaryColor:    theme.Primary,
		AccentColor:     theme.Accent,
		BackgroundColor: theme.Background,
		FontFamily:      DefaultFontFamilyKey,
		FontSize:        DefaultFontSizeKey,
		BackgroundType:  BackgroundGradient,
		BackgroundValue: DefaultGradientKey,
		BackgroundBlur:  0,
	}
}

// Normalize fills empty fields of stored with defaults, without touching
// fields that carry a value. Unknown enum keys are left in place; Resolve
// falls back for those at apply time.
func Normalize(stored models.Settings) models.Settings {
	def := Defaults()
	if stored.Theme == "" {
		stored.Theme = def.Theme
	}
	theme := ResolveTheme(stored.Theme)
	if stored.PrimaryColor == "" {
		stored.PrimaryColor = theme.Primary
	}
	if stored.AccentColor == "" {
		stored.AccentColor = theme.Accent
	}
	if stored.BackgroundColor == "" {
		stored.BackgroundColor = theme.Background
	}
	if stored.FontFamily == "" {
		stored.FontFamily = def.FontFamily
	}
	if stored.FontSize == "" {
		stored.FontSize = def.FontSize
	}
	if stored.BackgroundType == "" {
		stored.BackgroundType = def.BackgroundType
	}
	if stored.BackgroundValue == "" {
		stored.BackgroundValue = def.BackgroundValue
	}
	if stored.BackgroundBlur < 0 {
		stored.BackgroundBlur = 0
	}
	return stored
}

// Resolve computes the flat set of style variables for cfg. It is a pure
// function: the same config always yields the same variables, in the same
// order. Unknown theme, gradient or pattern keys resolve to built-in defaults.
func Resolve(cfg models.Settings) []Variable {
	theme := ResolveTheme(cfg.Theme)

	background := theme.Background
	if cfg.BackgroundColor != "" {
		background = cfg.BackgroundColor
	}
	primary := theme.Primary
	if cfg.PrimaryColor != "" {
		primary = cfg.PrimaryColor
	}
	accent := theme.Accent
	if cfg.AccentColor != "" {
		accent = cfg.AccentColor
	}

	family, ok := fontFamilies[cfg.FontFamily]
	if !ok {
		family = fontFamilies[DefaultFontFamilyKey]
	}
	size, ok := fontSizes[cfg.FontSize]
	if !ok {
		size = fontSizes[DefaultFontSizeKey]
	}

	return []Variable{
		{"background", background},
		{"foreground", theme.Foreground},
		{"primary", primary},
		{"primary-hover", theme.PrimaryHover},
		{"accent", accent},
		{"border", theme.Border},
		{"card", theme.Card},
		{"muted", theme.Muted},
		{"font-family", family},
		{"font-scale", fmt.Sprintf("%g", size.Scale)},
		{"base-font-size", size.Base},
		{"page-background", resolveBackground(cfg)},
		{"page-background-filter", resolveBackgroundFilter(cfg)},
	}
}

// resolveBackground maps the background type/value pair to CSS. Gradient and
// pattern lookups fall back to a default key when the named value is unknown;
// solid uses the raw value directly; image becomes a cover-fit url().
func resolveBackground(cfg models.Settings) string {
	switch cfg.BackgroundType {
	case BackgroundSolid:
		return cfg.BackgroundValue
	case BackgroundImage:
		return fmt.Sprintf("url(%s) center / cover no-repeat", cfg.BackgroundValue)
	case BackgroundPattern:
		if p, ok := patterns[cfg.BackgroundValue]; ok {
			return p
		}
		return patterns[DefaultPatternKey]
	default:
		if g, ok := gradients[cfg.BackgroundValue]; ok {
			return g
		}
		return gradients[DefaultGradientKey]
	}
}

// resolveBackgroundFilter blends a blur in only for image backgrounds with a
// positive radius.
func resolveBackgroundFilter(cfg models.Settings) string {
	if cfg.BackgroundType == BackgroundImage && cfg.BackgroundBlur > 0 {
		return fmt.Sprintf("blur(%dpx)", cfg.BackgroundBlur)
	}
	return "none"
}

package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/daybookapp/daybook/internal/client/personalization"
	"github.com/daybookapp/daybook/internal/filex"
)

// stylesDir is where exported stylesheets are written, relative to the
// working directory.
const stylesDir = "styles"

// ShowAppearance prints the active configuration and the style variables it
// resolves to.
func (a *App) ShowAppearance(ctx context.Context) error {
	cfg := a.personal.Config()
	printlnFn(fmt.Sprintf("theme=%s font=%s/%s background=%s:%s blur=%d",
		cfg.Theme, cfg.FontFamily, cfg.FontSize, cfg.BackgroundType, cfg.BackgroundValue, cfg.BackgroundBlur))
	for _, v := range personalization.Resolve(cfg) {
		printlnFn(fmt.Sprintf("  %s: %s", v.Name, v.Value))
	}
	return nil
}

// ListThemes prints the available theme keys.
func (a *App) ListThemes(ctx context.Context) error {
	keys := personalization.ThemeKeys()
	sort.Strings(keys)
	printlnFn("Themes:", strings.Join(keys, ", "))
	return nil
}

// SetTheme switches the active theme. The change is visible immediately and
// persisted in the background.
func (a *App) SetTheme(ctx context.Context, key string) error {
	a.personal.SetTheme(key)
	return nil
}

// SetColor overrides one of the theme's colors.
func (a *App) SetColor(ctx context.Context, target, value string) error {
	switch target {
	case "primary":
		a.personal.SetPrimaryColor(value)
	case "accent":
		a.personal.SetAccentColor(value)
	case "background":
		a.personal.SetBackgroundColor(value)
	default:
		printlnFn("Usage: color <primary|accent|background> <value>")
	}
	return nil
}

// SetFont changes the font family or size.
func (a *App) SetFont(ctx context.Context, target, value string) error {
	switch target {
	case "family":
		a.personal.SetFontFamily(value)
	case "size":
		a.personal.SetFontSize(value)
	default:
		printlnFn("Usage: font <family|size> <value>")
	}
	return nil
}

// SetBackground changes the page background. kind selects the background
// type and value its parameter; "blur" adjusts the image blur radius.
func (a *App) SetBackground(ctx context.Context, kind, value string) error {
	switch kind {
	case personalization.BackgroundSolid,
		personalization.BackgroundGradient,
		personalization.BackgroundPattern,
		personalization.BackgroundImage:
		a.personal.SetBackgroundType(kind)
		a.personal.SetBackgroundValue(value)
	case "blur":
		px, err := strconv.Atoi(value)
		if err != nil || px < 0 {
			printlnFn("Usage: bg blur <pixels>")
			return fmt.Errorf("invalid blur %q", value)
		}
		a.personal.SetBackgroundBlur(px)
	default:
		printlnFn("Usage: bg <solid|gradient|pattern|image|blur> <value>")
	}
	return nil
}

// ResetAppearance restores the built-in defaults.
func (a *App) ResetAppearance(ctx context.Context) error {
	a.personal.ResetToDefaults()
	printlnFn("Appearance reset to defaults.")
	return nil
}

// ExportCSS writes the current style as a CSS custom-property block under the
// styles directory, so a web view can link it.
func (a *App) ExportCSS(ctx context.Context, name string) error {
	if name == "" {
		name = "daybook.css"
	}

	dir, err := filex.EnsureSubDir(stylesDir)
	if err != nil {
		log.Printf("Export failed: %s", err.Error())
		return err
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Export failed: %s", err.Error())
		return err
	}
	defer f.Close()

	if err := personalization.WriteCSS(f, a.personal.Config()); err != nil {
		log.Printf("Export failed: %s", err.Error())
		return err
	}

	printlnFn("Wrote", path)
	return nil
}

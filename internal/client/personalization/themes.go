package personalization

// Theme is a named base palette. SetTheme copies Primary, Accent and
// Background into the override fields of the active settings, so later color
// customizations layer on top of the chosen theme.
type Theme struct {
	Background   string
	Foreground   string
	Primary      string
	PrimaryHover string
	Accent       string
	Border       string
	Card         string
	Muted        string
}

// DefaultThemeKey is used on first load and whenever a stored theme key is
// unknown to this build.
const DefaultThemeKey = "classic"

var themes = map[string]Theme{
	"classic": {
		Background:   "#faf7f2",
		Foreground:   "#2d2a26",
		Primary:      "#8c6f4e",
		PrimaryHover: "#7a5f40",
		Accent:       "#c98f64",
		Border:       "#e5ddd0",
		Card:         "#ffffff",
		Muted:        "#8a8377",
	},
	"forest": {
		Background:   "#f3f6f1",
		Foreground:   "#24312a",
		Primary:      "#4a7055",
		PrimaryHover: "#3d5e47",
		Accent:       "#8fae6f",
		Border:       "#dbe4d6",
		Card:         "#ffffff",
		Muted:        "#73806f",
	},
	"ocean": {
		Background:   "#f0f5f8",
		Foreground:   "#1f2d38",
		Primary:      "#3a6d8c",
		PrimaryHover: "#2f5a75",
		Accent:       "#6fa8c4",
		Border:       "#d5e2ea",
		Card:         "#ffffff",
		Muted:        "#6d7e8a",
	},
	"sunset": {
		Background:   "#fdf4ee",
		Foreground:   "#3a2a24",
		Primary:      "#c96f4a",
		PrimaryHover: "#b25d3a",
		Accent:       "#e8a87c",
		Border:       "#f0ddd0",
		Card:         "#fffaf6",
		Muted:        "#9a8377",
	},
	"rose": {
		Background:   "#fbf3f5",
		Foreground:   "#38262c",
		Primary:      "#b05a72",
		PrimaryHover: "#9c4a61",
		Accent:       "#d898a8",
		Border:       "#eed9de",
		Card:         "#ffffff",
		Muted:        "#93787f",
	},
	"midnight": {
		Background:   "#191c24",
		Foreground:   "#e6e4df",
		Primary:      "#8d9bc4",
		PrimaryHover: "#7a89b6",
		Accent:       "#c4a46e",
		Border:       "#2b3040",
		Card:         "#20242f",
		Muted:        "#8b8fa0",
	},
}

// ResolveTheme returns the theme for key, falling back to the default palette
// when the key is unknown.
func ResolveTheme(key string) Theme {
	if t, ok := themes[key]; ok {
		return t
	}
	return themes[DefaultThemeKey]
}

// ThemeKeys lists the available theme keys (unsorted).
func ThemeKeys() []string {
	keys := make([]string, 0, len(themes))
	for k := range themes {
		keys = append(keys, k)
	}
	return keys
}

const (
	DefaultFontFamilyKey = "sans"
	DefaultFontSizeKey   = "medium"
)

var fontFamilies = map[string]string{
	"sans":  `"Inter", "Helvetica Neue", Arial, sans-serif`,
	"serif": `"Lora", Georgia, "Times New Roman", serif`,
	"mono":  `"JetBrains Mono", "Fira Code", monospace`,
	"hand":  `"Caveat", "Comic Sans MS", cursive`,
}

type fontSize struct {
	Scale float64
	Base  string
}

var fontSizes = map[string]fontSize{
	"small":  {Scale: 0.875, Base: "14px"},
	"medium": {Scale: 1, Base: "16px"},
	"large":  {Scale: 1.125, Base: "18px"},
}

// Background types.
const (
	BackgroundGradient = "gradient"
	BackgroundSolid    = "solid"
	BackgroundImage    = "image"
	BackgroundPattern  = "pattern"
)

const (
	DefaultGradientKey = "dawn"
	DefaultPatternKey  = "dots"
)

var gradients = map[string]string{
	"dawn":     "linear-gradient(160deg, #fdf4ee 0%, #f3e6da 100%)",
	"meadow":   "linear-gradient(160deg, #f3f6f1 0%, #dde8d4 100%)",
	"tide":     "linear-gradient(160deg, #f0f5f8 0%, #d8e6ee 100%)",
	"dusk":     "linear-gradient(160deg, #e8e2ef 0%, #cfc4e0 100%)",
	"ember":    "linear-gradient(160deg, #fdeee6 0%, #f5cdb4 100%)",
	"graphite": "linear-gradient(160deg, #24272f 0%, #15171d 100%)",
}

var patterns = map[string]string{
	"dots":  `radial-gradient(circle, rgba(0,0,0,0.08) 1px, transparent 1px) 0 0 / 16px 16px`,
	"grid":  `linear-gradient(rgba(0,0,0,0.05) 1px, transparent 1px) 0 0 / 24px 24px, linear-gradient(90deg, rgba(0,0,0,0.05) 1px, transparent 1px) 0 0 / 24px 24px`,
	"lines": `repeating-linear-gradient(0deg, transparent, transparent 27px, rgba(0,0,0,0.07) 28px)`,
}

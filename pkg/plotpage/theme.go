package plotpage

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Theme is a document color scheme, written verbatim into the CSS
// color-scheme property.
type Theme string

const (
	// ThemeAuto follows the operating system preference.
	ThemeAuto Theme = "light dark"
	// ThemeLight is the light color scheme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color scheme.
	ThemeDark Theme = "dark"
)

// ErrUnknownTheme is returned for a color scheme outside the supported set.
var ErrUnknownTheme = errors.New("unknown color scheme")

// SchemeOption is one entry of the theme select.
type SchemeOption struct {
	Value    Theme
	Label    string
	Selected bool
}

// Themes lists the selectable schemes in display order.
func Themes() []SchemeOption {
	return []SchemeOption{
		{Value: ThemeAuto, Label: "Automatic"},
		{Value: ThemeLight, Label: "Light"},
		{Value: ThemeDark, Label: "Dark"},
	}
}

// ParseTheme accepts a scheme value or its label, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	s = strings.TrimSpace(s)

	for _, opt := range Themes() {
		if strings.EqualFold(s, string(opt.Value)) || strings.EqualFold(s, opt.Label) {
			return opt.Value, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Label returns the select label of the theme.
func (t Theme) Label() string {
	for _, opt := range Themes() {
		if opt.Value == t {
			return opt.Label
		}
	}

	return string(t)
}

// schemeOptions marks the option matching t as selected.
func schemeOptions(t Theme) []SchemeOption {
	opts := Themes()
	for i := range opts {
		opts[i].Selected = opts[i].Value == t
	}

	return opts
}

// ThemeConfig holds the palette of one color scheme.
type ThemeConfig struct {
	Background string
	Surface    string
	Border     string

	TextPrimary string
	TextMuted   string

	Accent       string
	AccentSubtle string

	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string

	// ECharts theme name.
	EChartsTheme string
}

// GetThemeConfig returns the palette for a theme. The automatic scheme charts
// with the light palette.
func GetThemeConfig(theme Theme) ThemeConfig {
	switch theme {
	case ThemeDark:
		return darkTheme
	case ThemeLight, ThemeAuto:
		return lightTheme
	default:
		return lightTheme
	}
}

// themeCSS renders the theme as CSS custom properties. The automatic scheme
// gets the dark palette under a prefers-color-scheme media query.
func themeCSS(theme Theme) template.CSS {
	var b strings.Builder

	b.WriteString(":root {")
	writeVars(&b, GetThemeConfig(theme))
	b.WriteString("}")

	if theme == ThemeAuto {
		b.WriteString("\n@media (prefers-color-scheme: dark) { :root {")
		writeVars(&b, darkTheme)
		b.WriteString("} }")
	}

	return template.CSS(b.String()) //nolint:gosec // built from the fixed palettes
}

func writeVars(b *strings.Builder, c ThemeConfig) {
	for _, kv := range [][2]string{
		{"--bg", c.Background},
		{"--surface", c.Surface},
		{"--border", c.Border},
		{"--text", c.TextPrimary},
		{"--text-muted", c.TextMuted},
		{"--accent", c.Accent},
		{"--accent-subtle", c.AccentSubtle},
	} {
		fmt.Fprintf(b, " %s: %s;", kv[0], kv[1])
	}
}

var lightTheme = ThemeConfig{
	Background: "#fafaf9", // stone-50.
	Surface:    "#ffffff",
	Border:     "#e7e5e4", // stone-200.

	TextPrimary: "#1c1917", // stone-900.
	TextMuted:   "#78716c", // stone-500.

	Accent:       "#4682b4", // steelblue, the dot color.
	AccentSubtle: "#dbeafe", // blue-100.

	ChartBackground: "transparent",
	ChartGrid:       "#e7e5e4", // stone-200.
	ChartAxis:       "#a8a29e", // stone-400.
	ChartText:       "#44403c", // stone-700.
	ChartTextMuted:  "#78716c", // stone-500.
}

var darkTheme = ThemeConfig{
	Background: "#0c0a09", // stone-950.
	Surface:    "#1c1917", // stone-900.
	Border:     "#44403c", // stone-700.

	TextPrimary: "#fafaf9", // stone-50.
	TextMuted:   "#a8a29e", // stone-400.

	Accent:       "#7fb2dd",
	AccentSubtle: "#1e3a8a", // blue-900.

	ChartBackground: "transparent",
	ChartGrid:       "#44403c", // stone-700.
	ChartAxis:       "#57534e", // stone-600.
	ChartText:       "#d6d3d1", // stone-300.
	ChartTextMuted:  "#a8a29e", // stone-400.

	EChartsTheme: "dark",
}

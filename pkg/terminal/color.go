package terminal

import (
	"github.com/fatih/color"
)

// Palette colors status and emphasis text. Zero-value colors are plain.
type Palette struct {
	noColor bool
}

// Palette returns the palette for this configuration.
func (c Config) Palette() Palette {
	return Palette{noColor: c.NoColor}
}

func (p Palette) paint(attr color.Attribute, s string) string {
	if p.noColor {
		return s
	}

	c := color.New(attr)
	c.EnableColor()

	return c.Sprint(s)
}

// OK is green.
func (p Palette) OK(s string) string { return p.paint(color.FgGreen, s) }

// Warn is yellow.
func (p Palette) Warn(s string) string { return p.paint(color.FgYellow, s) }

// Error is red.
func (p Palette) Error(s string) string { return p.paint(color.FgRed, s) }

// Info is cyan.
func (p Palette) Info(s string) string { return p.paint(color.FgCyan, s) }

// Muted is bright black.
func (p Palette) Muted(s string) string { return p.paint(color.FgHiBlack, s) }

// Bold is bold.
func (p Palette) Bold(s string) string { return p.paint(color.Bold, s) }

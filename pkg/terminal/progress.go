package terminal

import (
	"strings"
)

// Bar characters.
const (
	BarFilled = "█"
	BarEmpty  = "░"
)

// Bar draws a bar of width cells filled to value, clamped to [0, 1].
func Bar(value float64, width int) string {
	if width <= 0 {
		return ""
	}

	value = min(max(value, 0), 1)
	filled := int(value * float64(width))

	return strings.Repeat(BarFilled, filled) + strings.Repeat(BarEmpty, width-filled)
}

// Slider draws the time slider track with a marker at progress in [0, 100].
func Slider(progress float64, width int) string {
	if width <= 0 {
		return ""
	}

	progress = min(max(progress, 0), 100)
	at := int(progress / 100 * float64(width-1))

	return strings.Repeat(BoxHorizontal, at) + "●" + strings.Repeat(BoxHorizontal, width-1-at)
}

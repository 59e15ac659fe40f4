package terminal

import (
	"strings"
	"unicode/utf8"
)

// Heavy box drawing characters.
const (
	BoxHeavyHorizontal  = "━"
	BoxHeavyVertical    = "┃"
	BoxHeavyTopLeft     = "┏"
	BoxHeavyTopRight    = "┓"
	BoxHeavyBottomLeft  = "┗"
	BoxHeavyBottomRight = "┛"
	BoxHorizontal       = "─"
)

const headerPadding = 1

// Separator draws a thin horizontal rule.
func Separator(width int) string {
	if width <= 0 {
		return ""
	}

	return strings.Repeat(BoxHorizontal, width)
}

// Header draws a heavy-bordered title line with optional right-aligned text.
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ META          2 commits shown ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func Header(title, right string, width int) string {
	titleLen, rightLen := utf8.RuneCountInString(title), utf8.RuneCountInString(right)
	width = max(width, titleLen+rightLen+3+2*headerPadding)

	inner := width - 2
	contentWidth := inner - 2*headerPadding

	content := PadRight(title, contentWidth)
	if right != "" {
		gap := max(contentWidth-titleLen-rightLen, 1)
		content = title + strings.Repeat(" ", gap) + right
	}

	pad := strings.Repeat(" ", headerPadding)
	rule := strings.Repeat(BoxHeavyHorizontal, inner)

	return BoxHeavyTopLeft + rule + BoxHeavyTopRight + "\n" +
		BoxHeavyVertical + pad + content + pad + BoxHeavyVertical + "\n" +
		BoxHeavyBottomLeft + rule + BoxHeavyBottomRight
}

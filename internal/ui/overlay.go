// Package ui composes full-screen effects on top of rendered views: modal
// overlays, the scanline sweep, block digits and the title warm-up.
package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/greenscreen/internal/styles"
)

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		w := ansi.StringWidth(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dimLine strips ANSI codes and repaints the text in the muted phosphor
// tone. SGR 2 (faint) doesn't combine reliably with existing colors.
func dimLine(s string) string {
	return styles.Muted.Render(ansi.Strip(s))
}

// compositeRow overlays modalLine onto bgLine at position modalStartX.
// Returns: dimmed-left-segment + modalLine + dimmed-right-segment
func compositeRow(bgLine, modalLine string, modalStartX, modalWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if modalStartX > 0 {
		left := ansi.Truncate(stripped, modalStartX, "")
		leftWidth := ansi.StringWidth(left)
		b.WriteString(styles.Muted.Render(left))
		if leftWidth < modalStartX {
			b.WriteString(strings.Repeat(" ", modalStartX-leftWidth))
		}
	}

	b.WriteString(modalLine)

	// Pad short modal rows so the right segment stays aligned.
	if w := ansi.StringWidth(modalLine); w < modalWidth {
		b.WriteString(strings.Repeat(" ", modalWidth-w))
	}

	rightStartX := modalStartX + modalWidth
	if rightStartX < totalWidth && bgWidth > rightStartX {
		b.WriteString(styles.Muted.Render(ansi.Cut(stripped, rightStartX, bgWidth)))
	}

	return b.String()
}

// OverlayModal centers modal over a dimmed copy of background. The result
// always has exactly height lines.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := maxLineWidth(modalLines)
	modalHeight := len(modalLines)
	startX := max((width-modalWidth)/2, 0)
	startY := max((height-modalHeight)/2, 0)

	result := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}

		if row := y - startY; row >= 0 && row < modalHeight {
			result = append(result, compositeRow(bgLine, modalLines[row], startX, modalWidth, width))
		} else {
			result = append(result, dimLine(bgLine))
		}
	}

	return strings.Join(result, "\n")
}

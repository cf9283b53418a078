package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/greenscreen/internal/styles"
)

// ScanlineInterval is how often the scanline advances one row.
const ScanlineInterval = 60 * time.Millisecond

// ScanlineTickMsg advances the scanline.
type ScanlineTickMsg time.Time

// ScanlineTick schedules the next scanline frame.
func ScanlineTick() tea.Cmd {
	return tea.Tick(ScanlineInterval, func(t time.Time) tea.Msg {
		return ScanlineTickMsg(t)
	})
}

// Scanline repaints one row of view in the shadow tone, the way a CRT's
// refresh band washes across the glass. row wraps around the view height;
// a negative row leaves the view untouched.
func Scanline(view string, row int) string {
	if row < 0 || view == "" {
		return view
	}
	lines := strings.Split(view, "\n")
	row %= len(lines)
	lines[row] = styles.ScanlineShadow.Render(ansi.Strip(lines[row]))
	return strings.Join(lines, "\n")
}

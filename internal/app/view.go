package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/greenscreen/internal/keyboard"
	"github.com/marcus/greenscreen/internal/keymap"
	"github.com/marcus/greenscreen/internal/styles"
	"github.com/marcus/greenscreen/internal/ui"
)

const (
	// keyboardMaxWidth is the surface width before the first resize.
	keyboardMaxWidth = 119
	// keyboardChrome is the frame border plus padding around the surface.
	keyboardChrome   = 4
	maxProgressWidth = 80
)

// footerHint is a key shown with its command name.
type footerHint struct {
	keys  string
	label string
}

func keyboardSurface(width int) *keyboard.Surface {
	return keyboard.NewSurface(width - keyboardChrome)
}

func progressWidth(width int) int {
	return max(min(width-4, maxProgressWidth), 10)
}

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Warming up..."
	}

	var sections []string
	sections = append(sections, m.renderTitle(), "")
	if m.cfg.UI.ShowKeyboard {
		sections = append(sections, m.surface.Render(m.pressState()), "")
	}
	sections = append(sections,
		m.renderCountdown(),
		"",
		m.renderProgress(),
		"",
		m.renderCaption(),
	)
	if footer := m.renderFooterLink(); footer != "" {
		sections = append(sections, "", footer)
	}
	sections = append(sections, "", m.renderHints(), m.renderToast())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	screen := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)

	if m.cfg.UI.Scanlines {
		screen = ui.Scanline(screen, m.scanlineRow)
	}
	if m.showSettings && m.settings != nil {
		screen = ui.OverlayModal(screen, m.settings.View(m.width), m.width, m.height)
	}
	return screen
}

func (m Model) renderTitle() string {
	if m.intro != nil && !m.intro.Done {
		return m.intro.View()
	}
	return styles.Title.Render(m.cfg.Title)
}

// renderCountdown draws D : HH : MM : SS in block digits with unit labels.
// The colons blink with the seconds.
func (m Model) renderCountdown() string {
	sep := " "
	if m.colonOn || m.status.Done {
		sep = ":"
	}
	colon := styles.Digits.Render(ui.BigTextBlock(sep))

	unit := func(value, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.Digits.Render(ui.BigTextBlock(value)),
			styles.Muted.Render(label),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		unit(fmt.Sprintf("%d", m.status.Days), "DAYS"), "  ", colon, "  ",
		unit(fmt.Sprintf("%02d", m.status.Hours), "HOURS"), "  ", colon, "  ",
		unit(fmt.Sprintf("%02d", m.status.Minutes), "MINUTES"), "  ", colon, "  ",
		unit(fmt.Sprintf("%02d", m.status.Seconds), "SECONDS"),
	)
}

func (m Model) renderProgress() string {
	bar := m.progress.ViewAs(m.status.Progress / 100)
	label := styles.Body.Render(fmt.Sprintf("%.1f%% complete", m.status.Progress))
	return lipgloss.JoinVertical(lipgloss.Center, bar, label)
}

// renderCaption shows the typewriter text behind a prompt, with a block
// cursor.
func (m Model) renderCaption() string {
	return styles.Body.Render("> " + m.caption.Text() + "█")
}

// renderFooterLink renders the footer as an OSC 8 hyperlink where the
// terminal supports it.
func (m Model) renderFooterLink() string {
	text := m.cfg.FooterText
	if text == "" {
		text = m.cfg.FooterURL
	}
	if text == "" {
		return ""
	}
	if m.cfg.FooterURL == "" {
		return styles.Muted.Render(text)
	}
	return ansi.SetHyperlink(m.cfg.FooterURL) + styles.Link.Render(text) + ansi.ResetHyperlink()
}

func (m Model) renderHints() string {
	var hints []footerHint
	for _, b := range m.keymap.BindingsForContext(keymap.ContextGlobal) {
		c, ok := m.keymap.GetCommand(b.Command)
		if !ok {
			continue
		}
		hints = append(hints, footerHint{keys: b.Key, label: c.Name})
	}
	return renderHintLine(hints)
}

func renderHintLine(hints []footerHint) string {
	if len(hints) == 0 {
		return ""
	}
	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		if hint.keys == "" || hint.label == "" {
			continue
		}
		parts = append(parts, styles.KeyHint.Render(hint.keys)+" "+styles.Muted.Render(hint.label))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderToast() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusIsError {
		return styles.ToastError.Render(m.statusMsg)
	}
	return styles.ToastSuccess.Render(m.statusMsg)
}

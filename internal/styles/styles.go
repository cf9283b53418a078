// Package styles holds the phosphor palette and the lipgloss styles built from it.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - green phosphor by default, replaced by ApplyTheme
var (
	Phosphor    = lipgloss.Color("#00DD00") // Lit text
	PhosphorDim = lipgloss.Color("#007A00") // Pressed keys, labels
	PhosphorLow = lipgloss.Color("#0F3D14") // Progress track, scanline
	Screen      = lipgloss.Color("#0C1A0E") // Background
	Warning     = lipgloss.Color("#DDDD00")
	Error       = lipgloss.Color("#FF5555")
)

// Text styles
var (
	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Digits lipgloss.Style
	Link   lipgloss.Style

	KeyHint lipgloss.Style
)

// Keyboard styles
var (
	KeyboardFrame lipgloss.Style
	KeyReleased   lipgloss.Style
	KeyPressed    lipgloss.Style
)

// Modal and toast styles
var (
	ModalBox       lipgloss.Style
	ModalTitle     lipgloss.Style
	InputLabel     lipgloss.Style
	InputFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ToastSuccess   lipgloss.Style
	ToastError     lipgloss.Style
	ProgressFrame  lipgloss.Style
	ScanlineShadow lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles recreates every style from the current palette.
func rebuildStyles() {
	Title = lipgloss.NewStyle().Foreground(Phosphor).Bold(true)
	Body = lipgloss.NewStyle().Foreground(Phosphor)
	Muted = lipgloss.NewStyle().Foreground(PhosphorDim)
	Digits = lipgloss.NewStyle().Foreground(Phosphor).Bold(true)
	Link = lipgloss.NewStyle().Foreground(Phosphor).Underline(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(Screen).
		Background(PhosphorDim).
		Padding(0, 1)

	KeyboardFrame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Phosphor).
		Padding(0, 1)

	KeyReleased = lipgloss.NewStyle().
		Foreground(Screen).
		Background(Phosphor)

	KeyPressed = lipgloss.NewStyle().
		Foreground(Phosphor).
		Background(PhosphorLow).
		Bold(true)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Phosphor).
		Background(Screen).
		Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
		Foreground(Phosphor).
		Bold(true).
		MarginBottom(1)

	InputLabel = lipgloss.NewStyle().Foreground(PhosphorDim)

	InputFocused = lipgloss.NewStyle().Foreground(Phosphor).Bold(true)

	Button = lipgloss.NewStyle().
		Foreground(Phosphor).
		Border(lipgloss.NormalBorder()).
		BorderForeground(PhosphorDim).
		Padding(0, 1)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(Screen).
		Background(Phosphor).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Phosphor).
		Padding(0, 1).
		Bold(true)

	ToastSuccess = lipgloss.NewStyle().
		Background(Phosphor).
		Foreground(Screen).
		Bold(true).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(Screen).
		Bold(true).
		Padding(0, 1)

	ProgressFrame = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Phosphor).
		Padding(0, 1)

	ScanlineShadow = lipgloss.NewStyle().Foreground(PhosphorLow)
}

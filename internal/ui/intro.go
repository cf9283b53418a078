package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/greenscreen/internal/styles"
)

const (
	introFrame       = 16 * time.Millisecond
	introLetterDelay = 45 * time.Millisecond
	introWarmRate    = 6.0 // fraction of remaining color distance per second
)

// Intro warms the title up letter by letter, from an unlit tube to full
// phosphor brightness.
type Intro struct {
	Letters []*IntroLetter
	Done    bool

	elapsed time.Duration
}

// IntroLetter is one animated title rune.
type IntroLetter struct {
	Char         rune
	Lit          bool
	CurrentColor styles.RGB
	EndColor     styles.RGB
	Delay        time.Duration
}

func near(a, b styles.RGB) bool {
	return math.Abs(a.R-b.R) < 1 && math.Abs(a.G-b.G) < 1 && math.Abs(a.B-b.B) < 1
}

// NewIntro prepares the animation for title. from and to are hex colors.
func NewIntro(title string, from, to lipgloss.Color) *Intro {
	start := styles.HexToRGB(string(from))
	end := styles.HexToRGB(string(to))

	in := &Intro{}
	i := 0
	for _, r := range title {
		in.Letters = append(in.Letters, &IntroLetter{
			Char:         r,
			CurrentColor: start,
			EndColor:     end,
			Delay:        time.Duration(i) * introLetterDelay,
		})
		i++
	}
	if len(in.Letters) == 0 {
		in.Done = true
	}
	return in
}

// Update advances the animation by dt.
func (in *Intro) Update(dt time.Duration) {
	if in.Done {
		return
	}
	in.elapsed += dt

	settled := true
	step := math.Min(1, introWarmRate*dt.Seconds())
	for _, l := range in.Letters {
		if in.elapsed < l.Delay {
			settled = false
			continue
		}
		l.Lit = true
		l.CurrentColor.R += (l.EndColor.R - l.CurrentColor.R) * step
		l.CurrentColor.G += (l.EndColor.G - l.CurrentColor.G) * step
		l.CurrentColor.B += (l.EndColor.B - l.CurrentColor.B) * step
		if !near(l.CurrentColor, l.EndColor) {
			settled = false
		}
	}

	if settled {
		for _, l := range in.Letters {
			l.CurrentColor = l.EndColor
		}
		in.Done = true
	}
}

// View renders the title. Letters that have not lit yet are blank so the
// title keeps its final width throughout.
func (in *Intro) View() string {
	var b strings.Builder
	for _, l := range in.Letters {
		if !l.Lit {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(styles.RGBToHex(l.CurrentColor))).
			Bold(true).
			Render(string(l.Char)))
	}
	return b.String()
}

// IntroTickMsg is sent to update the animation frame.
type IntroTickMsg time.Time

// IntroTick schedules the next intro frame.
func IntroTick() tea.Cmd {
	return tea.Tick(introFrame, func(t time.Time) tea.Msg {
		return IntroTickMsg(t)
	})
}

// IntroFrame is the step to pass to Update per IntroTickMsg.
func IntroFrame() time.Duration { return introFrame }

package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/greenscreen/internal/ui"
)

func TestView_NotReady(t *testing.T) {
	km := testRegistry()
	m := New(testConfig(), km)
	if got := m.View(); got != "Warming up..." {
		t.Errorf("View() before resize = %q", got)
	}
}

func TestView_Sections(t *testing.T) {
	cfg := testConfig()
	cfg.FooterText = "Say hi"
	cfg.FooterURL = "https://example.com"
	m, _ := newTestModel(t, cfg)

	view := ansi.Strip(m.View())
	for _, want := range []string{
		cfg.Title,
		"DAYS", "HOURS", "MINUTES", "SECONDS",
		"% complete",
		"> ",
		"Say hi",
		"ctrl+s", "settings",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 50 {
		t.Errorf("view has %d lines, want the full terminal height", lines)
	}
}

func TestView_HidesKeyboard(t *testing.T) {
	m, _ := newTestModel(t, testConfig())
	with := ansi.Strip(m.View())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	without := ansi.Strip(m.View())

	if !strings.Contains(with, "PRNT") {
		t.Error("keyboard should show the PRNT key label")
	}
	if strings.Contains(without, "PRNT") {
		t.Error("hidden keyboard still rendered")
	}
}

func TestView_IntroTitle(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Intro = true
	m, _ := newTestModel(t, cfg)

	if m.intro == nil || m.intro.Done {
		t.Fatal("intro should be running")
	}
	for i := 0; i < 1000 && !m.intro.Done; i++ {
		m, _ = update(t, m, ui.IntroTickMsg{})
	}
	if !m.intro.Done {
		t.Fatal("intro never finished")
	}
	if !strings.Contains(ansi.Strip(m.View()), cfg.Title) {
		t.Error("title missing after intro")
	}
}

func TestView_CompletedCountdown(t *testing.T) {
	cfg := testConfig()
	cfg.EndDate = cfg.StartDate
	m, _ := newTestModel(t, cfg)

	if !strings.Contains(ansi.Strip(m.View()), "100.0% complete") {
		t.Error("completed countdown should read 100.0% complete")
	}
}

func TestRenderHintLine(t *testing.T) {
	got := renderHintLine([]footerHint{{keys: "ctrl+s", label: "settings"}, {keys: "", label: "skip"}})
	if !strings.Contains(got, "ctrl+s") || strings.Contains(got, "skip") {
		t.Errorf("renderHintLine = %q", got)
	}
	if renderHintLine(nil) != "" {
		t.Error("no hints should render empty")
	}
}

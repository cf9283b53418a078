// Package app holds the root Bubble Tea model: it wires the live keyboard,
// the typing animation, the caption, and the countdown into one screen.
package app

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"

	"github.com/marcus/greenscreen/internal/caption"
	"github.com/marcus/greenscreen/internal/config"
	"github.com/marcus/greenscreen/internal/countdown"
	"github.com/marcus/greenscreen/internal/keyboard"
	"github.com/marcus/greenscreen/internal/keymap"
	"github.com/marcus/greenscreen/internal/liveinput"
	"github.com/marcus/greenscreen/internal/settings"
	"github.com/marcus/greenscreen/internal/styles"
	"github.com/marcus/greenscreen/internal/typing"
	"github.com/marcus/greenscreen/internal/ui"
)

// Model is the root Bubble Tea model.
type Model struct {
	// Configuration
	cfg     *config.Config
	params  string // command-line overrides, reapplied on every reload
	watcher *config.Watcher

	// Keymap
	keymap *keymap.Registry

	// Screen components
	surface  *keyboard.Surface
	listener *liveinput.Listener
	animator *typing.Animator
	caption  *caption.Typewriter
	status   countdown.Status
	progress progress.Model
	intro    *ui.Intro

	// UI state
	width, height   int
	ready           bool
	colonOn         bool
	scanlineRow     int
	scanlineTicking bool

	// Settings modal
	settings     *settings.Modal
	showSettings bool

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Side effects, replaced in tests
	now      func() time.Time
	copyText func(string) error
	openURL  func(string) error

	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithParams sets URL-style overrides that survive config reloads.
func WithParams(params string) Option {
	return func(m *Model) { m.params = params }
}

// WithWatcher delivers config reloads from w.
func WithWatcher(w *config.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// New creates the root model. cfg should already have params applied.
func New(cfg *config.Config, km *keymap.Registry, opts ...Option) Model {
	m := Model{
		cfg:      cfg,
		keymap:   km,
		surface:  keyboard.NewSurface(keyboardMaxWidth),
		listener: liveinput.New(cfg.Input.HoldDuration),
		animator: typing.New(animatorOptions(cfg)),
		caption:  caption.New(cfg.Messages, captionOptions(cfg)),
		progress: newProgress(),
		colonOn:  true,
		now:      time.Now,
		copyText: clipboard.WriteAll,
		openURL:  browser.OpenURL,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.scanlineTicking = cfg.UI.Scanlines
	if cfg.UI.Intro {
		m.intro = ui.NewIntro(cfg.Title, styles.PhosphorLow, styles.Phosphor)
	}
	m.status = countdown.Compute(cfg.StartDate, cfg.EndDate, m.now())
	return m
}

// Init starts every timer the screen runs on.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.caption.Start(),
		countdown.Tick(),
		m.waitForReload(),
	}
	if m.intro != nil {
		cmds = append(cmds, ui.IntroTick())
	}
	if m.scanlineTicking {
		cmds = append(cmds, ui.ScanlineTick())
	}
	return tea.Batch(cmds...)
}

// scanlineStarted marks the scanline as ticking and reports whether it
// already was.
func (m *Model) scanlineStarted() bool {
	if m.scanlineTicking {
		return true
	}
	m.scanlineTicking = true
	return false
}

// Config returns the active configuration.
func (m Model) Config() *config.Config { return m.cfg }

// Close tears the screen down: pending animation and release timers are
// invalidated and the config watcher stops. Safe to call more than once.
func (m Model) Close() {
	m.animator.Close()
	m.listener.Detach()
	m.caption.Stop()
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// pressState combines the live key with the animated keys.
func (m Model) pressState() keyboard.PressState {
	return keyboard.PressState{
		Live:     m.listener.Pressed(),
		Animated: m.animator.Pressed(),
	}
}

// applyConfig swaps in cfg and restarts everything derived from it.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	themeChanged := cfg.UI.Theme != m.cfg.UI.Theme || cfg.UI.Phosphor != m.cfg.UI.Phosphor
	m.cfg = cfg

	if themeChanged {
		ApplyTheme(cfg)
		m.progress = newProgress()
		m.resizeProgress()
	}
	m.animator.SetOptions(animatorOptions(cfg))
	m.animator.Reset()
	m.caption.SetOptions(captionOptions(cfg))
	m.status = countdown.Compute(cfg.StartDate, cfg.EndDate, m.now())

	var cmds []tea.Cmd
	cmds = append(cmds, m.caption.Restart(cfg.Messages))
	if cfg.UI.Scanlines && !m.scanlineStarted() {
		cmds = append(cmds, ui.ScanlineTick())
	}
	return tea.Batch(cmds...)
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = m.now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && m.now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// ApplyTheme switches the palette to the configured phosphor color, or to
// the named theme when no color is set or it cannot be parsed.
func ApplyTheme(cfg *config.Config) {
	if cfg.UI.Phosphor != "" {
		err := styles.ApplyPhosphor(cfg.UI.Phosphor)
		if err == nil {
			return
		}
		slog.Warn("invalid phosphor color, using theme", "err", err, "theme", cfg.UI.Theme)
	}
	if !styles.ApplyTheme(cfg.UI.Theme) {
		slog.Warn("unknown theme, using default", "theme", cfg.UI.Theme, "available", styles.ListThemes())
	}
}

func animatorOptions(cfg *config.Config) typing.Options {
	return typing.Options{
		ForwardHold: cfg.Typing.ForwardHold,
		EraseHold:   cfg.Typing.EraseHold,
	}
}

func captionOptions(cfg *config.Config) caption.Options {
	return caption.Options{
		TypeDelay:  cfg.Typing.TypeDelay,
		HoldDelay:  cfg.Typing.HoldDelay,
		EraseDelay: cfg.Typing.EraseDelay,
	}
}

func newProgress() progress.Model {
	p := progress.New(
		progress.WithSolidFill(string(styles.Phosphor)),
		progress.WithoutPercentage(),
	)
	p.EmptyColor = string(styles.PhosphorLow)
	return p
}

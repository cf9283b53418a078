package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/greenscreen/internal/caption"
	"github.com/marcus/greenscreen/internal/config"
	"github.com/marcus/greenscreen/internal/countdown"
	"github.com/marcus/greenscreen/internal/keymap"
	"github.com/marcus/greenscreen/internal/liveinput"
	appmsg "github.com/marcus/greenscreen/internal/msg"
	"github.com/marcus/greenscreen/internal/settings"
	"github.com/marcus/greenscreen/internal/typing"
	"github.com/marcus/greenscreen/internal/ui"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeSurface()
		m.resizeProgress()
		return m, nil

	case liveinput.ReleaseMsg:
		m.listener.Update(msg)
		return m, nil

	case typing.ReleaseMsg:
		m.animator.Update(msg)
		return m, nil

	case caption.TickMsg:
		changed, next := m.caption.Update(msg)
		if !changed {
			return m, next
		}
		return m, tea.Batch(next, m.animator.Observe(m.caption.Text(), m.status.Done))

	case countdown.TickMsg:
		wasDone := m.status.Done
		m.status = countdown.Compute(m.cfg.StartDate, m.cfg.EndDate, time.Time(msg))
		m.colonOn = !m.colonOn
		m.ClearToast()
		if m.status.Done && !wasDone {
			m.animator.Observe(m.caption.Text(), true)
		}
		return m, countdown.Tick()

	case ui.IntroTickMsg:
		if m.intro != nil && !m.intro.Done {
			m.intro.Update(ui.IntroFrame())
			if !m.intro.Done {
				return m, ui.IntroTick()
			}
		}
		return m, nil

	case ui.ScanlineTickMsg:
		if !m.cfg.UI.Scanlines {
			m.scanlineTicking = false
			return m, nil
		}
		m.scanlineRow++
		return m, ui.ScanlineTick()

	case appmsg.ToastMsg:
		m.ShowToast(msg.Message, msg.Duration, msg.IsError)
		return m, nil

	case configReloadMsg:
		if msg.Err != nil {
			slog.Warn("config reload failed", "err", msg.Err)
			m.ShowToast("Config error: "+msg.Err.Error(), 5*time.Second, true)
			return m, m.waitForReload()
		}
		slog.Debug("config reloaded")
		cmd := m.applyConfig(config.ApplyParams(msg.Config, m.params))
		m.ShowToast("Config reloaded", 2*time.Second, false)
		return m, tea.Batch(cmd, m.waitForReload())

	case watcherClosedMsg:
		return m, nil
	}

	// Cursor blink and other input-owned messages.
	if m.showSettings {
		return m, m.settings.Update(msg)
	}
	return m, nil
}

// handleKeyMsg processes keyboard input. Every key lights the keyboard,
// including the ones bound to commands.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	press := m.listener.HandleKey(msg)

	context := keymap.ContextGlobal
	if m.showSettings {
		context = keymap.ContextSettings
	}

	switch m.keymap.Resolve(msg, context) {
	case keymap.CmdQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case keymap.CmdSettings:
		if m.settings == nil {
			m.settings = settings.New(m.cfg)
		} else {
			m.settings.Load(m.cfg)
		}
		m.showSettings = true
		return m, tea.Batch(press, m.settings.Focus())

	case keymap.CmdOpenFooter:
		return m, tea.Batch(press, openURLCmd(m.openURL, m.cfg.FooterURL))

	case keymap.CmdCopyParams:
		return m, tea.Batch(press, copyCmd(m.copyText, config.EncodeParams(m.cfg), "Copied params"))

	case keymap.CmdToggleScanlines:
		m.cfg.UI.Scanlines = !m.cfg.UI.Scanlines
		if m.cfg.UI.Scanlines && !m.scanlineStarted() {
			return m, tea.Batch(press, ui.ScanlineTick())
		}
		return m, press

	case keymap.CmdToggleKeyboard:
		m.cfg.UI.ShowKeyboard = !m.cfg.UI.ShowKeyboard
		return m, press
	}

	if m.showSettings {
		return m.handleSettingsKey(msg, press)
	}
	return m, press
}

// handleSettingsKey routes a key to the settings form and acts on the result.
func (m Model) handleSettingsKey(msg tea.KeyMsg, press tea.Cmd) (tea.Model, tea.Cmd) {
	action, cmd := m.settings.HandleKey(msg)
	switch action {
	case settings.ActionCancel:
		m.showSettings = false
		return m, press

	case settings.ActionApply:
		m.showSettings = false
		cfg := config.ApplyParams(m.cfg, m.settings.Params())
		restart := m.applyConfig(cfg)
		slog.Info("settings applied", "params", config.EncodeParams(cfg))
		return m, tea.Batch(press, restart,
			copyCmd(m.copyText, config.EncodeParams(cfg), "Settings applied, params copied"))
	}
	return m, tea.Batch(press, cmd)
}

// resizeSurface refits the keyboard to the terminal width.
func (m *Model) resizeSurface() {
	m.surface = keyboardSurface(m.width)
}

// resizeProgress refits the progress bar to the terminal width.
func (m *Model) resizeProgress() {
	m.progress.Width = progressWidth(m.width)
}

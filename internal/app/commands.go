package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/greenscreen/internal/config"
	appmsg "github.com/marcus/greenscreen/internal/msg"
)

// configReloadMsg carries one result from the config watcher.
type configReloadMsg config.Reload

// watcherClosedMsg reports that the watcher channel closed.
type watcherClosedMsg struct{}

// waitForReload blocks on the next config reload.
func (m Model) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	updates := m.watcher.Updates()
	return func() tea.Msg {
		r, ok := <-updates
		if !ok {
			return watcherClosedMsg{}
		}
		return configReloadMsg(r)
	}
}

// copyCmd writes text to the clipboard and reports the outcome as a toast.
func copyCmd(write func(string) error, text, success string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return appmsg.ShowError("Copy failed: "+err.Error(), 3*time.Second)()
		}
		return appmsg.ShowToast(success, 2*time.Second)()
	}
}

// openURLCmd opens url in the system browser.
func openURLCmd(open func(string) error, url string) tea.Cmd {
	if url == "" {
		return appmsg.ShowError("No footer link configured", 2*time.Second)
	}
	return func() tea.Msg {
		if err := open(url); err != nil {
			return appmsg.ShowError("Open failed: "+err.Error(), 3*time.Second)()
		}
		return appmsg.ShowToast("Opened "+url, 2*time.Second)()
	}
}

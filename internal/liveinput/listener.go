// Package liveinput tracks the single key a user is physically pressing.
package liveinput

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/greenscreen/internal/keyboard"
)

// DefaultHoldDuration is how long a terminal key press stays lit. Terminals
// report presses but not releases, so each press schedules its own release.
const DefaultHoldDuration = 120 * time.Millisecond

// ReleaseMsg is the synthetic key-up for the press tagged Gen.
type ReleaseMsg struct {
	Code string
	Gen  uint64
}

// Listener owns the live-press contribution to the keyboard highlight. It
// holds a single key: a new press overwrites the previous one, and releasing
// a key that is no longer the current press does nothing.
type Listener struct {
	pressed  keyboard.KeyID
	attached bool
	gen      uint64
	hold     time.Duration
}

// New returns an attached listener. A non-positive hold uses DefaultHoldDuration.
func New(hold time.Duration) *Listener {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Listener{attached: true, hold: hold}
}

// Attach resumes event handling.
func (l *Listener) Attach() { l.attached = true }

// Detach stops event handling, clears the press and invalidates pending releases.
func (l *Listener) Detach() {
	l.attached = false
	l.pressed = keyboard.NoKey
	l.gen++
}

// Attached reports whether the listener is handling events.
func (l *Listener) Attached() bool { return l.attached }

// Pressed returns the live-pressed key, or NoKey.
func (l *Listener) Pressed() keyboard.KeyID {
	if !l.attached {
		return keyboard.NoKey
	}
	return l.pressed
}

// KeyDown records a press of code. Unknown codes are ignored. Reports
// whether the pressed key changed.
func (l *Listener) KeyDown(code string) bool {
	if !l.attached {
		return false
	}
	id, ok := keyboard.LookupCode(code)
	if !ok {
		return false
	}
	changed := l.pressed != id
	l.pressed = id
	return changed
}

// KeyUp clears the press if code resolves to the currently pressed key.
func (l *Listener) KeyUp(code string) bool {
	if !l.attached {
		return false
	}
	id, ok := keyboard.LookupCode(code)
	if !ok || id != l.pressed {
		return false
	}
	l.pressed = keyboard.NoKey
	return true
}

// HandleKey presses the key behind msg and schedules its release.
func (l *Listener) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !l.attached {
		return nil
	}
	code, ok := CodeForKey(msg)
	if !ok {
		return nil
	}
	if _, known := keyboard.LookupCode(code); !known {
		return nil
	}
	l.KeyDown(code)
	l.gen++
	gen := l.gen
	return tea.Tick(l.hold, func(time.Time) tea.Msg {
		return ReleaseMsg{Code: code, Gen: gen}
	})
}

// Update applies a synthetic release if it belongs to the latest press.
// Reports whether the pressed key changed.
func (l *Listener) Update(msg tea.Msg) bool {
	release, ok := msg.(ReleaseMsg)
	if !ok || release.Gen != l.gen {
		return false
	}
	return l.KeyUp(release.Code)
}

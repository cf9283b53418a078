// Package typing drives the keyboard animation that mirrors a typewriter
// caption: each appended character briefly presses its key, each erased
// character taps backspace.
package typing

import (
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/greenscreen/internal/keyboard"
)

// Default auto-release delays.
const (
	DefaultForwardHold = 150 * time.Millisecond
	DefaultEraseHold   = 50 * time.Millisecond
)

// State is the animator's current step.
type State int

const (
	Idle State = iota
	ForwardStep
	EraseStep
)

func (s State) String() string {
	switch s {
	case ForwardStep:
		return "forward"
	case EraseStep:
		return "erase"
	default:
		return "idle"
	}
}

// ReleaseMsg clears the animated keys scheduled under Gen.
type ReleaseMsg struct {
	Gen uint64
}

// Options configures release delays. Zero values use the defaults.
type Options struct {
	ForwardHold time.Duration
	EraseHold   time.Duration
}

// Animator owns the animated-press contribution to the keyboard highlight.
// Only the most recently scheduled release is honoured: scheduling a step
// bumps the generation, which orphans any release still in flight.
type Animator struct {
	opts    Options
	keys    []keyboard.KeyID
	prevLen int
	state   State
	gen     uint64
	closed  bool
}

// New returns an idle animator.
func New(opts Options) *Animator {
	if opts.ForwardHold <= 0 {
		opts.ForwardHold = DefaultForwardHold
	}
	if opts.EraseHold <= 0 {
		opts.EraseHold = DefaultEraseHold
	}
	return &Animator{opts: opts}
}

// SetOptions changes the hold durations for steps scheduled from now on.
// Zero values keep the current setting.
func (a *Animator) SetOptions(opts Options) {
	if opts.ForwardHold > 0 {
		a.opts.ForwardHold = opts.ForwardHold
	}
	if opts.EraseHold > 0 {
		a.opts.EraseHold = opts.EraseHold
	}
}

// Observe feeds the latest caption text and completion flag. It returns the
// release timer for a new step, or nil when nothing was scheduled.
func (a *Animator) Observe(text string, complete bool) tea.Cmd {
	if a.closed {
		return nil
	}

	if complete {
		a.cancel()
		a.keys = nil
		a.prevLen = 0
		a.state = Idle
		return nil
	}

	curLen := utf8.RuneCountInString(text)
	prevLen := a.prevLen
	a.prevLen = curLen

	switch {
	case curLen > prevLen:
		a.cancel()
		last, _ := utf8.DecodeLastRuneInString(text)
		keys := keyboard.KeysForChar(last)
		if keys == nil {
			a.keys = nil
			a.state = Idle
			return nil
		}
		a.keys = keys
		a.state = ForwardStep
		return a.schedule(a.opts.ForwardHold)

	case curLen < prevLen:
		a.cancel()
		a.keys = []keyboard.KeyID{keyboard.Backspace}
		a.state = EraseStep
		return a.schedule(a.opts.EraseHold)

	case curLen == 0 && a.state == Idle:
		// Still empty. An erase tap that just emptied the text is left to
		// its own release so the last backspace still blinks.
		a.keys = nil
	}
	return nil
}

// Update applies a release timer if it is still current. Reports whether
// the animated keys changed.
func (a *Animator) Update(msg tea.Msg) bool {
	release, ok := msg.(ReleaseMsg)
	if !ok || a.closed || release.Gen != a.gen {
		return false
	}
	a.keys = nil
	a.state = Idle
	return true
}

// Pressed returns a copy of the animated keys.
func (a *Animator) Pressed() []keyboard.KeyID {
	if len(a.keys) == 0 {
		return nil
	}
	keys := make([]keyboard.KeyID, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// State returns the current step.
func (a *Animator) State() State { return a.state }

// Generation returns the generation of the latest scheduled release.
func (a *Animator) Generation() uint64 { return a.gen }

// Reset starts a new session: keys released, length tracking back to zero.
func (a *Animator) Reset() {
	a.cancel()
	a.keys = nil
	a.prevLen = 0
	a.state = Idle
}

// Close tears the animator down. Releases already in flight are ignored and
// further observations do nothing.
func (a *Animator) Close() {
	a.Reset()
	a.closed = true
}

// cancel orphans any pending release.
func (a *Animator) cancel() { a.gen++ }

func (a *Animator) schedule(d time.Duration) tea.Cmd {
	gen := a.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ReleaseMsg{Gen: gen}
	})
}

// Package caption produces the typewriter text shown under the countdown.
package caption

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Default cadence.
const (
	DefaultTypeDelay  = 100 * time.Millisecond
	DefaultHoldDelay  = 3 * time.Second
	DefaultEraseDelay = 75 * time.Millisecond
)

// Phase is where the typewriter is within the current message.
type Phase int

const (
	Typing Phase = iota
	Holding
	Erasing
)

// TickMsg advances the typewriter started under Gen.
type TickMsg struct {
	Gen uint64
}

// Options sets the cadence. Zero values use the defaults.
type Options struct {
	TypeDelay  time.Duration
	HoldDelay  time.Duration
	EraseDelay time.Duration
}

// Typewriter types each message one character at a time, holds it, erases
// it, and moves on to the next, wrapping around forever.
type Typewriter struct {
	opts     Options
	messages [][]rune
	index    int
	pos      int
	phase    Phase
	text     string
	gen      uint64
	stopped  bool
}

// New returns a typewriter positioned before the first character of the
// first message. Call Start to begin ticking.
func New(messages []string, opts Options) *Typewriter {
	if opts.TypeDelay <= 0 {
		opts.TypeDelay = DefaultTypeDelay
	}
	if opts.HoldDelay <= 0 {
		opts.HoldDelay = DefaultHoldDelay
	}
	if opts.EraseDelay <= 0 {
		opts.EraseDelay = DefaultEraseDelay
	}
	t := &Typewriter{opts: opts}
	t.setMessages(messages)
	return t
}

func (t *Typewriter) setMessages(messages []string) {
	t.messages = t.messages[:0]
	for _, m := range messages {
		t.messages = append(t.messages, []rune(m))
	}
	t.index, t.pos, t.phase, t.text = 0, 0, Typing, ""
}

// SetOptions changes the cadence from the next tick on. Zero values keep
// the current setting.
func (t *Typewriter) SetOptions(opts Options) {
	if opts.TypeDelay > 0 {
		t.opts.TypeDelay = opts.TypeDelay
	}
	if opts.HoldDelay > 0 {
		t.opts.HoldDelay = opts.HoldDelay
	}
	if opts.EraseDelay > 0 {
		t.opts.EraseDelay = opts.EraseDelay
	}
}

// Start schedules the first character.
func (t *Typewriter) Start() tea.Cmd {
	if t.stopped || len(t.messages) == 0 {
		return nil
	}
	t.gen++
	return t.schedule(t.opts.TypeDelay)
}

// Restart replaces the message list and types from the beginning. Ticks
// from before the restart are ignored.
func (t *Typewriter) Restart(messages []string) tea.Cmd {
	t.setMessages(messages)
	t.stopped = false
	return t.Start()
}

// Stop halts the typewriter; pending ticks are ignored.
func (t *Typewriter) Stop() {
	t.stopped = true
	t.gen++
}

// Update advances on a current TickMsg. It reports whether Text changed and
// returns the next tick.
func (t *Typewriter) Update(msg tea.Msg) (bool, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || t.stopped || tick.Gen != t.gen || len(t.messages) == 0 {
		return false, nil
	}
	before := t.text
	delay := t.step()
	return t.text != before, t.schedule(delay)
}

// step moves one position and returns the delay before the next.
func (t *Typewriter) step() time.Duration {
	msg := t.messages[t.index]
	switch t.phase {
	case Typing:
		if t.pos < len(msg) {
			t.pos++
			t.text = string(msg[:t.pos])
			return t.opts.TypeDelay
		}
		t.phase = Holding
		return t.opts.HoldDelay

	case Holding:
		t.phase = Erasing
		return t.opts.EraseDelay

	default:
		if t.pos > 0 {
			t.pos--
			t.text = string(msg[:t.pos])
			return t.opts.EraseDelay
		}
		t.index = (t.index + 1) % len(t.messages)
		t.phase = Typing
		return t.opts.TypeDelay
	}
}

func (t *Typewriter) schedule(d time.Duration) tea.Cmd {
	gen := t.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// Text returns the text currently on screen.
func (t *Typewriter) Text() string { return t.text }

// Index returns the index of the message being typed.
func (t *Typewriter) Index() int { return t.index }

// Phase returns the current phase.
func (t *Typewriter) Phase() Phase { return t.phase }

// Generation returns the tick generation currently accepted.
func (t *Typewriter) Generation() uint64 { return t.gen }

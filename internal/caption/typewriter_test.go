package caption

import (
	"testing"
	"time"
)

// advance delivers n ticks without waiting on the timers.
func advance(tw *Typewriter, n int) []string {
	var seen []string
	for i := 0; i < n; i++ {
		tw.Update(TickMsg{Gen: tw.Generation()})
		seen = append(seen, tw.Text())
	}
	return seen
}

func TestTypewriter_Cycle(t *testing.T) {
	tw := New([]string{"ab", "c"}, Options{})
	if tw.Start() == nil {
		t.Fatal("Start should schedule a tick")
	}
	if tw.Text() != "" {
		t.Fatalf("initial text = %q, want empty", tw.Text())
	}

	got := advance(tw, 9)
	want := []string{
		"a", "ab", // typing
		"ab",      // hold elapsed
		"ab",      // erase begins with the full text
		"a", "",   // erasing
		"",        // advance to next message
		"c",       // typing the second message
		"c",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: text = %q, want %q (all: %q)", i+1, got[i], want[i], got)
		}
	}
	if tw.Index() != 1 {
		t.Errorf("Index() = %d, want 1", tw.Index())
	}
}

func TestTypewriter_Wraps(t *testing.T) {
	tw := New([]string{"a", "b"}, Options{})
	tw.Start()
	// per message: type 1, hold, erase-start, erase 1, advance = 5 ticks
	advance(tw, 10)
	if tw.Index() != 0 {
		t.Errorf("Index() = %d, want 0 after wrapping", tw.Index())
	}
}

func TestTypewriter_UpdateReportsChange(t *testing.T) {
	tw := New([]string{"a"}, Options{})
	tw.Start()

	changed, cmd := tw.Update(TickMsg{Gen: tw.Generation()})
	if !changed || cmd == nil {
		t.Errorf("typing a char: changed = %v, cmd nil = %v", changed, cmd == nil)
	}
	changed, _ = tw.Update(TickMsg{Gen: tw.Generation()})
	if changed {
		t.Error("entering hold should not change the text")
	}
	if tw.Phase() != Holding {
		t.Errorf("Phase() = %v, want Holding", tw.Phase())
	}
}

func TestTypewriter_StaleTicksIgnored(t *testing.T) {
	tw := New([]string{"abc"}, Options{})
	tw.Start()
	old := tw.Generation()
	tw.Update(TickMsg{Gen: old})

	tw.Restart([]string{"xyz"})
	if tw.Text() != "" {
		t.Fatalf("Restart should clear text, got %q", tw.Text())
	}
	if changed, cmd := tw.Update(TickMsg{Gen: old}); changed || cmd != nil {
		t.Error("tick from before Restart must be ignored")
	}
	tw.Update(TickMsg{Gen: tw.Generation()})
	if tw.Text() != "x" {
		t.Errorf("Text() = %q, want x", tw.Text())
	}
}

func TestTypewriter_Stop(t *testing.T) {
	tw := New([]string{"abc"}, Options{})
	tw.Start()
	gen := tw.Generation()
	tw.Stop()

	if changed, cmd := tw.Update(TickMsg{Gen: gen}); changed || cmd != nil {
		t.Error("stopped typewriter should ignore ticks")
	}
	if tw.Start() != nil {
		t.Error("Start after Stop should do nothing")
	}
	if tw.Restart([]string{"d"}) == nil {
		t.Error("Restart should resume a stopped typewriter")
	}
}

func TestTypewriter_EmptyMessages(t *testing.T) {
	tw := New(nil, Options{})
	if tw.Start() != nil {
		t.Error("no messages: nothing to schedule")
	}
	if changed, _ := tw.Update(TickMsg{Gen: tw.Generation()}); changed {
		t.Error("no messages: text should not change")
	}
}

func TestTypewriter_TickUsesTypeDelay(t *testing.T) {
	tw := New([]string{"a"}, Options{TypeDelay: 20 * time.Millisecond})
	cmd := tw.Start()

	start := time.Now()
	msg := cmd()
	if time.Since(start) < 20*time.Millisecond {
		t.Error("first tick fired before TypeDelay")
	}
	if tick, ok := msg.(TickMsg); !ok || tick.Gen != tw.Generation() {
		t.Errorf("cmd produced %#v, want TickMsg for current generation", msg)
	}
}

func TestTypewriter_RunesNotBytes(t *testing.T) {
	tw := New([]string{"né"}, Options{})
	tw.Start()
	got := advance(tw, 2)
	if got[0] != "n" || got[1] != "né" {
		t.Errorf("typed %q, want [n né]", got)
	}
}

func TestTypewriter_SetOptions(t *testing.T) {
	tw := New([]string{"a"}, Options{})
	tw.SetOptions(Options{HoldDelay: time.Second})

	if tw.opts.HoldDelay != time.Second {
		t.Errorf("HoldDelay = %v, want 1s", tw.opts.HoldDelay)
	}
	if tw.opts.TypeDelay != DefaultTypeDelay || tw.opts.EraseDelay != DefaultEraseDelay {
		t.Errorf("unset delays changed: %+v", tw.opts)
	}
}

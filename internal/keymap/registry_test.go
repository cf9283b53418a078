package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func defaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func TestResolve(t *testing.T) {
	r := defaultRegistry()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		context string
		want    string
	}{
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, ContextGlobal, CmdQuit},
		{"settings", tea.KeyMsg{Type: tea.KeyCtrlS}, ContextGlobal, CmdSettings},
		{"open link", tea.KeyMsg{Type: tea.KeyCtrlO}, ContextGlobal, CmdOpenFooter},
		{"copy params", tea.KeyMsg{Type: tea.KeyCtrlY}, ContextGlobal, CmdCopyParams},
		{"scanlines", tea.KeyMsg{Type: tea.KeyCtrlL}, ContextGlobal, CmdToggleScanlines},
		{"keyboard", tea.KeyMsg{Type: tea.KeyCtrlK}, ContextGlobal, CmdToggleKeyboard},
		{"plain letter unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, ContextGlobal, ""},
		{"quit inside settings", tea.KeyMsg{Type: tea.KeyCtrlC}, ContextSettings, CmdQuit},
		{"settings shortcut inside settings", tea.KeyMsg{Type: tea.KeyCtrlS}, ContextSettings, ""},
		{"unknown context", tea.KeyMsg{Type: tea.KeyCtrlC}, "nowhere", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.msg, tt.context); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.msg.String(), tt.context, got, tt.want)
			}
		})
	}
}

func TestRegisterBinding_Replaces(t *testing.T) {
	r := defaultRegistry()
	r.RegisterBinding(Binding{Key: "ctrl+s", Command: CmdQuit, Context: ContextGlobal})

	if got, _ := r.Lookup("ctrl+s", ContextGlobal); got != CmdQuit {
		t.Errorf("rebound ctrl+s = %q, want %q", got, CmdQuit)
	}
	n := 0
	for _, b := range r.BindingsForContext(ContextGlobal) {
		if b.Key == "ctrl+s" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d ctrl+s bindings, want 1", n)
	}
}

func TestKeysFor(t *testing.T) {
	r := defaultRegistry()
	r.RegisterBinding(Binding{Key: "ctrl+q", Command: CmdQuit, Context: ContextGlobal})

	keys := r.KeysFor(CmdQuit, ContextGlobal)
	if len(keys) != 2 || keys[0] != "ctrl+c" || keys[1] != "ctrl+q" {
		t.Errorf("KeysFor(quit) = %v", keys)
	}
}

func TestDefaultBindingsHaveCommands(t *testing.T) {
	r := defaultRegistry()
	for _, b := range DefaultBindings() {
		if _, ok := r.GetCommand(b.Command); !ok {
			t.Errorf("binding %q refers to unknown command %q", b.Key, b.Command)
		}
	}
}

func TestBindingsForContext_ReturnsCopy(t *testing.T) {
	r := defaultRegistry()
	list := r.BindingsForContext(ContextGlobal)
	list[0].Command = "changed"
	if got, _ := r.Lookup(list[0].Key, ContextGlobal); got == "changed" {
		t.Error("BindingsForContext exposed internal state")
	}
}

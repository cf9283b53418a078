package keymap

// Command IDs.
const (
	CmdQuit            = "quit"
	CmdSettings        = "open-settings"
	CmdOpenFooter      = "open-footer-link"
	CmdCopyParams      = "copy-params"
	CmdToggleScanlines = "toggle-scanlines"
	CmdToggleKeyboard  = "toggle-keyboard"
)

// Contexts.
const (
	ContextGlobal   = "global"
	ContextSettings = "settings"
)

// DefaultCommands returns the commands bindings can refer to.
func DefaultCommands() []Command {
	return []Command{
		{ID: CmdQuit, Name: "quit"},
		{ID: CmdSettings, Name: "settings"},
		{ID: CmdOpenFooter, Name: "open link"},
		{ID: CmdCopyParams, Name: "copy params"},
		{ID: CmdToggleScanlines, Name: "scanlines"},
		{ID: CmdToggleKeyboard, Name: "keyboard"},
	}
}

// DefaultBindings returns the default key bindings. Plain keys stay unbound
// so that typing on the screen only lights the keyboard.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGlobal},
		{Key: "ctrl+s", Command: CmdSettings, Context: ContextGlobal},
		{Key: "ctrl+o", Command: CmdOpenFooter, Context: ContextGlobal},
		{Key: "ctrl+y", Command: CmdCopyParams, Context: ContextGlobal},
		{Key: "ctrl+l", Command: CmdToggleScanlines, Context: ContextGlobal},
		{Key: "ctrl+k", Command: CmdToggleKeyboard, Context: ContextGlobal},

		// Settings modal: only quit passes through, the form owns the rest.
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextSettings},
	}
}

// RegisterDefaults registers all default commands and bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, c := range DefaultCommands() {
		r.RegisterCommand(c)
	}
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}

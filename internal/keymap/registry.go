// Package keymap resolves key presses to application commands per context.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Binding maps a key, as reported by tea.KeyMsg.String(), to a command.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Command is a named action shown in key hints.
type Command struct {
	ID   string
	Name string
}

// Registry holds commands and their bindings.
type Registry struct {
	commands map[string]Command
	bindings map[string][]Binding // by context, in registration order
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		bindings: make(map[string][]Binding),
	}
}

// RegisterCommand adds or replaces a command.
func (r *Registry) RegisterCommand(c Command) {
	r.commands[c.ID] = c
}

// RegisterBinding adds a binding. A later binding for the same key and
// context replaces the earlier one.
func (r *Registry) RegisterBinding(b Binding) {
	list := r.bindings[b.Context]
	for i := range list {
		if list[i].Key == b.Key {
			list[i] = b
			return
		}
	}
	r.bindings[b.Context] = append(list, b)
}

// GetCommand looks up a command by ID.
func (r *Registry) GetCommand(id string) (Command, bool) {
	c, ok := r.commands[id]
	return c, ok
}

// Lookup returns the command bound to key in context.
func (r *Registry) Lookup(key, context string) (string, bool) {
	for _, b := range r.bindings[context] {
		if b.Key == key {
			return b.Command, true
		}
	}
	return "", false
}

// Resolve returns the command a key press triggers in context, or "".
func (r *Registry) Resolve(msg tea.KeyMsg, context string) string {
	id, _ := r.Lookup(msg.String(), context)
	return id
}

// BindingsForContext returns the bindings registered for context.
func (r *Registry) BindingsForContext(context string) []Binding {
	return append([]Binding(nil), r.bindings[context]...)
}

// KeysFor returns the keys bound to command in context.
func (r *Registry) KeysFor(command, context string) []string {
	var keys []string
	for _, b := range r.bindings[context] {
		if b.Command == command {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// Package settings implements the modal form that edits the URL-style
// parameters driving the screen.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/greenscreen/internal/config"
	"github.com/marcus/greenscreen/internal/styles"
)

// Actions returned by HandleKey.
const (
	ActionApply  = "apply"
	ActionCancel = "cancel"
)

const (
	fieldStart = iota
	fieldEnd
	fieldMessages
	fieldFooterText
	fieldFooterURL
	fieldCount
)

// Focus positions after the inputs.
const (
	focusApply  = fieldCount
	focusCancel = fieldCount + 1
	focusCount  = fieldCount + 2
)

var fieldLabels = [fieldCount]string{
	fieldStart:      "Start date",
	fieldEnd:        "End date",
	fieldMessages:   "Messages (JSON array)",
	fieldFooterText: "Footer text",
	fieldFooterURL:  "Footer URL",
}

// KeyMap holds the form's navigation bindings.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the standard form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Modal is the settings form.
type Modal struct {
	inputs   [fieldCount]textinput.Model
	focusIdx int
	keys     KeyMap
	title    string
	err      string
}

// New builds a form prefilled from cfg.
func New(cfg *config.Config) *Modal {
	m := &Modal{keys: DefaultKeyMap()}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 4096
		ti.Width = 44
		m.inputs[i] = ti
	}
	m.Load(cfg)
	return m
}

// Load refills every field from cfg and focuses the first one.
func (m *Modal) Load(cfg *config.Config) {
	msgs, _ := json.Marshal(cfg.Messages)
	m.title = cfg.Title
	m.inputs[fieldStart].SetValue(config.FormatDate(cfg.StartDate))
	m.inputs[fieldEnd].SetValue(config.FormatDate(cfg.EndDate))
	m.inputs[fieldMessages].SetValue(string(msgs))
	m.inputs[fieldFooterText].SetValue(cfg.FooterText)
	m.inputs[fieldFooterURL].SetValue(cfg.FooterURL)
	m.err = ""
	m.setFocus(fieldStart)
}

// Focus returns the command that starts the cursor blinking.
func (m *Modal) Focus() tea.Cmd {
	if m.focusIdx < fieldCount {
		return m.inputs[m.focusIdx].Focus()
	}
	return nil
}

// FocusIndex reports the focused element: inputs first, then Apply, Cancel.
func (m *Modal) FocusIndex() int { return m.focusIdx }

// Err returns the validation error shown in the form, if any.
func (m *Modal) Err() string { return m.err }

// HandleKey processes a key and returns an action ("apply", "cancel" or "").
// Apply is only returned when the form validates.
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return ActionCancel, nil
	case key.Matches(msg, m.keys.Next):
		return "", m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return "", m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Confirm):
		if m.focusIdx == focusCancel {
			return ActionCancel, nil
		}
		if err := m.Validate(); err != nil {
			m.err = err.Error()
			return "", nil
		}
		m.err = ""
		return ActionApply, nil
	}

	if m.focusIdx >= fieldCount {
		return "", nil
	}
	m.err = ""
	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return "", cmd
}

// Update forwards non-key messages (cursor blink) to the focused input.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if m.focusIdx >= fieldCount {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return cmd
}

// Validate checks the dates and the message list.
func (m *Modal) Validate() error {
	var errs []error
	for _, f := range []int{fieldStart, fieldEnd} {
		if _, err := config.ParseDate(m.value(f)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", strings.ToLower(fieldLabels[f]), err))
		}
	}
	var msgs []string
	if err := json.Unmarshal([]byte(m.value(fieldMessages)), &msgs); err != nil {
		errs = append(errs, fmt.Errorf("messages: %w", err))
	} else if len(msgs) == 0 {
		errs = append(errs, errors.New("messages: list is empty"))
	}
	return errors.Join(errs...)
}

// Params encodes the form as a query string for config.ApplyParams.
func (m *Modal) Params() string {
	values := url.Values{}
	if m.title != "" {
		values.Set(config.ParamTitle, m.title)
	}
	values.Set(config.ParamStartDate, m.value(fieldStart))
	values.Set(config.ParamEndDate, m.value(fieldEnd))
	values.Set(config.ParamMessages, m.value(fieldMessages))
	values.Set(config.ParamFooterText, m.value(fieldFooterText))
	values.Set(config.ParamFooterURL, m.value(fieldFooterURL))
	return values.Encode()
}

// SetValue replaces one field's text. Fields are indexed in display order.
func (m *Modal) SetValue(field int, v string) {
	if field >= 0 && field < fieldCount {
		m.inputs[field].SetValue(v)
	}
}

func (m *Modal) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

func (m *Modal) cycleFocus(delta int) tea.Cmd {
	return m.setFocus((m.focusIdx + delta + focusCount) % focusCount)
}

func (m *Modal) setFocus(idx int) tea.Cmd {
	m.focusIdx = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == idx {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// View renders the form box. width bounds the box, including its border.
func (m *Modal) View(width int) string {
	inputWidth := min(max(width-12, 20), 60)

	var sb strings.Builder
	sb.WriteString(styles.ModalTitle.Render("Settings"))
	sb.WriteString("\n")

	for i := range m.inputs {
		label := styles.InputLabel
		if i == m.focusIdx {
			label = styles.InputFocused
		}
		m.inputs[i].Width = inputWidth
		sb.WriteString(label.Render(fieldLabels[i]))
		sb.WriteString("\n")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n\n")
	}

	if m.err != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Error).Width(inputWidth).Render(m.err))
		sb.WriteString("\n\n")
	}

	apply, cancel := styles.Button, styles.Button
	if m.focusIdx == focusApply {
		apply = styles.ButtonFocused
	}
	if m.focusIdx == focusCancel {
		cancel = styles.ButtonFocused
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, apply.Render("Apply"), " ", cancel.Render("Cancel")))
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render(m.helpLine()))

	return styles.ModalBox.Render(sb.String())
}

func (m *Modal) helpLine() string {
	bindings := []key.Binding{m.keys.Next, m.keys.Prev, m.keys.Confirm, m.keys.Cancel}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

package liveinput

import (
	"fmt"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

var specialCodes = map[tea.KeyType]string{
	tea.KeyEnter:      "Enter",
	tea.KeyBackspace:  "Backspace",
	tea.KeyCtrlH:      "Backspace",
	tea.KeyTab:        "Tab",
	tea.KeyShiftTab:   "Tab",
	tea.KeyEsc:        "Escape",
	tea.KeySpace:      "Space",
	tea.KeyUp:         "ArrowUp",
	tea.KeyShiftUp:    "ArrowUp",
	tea.KeyCtrlUp:     "ArrowUp",
	tea.KeyDown:       "ArrowDown",
	tea.KeyShiftDown:  "ArrowDown",
	tea.KeyCtrlDown:   "ArrowDown",
	tea.KeyLeft:       "ArrowLeft",
	tea.KeyShiftLeft:  "ArrowLeft",
	tea.KeyCtrlLeft:   "ArrowLeft",
	tea.KeyRight:      "ArrowRight",
	tea.KeyShiftRight: "ArrowRight",
	tea.KeyCtrlRight:  "ArrowRight",
	tea.KeyHome:       "Home",
	tea.KeyShiftHome:  "Home",
	tea.KeyCtrlHome:   "Home",
	tea.KeyEnd:        "End",
	tea.KeyShiftEnd:   "End",
	tea.KeyCtrlEnd:    "End",
	tea.KeyPgUp:       "PageUp",
	tea.KeyCtrlPgUp:   "PageUp",
	tea.KeyPgDown:     "PageDown",
	tea.KeyCtrlPgDown: "PageDown",
	tea.KeyDelete:     "Delete",
	tea.KeyInsert:     "Insert",
	tea.KeyF1:         "F1",
	tea.KeyF2:         "F2",
	tea.KeyF3:         "F3",
	tea.KeyF4:         "F4",
	tea.KeyF5:         "F5",
	tea.KeyF6:         "F6",
	tea.KeyF7:         "F7",
	tea.KeyF8:         "F8",
	tea.KeyF9:         "F9",
	tea.KeyF10:        "F10",
	tea.KeyF11:        "F11",
	tea.KeyF12:        "F12",
}

// punctuationCodes covers both the plain and shifted character of each key.
var punctuationCodes = map[rune]string{
	'`': "Backquote", '~': "Backquote",
	'-': "Minus", '_': "Minus",
	'=': "Equal", '+': "Equal",
	'[': "BracketLeft", '{': "BracketLeft",
	']': "BracketRight", '}': "BracketRight",
	'\\': "Backslash", '|': "Backslash",
	';': "Semicolon", ':': "Semicolon",
	'\'': "Quote", '"': "Quote",
	',': "Comma", '<': "Comma",
	'.': "Period", '>': "Period",
	'/': "Slash", '?': "Slash",
	' ': "Space",
	'!': "Digit1", '@': "Digit2", '#': "Digit3", '$': "Digit4", '%': "Digit5",
	'^': "Digit6", '&': "Digit7", '*': "Digit8", '(': "Digit9", ')': "Digit0",
}

// CodeForKey recovers the physical key code behind a terminal key message.
// Terminals report characters, so shifted characters resolve to the key that
// produces them and ctrl+letter resolves to the letter key. Pastes and
// multi-rune input report false.
func CodeForKey(msg tea.KeyMsg) (string, bool) {
	if msg.Paste {
		return "", false
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return "", false
		}
		return codeForRune(msg.Runes[0])
	}
	if code, ok := specialCodes[msg.Type]; ok {
		return code, true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return fmt.Sprintf("Key%c", 'A'+rune(msg.Type-tea.KeyCtrlA)), true
	}
	return "", false
}

func codeForRune(r rune) (string, bool) {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return fmt.Sprintf("Key%c", unicode.ToUpper(r)), true
	case r >= '0' && r <= '9':
		return fmt.Sprintf("Digit%c", r), true
	}
	code, ok := punctuationCodes[r]
	return code, ok
}

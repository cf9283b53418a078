// Package keyboard holds the static key tables, the fixed keyboard layout and
// the surface that renders it with pressed keys highlighted.
package keyboard

import "unicode"

// KeyID identifies a single key region on the keyboard diagram.
type KeyID int

// NoKey is the zero KeyID, used where no key is pressed.
const NoKey KeyID = 0

// Well-known keys the animators press directly.
const (
	Backspace KeyID = 30
	ShiftLeft KeyID = 75
)

// codeKeys maps physical key codes (DOM KeyboardEvent.code names) to key IDs.
var codeKeys = map[string]KeyID{
	"Escape": 1,
	"F1": 2, "F2": 3, "F3": 4, "F4": 5,
	"F5": 6, "F6": 7, "F7": 8, "F8": 9,
	"F9": 10, "F10": 11, "F11": 12, "F12": 13,
	"PrintScreen": 14, "ScrollLock": 15, "Pause": 16,
	"Backquote": 17,
	"Digit1": 18, "Digit2": 19, "Digit3": 20, "Digit4": 21,
	"Digit5": 22, "Digit6": 23, "Digit7": 24, "Digit8": 25,
	"Digit9": 26, "Digit0": 27, "Minus": 28, "Equal": 29,
	"Backspace": 30,
	"Insert": 31, "Home": 32, "PageUp": 33,
	"NumLock": 34, "NumpadDivide": 35, "NumpadMultiply": 36, "NumpadSubtract": 37,
	"Tab": 38,
	"KeyQ": 39, "KeyW": 40, "KeyE": 41, "KeyR": 42,
	"KeyT": 43, "KeyY": 44, "KeyU": 45, "KeyI": 46,
	"KeyO": 47, "KeyP": 48, "BracketLeft": 49, "BracketRight": 50,
	"Backslash": 51,
	"Delete": 52, "End": 53, "PageDown": 54,
	"Numpad7": 55, "Numpad8": 56, "Numpad9": 57, "NumpadAdd": 58,
	"CapsLock": 59,
	"KeyA": 60, "KeyS": 61, "KeyD": 62, "KeyF": 63,
	"KeyG": 64, "KeyH": 65, "KeyJ": 66, "KeyK": 67,
	"KeyL": 68, "Semicolon": 69, "Quote": 70,
	"Enter": 71,
	"Numpad4": 72, "Numpad5": 73, "Numpad6": 74,
	"ShiftLeft": 75,
	"KeyZ": 76, "KeyX": 77, "KeyC": 78, "KeyV": 79,
	"KeyB": 80, "KeyN": 81, "KeyM": 82, "Comma": 83,
	"Period": 84, "Slash": 85,
	"ShiftRight": 86,
	"ArrowUp": 87,
	"Numpad1": 88, "Numpad2": 89, "Numpad3": 90, "NumpadEnter": 91,
	"ControlLeft": 92, "MetaLeft": 93, "AltLeft": 94,
	"Space": 95,
	"AltRight": 96, "MetaRight": 97, "ContextMenu": 98, "ControlRight": 99,
	"ArrowLeft": 100, "ArrowDown": 101, "ArrowRight": 102,
	"Numpad0": 103, "NumpadDecimal": 104,
}

// charKeys maps lowercase characters to the key that types them. Shifted
// punctuation points at its base key and does not press shift.
var charKeys = map[rune]KeyID{
	'a': 60, 'b': 80, 'c': 78, 'd': 62, 'e': 41, 'f': 63, 'g': 64, 'h': 65,
	'i': 46, 'j': 66, 'k': 67, 'l': 68, 'm': 82, 'n': 81, 'o': 47, 'p': 48,
	'q': 39, 'r': 42, 's': 61, 't': 43, 'u': 45, 'v': 79, 'w': 40, 'x': 77,
	'y': 44, 'z': 76,

	'0': 27, '1': 18, '2': 19, '3': 20, '4': 21, '5': 22, '6': 23, '7': 24, '8': 25, '9': 26,

	' ':  95,
	'-':  28,
	'(':  26, // shift+9
	')':  27, // shift+0
	',':  83,
	'.':  84,
	'/':  85,
	';':  69,
	'\'': 70,
	'!':  18, // shift+1
	':':  69, // shift+;
}

// LookupCode resolves a physical key code. Unknown codes report false.
func LookupCode(code string) (KeyID, bool) {
	id, ok := codeKeys[code]
	return id, ok
}

// LookupChar resolves a character case-insensitively.
func LookupChar(r rune) (KeyID, bool) {
	id, ok := charKeys[unicode.ToLower(r)]
	return id, ok
}

// KeysForChar returns the keys pressed to type r: its own key, plus left
// shift for ASCII uppercase letters. Returns nil when r has no key.
func KeysForChar(r rune) []KeyID {
	id, ok := LookupChar(r)
	if !ok {
		return nil
	}
	if r >= 'A' && r <= 'Z' {
		return []KeyID{id, ShiftLeft}
	}
	return []KeyID{id}
}

// Codes returns every known physical code in no particular order.
func Codes() []string {
	codes := make([]string, 0, len(codeKeys))
	for code := range codeKeys {
		codes = append(codes, code)
	}
	return codes
}

package keyboard

import "slices"

// PressState is the set of highlighted keys. Live comes from real key presses
// and holds at most one key; Animated comes from the typing animation.
type PressState struct {
	Live     KeyID
	Animated []KeyID
}

// Pressed reports whether id is highlighted by either contribution.
func (s PressState) Pressed(id KeyID) bool {
	if id == NoKey {
		return false
	}
	return s.Live == id || slices.Contains(s.Animated, id)
}

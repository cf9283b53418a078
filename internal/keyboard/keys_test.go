package keyboard

import "testing"

func TestLookupCode(t *testing.T) {
	tests := []struct {
		code string
		want KeyID
		ok   bool
	}{
		{"Escape", 1, true},
		{"Backspace", Backspace, true},
		{"ShiftLeft", ShiftLeft, true},
		{"KeyA", 60, true},
		{"NumpadDecimal", 104, true},
		{"IntlBackslash", NoKey, false},
		{"", NoKey, false},
		{"keya", NoKey, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := LookupCode(tt.code)
			if got != tt.want || ok != tt.ok {
				t.Errorf("LookupCode(%q) = %d, %v; want %d, %v", tt.code, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLookupChar_CaseInsensitive(t *testing.T) {
	for c := 'a'; c <= 'z'; c++ {
		lower, ok := LookupChar(c)
		if !ok {
			t.Fatalf("LookupChar(%q) unmapped", c)
		}
		upper, ok := LookupChar(c - 'a' + 'A')
		if !ok || upper != lower {
			t.Errorf("LookupChar(%q) = %d, %v; want %d", c-'a'+'A', upper, ok, lower)
		}
	}
}

func TestKeysForChar(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want []KeyID
	}{
		{"lowercase", 's', []KeyID{61}},
		{"uppercase adds shift", 'S', []KeyID{61, ShiftLeft}},
		{"digit", '7', []KeyID{24}},
		{"space", ' ', []KeyID{95}},
		{"bang uses digit without shift", '!', []KeyID{18}},
		{"colon uses semicolon without shift", ':', []KeyID{69}},
		{"open paren", '(', []KeyID{26}},
		{"close paren", ')', []KeyID{27}},
		{"unmapped ampersand", '&', nil},
		{"unmapped non-ascii", 'é', nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeysForChar(tt.r)
			if len(got) != len(tt.want) {
				t.Fatalf("KeysForChar(%q) = %v, want %v", tt.r, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("KeysForChar(%q)[%d] = %d, want %d", tt.r, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTablesReferenceLayoutKeys(t *testing.T) {
	ids := make(map[KeyID]bool)
	for _, k := range Layout() {
		ids[k.ID] = true
	}
	for _, code := range Codes() {
		id, _ := LookupCode(code)
		if !ids[id] {
			t.Errorf("code %q maps to %d, which has no layout region", code, id)
		}
	}
	for r, id := range charKeys {
		if !ids[id] {
			t.Errorf("char %q maps to %d, which has no layout region", r, id)
		}
	}
}

func TestPressState_Pressed(t *testing.T) {
	s := PressState{Live: 60, Animated: []KeyID{61, ShiftLeft}}

	for _, id := range []KeyID{60, 61, ShiftLeft} {
		if !s.Pressed(id) {
			t.Errorf("Pressed(%d) = false, want true", id)
		}
	}
	if s.Pressed(62) {
		t.Error("Pressed(62) = true, want false")
	}
	if (PressState{}).Pressed(NoKey) {
		t.Error("NoKey must never read as pressed")
	}
}

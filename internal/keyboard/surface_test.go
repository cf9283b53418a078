package keyboard

import (
	"strings"
	"testing"
)

func findKey(grid [][]Cell, id KeyID) (row, col int, ok bool) {
	for r, cells := range grid {
		for c, cell := range cells {
			if cell.Key == id {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func TestNewSurface_Scale(t *testing.T) {
	tests := []struct {
		name     string
		maxWidth int
		want     float64
	}{
		{"wide terminal uses full scale", 200, FullScale},
		{"exact fit", 119, FullScale},
		{"narrow clamps to min", 20, MinScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(tt.maxWidth)
			if s.Scale() != tt.want {
				t.Errorf("Scale() = %v, want %v", s.Scale(), tt.want)
			}
		})
	}
	if w := NewSurface(200).Width(); w != 119 {
		t.Errorf("full-scale width = %d, want 119", w)
	}
}

func TestSurface_Cells_EveryKeyPlaced(t *testing.T) {
	grid := NewSurface(200).Cells(PressState{})
	if len(grid) != Rows {
		t.Fatalf("got %d rows, want %d", len(grid), Rows)
	}
	for _, k := range Layout() {
		if _, _, ok := findKey(grid, k.ID); !ok {
			t.Errorf("key %d (%s) not placed", k.ID, k.Label)
		}
	}
}

func TestSurface_Cells_PressedFollowsState(t *testing.T) {
	s := NewSurface(200)
	state := PressState{Live: 1, Animated: []KeyID{61, ShiftLeft}}
	grid := s.Cells(state)

	for _, cells := range grid {
		for _, cell := range cells {
			if cell.Key == NoKey {
				if cell.Pressed {
					t.Fatal("gap cell marked pressed")
				}
				continue
			}
			if cell.Pressed != state.Pressed(cell.Key) {
				t.Errorf("key %d pressed = %v, want %v", cell.Key, cell.Pressed, state.Pressed(cell.Key))
			}
		}
	}
}

func TestSurface_Cells_Deterministic(t *testing.T) {
	s := NewSurface(200)
	state := PressState{Animated: []KeyID{Backspace}}
	a, b := s.Cells(state), s.Cells(state)
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				t.Fatalf("cell (%d,%d) differs between renders", r, c)
			}
		}
	}
}

func TestSurface_Cells_LabelsAndTallKeys(t *testing.T) {
	grid := NewSurface(200).Cells(PressState{})

	row, _, _ := findKey(grid, 95)
	var space strings.Builder
	for _, cell := range grid[row] {
		if cell.Key == 95 {
			space.WriteString(cell.Char)
		}
	}
	if !strings.Contains(space.String(), "SPACE") {
		t.Errorf("space bar label missing: %q", space.String())
	}

	// Numpad + spans two rows.
	count := 0
	for r := range grid {
		for _, cell := range grid[r] {
			if cell.Key == 58 {
				count++
				break
			}
		}
	}
	if count != 2 {
		t.Errorf("numpad + spans %d rows, want 2", count)
	}
}

func TestSurface_Render(t *testing.T) {
	out := NewSurface(200).Render(PressState{Live: 60})
	for _, label := range []string{"ESC", "BKSP", "ENTER", "SHIFT", "SPACE"} {
		if !strings.Contains(out, label) {
			t.Errorf("render missing %q", label)
		}
	}
	// frame (2 border rows) + key rows
	if lines := strings.Count(out, "\n") + 1; lines != Rows+2 {
		t.Errorf("render has %d lines, want %d", lines, Rows+2)
	}
}

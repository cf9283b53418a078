package keyboard

import (
	"math"
	"strings"

	"github.com/marcus/greenscreen/internal/styles"
	"github.com/mattn/go-runewidth"
)

const (
	// FullScale maps one 20-unit key to four columns.
	FullScale = 0.2
	// MinScale is the narrowest mapping before keys collapse to one column.
	MinScale = 0.1

	originX  = 20.0
	extentX  = 595.0
	originY  = 20.0
	rowPitch = 22.8
	Rows     = 6
)

// Cell is one terminal cell of the rendered keyboard.
type Cell struct {
	Char    string // empty for the trailing half of a wide rune
	Key     KeyID  // NoKey for gaps between keys
	Pressed bool
}

type placedKey struct {
	key         Key
	col, width  int
	row, height int
}

// Surface places the fixed layout onto a terminal grid. It holds no press
// state; every call derives highlights from the PressState it is given.
type Surface struct {
	scale  float64
	cols   int
	placed []placedKey
}

// NewSurface fits the layout into maxWidth columns, never exceeding
// FullScale nor going below MinScale.
func NewSurface(maxWidth int) *Surface {
	scale := FullScale
	if fit := float64(maxWidth) / extentX; fit < scale {
		scale = math.Max(fit, MinScale)
	}

	s := &Surface{
		scale: scale,
		cols:  int(math.Round(extentX * scale)),
	}
	for _, k := range layout {
		col := int(math.Round((k.Rect.X - originX) * scale))
		end := int(math.Round((k.Rect.X + k.Rect.W - originX) * scale))
		s.placed = append(s.placed, placedKey{
			key:    k,
			col:    col,
			width:  max(1, end-col),
			row:    int(math.Round((k.Rect.Y - originY) / rowPitch)),
			height: max(1, int(math.Round((k.Rect.H+5)/23))),
		})
	}
	return s
}

// Width returns the grid width in columns, excluding the frame.
func (s *Surface) Width() int { return s.cols }

// Scale returns the columns-per-unit factor in use.
func (s *Surface) Scale() float64 { return s.scale }

// Cells maps state onto the grid.
func (s *Surface) Cells(state PressState) [][]Cell {
	grid := make([][]Cell, Rows)
	for r := range grid {
		grid[r] = make([]Cell, s.cols)
		for c := range grid[r] {
			grid[r][c] = Cell{Char: " "}
		}
	}

	for _, p := range s.placed {
		pressed := state.Pressed(p.key.ID)
		for r := p.row; r < p.row+p.height && r < Rows; r++ {
			for c := p.col; c < p.col+p.width && c < s.cols; c++ {
				grid[r][c] = Cell{Char: " ", Key: p.key.ID, Pressed: pressed}
			}
		}

		label := runewidth.Truncate(p.key.Label, p.width, "")
		c := p.col + (p.width-runewidth.StringWidth(label))/2
		for _, ch := range label {
			w := runewidth.RuneWidth(ch)
			if c+w > s.cols || w == 0 {
				break
			}
			grid[p.row][c].Char = string(ch)
			if w == 2 {
				grid[p.row][c+1].Char = ""
			}
			c += w
		}
	}
	return grid
}

// Render draws the keyboard inside its frame.
func (s *Surface) Render(state PressState) string {
	grid := s.Cells(state)
	lines := make([]string, len(grid))
	for r, row := range grid {
		lines[r] = renderRow(row)
	}
	return styles.KeyboardFrame.Render(strings.Join(lines, "\n"))
}

// renderRow styles runs of cells that belong to the same key.
func renderRow(row []Cell) string {
	var sb strings.Builder
	var run strings.Builder
	flush := func(c Cell) {
		if run.Len() == 0 {
			return
		}
		switch {
		case c.Key == NoKey:
			sb.WriteString(run.String())
		case c.Pressed:
			sb.WriteString(styles.KeyPressed.Render(run.String()))
		default:
			sb.WriteString(styles.KeyReleased.Render(run.String()))
		}
		run.Reset()
	}

	for i, c := range row {
		if i > 0 && (row[i-1].Key != c.Key || row[i-1].Pressed != c.Pressed) {
			flush(row[i-1])
		}
		run.WriteString(c.Char)
	}
	if len(row) > 0 {
		flush(row[len(row)-1])
	}
	return sb.String()
}

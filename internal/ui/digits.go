package ui

import "strings"

// DigitHeight is the number of terminal rows a block glyph occupies.
const DigitHeight = 5

var glyphs = map[rune][DigitHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	' ': {" ", " ", " ", " ", " "},
}

var blankGlyph = [DigitHeight]string{"   ", "   ", "   ", "   ", "   "}

// BigText renders s in the block font, one string per row. Glyphs are
// separated by a single column; runes without a glyph render blank.
func BigText(s string) []string {
	rows := make([]string, DigitHeight)
	i := 0
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			g = blankGlyph
		}
		for row := range rows {
			if i > 0 {
				rows[row] += " "
			}
			rows[row] += g[row]
		}
		i++
	}
	return rows
}

// BigTextBlock is BigText joined into a single block.
func BigTextBlock(s string) string {
	return strings.Join(BigText(s), "\n")
}

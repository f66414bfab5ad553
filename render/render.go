// Package render turns a solved (or partially solved) crossword into
// something printable. No solving logic lives here.
package render

import (
	"strings"

	"github.com/David-Mais/crossfill/grid"
	"github.com/David-Mais/crossfill/solver"
)

// BlockedCell is the glyph printed for cells no word passes through.
const BlockedCell = '█'

// LetterGrid lays the assignment's words onto a 2D rune grid. Open cells
// not covered by an assigned slot hold a space.
func LetterGrid(cw *grid.Crossword, a solver.Assignment) [][]rune {
	letters := make([][]rune, cw.Height())
	for i := range letters {
		letters[i] = make([]rune, cw.Width())
		for j := range letters[i] {
			letters[i][j] = ' '
		}
	}
	for slot, word := range a {
		for k := 0; k < slot.Length; k++ {
			r, c := slot.Cell(k)
			letters[r][c] = rune(word[k])
		}
	}
	return letters
}

// Text renders the grid for a terminal: letters in open cells, BlockedCell
// everywhere else, one row per line.
func Text(cw *grid.Crossword, a solver.Assignment) string {
	letters := LetterGrid(cw, a)
	var sb strings.Builder
	for i := 0; i < cw.Height(); i++ {
		for j := 0; j < cw.Width(); j++ {
			if cw.Open(i, j) {
				sb.WriteRune(letters[i][j])
			} else {
				sb.WriteRune(BlockedCell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

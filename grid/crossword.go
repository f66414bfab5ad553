// Package grid models the fixed topology of a crossword puzzle: the open
// and blocked cells, the word slots they induce, and the overlap relation
// between crossing slots. A Crossword is immutable once built; the solving
// session only ever reads it.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// OpenCell is the structure-file marker for a fillable cell. Any other
// character is a blocked cell.
const OpenCell = '_'

// Overlap is the pair of character offsets at which two crossing slots
// must agree: letter X of the first slot equals letter Y of the second.
type Overlap struct {
	X int
	Y int
}

// Crossword is the full puzzle topology. Slots are stored in a fixed
// order (across runs row-major, then down runs column-first) so that a
// slot's ordinal is a stable identity; the overlap relation is a dense
// slot-count-sized table rather than a sparse map.
type Crossword struct {
	width  int
	height int
	open   [][]bool

	slots     []Slot
	ordinal   map[Slot]int
	overlaps  [][]*Overlap
	neighbors [][]Slot
}

var ErrEmptyStructure = errors.New("structure has no rows")

// New builds a Crossword from structure lines. Rows may be ragged; cells
// past the end of a short row are blocked. A slot is any maximal run of
// at least two open cells, horizontally or vertically.
func New(structure []string) (*Crossword, error) {
	if len(structure) == 0 {
		return nil, ErrEmptyStructure
	}
	height := len(structure)
	width := 0
	for _, row := range structure {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmptyStructure
	}

	open := make([][]bool, height)
	for i, row := range structure {
		open[i] = make([]bool, width)
		for j, ch := range row {
			open[i][j] = ch == OpenCell
		}
	}

	c := &Crossword{width: width, height: height, open: open}
	c.findSlots()
	if len(c.slots) == 0 {
		return nil, fmt.Errorf("structure %dx%d contains no slots", width, height)
	}
	c.buildOverlaps()
	log.Debug().Int("width", width).Int("height", height).
		Int("slots", len(c.slots)).Msg("built crossword topology")
	return c, nil
}

// LoadStructure reads a structure file, one grid row per line.
func LoadStructure(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening structure file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure file: %w", err)
	}
	return lines, nil
}

func (c *Crossword) findSlots() {
	// Across runs, row-major.
	for i := 0; i < c.height; i++ {
		runStart := -1
		for j := 0; j <= c.width; j++ {
			if j < c.width && c.open[i][j] {
				if runStart == -1 {
					runStart = j
				}
				continue
			}
			if runStart != -1 && j-runStart >= 2 {
				c.slots = append(c.slots, Slot{Row: i, Col: runStart, Dir: Across, Length: j - runStart})
			}
			runStart = -1
		}
	}
	// Down runs.
	for j := 0; j < c.width; j++ {
		runStart := -1
		for i := 0; i <= c.height; i++ {
			if i < c.height && c.open[i][j] {
				if runStart == -1 {
					runStart = i
				}
				continue
			}
			if runStart != -1 && i-runStart >= 2 {
				c.slots = append(c.slots, Slot{Row: runStart, Col: j, Dir: Down, Length: i - runStart})
			}
			runStart = -1
		}
	}

	c.ordinal = make(map[Slot]int, len(c.slots))
	for idx, s := range c.slots {
		c.ordinal[s] = idx
	}
}

func (c *Crossword) buildOverlaps() {
	n := len(c.slots)
	c.overlaps = make([][]*Overlap, n)
	c.neighbors = make([][]Slot, n)
	for i := range c.overlaps {
		c.overlaps[i] = make([]*Overlap, n)
	}

	// Index every open cell by the cell offset within each slot covering
	// it; two slots overlap where they cover the same cell.
	type slotOffset struct {
		slot   int
		offset int
	}
	covering := make(map[[2]int][]slotOffset)
	for idx, s := range c.slots {
		for k, cell := range s.Cells() {
			covering[cell] = append(covering[cell], slotOffset{idx, k})
		}
	}
	for _, at := range covering {
		for _, a := range at {
			for _, b := range at {
				if a.slot == b.slot {
					continue
				}
				c.overlaps[a.slot][b.slot] = &Overlap{X: a.offset, Y: b.offset}
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c.overlaps[i][j] != nil {
				c.neighbors[i] = append(c.neighbors[i], c.slots[j])
			}
		}
	}
}

func (c *Crossword) Width() int  { return c.width }
func (c *Crossword) Height() int { return c.height }

// Open reports whether the cell at (row, col) is fillable.
func (c *Crossword) Open(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width && c.open[row][col]
}

// Slots returns every slot in ordinal order. Callers must not modify the
// returned slice.
func (c *Crossword) Slots() []Slot { return c.slots }

// Ordinal returns the stable index of a slot, or -1 if the slot does not
// belong to this crossword.
func (c *Crossword) Ordinal(s Slot) int {
	idx, ok := c.ordinal[s]
	if !ok {
		return -1
	}
	return idx
}

// Overlap returns the crossing offsets for the ordered pair (x, y). The
// second return is false when the slots do not cross.
func (c *Crossword) Overlap(x, y Slot) (Overlap, bool) {
	xi, xok := c.ordinal[x]
	yi, yok := c.ordinal[y]
	if !xok || !yok {
		return Overlap{}, false
	}
	ov := c.overlaps[xi][yi]
	if ov == nil {
		return Overlap{}, false
	}
	return *ov, true
}

// Neighbors returns the slots crossing x, in ordinal order. Callers must
// not modify the returned slice.
func (c *Crossword) Neighbors(x Slot) []Slot {
	idx, ok := c.ordinal[x]
	if !ok {
		return nil
	}
	return c.neighbors[idx]
}

// Degree is the number of slots crossing x.
func (c *Crossword) Degree(x Slot) int {
	return len(c.Neighbors(x))
}

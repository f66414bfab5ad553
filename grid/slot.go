package grid

import "fmt"

// Direction is the orientation of a slot in the grid.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Slot is a maximal run of open cells holding one word. It is a small
// value type with structural equality so it can key maps directly.
type Slot struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d %s %d)", s.Row, s.Col, s.Dir, s.Length)
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Dir == Across {
		return s.Row, s.Col + k
	}
	return s.Row + k, s.Col
}

// Cells returns all grid coordinates covered by the slot, in word order.
func (s Slot) Cells() [][2]int {
	cells := make([][2]int, s.Length)
	for k := 0; k < s.Length; k++ {
		r, c := s.Cell(k)
		cells[k] = [2]int{r, c}
	}
	return cells
}

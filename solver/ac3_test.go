package solver

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/David-Mais/crossfill/grid"
)

// parallelPuzzle has two across slots that never cross.
//
//	___
//	###
//	___
func parallelPuzzle(t *testing.T) (*grid.Crossword, grid.Slot, grid.Slot) {
	t.Helper()
	cw, err := grid.New([]string{
		"___",
		"###",
		"___",
	})
	if err != nil {
		t.Fatal(err)
	}
	top := grid.Slot{Row: 0, Col: 0, Dir: grid.Across, Length: 3}
	bottom := grid.Slot{Row: 2, Col: 0, Dir: grid.Across, Length: 3}
	return cw, top, bottom
}

// hPuzzle has one across slot whose first and last letters start two down
// slots.
//
//	_____
//	_###_
//	_###_
func hPuzzle(t *testing.T) (*grid.Crossword, grid.Slot, grid.Slot, grid.Slot) {
	t.Helper()
	cw, err := grid.New([]string{
		"_____",
		"_###_",
		"_###_",
	})
	if err != nil {
		t.Fatal(err)
	}
	across := grid.Slot{Row: 0, Col: 0, Dir: grid.Across, Length: 5}
	left := grid.Slot{Row: 0, Col: 0, Dir: grid.Down, Length: 3}
	right := grid.Slot{Row: 0, Col: 4, Dir: grid.Down, Length: 3}
	return cw, across, left, right
}

func TestReviseContract(t *testing.T) {
	is := is.New(t)
	cw, across, down := crossPuzzle(t)
	f := NewFiller(cw, []string{"ART", "BED", "CAR", "CAT"})
	f.EnforceNodeConsistency()

	// ART and BED have no second letter matching any first letter in the
	// down domain; revising must remove exactly those and say so.
	is.True(f.Revise(across, down))
	is.Equal(f.Domain(across), []string{"CAR", "CAT"})

	// Everything left is supported, so a second revision removes nothing
	// and must return false.
	is.True(!f.Revise(across, down))
	is.Equal(f.Domain(across), []string{"CAR", "CAT"})
}

func TestReviseSupportRemains(t *testing.T) {
	is := is.New(t)
	cw, across, down := crossPuzzle(t)
	f := NewFiller(cw, []string{"ART", "BED", "CAR", "CAT", "TOE"})
	f.EnforceNodeConsistency()

	f.Revise(across, down)
	ov, ok := cw.Overlap(across, down)
	is.True(ok)
	for _, w := range f.Domain(across) {
		supported := false
		for _, w2 := range f.Domain(down) {
			if w[ov.X] == w2[ov.Y] {
				supported = true
			}
		}
		is.True(supported) // every survivor has a partner in the down domain
	}
}

func TestReviseNoOverlap(t *testing.T) {
	is := is.New(t)
	cw, top, bottom := parallelPuzzle(t)
	f := NewFiller(cw, []string{"ART", "CAR", "CAT"})
	f.EnforceNodeConsistency()

	is.True(!f.Revise(top, bottom))
	is.Equal(f.Domain(top), []string{"ART", "CAR", "CAT"})
}

func TestAC3Soundness(t *testing.T) {
	is := is.New(t)
	cw, _, _, _ := hPuzzle(t)
	f := NewFiller(cw, []string{"SOLVE", "SMART", "SIP", "EAR", "TIP", "ELM", "BAG"})
	f.EnforceNodeConsistency()

	is.True(f.AC3(nil))

	// Arc consistency must hold for every ordered neighbor pair, queued
	// initially or not.
	for _, x := range cw.Slots() {
		for _, y := range cw.Neighbors(x) {
			ov, ok := cw.Overlap(x, y)
			is.True(ok)
			for _, w := range f.Domain(x) {
				supported := false
				for _, w2 := range f.Domain(y) {
					if w[ov.X] == w2[ov.Y] {
						supported = true
					}
				}
				is.True(supported)
			}
		}
	}
}

func TestAC3ExplicitArcs(t *testing.T) {
	is := is.New(t)
	cw, across, down := crossPuzzle(t)
	f := NewFiller(cw, []string{"ART", "BED", "CAR", "CAT"})
	f.EnforceNodeConsistency()

	is.True(f.AC3([]Arc{{X: across, Y: down}}))
	is.Equal(f.Domain(across), []string{"CAR", "CAT"})
}

func TestAC3FailurePropagation(t *testing.T) {
	is := is.New(t)
	cw, across, _ := crossPuzzle(t)

	// No word's second letter matches any word's first letter, so the
	// across domain empties during propagation.
	f := NewFiller(cw, []string{"CAT", "BED", "BID"})
	f.EnforceNodeConsistency()
	is.True(!f.AC3(nil))
	is.Equal(f.DomainSize(across), 0)

	// The same puzzle through Solve reports failure without searching.
	f2 := NewFiller(cw, []string{"CAT", "BED", "BID"})
	is.Equal(f2.Solve(context.Background()), Assignment(nil))
}

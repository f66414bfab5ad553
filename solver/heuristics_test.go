package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/David-Mais/crossfill/grid"
)

func TestOrderDomainValuesLCV(t *testing.T) {
	is := is.New(t)
	cw, across, _ := crossPuzzle(t)
	f := NewFiller(cw, []string{"ARC", "ART", "CAR", "CAT"})
	f.EnforceNodeConsistency()

	// Down-domain first letters are A, A, C, C. CAR and CAT (second
	// letter A) each eliminate the two C words; ARC and ART (second
	// letter R) eliminate all four. Scores are per candidate, so the
	// ordering also catches an accumulator carried across words. Ties
	// fall back to vocabulary rank.
	is.Equal(f.OrderDomainValues(across, Assignment{}), []string{"CAR", "CAT", "ARC", "ART"})
}

func TestOrderDomainValuesExcludesUsedWords(t *testing.T) {
	is := is.New(t)
	cw, across, down := crossPuzzle(t)
	f := NewFiller(cw, []string{"ARC", "ART", "CAR", "CAT"})
	f.EnforceNodeConsistency()

	// With the only neighbor assigned there is nothing left to eliminate
	// from, so every score is zero and rank order remains; CAR itself is
	// already used and must not be offered again.
	got := f.OrderDomainValues(across, Assignment{down: "CAR"})
	is.Equal(got, []string{"ARC", "ART", "CAT"})
}

func TestSelectUnassignedSlotMRV(t *testing.T) {
	is := is.New(t)
	cw, across, left, right := hPuzzle(t)
	f := NewFiller(cw, []string{"SOLVE", "SIP", "EAR", "TIP"})
	f.EnforceNodeConsistency()

	// The across slot has one candidate against three for each down slot.
	slot, ok := f.SelectUnassignedSlot(Assignment{})
	is.True(ok)
	is.Equal(slot, across)

	// With it assigned, the down slots tie on domain size and degree;
	// slot ordinal settles it.
	slot, ok = f.SelectUnassignedSlot(Assignment{across: "SOLVE"})
	is.True(ok)
	is.Equal(slot, left)
	_ = right
}

func TestSelectUnassignedSlotDegreeTieBreak(t *testing.T) {
	is := is.New(t)
	// Two down slots cross one across slot, giving it the highest degree.
	cw, err := grid.New([]string{
		"_____",
		"#_#_#",
		"#_#_#",
	})
	is.NoErr(err)
	across := grid.Slot{Row: 0, Col: 0, Dir: grid.Across, Length: 5}

	// Three candidates per slot: a pure MRV tie, broken by degree.
	f := NewFiller(cw, []string{"AAAAA", "BBBBB", "CCCCC", "XYZ", "PQR", "STU"})
	f.EnforceNodeConsistency()
	slot, ok := f.SelectUnassignedSlot(Assignment{})
	is.True(ok)
	is.Equal(slot, across)
}

func TestSelectUnassignedSlotAllAssigned(t *testing.T) {
	is := is.New(t)
	cw, across, down := crossPuzzle(t)
	f := NewFiller(cw, []string{"ART", "CAR", "CAT"})

	_, ok := f.SelectUnassignedSlot(Assignment{across: "CAR", down: "ART"})
	is.True(!ok)
}

func TestHeuristicsDoNotMutateDomains(t *testing.T) {
	is := is.New(t)
	cw, across, down := crossPuzzle(t)
	f := NewFiller(cw, []string{"ARC", "ART", "CAR", "CAT"})
	f.EnforceNodeConsistency()

	beforeAcross := f.Domain(across)
	beforeDown := f.Domain(down)
	f.OrderDomainValues(across, Assignment{down: "ART"})
	f.SelectUnassignedSlot(Assignment{})
	is.Equal(f.Domain(across), beforeAcross)
	is.Equal(f.Domain(down), beforeDown)
}

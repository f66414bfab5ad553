package solver

import "github.com/David-Mais/crossfill/grid"

// Assignment maps slots to their chosen words. It may be partial; a slot
// absent from the map is unassigned.
type Assignment map[grid.Slot]string

// Copy returns an independent copy. The search extends copies rather than
// mutating a shared assignment, which is what makes abandoning a branch
// free.
func (a Assignment) Copy() Assignment {
	c := make(Assignment, len(a)+1)
	for s, w := range a {
		c[s] = w
	}
	return c
}

// Complete reports whether every slot in the topology is assigned.
func (f *Filler) Complete(a Assignment) bool {
	for _, s := range f.cw.Slots() {
		if _, ok := a[s]; !ok {
			return false
		}
	}
	return true
}

// Consistent reports whether the assigned words are pairwise distinct, fit
// their slots, and agree at every overlap between assigned slots. The
// checks run in that order and exit on the first violation. Unassigned
// slots impose no constraint, and the assignment itself is not modified.
func (f *Filler) Consistent(a Assignment) bool {
	seen := make(map[string]bool, len(a))
	for _, w := range a {
		if seen[w] {
			return false
		}
		seen[w] = true
	}
	for s, w := range a {
		if len(w) != s.Length {
			return false
		}
	}
	for x, wx := range a {
		for _, y := range f.cw.Neighbors(x) {
			wy, ok := a[y]
			if !ok {
				continue
			}
			ov, _ := f.cw.Overlap(x, y)
			if wx[ov.X] != wy[ov.Y] {
				return false
			}
		}
	}
	return true
}

package solver

import (
	"sort"

	"github.com/David-Mais/crossfill/grid"
)

// OrderDomainValues returns the candidates for slot, least constraining
// first: ascending by the number of words the candidate would eliminate
// from the domains of slot's unassigned neighbors, with ties broken by
// vocabulary rank so runs over the same vocabulary are reproducible.
// Words already used in the assignment are excluded up front. Assigned
// neighbors hold a fixed word and contribute nothing to the score.
func (f *Filler) OrderDomainValues(slot grid.Slot, a Assignment) []string {
	used := make(map[string]bool, len(a))
	for _, w := range a {
		used[w] = true
	}

	var unassigned []grid.Slot
	for _, n := range f.cw.Neighbors(slot) {
		if _, ok := a[n]; !ok {
			unassigned = append(unassigned, n)
		}
	}

	type scored struct {
		word       string
		eliminates int
	}
	candidates := make([]scored, 0, len(f.domains[slot]))
	for w := range f.domains[slot] {
		if used[w] {
			continue
		}
		// The elimination tally starts from zero for each candidate.
		eliminates := 0
		for _, n := range unassigned {
			ov, _ := f.cw.Overlap(slot, n)
			for w2 := range f.domains[n] {
				if w[ov.X] != w2[ov.Y] {
					eliminates++
				}
			}
		}
		candidates = append(candidates, scored{word: w, eliminates: eliminates})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].eliminates != candidates[j].eliminates {
			return candidates[i].eliminates < candidates[j].eliminates
		}
		return f.rank[candidates[i].word] < f.rank[candidates[j].word]
	})
	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words
}

// SelectUnassignedSlot picks the next slot to branch on: smallest
// remaining domain first (MRV), ties broken by the highest number of
// crossing slots (degree), remaining ties by slot ordinal. It inspects
// but never modifies the domains and the assignment. The second return is
// false when every slot is already assigned.
func (f *Filler) SelectUnassignedSlot(a Assignment) (grid.Slot, bool) {
	var best grid.Slot
	found := false
	for _, s := range f.cw.Slots() {
		if _, ok := a[s]; ok {
			continue
		}
		if !found {
			best, found = s, true
			continue
		}
		ds, db := len(f.domains[s]), len(f.domains[best])
		if ds < db || (ds == db && f.cw.Degree(s) > f.cw.Degree(best)) {
			best = s
		}
	}
	return best, found
}

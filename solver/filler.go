// Package solver fills a crossword topology with words from a vocabulary.
// It enforces node consistency, propagates arc consistency with AC-3, and
// runs a backtracking search ordered by the MRV/degree and
// least-constraining-value heuristics.
//
// A Filler is one solving session. It owns its domain store outright;
// nothing else mutates the domains, and the Crossword it solves over is
// never written to. Sessions are therefore independent and any number of
// them may run concurrently over the same Crossword.
package solver

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/David-Mais/crossfill/grid"
)

// Filler is a single solving session: the puzzle topology plus the
// current candidate domain of every slot.
type Filler struct {
	cw      *grid.Crossword
	domains map[grid.Slot]map[string]bool
	// rank is each word's position in the input vocabulary. Value-ordering
	// ties are broken by rank, so the caller picks the tie-break policy by
	// ordering the vocabulary: a sorted list gives reproducible
	// lexicographic fills, a shuffled one gives variety.
	rank map[string]int
}

// NewFiller starts a session with every slot's domain set to the full
// vocabulary.
func NewFiller(cw *grid.Crossword, words []string) *Filler {
	f := &Filler{
		cw:      cw,
		domains: make(map[grid.Slot]map[string]bool, len(cw.Slots())),
		rank:    make(map[string]int, len(words)),
	}
	for i, w := range words {
		if _, ok := f.rank[w]; !ok {
			f.rank[w] = i
		}
	}
	for _, s := range cw.Slots() {
		d := make(map[string]bool, len(f.rank))
		for w := range f.rank {
			d[w] = true
		}
		f.domains[s] = d
	}
	return f
}

// Crossword returns the topology this session fills.
func (f *Filler) Crossword() *grid.Crossword { return f.cw }

// DomainSize returns the number of candidates remaining for a slot.
func (f *Filler) DomainSize(s grid.Slot) int {
	return len(f.domains[s])
}

// Domain returns a sorted copy of a slot's remaining candidates.
func (f *Filler) Domain(s grid.Slot) []string {
	d := f.domains[s]
	words := make([]string, 0, len(d))
	for w := range d {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// EnforceNodeConsistency removes from every slot's domain the words whose
// length does not match the slot. It is idempotent and must run before
// AC-3, which indexes words by overlap offset and so assumes lengths
// already agree.
func (f *Filler) EnforceNodeConsistency() {
	removed := 0
	for s, d := range f.domains {
		for w := range d {
			if len(w) != s.Length {
				delete(d, w)
				removed++
			}
		}
	}
	log.Debug().Int("removed", removed).Msg("node consistency enforced")
}

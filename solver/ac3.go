package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/David-Mais/crossfill/grid"
)

// Arc is an ordered pair of crossing slots: revising it makes X arc
// consistent with Y.
type Arc struct {
	X grid.Slot
	Y grid.Slot
}

// Revise removes from domain[x] every word with no compatible partner in
// domain[y] at the overlap offsets. It returns true if and only if at
// least one word was removed; AC-3 relies on this signal to requeue
// neighboring arcs, so a wrong return here silently breaks propagation.
// If x and y do not cross there is nothing to revise.
func (f *Filler) Revise(x, y grid.Slot) bool {
	ov, ok := f.cw.Overlap(x, y)
	if !ok {
		return false
	}
	dx, dy := f.domains[x], f.domains[y]
	revised := false
	for w := range dx {
		supported := false
		for w2 := range dy {
			if w[ov.X] == w2[ov.Y] {
				supported = true
				break
			}
		}
		if !supported {
			delete(dx, w)
			revised = true
		}
	}
	return revised
}

// AC3 drives Revise over a work queue of arcs until no revision shrinks
// any domain. A nil queue means all ordered neighbor pairs in the
// topology. When a revision leaves a slot with an empty domain the puzzle
// is unsolvable from the current domains and AC3 returns false
// immediately; otherwise it returns true once the queue drains.
func (f *Filler) AC3(arcs []Arc) bool {
	if arcs == nil {
		for _, x := range f.cw.Slots() {
			for _, y := range f.cw.Neighbors(x) {
				arcs = append(arcs, Arc{X: x, Y: y})
			}
		}
	}
	queue := append([]Arc(nil), arcs...)

	revisions := 0
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]

		if !f.Revise(arc.X, arc.Y) {
			continue
		}
		revisions++
		if len(f.domains[arc.X]) == 0 {
			log.Debug().Stringer("slot", arc.X).Msg("ac3 emptied a domain")
			return false
		}
		// A shrunken domain[x] may strand words in the neighbors' domains,
		// so their arcs toward x go back on the queue. Arcs out of x stay
		// settled: removing words from x cannot strand words in x.
		for _, z := range f.cw.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	log.Debug().Int("revisions", revisions).Msg("ac3 converged")
	return true
}

package solver

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Solve enforces node and arc consistency and then runs the backtracking
// search. It returns the first complete consistent assignment found, or
// nil when none exists. Unsolvability is the expected failure mode, not
// an error. Cancelling or timing out the context also yields nil: a fill
// that ran out of time and a fill with no solution look the same to the
// caller.
func (f *Filler) Solve(ctx context.Context) Assignment {
	f.EnforceNodeConsistency()
	if !f.AC3(nil) {
		log.Debug().Msg("unsolvable: ac3 emptied a domain")
		return nil
	}
	return f.backtrack(ctx, Assignment{})
}

func (f *Filler) backtrack(ctx context.Context, a Assignment) Assignment {
	if ctx.Err() != nil {
		return nil
	}
	if f.Complete(a) {
		return a
	}
	slot, ok := f.SelectUnassignedSlot(a)
	if !ok {
		return nil
	}
	for _, word := range f.OrderDomainValues(slot, a) {
		next := a.Copy()
		next[slot] = word
		if !f.Consistent(next) {
			continue
		}
		if result := f.backtrack(ctx, next); result != nil {
			return result
		}
	}
	return nil
}

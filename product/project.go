package product

import (
	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/eventset"
)

// Project builds the concrete automaton whose states are exactly states
// (already restricted to whatever virtual set the caller chose to keep),
// renumbered densely in the order given. For every pair of surviving states
// connected by an enabled event in vp, a triplet is emitted into the
// rebuilt Γ/B; the marked set and initial state are carried across via the
// same renumbering. Shared by both Synchronize and supervisor synthesis's
// final projection.
//
// states must be free of duplicates; callers that discover states via a
// map or a stack naturally produce this.
func Project(vp *VirtualProduct, states []State) *automaton.Automaton {
	n := vp.Events().Len()

	rank := make(map[State]State, len(states))
	for i, q := range states {
		rank[q] = State(i)
	}

	var marked []State
	var triplets []automaton.Triplet
	for _, q := range states {
		r := rank[q]
		if vp.IsMarked(q) {
			marked = append(marked, r)
		}
		vp.Events().Iterate(func(e eventset.Event) {
			succ, ok := vp.Trans(q, e)
			if !ok {
				return
			}
			r2, ok2 := rank[succ]
			if !ok2 {
				return
			}
			triplets = append(triplets, automaton.Triplet{From: r, To: r2, Event: e})
		})
	}

	var q0 State
	if r, ok := rank[vp.InitialState()]; ok {
		q0 = r
	}

	return automaton.NewFromTriplets(n, len(states), q0, marked, triplets)
}

// Package supervisor implements monolithic supervisor synthesis: the
// three-phase algorithm that discovers the controllable-and-nonblocking
// portion of a plant/specification product and projects it into a concrete
// automaton.
//
// Grounded on the original clDES SuperProxyCore.hpp: its constructor runs
// exactly this forward-discovery-with-bad-state-pruning loop
// (findRemovedStates_/removeBadStates), and its `operator DESystem()`
// conversion performs the same sort-and-emit-triplets projection this
// package's Phase 3 reuses from package product.
package supervisor

import (
	"sort"

	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/eventset"
	"github.com/lacsed/cldes-go/internal/conv"
	"github.com/lacsed/cldes-go/internal/sparse"
	"github.com/lacsed/cldes-go/product"
)

// Synthesize computes the supremal controllable sublanguage of spec with
// respect to plant, expressed structurally as a trimmed subautomaton of the
// synchronous product plant ∥ spec. uncontrollable is restricted on entry
// to its intersection with plant's alphabet.
//
// Returns a non-nil error only if cfg fails Validate or discovery exceeds
// cfg.MaxVirtualStates; on any input that does not trip those, the result
// matches the unconditional three-phase algorithm.
func Synthesize(plant, spec *automaton.Automaton, uncontrollable *eventset.EventSet, cfg Config) (*automaton.Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vp := product.New(plant, spec)
	u := eventset.Intersection(uncontrollable, plant.Events())

	v, err := phase1(vp, plant, u, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.TrimUnreachableToMarked {
		v = phase2(vp, v)
	}

	values := v.Values()
	states := make([]product.State, len(values))
	for i, q := range values {
		states[i] = product.State(q)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	return product.Project(vp, states), nil
}

// phase1 runs forward discovery with bad-state pruning, returning the set V
// of surviving virtual states as a sparse set over the product's full (not
// necessarily reachable) state space.
func phase1(vp *product.VirtualProduct, plant *automaton.Automaton, u *eventset.EventSet, cfg Config) (*sparse.SparseSet, error) {
	vp.AllocateInvertedGraph()
	defer vp.ClearInvertedGraph()

	capacity := conv.IntToUint32(vp.StatesNumber())
	v := sparse.NewSparseSet(capacity)
	r := sparse.NewSparseSet(capacity)

	checkLimit := func() error {
		explored := v.Size() + r.Size()
		if cfg.MaxVirtualStates > 0 && explored > cfg.MaxVirtualStates {
			return &Error{Kind: ErrTooManyStates, Message: "discovery exceeded MaxVirtualStates"}
		}
		return nil
	}

	stack := []product.State{vp.InitialState()}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		qu := conv.IntToUint32(int(q))

		if r.Contains(qu) || v.Contains(qu) {
			continue
		}

		x, _ := vp.Decode(q)
		locallyBad := false
		u.Iterate(func(e eventset.Event) {
			if locallyBad {
				return
			}
			if plant.ContainsTrans(x, e) && !vp.ContainsTrans(q, e) {
				locallyBad = true
			}
		})

		if locallyBad {
			removeBadStates(vp, u, q, v, r)
		} else {
			v.Insert(qu)
			vp.Events().Iterate(func(e eventset.Event) {
				succ, ok := vp.Trans(q, e)
				if !ok {
					return
				}
				if !r.Contains(conv.IntToUint32(int(succ))) {
					stack = append(stack, succ)
				}
			})
		}

		if err := checkLimit(); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// removeBadStates is the backward closure over uncontrollable events: q0
// and every predecessor reachable from it along an uncontrollable event
// move from V (if present) into R.
func removeBadStates(vp *product.VirtualProduct, u *eventset.EventSet, q0 product.State, v, r *sparse.SparseSet) {
	q0u := conv.IntToUint32(int(q0))
	v.Remove(q0u)
	r.Insert(q0u)
	stack := []product.State{q0}

	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		u.Iterate(func(e eventset.Event) {
			for _, pred := range vp.InvTrans(q, e) {
				predu := conv.IntToUint32(int(pred))
				if r.Contains(predu) {
					continue
				}
				v.Remove(predu)
				r.Insert(predu)
				stack = append(stack, pred)
			}
		})
	}
}

// phase2 restricts v to the states co-reachable from the marked virtual
// states within v, by a backward BFS over the virtual inverse relation that
// only follows predecessors already present in v.
func phase2(vp *product.VirtualProduct, v *sparse.SparseSet) *sparse.SparseSet {
	vp.AllocateInvertedGraph()
	defer vp.ClearInvertedGraph()

	kept := sparse.NewSparseSet(conv.IntToUint32(vp.StatesNumber()))
	var stack []product.State
	for _, qu := range v.Values() {
		q := product.State(qu)
		if vp.IsMarked(q) {
			kept.Insert(qu)
			stack = append(stack, q)
		}
	}

	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		vp.Events().Iterate(func(e eventset.Event) {
			for _, pred := range vp.InvTrans(q, e) {
				predu := conv.IntToUint32(int(pred))
				if !v.Contains(predu) {
					continue
				}
				if kept.Contains(predu) {
					continue
				}
				kept.Insert(predu)
				stack = append(stack, pred)
			}
		})
	}

	return kept
}

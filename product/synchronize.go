package product

import (
	"sort"

	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/eventset"
	"github.com/lacsed/cldes-go/internal/conv"
	"github.com/lacsed/cldes-go/internal/sparse"
)

// Synchronize drives a forward traversal from the product's initial state,
// materialising only the reachable portion of P ∥ Q, and returns a concrete
// automaton. It uses the same projection mechanism as supervisor synthesis
// (Project) but keeps every virtual state reachable from q0, with no
// bad-state pruning.
func Synchronize(p, q *automaton.Automaton, cfg Config) (*automaton.Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vp := New(p, q)

	visited := sparse.NewSparseSet(conv.IntToUint32(vp.StatesNumber()))
	var order []State
	stack := []State{vp.InitialState()}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		curu := conv.IntToUint32(int(cur))
		if visited.Contains(curu) {
			continue
		}
		visited.Insert(curu)
		order = append(order, cur)

		if cfg.MaxVirtualStates > 0 && visited.Size() > cfg.MaxVirtualStates {
			return nil, &LimitError{Limit: cfg.MaxVirtualStates, Explored: visited.Size()}
		}

		vp.Events().Iterate(func(e eventset.Event) {
			succ, ok := vp.Trans(cur, e)
			if !ok {
				return
			}
			if !visited.Contains(conv.IntToUint32(int(succ))) {
				stack = append(stack, succ)
			}
		})
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return Project(vp, order), nil
}

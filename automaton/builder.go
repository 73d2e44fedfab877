package automaton

import (
	"sort"

	"github.com/lacsed/cldes-go/eventset"
)

// SetTransition adds event e to Γ[i,j]. Idempotent if already present.
// Updates B, E, F[i], and F⁻¹[j] so every derived summary stays consistent
// with Γ afterward.
func (a *Automaton) SetTransition(i, j State, e eventset.Event) {
	a.checkState(i)
	a.checkState(j)
	a.checkEvent(e)

	row := a.rows[i]
	idx := sort.Search(len(row), func(k int) bool { return row[k].dest >= j })
	if idx < len(row) && row[idx].dest == j {
		row[idx].label.Set(e)
	} else {
		label := eventset.New(a.n)
		label.Set(e)

		row = append(row, edge{})
		copy(row[idx+1:], row[idx:len(row)-1])
		row[idx] = edge{dest: j, label: label}
		a.rows[i] = row

		insertSortedUnique(&a.predRows[j], int(i))
	}

	a.fwd[i].Set(e)
	a.inv[j].Set(e)
	a.events.Set(e)
}

// insertSortedUnique inserts v into the ascending sorted slice *s if not
// already present.
func insertSortedUnique(s *[]int, v int) {
	arr := *s
	idx := sort.SearchInts(arr, v)
	if idx < len(arr) && arr[idx] == v {
		return
	}
	arr = append(arr, 0)
	copy(arr[idx+1:], arr[idx:len(arr)-1])
	arr[idx] = v
	*s = arr
}

// Triplet is a single-event write into a transition relation: the
// insertion-ordered primitive bulk construction is built from.
type Triplet struct {
	From, To State
	Event    eventset.Event
}

// NewFromTriplets builds an Automaton over an n-event alphabet with s
// states, initial state q0 and marked set marked, inserting every triplet
// via SetTransition. Duplicate (From, To) coordinates across triplets union
// their events, the same merge rule trim and projection use when they
// rebuild Γ and B from scratch.
//
// Promoted from an internal trim/projection helper to a supported
// constructor: it is also how the cluster-tool fixture builder
// (internal/builder) assembles plant and specification automata in bulk,
// mirroring the original clDES test suite's setFromTriplets/makeCompressed
// construction path (SuperProxyCore.hpp).
func NewFromTriplets(n, s int, q0 State, marked []State, triplets []Triplet) *Automaton {
	a := New(n, s, q0, marked)
	for _, t := range triplets {
		a.SetTransition(t.From, t.To, t.Event)
	}
	return a
}

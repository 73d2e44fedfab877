package automaton

import "github.com/lacsed/cldes-go/eventset"

// Trim restricts the automaton to TrimStates (AccessiblePart ∩
// CoaccessiblePart), renumbers the survivors densely in ascending order of
// their old index, and rebuilds Γ and B from scratch in canonical form.
// A no-op if every state is already trim.
//
// Mutates and returns a.
func (a *Automaton) Trim() *Automaton {
	trimSet := a.TrimStates()
	if len(trimSet) == a.s {
		return a
	}

	sigma := make(map[State]State, len(trimSet))
	for newIdx, old := range trimSet {
		sigma[old] = State(newIdx)
	}

	var triplets []Triplet
	for _, old := range trimSet {
		newFrom := sigma[old]
		for _, e := range a.rows[old] {
			newTo, ok := sigma[e.dest]
			if !ok {
				continue
			}
			label := e.label
			label.Iterate(func(ev eventset.Event) {
				triplets = append(triplets, Triplet{From: newFrom, To: newTo, Event: ev})
			})
		}
	}

	var newMarked []State
	for m := range a.marked {
		if nm, ok := sigma[m]; ok {
			newMarked = append(newMarked, nm)
		}
	}

	newQ0, ok := sigma[a.q0]
	if !ok {
		fail(ErrInvalidState, "trim: initial state %d is not in the trim set; automaton has an empty language", a.q0)
	}

	rebuilt := NewFromTriplets(a.n, len(trimSet), newQ0, newMarked, triplets)
	*a = *rebuilt
	return a
}

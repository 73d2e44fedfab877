// Package automaton implements the concrete Discrete Event System
// automaton: a sparse, bit-labelled adjacency-matrix representation with
// BFS-based structural reductions (accessible, coaccessible, trim).
//
// Grounded on a regex engine's NFA representation (nfa.NFA/nfa.State/
// nfa.Builder: a state-indexed slice with typed IDs, built incrementally
// through a Builder and queried through small accessor methods) and on the
// clDES C++ DESystem (libcldes/cldes/src/des/DESystemCore.hpp), which this
// package's Γ/B split and accessible/coaccessible semantics are a direct Go
// port of.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lacsed/cldes-go/eventset"
	"github.com/lacsed/cldes-go/internal/reach"
)

// State is a dense index in [0, S) into an Automaton's state set.
type State int

// NoState is returned alongside ok=false by Trans when no successor exists.
// It is never a valid State.
const NoState State = -1

// edge is one entry of Γ: a destination state and the events that label
// the transition into it.
type edge struct {
	dest  State
	label *eventset.EventSet
}

// Automaton is a concrete Discrete Event System automaton: S states, an
// initial state, a marked set, and the labelled transition relation Γ
// split from its boolean shadow B, stored in CSR-like sparse row form.
//
// The two matrices are kept genuinely separate: rows holds Γ (labels, used
// by transition lookup) and predRows holds B' = Bᵗ + I's non-identity part
// (bare destination existence, used only by the reachability kernel).
// Neither is derived from the other at query time.
type Automaton struct {
	n int // alphabet width N
	s int // number of states S

	q0     State
	marked map[State]struct{}

	rows     [][]edge // Γ: rows[i] = edges out of i, sorted ascending by dest
	predRows [][]int  // B': predRows[d] = sources with an edge into d, sorted

	events *eventset.EventSet   // E = union of all labels
	fwd    []*eventset.EventSet // F[q] = union of labels on out-edges of q
	inv    []*eventset.EventSet // F⁻¹[q] = union of labels on in-edges of q

	invGraph [][]edge // Γ⁻¹ cache: invGraph[dest] = (source, label) pairs; nil unless allocated
}

// New constructs an empty Automaton over an n-event alphabet with s states,
// initial state q0, and marked set marked. The transition relation starts
// empty.
func New(n, s int, q0 State, marked []State) *Automaton {
	a := &Automaton{
		n:      n,
		s:      s,
		q0:     q0,
		marked: make(map[State]struct{}, len(marked)),
		rows:   make([][]edge, s),
		predRows: make([][]int, s),
		events: eventset.New(n),
		fwd:    make([]*eventset.EventSet, s),
		inv:    make([]*eventset.EventSet, s),
	}
	for i := 0; i < s; i++ {
		a.fwd[i] = eventset.New(n)
		a.inv[i] = eventset.New(n)
	}
	for _, m := range marked {
		a.checkState(m)
		a.marked[m] = struct{}{}
	}
	if s > 0 {
		a.checkState(q0)
	}
	return a
}

func (a *Automaton) checkState(q State) {
	if int(q) < 0 || int(q) >= a.s {
		fail(ErrInvalidState, "state %d out of range [0, %d)", q, a.s)
	}
}

func (a *Automaton) checkEvent(e eventset.Event) {
	if int(e) < 0 || int(e) >= a.n {
		fail(ErrInvalidEvent, "event %d out of range [0, %d)", e, a.n)
	}
}

// StatesNumber returns S.
func (a *Automaton) StatesNumber() int { return a.s }

// AlphabetSize returns N.
func (a *Automaton) AlphabetSize() int { return a.n }

// InitialState returns q0.
func (a *Automaton) InitialState() State { return a.q0 }

// IsMarked reports whether q is in the marked set M.
func (a *Automaton) IsMarked(q State) bool {
	_, ok := a.marked[q]
	return ok
}

// MarkedStates returns M as an ascending sorted slice.
func (a *Automaton) MarkedStates() []State {
	out := make([]State, 0, len(a.marked))
	for m := range a.marked {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Events returns E, the union of all transition labels.
func (a *Automaton) Events() *eventset.EventSet { return a.events }

// IsVirtual returns false: Automaton is the concrete variant of the sealed
// {Concrete, Virtual} query surface shared with VirtualProduct.
func (a *Automaton) IsVirtual() bool { return false }

// Label returns Γ[i,j], empty if there is no edge.
func (a *Automaton) Label(i, j State) *eventset.EventSet {
	a.checkState(i)
	a.checkState(j)
	for _, e := range a.rows[i] {
		if e.dest == j {
			return e.label
		}
		if e.dest > j {
			break
		}
	}
	return eventset.New(a.n)
}

// ContainsTrans reports whether q has an outgoing transition on e. O(1).
func (a *Automaton) ContainsTrans(q State, e eventset.Event) bool {
	a.checkState(q)
	a.checkEvent(e)
	return a.fwd[q].Test(e)
}

// ContainsInvTrans reports whether q has an incoming transition on e. O(1).
func (a *Automaton) ContainsInvTrans(q State, e eventset.Event) bool {
	a.checkState(q)
	a.checkEvent(e)
	return a.inv[q].Test(e)
}

// Trans returns the unique successor of q under e, if one exists. DES
// automata are deterministic per event, so there is at most one.
func (a *Automaton) Trans(q State, e eventset.Event) (State, bool) {
	a.checkState(q)
	a.checkEvent(e)
	if !a.fwd[q].Test(e) {
		return NoState, false
	}
	for _, edg := range a.rows[q] {
		if edg.label.Test(e) {
			return edg.dest, true
		}
	}
	return NoState, false
}

// InvTrans returns every predecessor of q under e. Requires a prior,
// still-active AllocateInvertedGraph call; violating this is a contract
// error.
func (a *Automaton) InvTrans(q State, e eventset.Event) []State {
	a.checkState(q)
	a.checkEvent(e)
	if a.invGraph == nil {
		fail(ErrNoInvertedGraph, "InvTrans called without AllocateInvertedGraph")
	}
	var out []State
	for _, edg := range a.invGraph[q] {
		if edg.label.Test(e) {
			out = append(out, edg.dest)
		}
	}
	return out
}

// AllocateInvertedGraph builds the Γ⁻¹ cache. Idempotent: a second call
// while already allocated is a no-op.
func (a *Automaton) AllocateInvertedGraph() {
	if a.invGraph != nil {
		return
	}
	inv := make([][]edge, a.s)
	for i, row := range a.rows {
		for _, e := range row {
			inv[e.dest] = append(inv[e.dest], edge{dest: State(i), label: e.label})
		}
	}
	for d := range inv {
		sort.Slice(inv[d], func(i, j int) bool { return inv[d][i].dest < inv[d][j].dest })
	}
	a.invGraph = inv
}

// ClearInvertedGraph releases the Γ⁻¹ cache. Idempotent.
func (a *Automaton) ClearInvertedGraph() {
	a.invGraph = nil
}

// CacheDeviceGraph is a stub retained for API parity with the historical
// OpenCL/device-cache path. It performs no work; this core never offloads
// to an accelerator.
func (a *Automaton) CacheDeviceGraph() {}

// ClearDeviceGraph is the matching no-op release for CacheDeviceGraph.
func (a *Automaton) ClearDeviceGraph() {}

// Clone returns an independent deep copy. The clone's inverted-graph cache
// starts unallocated regardless of the source's state, since the cache's
// allocate/clear scoping is per-instance.
func (a *Automaton) Clone() *Automaton {
	out := &Automaton{
		n:        a.n,
		s:        a.s,
		q0:       a.q0,
		marked:   make(map[State]struct{}, len(a.marked)),
		rows:     make([][]edge, a.s),
		predRows: make([][]int, a.s),
		events:   a.events.Clone(),
		fwd:      make([]*eventset.EventSet, a.s),
		inv:      make([]*eventset.EventSet, a.s),
	}
	for m := range a.marked {
		out.marked[m] = struct{}{}
	}
	for i := range a.rows {
		out.rows[i] = cloneEdges(a.rows[i])
		out.predRows[i] = append([]int(nil), a.predRows[i]...)
		out.fwd[i] = a.fwd[i].Clone()
		out.inv[i] = a.inv[i].Clone()
	}
	return out
}

func cloneEdges(in []edge) []edge {
	out := make([]edge, len(in))
	for i, e := range in {
		out[i] = edge{dest: e.dest, label: e.label.Clone()}
	}
	return out
}

// String returns a diagnostic dump of state/transition counts, grounded on
// nfa.NFA.String's summary-line style.
func (a *Automaton) String() string {
	count := 0
	for _, row := range a.rows {
		count += len(row)
	}
	return fmt.Sprintf("Automaton{states: %d, q0: %d, marked: %v, transitions: %d, alphabet: %d}",
		a.s, a.q0, a.MarkedStates(), count, a.n)
}

// GoString returns a fuller textual dump, one line per non-empty row, for
// use in test failure messages.
func (a *Automaton) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.String())
	for i, row := range a.rows {
		if len(row) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %d:", i)
		for _, e := range row {
			fmt.Fprintf(&b, " ->%d%s", e.dest, e.label.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// accessibleKernel builds the reachability kernel used for AccessiblePart
// (forward reach from q0: the stored B' predecessor adjacency is exactly
// what the fixed point needs, unmodified).
func (a *Automaton) accessibleKernel() *reach.Kernel {
	return reach.New(a.s, a.predRows)
}

// AccessiblePart returns the set of states reachable from q0 via forward
// transitions.
func (a *Automaton) AccessiblePart() []State {
	if a.s == 0 {
		return nil
	}
	k := a.accessibleKernel()
	reached := k.Reach([][]int{{int(a.q0)}})[0]
	return toStates(reached)
}

// succRows builds the plain (non-transposed) forward adjacency on the fly:
// the stored B' already embeds the transpose of B, so coaccessible
// transposes back by building succRows fresh rather than caching it.
func (a *Automaton) succRows() [][]int {
	succ := make([][]int, a.s)
	for i, row := range a.rows {
		for _, e := range row {
			succ[i] = append(succ[i], int(e.dest))
		}
	}
	return succ
}

// CoaccessiblePart returns the set of states from which some marked state
// is reachable.
func (a *Automaton) CoaccessiblePart() []State {
	if a.s == 0 || len(a.marked) == 0 {
		return nil
	}
	k := reach.New(a.s, a.succRows())
	seeds := make([][]int, 0, len(a.marked))
	for m := range a.marked {
		seeds = append(seeds, []int{int(m)})
	}
	cols := k.Reach(seeds)
	return toStates(reach.Union(cols))
}

// TrimStates returns AccessiblePart ∩ CoaccessiblePart.
func (a *Automaton) TrimStates() []State {
	acc := make(map[State]struct{})
	for _, s := range a.AccessiblePart() {
		acc[s] = struct{}{}
	}
	var out []State
	for _, s := range a.CoaccessiblePart() {
		if _, ok := acc[s]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func toStates(xs []int) []State {
	if len(xs) == 0 {
		return nil
	}
	out := make([]State, len(xs))
	for i, x := range xs {
		out[i] = State(x)
	}
	return out
}

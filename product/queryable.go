// Package product implements the lazy synchronous product of two Discrete
// Event System automata: a VirtualProduct that answers the same transition
// queries as a concrete automaton.Automaton without ever materialising its
// own Γ or B.
//
// Grounded on a regex engine's engine-selection surface (meta.Strategy:
// several concrete engines answering one query interface chosen at compile
// time) and on the clDES TransitionProxy/SuperProxy lazy composition
// (libcldes/cldes/src/operations/SuperProxyCore.hpp), generalized here from
// "virtual method is_virtual on a base class" to a Go interface satisfied by
// both the concrete and the lazy variant.
package product

import (
	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/eventset"
)

// State is a state index, shared between automaton.Automaton and
// VirtualProduct: a concrete state in the former, an encoded (x,y) pair in
// the latter.
type State = automaton.State

// Queryable is the query surface common to automaton.Automaton and
// VirtualProduct: the sealed {Concrete, Virtual} variant's shared trait.
type Queryable interface {
	StatesNumber() int
	Events() *eventset.EventSet
	ContainsTrans(q State, e eventset.Event) bool
	Trans(q State, e eventset.Event) (State, bool)
	ContainsInvTrans(q State, e eventset.Event) bool
	InvTrans(q State, e eventset.Event) []State
	AllocateInvertedGraph()
	ClearInvertedGraph()
	IsVirtual() bool
}

var (
	_ Queryable = (*automaton.Automaton)(nil)
	_ Queryable = (*VirtualProduct)(nil)
)

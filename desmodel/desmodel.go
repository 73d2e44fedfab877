// Package desmodel is the convenience entry point for this module's
// Discrete Event System core: it re-exports the constructors and free
// functions most callers need without requiring an import of every
// subpackage, mirroring how a regex engine's root package wraps its
// nfa/dfa/meta subpackages behind a single Compile entry point.
package desmodel

import (
	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/eventset"
	"github.com/lacsed/cldes-go/product"
	"github.com/lacsed/cldes-go/supervisor"
)

// NewAutomaton constructs an empty Automaton over an n-event alphabet with
// s states, initial state q0, and marked set marked.
func NewAutomaton(n, s int, q0 automaton.State, marked []automaton.State) *automaton.Automaton {
	return automaton.New(n, s, q0, marked)
}

// NewEventSet constructs an empty EventSet over an n-event alphabet.
func NewEventSet(n int) *eventset.EventSet {
	return eventset.New(n)
}

// Synchronize materialises the reachable portion of the synchronous product
// of p and q into a concrete Automaton.
func Synchronize(p, q *automaton.Automaton) (*automaton.Automaton, error) {
	return product.Synchronize(p, q, product.DefaultConfig())
}

// SupervisorSynthesis computes the supremal controllable-and-nonblocking
// sublanguage of spec with respect to plant, given the set of events the
// supervisor must never disable.
func SupervisorSynthesis(plant, spec *automaton.Automaton, uncontrollable *eventset.EventSet) (*automaton.Automaton, error) {
	return supervisor.Synthesize(plant, spec, uncontrollable, supervisor.DefaultConfig())
}

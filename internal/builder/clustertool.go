// Package builder is the in-repo stand-in for an external model-builder
// collaborator: something that emits plant and specification automata plus
// an uncontrollable-event set for a test harness to drive. Grounded on the
// original clDES test suite's
// tests/ct2.cpp ("ClusterTool(2)" feeding a pairwise plant/spec
// synchronize-then-trim-then-synthesize pipeline) and on the parametric,
// small-options-struct generator shape used elsewhere in the retrieval pack
// (e.g. lvlath/builder's config/options split).
//
// The original clustertool.hpp that ct2.cpp includes was not part of the
// retrieved source, so the per-module automaton shapes below are original:
// a four-event idle/load/process/unload cycle per processing module, with
// one two-state buffer-mutex specification per pair of modules arranged in
// a ring (matching how a single robot arm services stations arranged around
// it in a real cluster tool). What is preserved from ct2.cpp is the shape
// of the fixture: a fixed 16-event alphabet, one plant and one
// specification automaton per module, and an uncontrollable set drawn from
// the plants' own events.
package builder

import (
	"fmt"

	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/eventset"
)

// Alphabet is the fixed alphabet width ct2.cpp builds its cluster-tool
// fixture over.
const Alphabet = 16

// eventsPerModule is the number of events each processing-module plant
// consumes from the shared alphabet (load, start, finish, unload).
const eventsPerModule = 4

// MaxModules is the largest cluster-tool size this generator supports
// without exceeding Alphabet (eventsPerModule * MaxModules <= Alphabet).
const MaxModules = Alphabet / eventsPerModule

// Per-module event roles, offset by module index * eventsPerModule.
const (
	roleLoad = iota
	roleStart
	roleFinish
	roleUnload
)

func loadEvent(m int) eventset.Event   { return eventset.Event(m*eventsPerModule + roleLoad) }
func startEvent(m int) eventset.Event  { return eventset.Event(m*eventsPerModule + roleStart) }
func finishEvent(m int) eventset.Event { return eventset.Event(m*eventsPerModule + roleFinish) }
func unloadEvent(m int) eventset.Event { return eventset.Event(m*eventsPerModule + roleUnload) }

// Per-module plant states: a processing cycle idle -> loading -> processing
// -> unloading -> idle.
const (
	stateIdle automaton.State = iota
	stateLoading
	stateProcessing
	stateUnloading
)

// ClusterTool builds n plant automata and n specification automata over a
// shared 16-event alphabet, and the set of events the supervisor must never
// disable.
//
// Plant m is a single processing module's idle/load/process/unload cycle.
// Spec m is the two-state buffer-mutex between module m and module
// (m+1) mod n: it goes occupied when module m finishes (an uncontrollable
// event its own plant also has) and free again once module (m+1) mod n
// loads (a controllable event that plant also has), which is exactly the
// kind of shared-event constraint supervisor synthesis exists to enforce.
//
// n must be in [1, MaxModules]; ClusterTool(2) matches the cluster-tool(2)
// fixture referenced by the original test suite.
func ClusterTool(n int) (plants, specs []*automaton.Automaton, uncontrollable *eventset.EventSet, err error) {
	if n < 1 || n > MaxModules {
		return nil, nil, nil, fmt.Errorf("builder: ClusterTool(%d): n must be in [1, %d]", n, MaxModules)
	}

	plants = make([]*automaton.Automaton, n)
	for m := 0; m < n; m++ {
		plants[m] = modulePlant(m)
	}

	specs = make([]*automaton.Automaton, n)
	for m := 0; m < n; m++ {
		specs[m] = bufferSpec(m, (m+1)%n)
	}

	uncontrollable = eventset.New(Alphabet)
	for m := 0; m < n; m++ {
		uncontrollable.Set(finishEvent(m))
	}

	return plants, specs, uncontrollable, nil
}

// modulePlant builds the four-state idle/load/process/unload cycle for
// processing module m.
func modulePlant(m int) *automaton.Automaton {
	return automaton.NewFromTriplets(Alphabet, 4, stateIdle, []automaton.State{stateIdle},
		[]automaton.Triplet{
			{From: stateIdle, To: stateLoading, Event: loadEvent(m)},
			{From: stateLoading, To: stateProcessing, Event: startEvent(m)},
			{From: stateProcessing, To: stateUnloading, Event: finishEvent(m)},
			{From: stateUnloading, To: stateIdle, Event: unloadEvent(m)},
		})
}

// Buffer-mutex spec states: free (no wafer waiting) or occupied.
const (
	bufferFree automaton.State = iota
	bufferOccupied
)

// bufferSpec builds the two-state mutex between upstream module's finish
// event and downstream module's load event: the buffer can hold at most one
// wafer at a time.
func bufferSpec(upstream, downstream int) *automaton.Automaton {
	return automaton.NewFromTriplets(Alphabet, 2, bufferFree, []automaton.State{bufferFree},
		[]automaton.Triplet{
			{From: bufferFree, To: bufferOccupied, Event: finishEvent(upstream)},
			{From: bufferOccupied, To: bufferFree, Event: loadEvent(downstream)},
		})
}

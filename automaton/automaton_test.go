package automaton

import (
	"reflect"
	"testing"

	"github.com/lacsed/cldes-go/eventset"
)

const (
	evA eventset.Event = 0
	evB eventset.Event = 1
	evG eventset.Event = 2
)

func statesOf(xs ...State) []State { return xs }

func TestAutomaton_AccessibleCoaccessibleOnDanglingBranch(t *testing.T) {
	a := NewFromTriplets(3, 4, 0, []State{0, 2}, []Triplet{
		{0, 0, evA},
		{0, 2, evG},
		{1, 0, evA},
		{1, 1, evB},
		{2, 1, evG},
		{2, 2, evB},
		{2, 3, evA},
	})

	if got, want := a.AccessiblePart(), statesOf(0, 1, 2, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("AccessiblePart() = %v, want %v", got, want)
	}
	if got, want := a.CoaccessiblePart(), statesOf(0, 1, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("CoaccessiblePart() = %v, want %v", got, want)
	}
	if got, want := a.TrimStates(), statesOf(0, 1, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("TrimStates() = %v, want %v", got, want)
	}
}

func TestAutomaton_TrimDropsDeadAndUnreachableStates(t *testing.T) {
	a := NewFromTriplets(3, 4, 0, []State{0, 2}, []Triplet{
		{0, 0, evA},
		{0, 2, evG},
		{1, 1, evB},
		{2, 1, evG},
		{2, 2, evB},
		{3, 1, evA},
		{3, 2, evA},
	})

	if got, want := a.AccessiblePart(), statesOf(0, 1, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("AccessiblePart() = %v, want %v", got, want)
	}
	if got, want := a.CoaccessiblePart(), statesOf(0, 2, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("CoaccessiblePart() = %v, want %v", got, want)
	}
	if got, want := a.TrimStates(), statesOf(0, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("TrimStates() = %v, want %v", got, want)
	}

	a.Trim()
	if got, want := a.StatesNumber(), 2; got != want {
		t.Fatalf("after Trim: StatesNumber() = %d, want %d", got, want)
	}
	if got, want := a.InitialState(), State(0); got != want {
		t.Errorf("after Trim: InitialState() = %d, want %d", got, want)
	}
	if !a.IsMarked(0) {
		t.Errorf("after Trim: state 0 should remain marked")
	}
	// old state 2 -> new state 1, and it was marked.
	if !a.IsMarked(1) {
		t.Errorf("after Trim: state 1 (old state 2) should remain marked")
	}
	// The surviving edge (0,2,g) becomes (0,1,g).
	if dest, ok := a.Trans(0, evG); !ok || dest != 1 {
		t.Errorf("after Trim: Trans(0, g) = (%d, %v), want (1, true)", dest, ok)
	}
}

func TestAutomaton_TrimNoOpWhenAlreadyTrim(t *testing.T) {
	a := NewFromTriplets(3, 2, 0, []State{1}, []Triplet{
		{0, 1, evA},
	})
	before := a.String()
	a.Trim()
	if got := a.String(); got != before {
		t.Errorf("Trim() on an already-trim automaton changed it: before %q, after %q", before, got)
	}
}

func TestAutomaton_InvTransWithoutAllocateIsContractViolation(t *testing.T) {
	a := NewFromTriplets(3, 2, 0, []State{1}, []Triplet{
		{0, 1, evA},
	})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("InvTrans without AllocateInvertedGraph did not panic")
		}
		ce, ok := r.(*ContractError)
		if !ok {
			t.Fatalf("panic value = %#v, want *ContractError", r)
		}
		if ce.Kind != ErrNoInvertedGraph {
			t.Errorf("ContractError.Kind = %v, want %v", ce.Kind, ErrNoInvertedGraph)
		}
	}()
	a.InvTrans(1, evA)
}

func TestAutomaton_AllocateInvertedGraphRoundTrip(t *testing.T) {
	a := NewFromTriplets(3, 3, 0, []State{2}, []Triplet{
		{0, 1, evA},
		{1, 2, evB},
	})
	a.AllocateInvertedGraph()
	defer a.ClearInvertedGraph()

	got := a.InvTrans(1, evA)
	if want := statesOf(0); !reflect.DeepEqual(got, want) {
		t.Errorf("InvTrans(1, a) = %v, want %v", got, want)
	}
	if got := a.InvTrans(2, evB); !reflect.DeepEqual(got, statesOf(1)) {
		t.Errorf("InvTrans(2, b) = %v, want [1]", got)
	}
}

func TestAutomaton_AllocateInvertedGraphIdempotent(t *testing.T) {
	a := NewFromTriplets(3, 2, 0, []State{1}, []Triplet{{0, 1, evA}})
	a.AllocateInvertedGraph()
	a.AllocateInvertedGraph() // must not panic or double every entry
	got := a.InvTrans(1, evA)
	if want := statesOf(0); !reflect.DeepEqual(got, want) {
		t.Errorf("InvTrans(1, a) after double allocate = %v, want %v", got, want)
	}
}

func TestAutomaton_ContainsTransAndTrans(t *testing.T) {
	a := NewFromTriplets(3, 2, 0, nil, []Triplet{{0, 1, evA}})
	if !a.ContainsTrans(0, evA) {
		t.Error("ContainsTrans(0, a) = false, want true")
	}
	if a.ContainsTrans(0, evB) {
		t.Error("ContainsTrans(0, b) = true, want false")
	}
	if dest, ok := a.Trans(0, evB); ok {
		t.Errorf("Trans(0, b) = (%d, true), want ok=false", dest)
	}
}

func TestAutomaton_CloneIsIndependent(t *testing.T) {
	a := NewFromTriplets(3, 2, 0, []State{1}, []Triplet{{0, 1, evA}})
	b := a.Clone()
	b.SetTransition(0, 1, evB)

	if a.ContainsTrans(0, evB) {
		t.Error("mutating the clone affected the original")
	}
	if !b.ContainsTrans(0, evB) {
		t.Error("clone did not record its own mutation")
	}
}

func TestAutomaton_StateEventBoundsPanic(t *testing.T) {
	a := New(2, 2, 0, nil)

	t.Run("state", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic on out-of-range state")
			}
		}()
		a.Label(5, 0)
	})

	t.Run("event", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic on out-of-range event")
			}
		}()
		a.ContainsTrans(0, 99)
	})
}

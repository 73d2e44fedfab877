package product

import (
	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/eventset"
)

// VirtualProduct represents the synchronous product P ∥ Q without
// materialising Γ or B. It stores references to P and Q, never owns them,
// and must not outlive either operand.
//
// A product state (x,y), x ∈ [0,S_P), y ∈ [0,S_Q), is encoded as the
// integer y·S_P + x.
type VirtualProduct struct {
	p, q *automaton.Automaton

	onlyP, onlyQ, shared *eventset.EventSet
	events               *eventset.EventSet

	sp, sq int
}

// New builds the virtual product of p and q. Panics if p and q were built
// over different alphabet widths.
func New(p, q *automaton.Automaton) *VirtualProduct {
	if p.AlphabetSize() != q.AlphabetSize() {
		fail(ErrMismatchedAlphabet, "operands have alphabet widths %d and %d", p.AlphabetSize(), q.AlphabetSize())
	}

	shared := eventset.Intersection(p.Events(), q.Events())
	onlyP := eventset.SymmetricDifference(p.Events(), shared)
	onlyQ := eventset.SymmetricDifference(q.Events(), shared)
	events := eventset.Union(p.Events(), q.Events())

	return &VirtualProduct{
		p: p, q: q,
		onlyP: onlyP, onlyQ: onlyQ, shared: shared, events: events,
		sp: p.StatesNumber(), sq: q.StatesNumber(),
	}
}

// StatesNumber returns S_P * S_Q, the size of the full (not necessarily
// reachable) product state space.
func (vp *VirtualProduct) StatesNumber() int { return vp.sp * vp.sq }

// Events returns E = E_P ∪ E_Q.
func (vp *VirtualProduct) Events() *eventset.EventSet { return vp.events }

// IsVirtual returns true: VirtualProduct is the lazy variant of the sealed
// {Concrete, Virtual} query surface.
func (vp *VirtualProduct) IsVirtual() bool { return true }

// InitialState returns q0_Q·S_P + q0_P.
func (vp *VirtualProduct) InitialState() State {
	return State(int(vp.q.InitialState())*vp.sp + int(vp.p.InitialState()))
}

// IsMarked reports whether q decodes to (x,y) with x ∈ M_P and y ∈ M_Q.
func (vp *VirtualProduct) IsMarked(q State) bool {
	x, y := vp.decode(q)
	return vp.p.IsMarked(x) && vp.q.IsMarked(y)
}

func (vp *VirtualProduct) decode(q State) (x, y State) {
	v := int(q)
	return State(v % vp.sp), State(v / vp.sp)
}

// Decode splits a product state q back into its (x,y) plant/specification
// components. Exported for callers outside this package that need to
// inspect a single coordinate, such as supervisor synthesis's locally-bad
// check against the plant alone.
func (vp *VirtualProduct) Decode(q State) (x, y State) {
	return vp.decode(q)
}

func (vp *VirtualProduct) encode(x, y State) State {
	return State(int(y)*vp.sp + int(x))
}

func (vp *VirtualProduct) checkState(q State) {
	if int(q) < 0 || int(q) >= vp.sp*vp.sq {
		fail(ErrInvalidState, "state %d out of range [0, %d)", q, vp.sp*vp.sq)
	}
}

// ContainsTrans reports whether the product state q has an outgoing
// transition on e, per the partitioned event semantics: a shared event
// needs both operands to enable it, a private event needs only its owner.
func (vp *VirtualProduct) ContainsTrans(q State, e eventset.Event) bool {
	vp.checkState(q)
	x, y := vp.decode(q)
	switch {
	case vp.shared.Test(e):
		return vp.p.ContainsTrans(x, e) && vp.q.ContainsTrans(y, e)
	case vp.onlyP.Test(e):
		return vp.p.ContainsTrans(x, e)
	case vp.onlyQ.Test(e):
		return vp.q.ContainsTrans(y, e)
	default:
		return false
	}
}

// Trans returns the successor of q under e, if the product enables e at q.
func (vp *VirtualProduct) Trans(q State, e eventset.Event) (State, bool) {
	vp.checkState(q)
	x, y := vp.decode(q)
	switch {
	case vp.shared.Test(e):
		nx, okx := vp.p.Trans(x, e)
		ny, oky := vp.q.Trans(y, e)
		if !okx || !oky {
			return automaton.NoState, false
		}
		return vp.encode(nx, ny), true
	case vp.onlyP.Test(e):
		nx, ok := vp.p.Trans(x, e)
		if !ok {
			return automaton.NoState, false
		}
		return vp.encode(nx, y), true
	case vp.onlyQ.Test(e):
		ny, ok := vp.q.Trans(y, e)
		if !ok {
			return automaton.NoState, false
		}
		return vp.encode(x, ny), true
	default:
		return automaton.NoState, false
	}
}

// ContainsInvTrans reports whether the product state q has an incoming
// transition on e.
func (vp *VirtualProduct) ContainsInvTrans(q State, e eventset.Event) bool {
	vp.checkState(q)
	x, y := vp.decode(q)
	switch {
	case vp.shared.Test(e):
		return vp.p.ContainsInvTrans(x, e) && vp.q.ContainsInvTrans(y, e)
	case vp.onlyP.Test(e):
		return vp.p.ContainsInvTrans(x, e)
	case vp.onlyQ.Test(e):
		return vp.q.ContainsInvTrans(y, e)
	default:
		return false
	}
}

// InvTrans returns every predecessor of q under e: the Cartesian product of
// P.InvTrans(x,e) (or {x} if e is not in P's alphabet) with Q.InvTrans(y,e)
// (or {y} if e is not in Q's alphabet), encoded back into the product
// index. Requires a prior AllocateInvertedGraph on the product.
func (vp *VirtualProduct) InvTrans(q State, e eventset.Event) []State {
	vp.checkState(q)
	x, y := vp.decode(q)

	var xs, ys []State
	if vp.events.Test(e) {
		switch {
		case vp.shared.Test(e):
			xs, ys = vp.p.InvTrans(x, e), vp.q.InvTrans(y, e)
		case vp.onlyP.Test(e):
			xs, ys = vp.p.InvTrans(x, e), []State{y}
		case vp.onlyQ.Test(e):
			xs, ys = []State{x}, vp.q.InvTrans(y, e)
		default:
			return nil
		}
	}

	if len(xs) == 0 || len(ys) == 0 {
		return nil
	}
	out := make([]State, 0, len(xs)*len(ys))
	for _, yy := range ys {
		for _, xx := range xs {
			out = append(out, vp.encode(xx, yy))
		}
	}
	return out
}

// AllocateInvertedGraph recursively allocates the inverse graphs of P and Q.
func (vp *VirtualProduct) AllocateInvertedGraph() {
	vp.p.AllocateInvertedGraph()
	vp.q.AllocateInvertedGraph()
}

// ClearInvertedGraph recursively clears the inverse graphs of P and Q.
func (vp *VirtualProduct) ClearInvertedGraph() {
	vp.p.ClearInvertedGraph()
	vp.q.ClearInvertedGraph()
}

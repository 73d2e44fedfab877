package automaton

import "fmt"

// ErrorKind classifies contract violations raised by Automaton.
type ErrorKind uint8

const (
	// ErrInvalidState indicates a state index outside [0, S).
	ErrInvalidState ErrorKind = iota

	// ErrInvalidEvent indicates an event index outside [0, N).
	ErrInvalidEvent

	// ErrNoInvertedGraph indicates InvTrans was called without a prior,
	// matching AllocateInvertedGraph.
	ErrNoInvertedGraph

	// ErrMismatchedAlphabet indicates two automata built over different
	// alphabet widths were combined.
	ErrMismatchedAlphabet
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidState:
		return "InvalidState"
	case ErrInvalidEvent:
		return "InvalidEvent"
	case ErrNoInvertedGraph:
		return "NoInvertedGraph"
	case ErrMismatchedAlphabet:
		return "MismatchedAlphabet"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// ContractError reports a violation of Automaton's public contract
// (out-of-range state/event, InvTrans without a prior allocation). These
// are undefined at the API contract level and are reported by panicking
// with a *ContractError rather than by a returned error, so debug builds
// fail fast instead of silently returning garbage.
type ContractError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("automaton: %s: %s", e.Kind, e.Message)
}

func fail(kind ErrorKind, format string, args ...any) {
	panic(&ContractError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

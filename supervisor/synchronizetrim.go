package supervisor

import (
	"github.com/lacsed/cldes-go/automaton"
	"github.com/lacsed/cldes-go/product"
)

// SynchronizeTrim synchronizes P and Q, then trims the result, matching the
// original test suite's habit of always trimming synchronized plants and
// specifications before composing a supervisor from them.
func SynchronizeTrim(p, q *automaton.Automaton) (*automaton.Automaton, error) {
	result, err := product.Synchronize(p, q, product.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return result.Trim(), nil
}

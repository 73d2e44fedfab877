package product

// Config tunes VirtualProduct discovery. These knobs exist to turn runaway
// product exploration into a reported error instead of unbounded growth,
// mirroring dfa/lazy.Config's MaxStates cache bound.
type Config struct {
	// MaxVirtualStates bounds how many product states Synchronize will
	// discover before giving up. Zero means unbounded.
	MaxVirtualStates int
}

// DefaultConfig returns a Config with no bound on discovery.
func DefaultConfig() Config {
	return Config{MaxVirtualStates: 0}
}

// WithMaxVirtualStates returns a copy of c with MaxVirtualStates set.
func (c Config) WithMaxVirtualStates(n int) Config {
	c.MaxVirtualStates = n
	return c
}

// Validate reports whether c's fields are in range.
func (c Config) Validate() error {
	if c.MaxVirtualStates < 0 {
		return &ContractError{Kind: ErrInvalidState, Message: "MaxVirtualStates must be >= 0"}
	}
	return nil
}

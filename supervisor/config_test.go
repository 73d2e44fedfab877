package supervisor

import "testing"

// TestDefaultConfigValues verifies DefaultConfig enables Phase 2 with no
// discovery bound.
func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()

	if c.MaxVirtualStates != 0 {
		t.Errorf("MaxVirtualStates = %d, want 0", c.MaxVirtualStates)
	}
	if !c.TrimUnreachableToMarked {
		t.Error("TrimUnreachableToMarked should be true by default")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

// TestWithTrimUnreachableToMarked verifies the fluent setter returns an
// independent copy rather than mutating the receiver.
func TestWithTrimUnreachableToMarked(t *testing.T) {
	base := DefaultConfig()
	tuned := base.WithTrimUnreachableToMarked(false)

	if !base.TrimUnreachableToMarked {
		t.Error("base.TrimUnreachableToMarked should remain true (unmodified)")
	}
	if tuned.TrimUnreachableToMarked {
		t.Error("tuned.TrimUnreachableToMarked should be false")
	}
}

// TestValidateRejectsNegativeMaxVirtualStates verifies Validate catches an
// out-of-range bound.
func TestValidateRejectsNegativeMaxVirtualStates(t *testing.T) {
	c := Config{MaxVirtualStates: -1}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for negative MaxVirtualStates")
	}
}

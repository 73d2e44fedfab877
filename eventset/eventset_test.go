package eventset

import "testing"

func TestEventSet_SetTestClear(t *testing.T) {
	s := New(8)

	if s.Any() {
		t.Error("Any() = true on fresh set, want false")
	}
	if !s.None() {
		t.Error("None() = false on fresh set, want true")
	}

	s.Set(3)
	if !s.Test(3) {
		t.Error("Test(3) = false after Set(3), want true")
	}
	if s.Test(4) {
		t.Error("Test(4) = true, want false")
	}
	if !s.Any() {
		t.Error("Any() = false after Set, want true")
	}

	s.Clear(3)
	if s.Test(3) {
		t.Error("Test(3) = true after Clear(3), want false")
	}
}

func TestEventSet_OutOfRangePanics(t *testing.T) {
	s := New(4)
	defer func() {
		if recover() == nil {
			t.Error("Test(4) on a 4-event set did not panic")
		}
	}()
	s.Test(4)
}

func TestEventSet_UnionIntersectionXor(t *testing.T) {
	a := New(8)
	a.Set(0)
	a.Set(1)
	a.Set(2)

	b := New(8)
	b.Set(1)
	b.Set(2)
	b.Set(3)

	union := Union(a, b)
	for _, e := range []Event{0, 1, 2, 3} {
		if !union.Test(e) {
			t.Errorf("Union missing event %d", e)
		}
	}
	if union.PopCount() != 4 {
		t.Errorf("Union.PopCount() = %d, want 4", union.PopCount())
	}

	inter := Intersection(a, b)
	for _, e := range []Event{1, 2} {
		if !inter.Test(e) {
			t.Errorf("Intersection missing event %d", e)
		}
	}
	if inter.PopCount() != 2 {
		t.Errorf("Intersection.PopCount() = %d, want 2", inter.PopCount())
	}

	xor := SymmetricDifference(a, b)
	for _, e := range []Event{0, 3} {
		if !xor.Test(e) {
			t.Errorf("SymmetricDifference missing event %d", e)
		}
	}
	if xor.Test(1) || xor.Test(2) {
		t.Error("SymmetricDifference kept a shared event")
	}
}

func TestEventSet_Complement(t *testing.T) {
	tests := []struct {
		n  int
		in []Event
	}{
		{n: 3, in: []Event{1}},
		{n: 70, in: []Event{0, 63, 64, 69}},
		{n: 255, in: []Event{254}},
	}

	for _, tt := range tests {
		s := New(tt.n)
		for _, e := range tt.in {
			s.Set(e)
		}
		comp := s.Complement()
		for e := 0; e < tt.n; e++ {
			want := !s.Test(Event(e))
			if comp.Test(Event(e)) != want {
				t.Errorf("n=%d Complement.Test(%d) = %v, want %v", tt.n, e, comp.Test(Event(e)), want)
			}
		}
	}
}

func TestEventSet_ShiftRight1Iteration(t *testing.T) {
	s := New(10)
	s.Set(0)
	s.Set(3)
	s.Set(9)

	var seen []Event
	cur := s.Clone()
	for e := Event(0); int(e) < 10; e++ {
		if cur.Test(0) {
			seen = append(seen, e)
		}
		cur.ShiftRight1()
	}

	want := []Event{0, 3, 9}
	if len(seen) != len(want) {
		t.Fatalf("iteration saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("iteration saw %v, want %v", seen, want)
			break
		}
	}
}

func TestEventSet_Iterate(t *testing.T) {
	s := New(16)
	s.Set(2)
	s.Set(5)
	s.Set(15)

	var got []Event
	s.Iterate(func(e Event) { got = append(got, e) })

	want := []Event{2, 5, 15}
	if len(got) != len(want) {
		t.Fatalf("Iterate() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Iterate() = %v, want %v", got, want)
		}
	}
}

func TestEventSet_CloneIndependence(t *testing.T) {
	a := New(8)
	a.Set(1)
	b := a.Clone()
	b.Set(2)

	if a.Test(2) {
		t.Error("mutating the clone mutated the original")
	}
	if !Equal(a, a.Clone()) {
		t.Error("Equal() = false comparing a set to its own clone")
	}
	if Equal(a, b) {
		t.Error("Equal() = true for sets with different members")
	}
}

func TestEventSet_String(t *testing.T) {
	s := New(8)
	s.Set(1)
	s.Set(4)

	got := s.String()
	want := "{1, 4}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

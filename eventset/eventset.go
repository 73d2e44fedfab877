// Package eventset provides a fixed-width bit vector over a Discrete Event
// System's event alphabet.
//
// An EventSet generalizes a regex engine's [4]uint64 byte-class bitset
// (nfa.ByteClassSet, fixed at a 256-byte alphabet) to an alphabet size
// chosen at construction time: N events, N <= MaxEvents.
package eventset

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lacsed/cldes-go/internal/conv"
)

// MaxEvents is the largest alphabet width this package supports. Event
// indices are anonymous tags external to this package; the only contract
// is that they fall in [0, N).
const MaxEvents = 255

// Event is an index into the event alphabet, in [0, N).
type Event int

// wordBits is the width of a single backing word.
const wordBits = 64

// EventSet is a fixed-width bit vector of length N. Bits at index >= N are
// always zero; every mutating method maintains this invariant by masking
// the final word.
type EventSet struct {
	words []uint64
	n     int
}

// New creates an EventSet over N events, all bits clear. Panics if n is out
// of [0, MaxEvents].
func New(n int) *EventSet {
	// conv.IntToUint16 rejects negative n before the domain-specific
	// MaxEvents ceiling is checked; MaxEvents itself fits well within a
	// uint16, so the narrowing never legitimately fails on its own.
	width := conv.IntToUint16(n)
	if int(width) > MaxEvents {
		panic(fmt.Sprintf("eventset: alphabet size %d out of range [0, %d]", n, MaxEvents))
	}
	return &EventSet{
		words: make([]uint64, numWords(n)),
		n:     n,
	}
}

func numWords(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len returns the alphabet width N this set was constructed with.
func (s *EventSet) Len() int {
	return s.n
}

func (s *EventSet) checkEvent(e Event) {
	if int(e) < 0 || int(e) >= s.n {
		panic(fmt.Sprintf("eventset: event %d out of range [0, %d)", e, s.n))
	}
}

// Test reports whether e is a member of the set.
func (s *EventSet) Test(e Event) bool {
	s.checkEvent(e)
	return s.words[e/wordBits]&(uint64(1)<<(uint(e)%wordBits)) != 0
}

// Set adds e to the set. Idempotent.
func (s *EventSet) Set(e Event) {
	s.checkEvent(e)
	s.words[e/wordBits] |= uint64(1) << (uint(e) % wordBits)
}

// Clear removes e from the set. Idempotent.
func (s *EventSet) Clear(e Event) {
	s.checkEvent(e)
	s.words[e/wordBits] &^= uint64(1) << (uint(e) % wordBits)
}

// tailMask returns the bitmask to apply to the final word so that bits >= n
// never become set by a word-wise operation.
func (s *EventSet) tailMask() uint64 {
	if s.n%wordBits == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(s.n%wordBits)) - 1
}

func (s *EventSet) maskTail() {
	if len(s.words) == 0 {
		return
	}
	s.words[len(s.words)-1] &= s.tailMask()
}

// sameWidth panics if a and b were not constructed with the same N; all
// binary operations require matching alphabets, as with a fixed [4]uint64
// byte-class table, always sized for the same alphabet.
func sameWidth(a, b *EventSet) {
	if a.n != b.n {
		panic(fmt.Sprintf("eventset: mismatched alphabet widths %d and %d", a.n, b.n))
	}
}

// Union returns a new EventSet containing the members of both a and b.
func Union(a, b *EventSet) *EventSet {
	sameWidth(a, b)
	out := New(a.n)
	for i := range out.words {
		out.words[i] = a.words[i] | b.words[i]
	}
	return out
}

// UnionWith mutates s to also contain every member of other.
func (s *EventSet) UnionWith(other *EventSet) {
	sameWidth(s, other)
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
}

// Intersection returns a new EventSet containing members present in both.
func Intersection(a, b *EventSet) *EventSet {
	sameWidth(a, b)
	out := New(a.n)
	for i := range out.words {
		out.words[i] = a.words[i] & b.words[i]
	}
	return out
}

// IntersectWith mutates s to keep only members also present in other.
func (s *EventSet) IntersectWith(other *EventSet) {
	sameWidth(s, other)
	for i := range s.words {
		s.words[i] &= other.words[i]
	}
}

// SymmetricDifference returns a new EventSet containing members present in
// exactly one of a, b.
func SymmetricDifference(a, b *EventSet) *EventSet {
	sameWidth(a, b)
	out := New(a.n)
	for i := range out.words {
		out.words[i] = a.words[i] ^ b.words[i]
	}
	return out
}

// XorWith mutates s to its symmetric difference with other.
func (s *EventSet) XorWith(other *EventSet) {
	sameWidth(s, other)
	for i := range s.words {
		s.words[i] ^= other.words[i]
	}
}

// Complement returns a new EventSet containing every event in [0,N) not in s.
func (s *EventSet) Complement() *EventSet {
	out := New(s.n)
	for i := range out.words {
		out.words[i] = ^s.words[i]
	}
	out.maskTail()
	return out
}

// PopCount returns the number of set bits.
func (s *EventSet) PopCount() int {
	count := 0
	for _, w := range s.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// Any reports whether any bit is set.
func (s *EventSet) Any() bool {
	for _, w := range s.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (s *EventSet) None() bool {
	return !s.Any()
}

// ShiftRight1 shifts every bit one position toward bit 0, discarding bit 0.
// Combined with Test(0), this is the alphabet-iteration idiom used by the
// original monolithic supervisor synthesis (SuperProxyCore.hpp): test the
// low bit, shift, advance the event index, repeat until the set is empty.
func (s *EventSet) ShiftRight1() {
	var carry uint64
	for i := len(s.words) - 1; i >= 0; i-- {
		next := s.words[i] & 1
		s.words[i] = (s.words[i] >> 1) | (carry << (wordBits - 1))
		carry = next
	}
}

// Iterate calls f once for every event present in the set, in ascending
// order. It visits the same events as the Test/ShiftRight1 idiom, but tests
// each index directly and leaves s unchanged.
func (s *EventSet) Iterate(f func(Event)) {
	for e := 0; e < s.n; e++ {
		if s.Test(Event(e)) {
			f(Event(e))
		}
	}
}

// Clone returns an independent copy of s.
func (s *EventSet) Clone() *EventSet {
	out := New(s.n)
	copy(out.words, s.words)
	return out
}

// Equal reports whether a and b have the same alphabet width and members.
func Equal(a, b *EventSet) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable listing of set members, e.g. "{0, 2, 5}".
func (s *EventSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Iterate(func(e Event) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%d", e)
	})
	b.WriteByte('}')
	return b.String()
}

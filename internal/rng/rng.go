// Package rng provides the deterministic random stream every generation
// stage draws from. The mixing recurrence is part of the generator's
// contract: two implementations seeded identically must produce the same
// infinite sequence, so the constants below are fixed and documented
// rather than delegated to math/rand.
package rng

import "math"

// Stream is a mulberry-style 32-bit random stream. The zero value is not
// usable; construct with New or NewString.
type Stream struct {
	state uint32
}

// New creates a stream from a numeric seed. A zero seed is bumped to 1 so
// the state never starts degenerate.
func New(seed uint32) *Stream {
	if seed == 0 {
		seed = 1
	}
	return &Stream{state: seed}
}

// NewString creates a stream from an arbitrary string seed using a
// rolling multiply-hash (h = h*31 + byte), forced non-zero.
func NewString(seed string) *Stream {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	return New(h)
}

// Float returns the next value in [0, 1).
//
// The recurrence: state advances by the odd increment 0x6D2B79F5; the
// output is derived by two xorshift/multiply rounds. This is the
// mulberry32 mixer, kept verbatim so sequences are portable.
func (s *Stream) Float() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// Range returns a uniform value in [min, max).
func (s *Stream) Range(min, max float64) float64 {
	return min + s.Float()*(max-min)
}

// IntRange returns a uniform integer in [min, max], inclusive on both
// ends. min > max panics; equal bounds return that bound without a draw
// being wasted on a zero-width interval.
func (s *Stream) IntRange(min, max int) int {
	if min > max {
		panic("rng: inverted IntRange bounds")
	}
	if min == max {
		s.Float()
		return min
	}
	return min + int(s.Float()*float64(max-min+1))
}

// Bool returns true with probability p.
func (s *Stream) Bool(p float64) bool {
	return s.Float() < p
}

// Pick returns a uniform index in [0, n). n <= 0 panics.
func (s *Stream) Pick(n int) int {
	if n <= 0 {
		panic("rng: Pick from empty range")
	}
	return int(s.Float() * float64(n))
}

// Shuffle permutes the first n elements via swap using Fisher–Yates.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		swap(i, j)
	}
}

// Gaussian returns a normal deviate with the given mean and standard
// deviation, via Box–Muller using two draws.
func (s *Stream) Gaussian(mean, stddev float64) float64 {
	u1 := s.Float()
	u2 := s.Float()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stddev
}

// Fork consumes one draw and uses it to seed a brand-new independent
// stream. Stages each receive their own fork so reparameterizing one
// stage never perturbs another's sequence.
func (s *Stream) Fork() *Stream {
	seed := uint32(s.Float() * 4294967296.0)
	return New(seed)
}

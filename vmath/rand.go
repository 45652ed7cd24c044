package vmath

// FastRand is a seeded xorshift64 generator. All simulation randomness flows
// through one FastRand owned by the session so runs replay identically from
// the same seed.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Fixed returns a uniform Q32.32 value in [0, Scale)
func (r *FastRand) Fixed() int64 {
	return int64(r.Next() & (Scale - 1))
}

// FixedRange returns a uniform Q32.32 value in [lo, hi)
func (r *FastRand) FixedRange(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + Mul(r.Fixed(), hi-lo)
}

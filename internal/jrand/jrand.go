// internal/jrand/jrand.go
package jrand

// The host drives every enchanting roll from a 48-bit linear congruential
// generator with these constants. Results must match it bit for bit.
const (
	Multiplier = 0x5DEECE66D
	Addend     = 0xB
	Mask       = (1 << 48) - 1
)

// Random is the host's LCG. The zero value is seeded with scramble(0).
type Random struct {
	seed uint64
}

// New returns a generator seeded exactly like the host's constructor.
func New(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// Scramble maps a caller seed to the internal 48-bit state.
func Scramble(seed int64) uint64 { return (uint64(seed) ^ Multiplier) & Mask }

// Step advances a raw 48-bit state by one LCG step.
func Step(s uint64) uint64 { return (s*Multiplier + Addend) & Mask }

// SetSeed resets the state. Negative seeds are sign-extended before masking,
// which is what makes int32 seeds differ from their uint32 reinterpretation.
func (r *Random) SetSeed(seed int64) { r.seed = Scramble(seed) }

// Next returns the next `bits` high bits of the state, truncated to 32 bits.
func (r *Random) Next(bits uint) int32 {
	r.seed = Step(r.seed)
	return int32(r.seed >> (48 - bits))
}

// NextInt returns a value in [0, bound). bound must be positive.
func (r *Random) NextInt(bound int32) int32 {
	if bound <= 0 {
		panic("jrand: bound must be positive")
	}
	v := r.Next(31)
	m := bound - 1
	if bound&m == 0 {
		return int32((int64(bound) * int64(v)) >> 31)
	}
	// Reject the tail that would bias the modulo. The sum overflows
	// int32 on purpose.
	for u := v; ; u = r.Next(31) {
		v = u % bound
		if u-v+m >= 0 {
			return v
		}
	}
}

// NextFloat returns a float32 in [0, 1) with 24 random bits.
func (r *Random) NextFloat() float32 {
	return float32(r.Next(24)) / (1 << 24)
}

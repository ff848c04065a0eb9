// internal/model/levels.go
package model

import "enchrev/internal/jrand"

// MaxPower is the highest bookshelf count the level generator honours.
const MaxPower = 15

func clampPower(power int32) int32 {
	if power < 0 {
		return 0
	}
	if power > MaxPower {
		return MaxPower
	}
	return power
}

// Level is the host's level generator for one slot. It consumes two draws
// unless the item is unenchantable.
func Level(r *jrand.Random, slot int, power, enchantability int32) int32 {
	if enchantability <= 0 {
		return 0
	}
	power = clampPower(power)
	a := r.NextInt(8)
	b := r.NextInt(power + 1)
	j := a + 1 + (power >> 1) + b
	switch slot {
	case 0:
		return max(j/3, 1)
	case 1:
		return j*2/3 + 1
	default:
		return max(j, power*2)
	}
}

// SeedOf sign-extends a candidate seed the way the host widens its int seed.
func SeedOf(seed uint32) int64 { return int64(int32(seed)) }

// Levels computes all three slot levels for seed with the zero-floor rule
// applied: a level below slot+1 shows as an empty slot.
func Levels(r *jrand.Random, seed uint32, power, enchantability int32) [3]int32 {
	r.SetSeed(SeedOf(seed))
	var out [3]int32
	for i := 0; i < 3; i++ {
		l := Level(r, i, power, enchantability)
		if l < int32(i+1) {
			l = 0
		}
		out[i] = l
	}
	return out
}

// TestLevelsExact reports whether seed reproduces want exactly.
func TestLevelsExact(r *jrand.Random, seed uint32, power int32, want [3]int32, enchantability int32) bool {
	r.SetSeed(SeedOf(seed))
	for i := 0; i < 3; i++ {
		l := Level(r, i, power, enchantability)
		if l < int32(i+1) {
			l = 0
		}
		if l != want[i] {
			return false
		}
	}
	return true
}

// TestLevelsFast is TestLevelsExact for any enchantable item, without the
// generator object and with an early exit per slot. Enchantability only
// gates the formula, so the two agree whenever it is positive.
func TestLevelsFast(seed uint32, power int32, want [3]int32) bool {
	p := clampPower(power)
	half := p >> 1
	s := jrand.Scramble(SeedOf(seed))

	// slot 0: max(j/3, 1), never below its floor of 1
	var a, b int32
	s, a = draw8(s)
	s, b = drawBounded(s, p+1)
	j := a + 1 + half + b
	if max(j/3, 1) != want[0] {
		return false
	}

	// slot 1: j*2/3 + 1, floor 2
	s, a = draw8(s)
	s, b = drawBounded(s, p+1)
	j = a + 1 + half + b
	l := j*2/3 + 1
	if l < 2 {
		l = 0
	}
	if l != want[1] {
		return false
	}

	// slot 2: max(j, 2p), floor 3
	s, a = draw8(s)
	_, b = drawBounded(s, p+1)
	j = a + 1 + half + b
	l = max(j, 2*p)
	if l < 3 {
		l = 0
	}
	return l == want[2]
}

// draw8 is nextInt(8): the top three bits of the next 31-bit draw.
func draw8(s uint64) (uint64, int32) {
	s = jrand.Step(s)
	return s, int32(s >> 45)
}

// drawBounded is nextInt(bound) on a raw state, bound in 1..16.
func drawBounded(s uint64, bound int32) (uint64, int32) {
	s = jrand.Step(s)
	u := int32(s >> 17)
	m := bound - 1
	if bound&m == 0 {
		return s, int32((int64(bound) * int64(u)) >> 31)
	}
	for {
		v := u % bound
		if u-v+m >= 0 {
			return s, v
		}
		s = jrand.Step(s)
		u = int32(s >> 17)
	}
}

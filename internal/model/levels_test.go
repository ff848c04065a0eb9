package model

import (
	"testing"

	"enchrev/internal/jrand"
)

func TestLevelUnenchantableConsumesNothing(t *testing.T) {
	r := jrand.New(5)
	if got := Level(r, 2, 6, 0); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
	if r.Next(32) != jrand.New(5).Next(32) {
		t.Fatalf("unenchantable level must not draw")
	}
}

func TestLevelsZeroFloor(t *testing.T) {
	r := &jrand.Random{}
	for seed := uint32(0); seed < 5000; seed++ {
		l := Levels(r, seed, 0, 1)
		if l[0] < 1 {
			t.Fatalf("seed %d: slot 0 can never be empty, got %v", seed, l)
		}
		if l[1] == 1 || l[2] == 1 || l[2] == 2 {
			t.Fatalf("seed %d: floor not applied: %v", seed, l)
		}
	}
}

func TestLevelsFastMatchesExact(t *testing.T) {
	want := [3]int32{4, 11, 14}
	n := uint32(10_000_000)
	if testing.Short() {
		n = 200_000
	}
	r := &jrand.Random{}
	accepted := 0
	for seed := uint32(0); seed < n; seed++ {
		exact := TestLevelsExact(r, seed, 6, want, 10)
		if fast := TestLevelsFast(seed, 6, want); fast != exact {
			t.Fatalf("seed 0x%08x: fast=%v exact=%v", seed, fast, exact)
		}
		if exact {
			accepted++
		}
	}
	if !testing.Short() && accepted < 10_000 {
		t.Fatalf("only %d acceptances, comparison is too weak", accepted)
	}
}

func TestLevelsFastAcrossPowers(t *testing.T) {
	r := &jrand.Random{}
	for _, power := range []int32{-3, 0, 1, 3, 7, 8, 15, 20} {
		for i := uint32(0); i < 20_000; i++ {
			seed := i*2654435761 + uint32(power)
			got := Levels(r, seed, power, 9)
			if !TestLevelsFast(seed, power, got) {
				t.Fatalf("power %d seed 0x%08x: fast rejects its own levels %v", power, seed, got)
			}
			off := got
			off[2]++
			if TestLevelsFast(seed, power, off) {
				t.Fatalf("power %d seed 0x%08x: fast accepts %v", power, seed, off)
			}
		}
	}
}

func TestSeedOfSignExtends(t *testing.T) {
	if SeedOf(0xFFFFFFFF) != -1 {
		t.Fatalf("SeedOf should sign-extend")
	}
	if SeedOf(0x7FFFFFFF) != 0x7FFFFFFF {
		t.Fatalf("positive seeds are unchanged")
	}
}

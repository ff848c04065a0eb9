package state

import (
	"sync"
	"testing"

	"enchrev/internal/observation"
)

func TestRestingStatus(t *testing.T) {
	cases := []struct {
		seeds []uint32
		want  string
	}{
		{nil, DefaultStatus},
		{[]uint32{0x12347}, "Seed: 0x00012347"},
		{[]uint32{1, 2, 3}, "3 possible seeds"},
	}
	for _, c := range cases {
		if got := RestingStatus(c.seeds); got != c.want {
			t.Errorf("RestingStatus(%v) = %q, want %q", c.seeds, got, c.want)
		}
	}
}

func TestIsError(t *testing.T) {
	if Default.IsError() {
		t.Fatalf("default is not an error")
	}
	if !(&State{Status: ErrorStatus}).IsError() {
		t.Fatalf("error status not detected")
	}
}

func TestWithObservationKeepsStatus(t *testing.T) {
	s := &State{Status: "5 possible seeds", Names: [3][]string{{"x"}}, Counts: [3][]int{{5}}, Candidates: 5}
	o := observation.New()
	n := s.WithObservation(o)
	if n.Status != s.Status || n.Observation != o || len(n.Names[0]) != 0 {
		t.Fatalf("got %+v", n)
	}
	if len(s.Names[0]) != 1 {
		t.Fatalf("original snapshot was modified")
	}
}

func TestPublisherConcurrentReaders(t *testing.T) {
	p := NewPublisher()
	if p.Load() != Default {
		t.Fatalf("publisher must start at Default")
	}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if p.Load() == nil {
					t.Error("nil state observed")
					return
				}
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		p.Store(&State{Status: RestingStatus(make([]uint32, j%3)), Progress: -1})
	}
	wg.Wait()
}

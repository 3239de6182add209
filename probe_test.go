package htable

import "testing"

func collectProbe(home uint64, key string, capacity uint64, s ProbeStrategy) []uint64 {
	seq := makeProbeSeq(home, key, capacity, s)
	var out []uint64
	for {
		idx, ok := seq.next()
		if !ok {
			return out
		}
		out = append(out, idx)
	}
}

func TestProbeSeq_Formula(t *testing.T) {
	const key = "kedgeree"
	for _, capacity := range []uint64{2, 3, 11, 23, 97, 1009} {
		for _, home := range []uint64{0, 1, capacity / 2, capacity - 1} {
			step := stepHash(key)
			for _, s := range []ProbeStrategy{Linear, Quadratic, DoubleHash} {
				got := collectProbe(home, key, capacity, s)
				if uint64(len(got)) != capacity {
					t.Fatalf("%s cap=%d len=%d want=%d", s, capacity, len(got), capacity)
				}
				for i, idx := range got {
					u := uint64(i)
					var want uint64
					switch s {
					case Linear:
						want = (home + u) % capacity
					case Quadratic:
						want = (home + u*u) % capacity
					case DoubleHash:
						want = (home + u*step) % capacity
					}
					if idx != want {
						t.Fatalf("%s cap=%d home=%d i=%d got=%d want=%d",
							s, capacity, home, i, idx, want)
					}
				}
			}
		}
	}
}

func TestProbeSeq_CoversTable(t *testing.T) {
	// Any step in [1, 8] is coprime to a prime above 8, so linear and
	// double hashing must visit every slot exactly once.
	for _, capacity := range []uint64{11, 23, 97, 1009} {
		for _, key := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
			for _, s := range []ProbeStrategy{Linear, DoubleHash} {
				seen := make([]bool, capacity)
				for _, idx := range collectProbe(polyHash(key, capacity), key, capacity, s) {
					if seen[idx] {
						t.Fatalf("%s cap=%d key=%q revisits %d", s, capacity, key, idx)
					}
					seen[idx] = true
				}
			}
		}
	}
}

func TestProbeSeq_QuadraticHalf(t *testing.T) {
	// i² mod p takes exactly (p+1)/2 distinct values for an odd prime p.
	for _, capacity := range []uint64{11, 23, 97} {
		seen := make(map[uint64]bool)
		for _, idx := range collectProbe(0, "x", capacity, Quadratic) {
			seen[idx] = true
		}
		if want := int(capacity+1) / 2; len(seen) != want {
			t.Fatalf("cap=%d distinct=%d want=%d", capacity, len(seen), want)
		}
	}
}

func TestProbeStrategy_String(t *testing.T) {
	cases := []struct {
		s    ProbeStrategy
		want string
	}{
		{Linear, "linear"},
		{Quadratic, "quadratic"},
		{DoubleHash, "double_hash"},
		{ProbeStrategy(9), "ProbeStrategy(9)"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Fatalf("got=%q want=%q", got, c.want)
		}
	}
}

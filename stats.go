package htable

import (
	"fmt"
	"strings"
)

// Stats is a snapshot of table statistics.
//
// Notes:
//   - Stats are intended for diagnostics. Computing them walks the probe
//     sequence of every stored key, so avoid calling Stats on hot paths.
type Stats struct {
	// Strategy is the probe strategy of the table.
	Strategy ProbeStrategy
	// Capacity is the number of slots, always a prime.
	Capacity int
	// Size is the number of stored keys.
	Size int
	// LoadFactor is Size/Capacity.
	LoadFactor float64
	// Growths is the number of resizes since construction.
	Growths uint32
	// MaxProbe is the longest probe walk, in slots visited, needed to reach
	// any stored key. A key in its home slot has a walk of 1.
	MaxProbe int
	// TotalProbe is the sum of probe walk lengths over all stored keys.
	TotalProbe int
}

// MeanProbe returns the average probe walk length, or 0 for an empty table.
func (s *Stats) MeanProbe() float64 {
	if s.Size == 0 {
		return 0
	}
	return float64(s.TotalProbe) / float64(s.Size)
}

// String returns string representation of table stats.
func (s *Stats) String() string {
	var sb strings.Builder
	sb.WriteString("Stats{\n")
	sb.WriteString(fmt.Sprintf("Strategy:   %s\n", s.Strategy))
	sb.WriteString(fmt.Sprintf("Capacity:   %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("Size:       %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("LoadFactor: %.4f\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("Growths:    %d\n", s.Growths))
	sb.WriteString(fmt.Sprintf("MaxProbe:   %d\n", s.MaxProbe))
	sb.WriteString(fmt.Sprintf("MeanProbe:  %.4f\n", s.MeanProbe()))
	sb.WriteString("}\n")
	return sb.String()
}

// Stats returns statistics for the table.
func (t *Table[V]) Stats() Stats {
	st := Stats{
		Strategy:   t.strategy,
		Capacity:   t.Capacity(),
		Size:       t.store.count,
		LoadFactor: t.LoadFactor(),
		Growths:    t.growths,
	}
	capacity := uint64(len(t.store.slots))
	for i := range t.store.slots {
		key := t.store.slots[i].key
		if key == "" {
			continue
		}
		n := 0
		seq := makeProbeSeq(t.home(key, capacity), key, capacity, t.strategy)
		for {
			idx, ok := seq.next()
			if !ok {
				break
			}
			n++
			if idx == uint64(i) {
				break
			}
		}
		st.TotalProbe += n
		st.MaxProbe = max(st.MaxProbe, n)
	}
	return st
}

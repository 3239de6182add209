package htable

import "strconv"

// ProbeStrategy selects how a collision is resolved.
type ProbeStrategy uint8

const (
	// Linear probes h, h+1, h+2, ...
	Linear ProbeStrategy = iota
	// Quadratic probes h, h+1, h+4, h+9, ...
	Quadratic
	// DoubleHash probes h, h+s, h+2s, ... where s is a second, independent
	// hash of the key in [1, 8].
	DoubleHash
)

// String returns the strategy name.
func (s ProbeStrategy) String() string {
	switch s {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case DoubleHash:
		return "double_hash"
	default:
		return "ProbeStrategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// probeSeq walks the slot indices (h + f(i)) mod capacity for
// i = 0, 1, ..., capacity-1. Each index is derived from the previous one so
// no intermediate value exceeds 2*capacity.
type probeSeq struct {
	pos      uint64
	step     uint64 // fixed step for Linear/DoubleHash, last odd delta for Quadratic
	i        uint64
	capacity uint64
	strategy ProbeStrategy
}

func makeProbeSeq(
	home uint64,
	key string,
	capacity uint64,
	strategy ProbeStrategy,
) probeSeq {
	p := probeSeq{
		pos:      home,
		capacity: capacity,
		strategy: strategy,
	}
	switch strategy {
	case DoubleHash:
		p.step = stepHash(key) % capacity
	case Quadratic:
		p.step = 0
	default:
		p.step = 1 % capacity
	}
	return p
}

// next returns the current index and advances. ok is false once capacity
// indices have been produced.
//
//go:nosplit
func (p *probeSeq) next() (idx uint64, ok bool) {
	if p.i >= p.capacity {
		return 0, false
	}
	idx = p.pos
	p.i++
	if p.strategy == Quadratic {
		// i² - (i-1)² = 2i-1
		if p.i == 1 {
			p.step = 1 % p.capacity
		} else {
			p.step = (p.step + 2) % p.capacity
		}
	}
	p.pos = (p.pos + p.step) % p.capacity
	return idx, true
}

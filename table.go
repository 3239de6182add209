package htable

import (
	"github.com/pkg/errors"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

const (
	// MaxLoad is the highest load factor a table reaches after an insert.
	MaxLoad = float64(maxLoadNum) / maxLoadDen

	// 0.6 as an exact fraction, compared in integers.
	maxLoadNum = 3
	maxLoadDen = 5

	// growthFactor multiplies the capacity on every resize before rounding
	// up to the next prime.
	growthFactor = 4
)

const (
	intSize = 32 << (^uint(0) >> 63) // 32 or 64
	maxInt  = 1<<(intSize-1) - 1     // MaxInt32 or MaxInt64 depending on intSize.

	// maxCapacity keeps h*polyBase+255 inside uint64 and leaves room for
	// nextPrime to search upwards without overflowing int.
	maxCapacity = maxInt >> 4
)

// Table is an open-addressing hashtable with string keys.
//
// Core properties:
//   - All entries live in one flat slice whose length is always prime.
//   - Collisions are resolved by linear, quadratic or double-hash probing,
//     chosen once at construction.
//   - The table grows by a factor of four (rounded up to a prime) before an
//     insert would push the load factor above MaxLoad. It never shrinks.
//   - There is no deletion, so an empty slot always ends a probe walk.
//
// Notes:
//   - Table is not safe for concurrent use; see SyncTable.
//   - The zero value is an empty table using linear probing.
type Table[V any] struct {
	store    store[V]
	strategy ProbeStrategy
	keyHash  HashFunc
	logger   *zap.Logger
	growths  uint32
}

// store is the backing array together with its occupancy. Resize builds a
// new store and replaces the old one in a single assignment.
type store[V any] struct {
	slots []slot[V]
	count int
}

// slot is free while key is empty. Insert rejects the empty key, so it can
// never be stored.
type slot[V any] struct {
	key   string
	value V
}

// New creates a table with room for at least initialCapacity slots,
// rounded up to the next prime, that resolves collisions with strategy.
//
// Parameters:
//   - initialCapacity: requested slot count; values below 2 become 2.
//   - strategy: Linear, Quadratic or DoubleHash.
//   - options: WithKeyHasher, WithLogger.
func New[V any](
	initialCapacity int,
	strategy ProbeStrategy,
	options ...func(*TableConfig),
) *Table[V] {
	c := newTableConfig(options)
	t := &Table[V]{
		strategy: strategy,
		keyHash:  c.keyHash,
		logger:   c.logger,
	}
	t.store = store[V]{
		slots: make([]slot[V], nextPrime(min(initialCapacity, maxCapacity))),
	}
	return t
}

// NewDefault creates a table that uses linear probing.
func NewDefault[V any](
	initialCapacity int,
	options ...func(*TableConfig),
) *Table[V] {
	return New[V](initialCapacity, Linear, options...)
}

func (t *Table[V]) lazyInit() {
	if t.store.slots == nil {
		t.store.slots = make([]slot[V], minCapacity)
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
}

// Insert stores value under key. An existing key has its value replaced
// in place and the size is unchanged.
//
// Returns ErrInvalidKey for the empty key and ErrCapacityOverflow if the
// table cannot grow any further; in both cases the table is unchanged.
func (t *Table[V]) Insert(key string, value V) error {
	if key == "" {
		return ErrInvalidKey
	}
	t.lazyInit()
	if overLoaded(t.store.count+1, len(t.store.slots)) {
		if err := t.grow(); err != nil {
			return err
		}
	}
	for !t.put(&t.store, key, value) {
		// Quadratic probing reaches only about half of the slots, and a
		// double-hash step that is a multiple of a tiny capacity reaches
		// one, so a walk can end with free slots left.
		t.logger.Debug("htable: probe sequence exhausted",
			zap.Stringer("strategy", t.strategy),
			zap.Int("capacity", len(t.store.slots)),
			zap.Int("size", t.store.count),
		)
		if err := t.grow(); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the value stored under key and whether it was present.
func (t *Table[V]) Lookup(key string) (value V, ok bool) {
	idx, hit, _ := t.probe(&t.store, key)
	if !hit {
		return value, false
	}
	return t.store.slots[idx].value, true
}

// Find is Lookup expressed as an optional value.
func (t *Table[V]) Find(key string) mo.Option[V] {
	if v, ok := t.Lookup(key); ok {
		return mo.Some(v)
	}
	return mo.None[V]()
}

// Get returns the value stored under key, or the zero value of V.
// Use Lookup when a stored zero value must be told apart from a miss.
func (t *Table[V]) Get(key string) V {
	v, _ := t.Lookup(key)
	return v
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Keys returns every stored key in slot order. The order is stable for a
// given table state but unrelated to insertion order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.store.count)
	for i := range t.store.slots {
		if k := t.store.slots[i].key; k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Range calls yield for every entry in slot order until it returns false.
func (t *Table[V]) Range(yield func(key string, value V) bool) {
	for i := range t.store.slots {
		s := &t.store.slots[i]
		if s.key == "" {
			continue
		}
		if !yield(s.key, s.value) {
			return
		}
	}
}

// All returns an iterator over all entries, for use with range-over-func.
func (t *Table[V]) All() func(yield func(string, V) bool) {
	return t.Range
}

// Size returns the number of stored keys.
func (t *Table[V]) Size() int {
	return t.store.count
}

// Capacity returns the current number of slots, always a prime.
func (t *Table[V]) Capacity() int {
	if t.store.slots == nil {
		return minCapacity
	}
	return len(t.store.slots)
}

// LoadFactor returns Size()/Capacity().
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.store.count) / float64(t.Capacity())
}

// Strategy returns the probe strategy chosen at construction.
func (t *Table[V]) Strategy() ProbeStrategy {
	return t.strategy
}

// Grow resizes the table so that n more distinct keys can be inserted
// without a further resize. It does nothing if there is already room.
func (t *Table[V]) Grow(n int) error {
	if n <= 0 {
		return nil
	}
	t.lazyInit()
	if n > maxCapacity-t.store.count {
		return errors.Wrapf(ErrCapacityOverflow,
			"grow by %d with %d stored", n, t.store.count)
	}
	want := t.store.count + n
	if !overLoaded(want, len(t.store.slots)) {
		return nil
	}
	// smallest c with want*maxLoadDen <= c*maxLoadNum
	return t.resize((want*maxLoadDen + maxLoadNum - 1) / maxLoadNum)
}

// ============================================================================
// Probing
// ============================================================================

// overLoaded reports whether count entries in capacity slots would exceed
// MaxLoad.
//
//go:nosplit
func overLoaded(count, capacity int) bool {
	return count*maxLoadDen > capacity*maxLoadNum
}

func (t *Table[V]) home(key string, capacity uint64) uint64 {
	if t.keyHash != nil {
		return t.keyHash(key) % capacity
	}
	return polyHash(key, capacity)
}

// probe walks key's probe sequence in s. It stops at the slot holding key
// (hit), or at the first free slot. ok is false when the walk ran through
// capacity indices without finding either.
func (t *Table[V]) probe(s *store[V], key string) (idx uint64, hit, ok bool) {
	capacity := uint64(len(s.slots))
	if capacity == 0 || key == "" {
		return 0, false, false
	}
	seq := makeProbeSeq(t.home(key, capacity), key, capacity, t.strategy)
	for {
		i, more := seq.next()
		if !more {
			return 0, false, false
		}
		switch s.slots[i].key {
		case "":
			return i, false, true
		case key:
			return i, true, true
		}
	}
}

// put stores the pair in s, reporting false if no slot could be found.
func (t *Table[V]) put(s *store[V], key string, value V) bool {
	idx, hit, ok := t.probe(s, key)
	if !ok {
		return false
	}
	if !hit {
		s.slots[idx].key = key
		s.count++
	}
	s.slots[idx].value = value
	return true
}

// ============================================================================
// Resizing
// ============================================================================

func (t *Table[V]) grow() error {
	capacity := len(t.store.slots)
	if capacity > maxCapacity/growthFactor {
		return errors.Wrapf(ErrCapacityOverflow,
			"grow from %d slots", capacity)
	}
	return t.resize(capacity * growthFactor)
}

// resize rehashes every entry into a new store of at least minLen slots,
// rounded up to a prime, and swaps it in.
func (t *Table[V]) resize(minLen int) error {
	oldLen := len(t.store.slots)
	newLen := nextPrime(minLen)
	for {
		if newLen > maxCapacity {
			return errors.Wrapf(ErrCapacityOverflow,
				"resize from %d to %d slots", oldLen, newLen)
		}
		if ns, ok := t.rehash(newLen); ok {
			t.store = ns
			t.growths++
			t.logger.Debug("htable: resized",
				zap.Stringer("strategy", t.strategy),
				zap.Int("old_capacity", oldLen),
				zap.Int("new_capacity", newLen),
				zap.Int("size", ns.count),
			)
			return nil
		}
		newLen = nextPrime(newLen + 1)
	}
}

// rehash copies every entry into a fresh store of newLen slots. It fails
// only if some probe walk is exhausted without reaching a free slot.
func (t *Table[V]) rehash(newLen int) (store[V], bool) {
	ns := store[V]{slots: make([]slot[V], newLen)}
	for i := range t.store.slots {
		s := &t.store.slots[i]
		if s.key == "" {
			continue
		}
		if !t.put(&ns, s.key, s.value) {
			return store[V]{}, false
		}
	}
	return ns, true
}

package htable

import (
	"sync"
	"unsafe"

	"github.com/samber/mo"

	"github.com/llxisdsh/htable/internal/opt"
)

// SyncTable guards a Table with a single reader/writer lock so it can be
// shared between goroutines.
//
// Inserts, and therefore resizes, hold the write lock for their whole
// duration, so readers never observe a table halfway through a resize.
// Lookups and iteration share the read lock.
type SyncTable[V any] struct {
	mu sync.RWMutex
	_  [(opt.CacheLineSize - unsafe.Sizeof(sync.RWMutex{})%opt.CacheLineSize) %
		opt.CacheLineSize]byte
	t Table[V]
}

// NewSync creates a lock-guarded table. The arguments are those of New.
func NewSync[V any](
	initialCapacity int,
	strategy ProbeStrategy,
	options ...func(*TableConfig),
) *SyncTable[V] {
	st := &SyncTable[V]{}
	st.t = *New[V](initialCapacity, strategy, options...)
	return st
}

// Insert stores value under key, see Table.Insert.
func (st *SyncTable[V]) Insert(key string, value V) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.t.Insert(key, value)
}

// Grow pre-sizes the table, see Table.Grow.
func (st *SyncTable[V]) Grow(n int) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.t.Grow(n)
}

// Lookup returns the value stored under key and whether it was present.
func (st *SyncTable[V]) Lookup(key string) (V, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.Lookup(key)
}

// Find is Lookup expressed as an optional value.
func (st *SyncTable[V]) Find(key string) mo.Option[V] {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.Find(key)
}

// Contains reports whether key is present.
func (st *SyncTable[V]) Contains(key string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.Contains(key)
}

// Keys returns a copy of every stored key in slot order.
func (st *SyncTable[V]) Keys() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.Keys()
}

// Range calls yield for every entry while holding the read lock.
// yield must not call back into st for writing.
func (st *SyncTable[V]) Range(yield func(key string, value V) bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	st.t.Range(yield)
}

// All returns an iterator over all entries, see Range.
func (st *SyncTable[V]) All() func(yield func(string, V) bool) {
	return st.Range
}

func (st *SyncTable[V]) Size() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.Size()
}

func (st *SyncTable[V]) Capacity() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.Capacity()
}

func (st *SyncTable[V]) LoadFactor() float64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.LoadFactor()
}

// Stats returns statistics for the table, see Table.Stats.
func (st *SyncTable[V]) Stats() Stats {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.t.Stats()
}

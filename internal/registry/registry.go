package registry

import (
	"errors"
	"iter"
	"sync"
	"sync/atomic"
)

// ErrDuplicate is returned by Append when the key is already present.
var ErrDuplicate = errors.New("registry: duplicate key")

// ErrSealed is returned by Append after Seal.
var ErrSealed = errors.New("registry: sealed")

// Table is an append-only, insertion-ordered keyed table.
//
// Writers serialize on a mutex; readers load an immutable snapshot and never
// lock. A snapshot is published only after the appended value is fully stored,
// so a reader that observes a key also observes its value.
type Table[V any] struct {
	mu       sync.Mutex
	sealed   atomic.Bool
	snap     atomic.Pointer[snapshot[V]]
	capacity int
}

type snapshot[V any] struct {
	keys   []string
	values []V
	index  map[string]int
}

// New returns an empty table. capacity is a sizing hint; values below 1 are
// ignored.
func New[V any](capacity int) *Table[V] {
	if capacity < 1 {
		capacity = 0
	}
	t := &Table[V]{capacity: capacity}
	t.snap.Store(&snapshot[V]{
		keys:   make([]string, 0, capacity),
		values: make([]V, 0, capacity),
		index:  make(map[string]int, capacity),
	})
	return t
}

// Append stores v under key at the end of the table.
func (t *Table[V]) Append(key string, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sealed.Load() {
		return ErrSealed
	}
	old := t.snap.Load()
	if _, exists := old.index[key]; exists {
		return ErrDuplicate
	}

	// Older snapshots are bounded by their own length, so growing the shared
	// backing arrays in place is invisible to them.
	next := &snapshot[V]{
		keys:   append(old.keys, key),
		values: append(old.values, v),
		index:  make(map[string]int, len(old.index)+1),
	}
	for k, i := range old.index {
		next.index[k] = i
	}
	next.index[key] = len(next.values) - 1
	t.snap.Store(next)
	return nil
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	s := t.snap.Load()
	i, ok := s.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return s.values[i], true
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	_, ok := t.snap.Load().index[key]
	return ok
}

// Values returns a copy of all values in insertion order.
func (t *Table[V]) Values() []V {
	s := t.snap.Load()
	out := make([]V, len(s.values))
	copy(out, s.values)
	return out
}

// Keys returns a copy of all keys in insertion order.
func (t *Table[V]) Keys() []string {
	s := t.snap.Load()
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// All iterates over the snapshot current at the time of the call.
func (t *Table[V]) All() iter.Seq2[string, V] {
	s := t.snap.Load()
	return func(yield func(string, V) bool) {
		for i, k := range s.keys {
			if !yield(k, s.values[i]) {
				return
			}
		}
	}
}

// Len returns the number of stored values.
func (t *Table[V]) Len() int {
	return len(t.snap.Load().values)
}

// Seal rejects every later Append. Sealing twice is a no-op.
func (t *Table[V]) Seal() {
	t.mu.Lock()
	t.sealed.Store(true)
	t.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (t *Table[V]) Sealed() bool {
	return t.sealed.Load()
}

package cache

import "fmt"

// Stats holds table statistics.
type Stats struct {
	Len     int     // Populated entries
	Size    int     // Key domain size
	Hits    uint64  // Lookups served from a stored value
	Misses  uint64  // Lookups that ran the constructor
	HitRate float64 // Hits / (Hits + Misses), 0 before any lookup
}

// Table memoizes a function of a bounded integer key.
//
// Every key in [0, Size()) maps to at most one stored value; the
// constructor runs at most once per key.
type Table[V any] struct {
	values []V
	filled []bool
	create func(key int) V
	len    int

	hits   uint64
	misses uint64
}

// NewTable creates a table for keys in [0, size).
// Panics if size is not positive or create is nil.
func NewTable[V any](size int, create func(key int) V) *Table[V] {
	if size <= 0 {
		panic(fmt.Sprintf("cache: table size must be positive, got %d", size))
	}
	if create == nil {
		panic("cache: nil constructor")
	}
	return &Table[V]{
		values: make([]V, size),
		filled: make([]bool, size),
		create: create,
	}
}

// Get returns the value for key, constructing and storing it on first use.
//
// A key outside [0, Size()) is a caller bug: Get panics without touching
// the table.
func (t *Table[V]) Get(key int) V {
	t.mustContainKey(key)

	if t.filled[key] {
		t.hits++
		return t.values[key]
	}

	t.misses++
	v := t.create(key)
	t.values[key] = v
	t.filled[key] = true
	t.len++
	return v
}

// Peek returns the stored value for key without constructing it.
// Out-of-range keys report false.
func (t *Table[V]) Peek(key int) (V, bool) {
	var zero V
	if key < 0 || key >= len(t.values) || !t.filled[key] {
		return zero, false
	}
	return t.values[key], true
}

// Contains reports whether a value for key has been stored.
func (t *Table[V]) Contains(key int) bool {
	_, ok := t.Peek(key)
	return ok
}

// Len returns the number of populated entries.
func (t *Table[V]) Len() int {
	return t.len
}

// Size returns the size of the key domain.
func (t *Table[V]) Size() int {
	return len(t.values)
}

// Stats returns current table statistics.
func (t *Table[V]) Stats() Stats {
	var hitRate float64
	total := t.hits + t.misses
	if total > 0 {
		hitRate = float64(t.hits) / float64(total)
	}

	return Stats{
		Len:     t.len,
		Size:    len(t.values),
		Hits:    t.hits,
		Misses:  t.misses,
		HitRate: hitRate,
	}
}

// ResetStats resets the hit and miss counters to zero.
// Stored values are kept.
func (t *Table[V]) ResetStats() {
	t.hits = 0
	t.misses = 0
}

func (t *Table[V]) mustContainKey(key int) {
	if key < 0 || key >= len(t.values) {
		panic(fmt.Sprintf("cache: key %d outside [0, %d)", key, len(t.values)))
	}
}

// Package cache provides memoization primitives for gogpu/smoke.
//
// # Table[V]
//
// A dense memo table over the integer key domain [0, size). Values are
// produced lazily by a constructor function on the first lookup of each key
// and kept for the lifetime of the table. There is no eviction: the key
// domain itself bounds the number of entries.
//
//	squares := cache.NewTable(101, func(k int) int { return k * k })
//	v := squares.Get(12) // computes and stores 144
//	v = squares.Get(12)  // returns the stored value
//
// # Thread Safety
//
// Table is not safe for concurrent use. It is meant for a single frame-step
// loop that owns it.
package cache

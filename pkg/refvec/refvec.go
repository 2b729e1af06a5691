// Package refvec provides a reference-counted, contiguous, growable vector.
//
// Vec is the storage primitive behind cowslice: Clone is O(1) and only bumps
// a share count, and mutable storage is only ever handed to a unique owner.
// The share count is atomic, so clones may be read from other goroutines;
// mutating through the same Vec from two goroutines still needs external
// synchronization.
package refvec

import (
	"fmt"
	"slices"
	"sync/atomic"
)

type header[T any] struct {
	refs atomic.Int64
	data []T
}

// Vec is a reference-counted vector of T.
//
// The zero Vec is an empty, uniquely-owned vector ready for use. Copying a
// Vec with = does not register a new owner; use Clone for that.
type Vec[T any] struct {
	h *header[T]
}

// New returns an empty Vec. No allocation happens until elements are added.
func New[T any]() Vec[T] {
	return Vec[T]{}
}

// Own wraps s as a Vec, taking ownership of its storage. The caller must not
// use s afterwards.
func Own[T any](s []T) Vec[T] {
	h := &header[T]{data: s}
	h.refs.Store(1)
	return Vec[T]{h: h}
}

// FromSlice copies s into a new Vec.
func FromSlice[T any](s []T) Vec[T] {
	return Own(slices.Clone(s))
}

// Len returns the number of elements.
func (v Vec[T]) Len() int {
	if v.h == nil {
		return 0
	}
	return len(v.h.data)
}

// Cap returns the capacity of the underlying storage.
func (v Vec[T]) Cap() int {
	if v.h == nil {
		return 0
	}
	return cap(v.h.data)
}

// Clone returns a Vec sharing the same storage. O(1): it registers a new
// owner and copies nothing.
func (v Vec[T]) Clone() Vec[T] {
	if v.h != nil {
		v.h.refs.Add(1)
	}
	return v
}

// IsUnique reports whether exactly one owner references the storage.
func (v Vec[T]) IsUnique() bool {
	return v.h == nil || v.h.refs.Load() == 1
}

// View returns the storage for reading. Callers must not write through the
// returned slice.
func (v Vec[T]) View() []T {
	if v.h == nil {
		return nil
	}
	return v.h.data
}

// MakeMut returns the storage for writing. It must only be called on a
// unique Vec; calling it while the storage is shared is a programmer error
// and panics.
func (v Vec[T]) MakeMut() []T {
	v.mustOwn("MakeMut")
	if v.h == nil {
		return nil
	}
	return v.h.data
}

// Set writes x at index i. Requires uniqueness, like MakeMut.
func (v Vec[T]) Set(i int, x T) {
	v.mustOwn("Set")
	if v.h == nil || i < 0 || i >= len(v.h.data) {
		panic(fmt.Sprintf("refvec: index %d out of range [0:%d]", i, v.Len()))
	}
	v.h.data[i] = x
}

// Append adds items at the end, growing the storage as needed. Requires
// uniqueness, like MakeMut.
func (v *Vec[T]) Append(items ...T) {
	v.mustOwn("Append")
	if v.h == nil {
		*v = Own(slices.Clone(items))
		return
	}
	v.h.data = append(v.h.data, items...)
}

// Truncate shortens the vector to n elements. Requires uniqueness.
func (v *Vec[T]) Truncate(n int) {
	v.mustOwn("Truncate")
	if n < 0 || n > v.Len() {
		panic(fmt.Sprintf("refvec: truncate length %d out of range [0:%d]", n, v.Len()))
	}
	if v.h != nil {
		v.h.data = v.h.data[:n]
	}
}

// Clear drops all elements, keeping the storage. Requires uniqueness.
func (v *Vec[T]) Clear() {
	v.mustOwn("Clear")
	if v.h != nil {
		v.h.data = v.h.data[:0]
	}
}

// Release drops this owner's reference. The Vec must not be used afterwards;
// other owners are unaffected. Releasing the zero Vec is a no-op.
func (v *Vec[T]) Release() {
	if v.h != nil {
		v.h.refs.Add(-1)
		v.h = nil
	}
}

func (v Vec[T]) mustOwn(op string) {
	if !v.IsUnique() {
		panic("refvec: " + op + " on shared Vec")
	}
}

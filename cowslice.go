// Package cowslice implements a copy-on-write, sub-sliceable sequence.
//
// A Slice behaves like an owned mutable sequence but shares its backing
// storage with clones and sub-slices until a mutation forces divergence.
// Clone and Slice are O(1); a mutation deep-copies the visible window only
// when the storage is still shared, so sibling views are never disturbed.
//
// Slice values may be cloned and handed to other goroutines (the share count
// is atomic); mutating through the same *Slice concurrently needs external
// synchronization, like any Go value.
package cowslice

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rawbytedev/cowslice/pkg/refvec"
)

// Slice is a [start, end) window over reference-counted storage.
//
// The zero Slice is an empty sequence ready for use.
type Slice[T any] struct {
	data  refvec.Vec[T]
	start int
	end   int
}

// New returns an empty Slice.
func New[T any]() Slice[T] {
	return Slice[T]{}
}

// Of builds a Slice from the given elements.
func Of[T any](items ...T) Slice[T] {
	return FromSlice(items)
}

// FromSlice copies s into a freshly allocated Slice covering all of it.
func FromSlice[T any](s []T) Slice[T] {
	return FromVec(refvec.FromSlice(s))
}

// FromVec wraps existing storage without copying, windowing all of it. The
// Slice takes over the caller's reference: keep using v only through a prior
// v.Clone().
func FromVec[T any](v refvec.Vec[T]) Slice[T] {
	return Slice[T]{data: v, start: 0, end: v.Len()}
}

// Collect drains seq into a new Slice.
func Collect[T any](seq iter.Seq[T]) Slice[T] {
	var out []T
	for x := range seq {
		out = append(out, x)
	}
	return FromVec(refvec.Own(out))
}

// Repeat returns a Slice holding n copies of x.
func Repeat[T any](x T, n int) Slice[T] {
	if n < 0 {
		panic(fmt.Sprintf("cowslice: negative repeat count %d", n))
	}
	out := make([]T, n)
	for i := range out {
		out[i] = x
	}
	return FromVec(refvec.Own(out))
}

// Len returns the number of visible elements.
func (s Slice[T]) Len() int {
	return s.end - s.start
}

// IsEmpty reports whether the window is empty.
func (s Slice[T]) IsEmpty() bool {
	return s.start == s.end
}

// View returns the visible window for reading. This is the single read path:
// equality, ordering, hashing and iteration are all defined over it. Callers
// must not write through the returned slice; use Mut for that.
func (s Slice[T]) View() []T {
	return s.data.View()[s.start:s.end]
}

// At returns the element at index i of the window.
func (s Slice[T]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("cowslice: index %d out of range [0:%d]", i, s.Len()))
	}
	return s.data.View()[s.start+i]
}

// ToSlice copies the visible window out into a plain slice.
func (s Slice[T]) ToSlice() []T {
	return slices.Clone(s.View())
}

// Clone returns a Slice sharing the same storage and window. O(1).
func (s Slice[T]) Clone() Slice[T] {
	return Slice[T]{data: s.data.Clone(), start: s.start, end: s.end}
}

// Truncate shrinks the window to n elements in place. It never touches the
// storage, so elements past the window stay intact for other views. Panics
// if start+n runs past the backing storage.
func (s *Slice[T]) Truncate(n int) {
	end := s.start + n
	if n < 0 || end > s.data.Len() {
		panic(fmt.Sprintf("cowslice: truncate length %d out of range [0:%d]", n, s.data.Len()-s.start))
	}
	s.end = end
}

// Release drops this view's reference to the storage. The Slice must not be
// used afterwards; clones and sub-slices are unaffected.
func (s *Slice[T]) Release() {
	s.data.Release()
	*s = Slice[T]{}
}

func (s Slice[T]) String() string {
	return fmt.Sprintf("%v", s.View())
}

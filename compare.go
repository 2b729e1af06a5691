package cowslice

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// The protocol surface is defined over the visible window only: two slices
// with equal windows compare equal and hash identically no matter which
// storage backs them or where the window sits.

// Equal reports whether a and b have element-wise equal windows.
func Equal[T comparable](a, b Slice[T]) bool {
	return slices.Equal(a.View(), b.View())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T1, T2 any](a Slice[T1], b Slice[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.View(), b.View(), eq)
}

// EqualTo reports whether the window of s equals the plain slice want.
func EqualTo[T comparable](s Slice[T], want []T) bool {
	return slices.Equal(s.View(), want)
}

// Compare orders a and b lexicographically over their windows.
func Compare[T cmp.Ordered](a, b Slice[T]) int {
	return slices.Compare(a.View(), b.View())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T1, T2 any](a Slice[T1], b Slice[T2], compare func(T1, T2) int) int {
	return slices.CompareFunc(a.View(), b.View(), compare)
}

// Hash hashes the window contents with the given seed. Slices that are Equal
// hash to the same value.
func Hash[T comparable](seed maphash.Seed, s Slice[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, x := range s.View() {
		maphash.WriteComparable(&h, x)
	}
	return h.Sum64()
}

// Index returns the window index of the first occurrence of x, or -1.
func Index[T comparable](s Slice[T], x T) int {
	return slices.Index(s.View(), x)
}

// Contains reports whether x occurs in the window.
func Contains[T comparable](s Slice[T], x T) bool {
	return Index(s, x) >= 0
}

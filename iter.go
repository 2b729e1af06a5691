package cowslice

import (
	"iter"
	"slices"
)

// All iterates over window indices and values. Indices are window-relative;
// elements outside the window are never produced even though the backing
// storage may hold more.
func (s Slice[T]) All() iter.Seq2[int, T] {
	return slices.All(s.View())
}

// Values iterates over the window's values.
func (s Slice[T]) Values() iter.Seq[T] {
	return slices.Values(s.View())
}

// Backward iterates over window indices and values from the end.
func (s Slice[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(s.View())
}

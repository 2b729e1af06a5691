package cowslice

import (
	"fmt"

	"github.com/rawbytedev/cowslice/pkg/refvec"
)

// Mut returns the visible window for writing.
//
// If the storage is shared, the window is first copied into fresh
// uniquely-owned storage so that no other view observes the writes. If the
// storage is already exclusive, no copy or allocation happens.
func (s *Slice[T]) Mut() []T {
	if !s.data.IsUnique() {
		s.diverge()
	}
	return s.data.MakeMut()[s.start:s.end]
}

// Set writes x at index i of the window, copying on write as Mut does.
func (s *Slice[T]) Set(i int, x T) {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("cowslice: index %d out of range [0:%d]", i, s.Len()))
	}
	s.Mut()[i] = x
}

// Modify applies a structural transformation to the underlying storage.
//
// When the storage is exclusive and the window spans all of it, fn runs
// against the storage directly and the window is resynchronized to the new
// length. Otherwise the visible window is copied into a standalone vector,
// fn runs there, and the view is replaced wholesale. The full-window check
// matters: growing or shrinking a sub-window in place would corrupt sibling
// views sharing the same storage.
func (s *Slice[T]) Modify(fn func(*refvec.Vec[T])) {
	if s.data.IsUnique() && s.start == 0 && s.end == s.data.Len() {
		fn(&s.data)
		s.end = s.data.Len()
		return
	}
	vec := refvec.FromSlice(s.View())
	fn(&vec)
	old := s.data
	*s = FromVec(vec)
	old.Release()
}

// Append adds items at the end of the window, copying on write as Modify
// does.
func (s *Slice[T]) Append(items ...T) {
	s.Modify(func(v *refvec.Vec[T]) {
		v.Append(items...)
	})
}

// Clear empties the view. Exclusive full-window storage is kept for reuse.
func (s *Slice[T]) Clear() {
	s.Modify(func(v *refvec.Vec[T]) {
		v.Clear()
	})
}

// diverge replaces the view's storage with a private copy of the window.
func (s *Slice[T]) diverge() {
	old := s.data
	*s = FromVec(refvec.FromSlice(s.View()))
	old.Release()
}

package cowslice

import "fmt"

type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Bound is one end of a Range: inclusive, exclusive, or absent.
type Bound struct {
	kind boundKind
	at   int
}

// Included returns a bound that keeps element i.
func Included(i int) Bound {
	if i < 0 {
		panic(fmt.Sprintf("cowslice: negative range bound %d", i))
	}
	return Bound{kind: included, at: i}
}

// Excluded returns a bound that stops just short of element i.
func Excluded(i int) Bound {
	if i < 0 {
		panic(fmt.Sprintf("cowslice: negative range bound %d", i))
	}
	return Bound{kind: excluded, at: i}
}

// Unbounded returns an absent bound: the range runs to the window edge.
func Unbounded() Bound {
	return Bound{}
}

// Range selects a sub-window. Bounds are relative to the current window, not
// the backing storage. The zero Range selects everything.
type Range struct {
	Start, End Bound
}

// RangeAll selects the whole window.
func RangeAll() Range {
	return Range{}
}

// RangeFrom selects [i, len).
func RangeFrom(i int) Range {
	return Range{Start: Included(i)}
}

// RangeTo selects [0, j).
func RangeTo(j int) Range {
	return Range{End: Excluded(j)}
}

// RangeToInclusive selects [0, j].
func RangeToInclusive(j int) Range {
	return Range{End: Included(j)}
}

// Span selects [i, j).
func Span(i, j int) Range {
	return Range{Start: Included(i), End: Excluded(j)}
}

// SpanInclusive selects [i, j].
func SpanInclusive(i, j int) Range {
	return Range{Start: Included(i), End: Included(j)}
}

// SliceRange returns a new view of the sub-window r selects, sharing storage
// with s. O(1), no elements are copied. A range that runs backwards or past
// the window is a programmer error and panics; it is never clamped.
func (s Slice[T]) SliceRange(r Range) Slice[T] {
	start := s.start
	switch r.Start.kind {
	case included:
		start = s.start + r.Start.at
	case excluded:
		start = s.start + r.Start.at + 1
	}
	end := s.end
	switch r.End.kind {
	case included:
		end = s.start + r.End.at + 1
	case excluded:
		end = s.start + r.End.at
	}
	if start > end || end > s.end {
		panic(fmt.Sprintf("cowslice: slice bounds out of range [%d:%d] with length %d",
			start-s.start, end-s.start, s.Len()))
	}
	return Slice[T]{data: s.data.Clone(), start: start, end: end}
}

// Slice returns the half-open sub-window [i, j), sharing storage with s.
func (s Slice[T]) Slice(i, j int) Slice[T] {
	return s.SliceRange(Span(i, j))
}

// SliceFrom returns the sub-window [i, len), sharing storage with s.
func (s Slice[T]) SliceFrom(i int) Slice[T] {
	return s.SliceRange(RangeFrom(i))
}

// SliceTo returns the sub-window [0, j), sharing storage with s.
func (s Slice[T]) SliceTo(j int) Slice[T] {
	return s.SliceRange(RangeTo(j))
}

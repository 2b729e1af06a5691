package cowslice

import (
	"unsafe"

	"github.com/spaolacci/murmur3"
)

// ByteView is an immutable view over a byte window. It is the read-only
// companion of Slice[byte]: sub-views share storage, nothing ever copies on
// read, and callers cannot write through it.
type ByteView struct {
	v Slice[byte]
}

// NewByteView copies b into a fresh view.
func NewByteView(b []byte) ByteView {
	return ByteView{v: FromSlice(b)}
}

// ByteViewOf freezes a read-only view of s, sharing its storage.
func ByteViewOf(s Slice[byte]) ByteView {
	return ByteView{v: s.Clone()}
}

// Len returns the view length.
func (b ByteView) Len() int {
	return b.v.Len()
}

// ByteSlice returns a copy of the bytes, safe for the caller to modify.
func (b ByteView) ByteSlice() []byte {
	return b.v.ToSlice()
}

// String returns the bytes as a string without copying. Safe because the
// view hands out no mutable access to its window.
func (b ByteView) String() string {
	view := b.v.View()
	if len(view) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(view), len(view))
}

// At returns the byte at index i.
func (b ByteView) At(i int) byte {
	return b.v.At(i)
}

// Slice returns the sub-view [i, j), sharing storage. O(1).
func (b ByteView) Slice(i, j int) ByteView {
	return ByteView{v: b.v.Slice(i, j)}
}

// Equal reports whether two views hold the same bytes.
func (b ByteView) Equal(other ByteView) bool {
	return Equal(b.v, other.v)
}

// EqualBytes reports whether the view holds exactly p.
func (b ByteView) EqualBytes(p []byte) bool {
	return EqualTo(b.v, p)
}

// Sum64 returns a murmur3 content hash of the view. Views that are Equal
// hash identically regardless of backing storage or offsets.
func (b ByteView) Sum64() uint64 {
	return murmur3.Sum64(b.v.View())
}

package cowslice

import (
	"testing"
)

func BenchmarkCloneZeroAllocs(b *testing.B) {
	s := FromSlice(make([]int, 4096))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Release()
	}
}

func BenchmarkSliceZeroCopy(b *testing.B) {
	s := FromSlice(make([]int, 4096))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sub := s.Slice(128, 4000)
		sub.Release()
	}
}

func BenchmarkMutExclusive(b *testing.B) {
	s := FromSlice(make([]int, 4096))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Set(i&4095, i)
	}
}

func BenchmarkMutShared(b *testing.B) {
	s := FromSlice(make([]int, 4096))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Set(0, i)
		c.Release()
	}
}

func BenchmarkAppendExclusive(b *testing.B) {
	s := New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Append(i)
	}
}

func BenchmarkByteViewSum64(b *testing.B) {
	v := NewByteView(make([]byte, 1024))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Sum64()
	}
}

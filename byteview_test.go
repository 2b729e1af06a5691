package cowslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteViewBasics(t *testing.T) {
	v := NewByteView([]byte("hello world"))
	require.Equal(t, 11, v.Len())
	require.Equal(t, "hello world", v.String())
	require.Equal(t, byte('h'), v.At(0))

	sub := v.Slice(6, 11)
	require.Equal(t, "world", sub.String())
	require.True(t, sub.EqualBytes([]byte("world")))
}

func TestByteViewImmutability(t *testing.T) {
	src := []byte("mutable")
	v := NewByteView(src)
	src[0] = 'X'
	require.Equal(t, "mutable", v.String(), "view aliases the caller's slice")

	out := v.ByteSlice()
	out[0] = 'X'
	require.Equal(t, "mutable", v.String(), "ByteSlice handed out the backing storage")
}

func TestByteViewOfSharesStorage(t *testing.T) {
	s := FromSlice([]byte("abcd"))
	v := ByteViewOf(s)

	// the frozen view must not see later writes to the slice
	s.Set(0, 'X')
	require.Equal(t, "abcd", v.String())
	require.Equal(t, "Xbcd", string(s.ToSlice()))
}

func TestByteViewHash(t *testing.T) {
	a := NewByteView([]byte("payload"))
	b := ByteViewOf(FromSlice([]byte("xxpayloadxx")).Slice(2, 9))
	require.True(t, a.Equal(b))
	require.Equal(t, a.Sum64(), b.Sum64())

	c := NewByteView([]byte("payloaD"))
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Sum64(), c.Sum64())

	assert.Equal(t, NewByteView(nil).Sum64(), NewByteView([]byte{}).Sum64())
	assert.Equal(t, "", NewByteView(nil).String())
}

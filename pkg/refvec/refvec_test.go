package refvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroVec(t *testing.T) {
	var v Vec[int]
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	require.True(t, v.IsUnique())
	require.Nil(t, v.View())
	require.Nil(t, v.MakeMut())
}

func TestOwnAliasesStorage(t *testing.T) {
	s := []int{1, 2, 3}
	v := Own(s)
	v.Set(0, 9)
	require.Equal(t, 9, s[0])
}

func TestFromSliceCopies(t *testing.T) {
	s := []int{1, 2, 3}
	v := FromSlice(s)
	v.Set(0, 9)
	require.Equal(t, 1, s[0])
	require.Equal(t, []int{9, 2, 3}, v.View())
}

func TestCloneSharesAndReleaseRestoresUniqueness(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	require.True(t, v.IsUnique())

	c := v.Clone()
	assert.False(t, v.IsUnique())
	assert.False(t, c.IsUnique())
	// clone shares physical storage
	assert.Same(t, &v.View()[0], &c.View()[0])

	c.Release()
	require.True(t, v.IsUnique())
}

func TestMutatorsPanicWhenShared(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	c := v.Clone()
	defer c.Release()

	require.Panics(t, func() { v.MakeMut() })
	require.Panics(t, func() { v.Set(0, 9) })
	require.Panics(t, func() { v.Append(4) })
	require.Panics(t, func() { v.Truncate(1) })
	require.Panics(t, func() { v.Clear() })
}

func TestAppendGrowsStorage(t *testing.T) {
	var v Vec[int]
	v.Append(1, 2)
	v.Append(3)
	require.Equal(t, []int{1, 2, 3}, v.View())
	require.True(t, v.IsUnique())
}

func TestTruncateBounds(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	v.Truncate(2)
	require.Equal(t, []int{1, 2}, v.View())
	require.Panics(t, func() { v.Truncate(3) })
	require.Panics(t, func() { v.Truncate(-1) })
}

func TestClearKeepsCapacity(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	before := v.Cap()
	v.Clear()
	require.Equal(t, 0, v.Len())
	require.Equal(t, before, v.Cap())
}

package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecked_Basic(t *testing.T) {
	c := NewChecked[string, uint32]()

	k, err := c.Insert("foo")
	require.NoError(t, err)

	v, err := c.Get(k)
	require.NoError(t, err)
	assert.Equal(t, "foo", *v)

	*v = "bar"

	got, err := c.Remove(k)
	require.NoError(t, err)
	assert.Equal(t, "bar", got)
	assert.Equal(t, 0, c.Len())
}

func TestChecked_ErrInvalidKey(t *testing.T) {
	c := NewChecked[int, uint32]()

	k, err := c.Insert(1)
	require.NoError(t, err)

	// Never issued.
	_, err = c.Get(k + 1)
	assert.ErrorIs(t, err, ErrInvalidKey)

	// Way out of range.
	_, err = c.Get(1 << 20)
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = c.Remove(k)
	require.NoError(t, err)

	// Stale after removal.
	_, err = c.Get(k)
	assert.ErrorIs(t, err, ErrInvalidKey)

	// Double remove is rejected instead of corrupting the free list.
	_, err = c.Remove(k)
	assert.ErrorIs(t, err, ErrInvalidKey)

	assert.Equal(t, 0, c.Len())
}

func TestChecked_KeyReuse(t *testing.T) {
	c := NewChecked[int, uint16]()

	k, err := c.Insert(10)
	require.NoError(t, err)

	_, err = c.Remove(k)
	require.NoError(t, err)

	k2, err := c.Insert(20)
	require.NoError(t, err)
	assert.Equal(t, k, k2)

	v, err := c.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, 20, *v)
}

func TestChecked_ErrFull(t *testing.T) {
	c := NewChecked[int, uint8]()

	for i := range 255 {
		_, err := c.Insert(i)
		require.NoError(t, err)
	}

	_, err := c.Insert(999)
	assert.ErrorIs(t, err, ErrFull)

	// The failed insert changed nothing.
	assert.Equal(t, 255, c.Len())

	// Removing one value makes room again.
	_, err = c.Remove(0)
	require.NoError(t, err)

	k, err := c.Insert(999)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), k)
}

func TestChecked_OccupancyMatchesLen(t *testing.T) {
	c := NewChecked[int, uint32]()

	keys := make([]uint32, 0, 100)
	for i := range 100 {
		k, err := c.Insert(i)
		require.NoError(t, err)
		keys = append(keys, k)
	}

	// Drop every third key.
	for i := 0; i < len(keys); i += 3 {
		_, err := c.Remove(keys[i])
		require.NoError(t, err)
	}

	assert.Equal(t, c.Len(), c.live.count())
	assert.Equal(t, c.Len(), c.Stats().Len)
}

func TestChecked_WithCapacity(t *testing.T) {
	c := NewChecked[int, uint8](WithCapacity[int, uint8](32))

	assert.Equal(t, 32, c.Cap())
}

package fixedmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCountFormula(t *testing.T) {
	for capacity := 1; capacity <= 1<<12; capacity++ {
		n := slotCount(capacity)
		pow := n - 1
		require.Equal(t, 0, pow&(pow-1), "capacity %d: %d is not a power of two", capacity, pow)
		require.Greater(t, pow, capacity)
		require.LessOrEqual(t, pow/2, capacity)
	}
}

func TestSlotIndexDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		idx := slotIndex(key, 17)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 17)
		assert.Equal(t, idx, slotIndex(key, 17))
	}
}

// collidingKeys returns n distinct keys that hash to the same bucket.
func collidingKeys(t *testing.T, slots, n int) []string {
	t.Helper()
	target := slotIndex("seed", slots)
	keys := []string{"seed"}
	for i := 0; len(keys) < n; i++ {
		k := fmt.Sprintf("k%d", i)
		if slotIndex(k, slots) == target {
			keys = append(keys, k)
		}
		require.Less(t, i, 1_000_000, "no collisions found")
	}
	return keys
}

func bucketKeys[V any](m *Map[V], key string) []string {
	var keys []string
	for _, e := range m.slots[m.slot(key)] {
		keys = append(keys, e.key)
	}
	return keys
}

func TestEntriesLandInHashedBucket(t *testing.T) {
	m, err := New[int](64)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		require.True(t, m.Set(fmt.Sprintf("key-%d", i), i))
	}

	total := 0
	for idx, bucket := range m.slots {
		for _, e := range bucket {
			assert.Equal(t, idx, slotIndex(e.key, len(m.slots)))
			total++
		}
	}
	assert.Equal(t, m.Len(), total)
}

func TestChainKeepsInsertionOrder(t *testing.T) {
	m, err := New[int](10)
	require.NoError(t, err)

	keys := collidingKeys(t, m.SlotCount(), 4)
	for i, k := range keys {
		require.True(t, m.Set(k, i))
	}
	assert.Equal(t, keys, bucketKeys(m, keys[0]))

	// overwrite keeps the position
	require.True(t, m.Set(keys[1], 100))
	assert.Equal(t, keys, bucketKeys(m, keys[0]))
}

// Deleted entries are removed from the chain rather than left as tombstones.
func TestDeleteRemovesFromChain(t *testing.T) {
	m, err := New[int](10)
	require.NoError(t, err)

	keys := collidingKeys(t, m.SlotCount(), 3)
	for i, k := range keys {
		require.True(t, m.Set(k, i))
	}

	v, ok := m.Delete(keys[1])
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{keys[0], keys[2]}, bucketKeys(m, keys[0]))

	// re-adding appends at the end of the chain
	require.True(t, m.Set(keys[1], 11))
	assert.Equal(t, []string{keys[0], keys[2], keys[1]}, bucketKeys(m, keys[0]))

	for _, k := range keys {
		_, ok := m.Delete(k)
		require.True(t, ok)
	}
	assert.Nil(t, m.slots[m.slot(keys[0])])
	assert.Equal(t, 0, m.Len())
}

func TestToInt(t *testing.T) {
	n, err := toInt(int16(42))
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = toInt("42")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

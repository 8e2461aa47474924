package fixedmap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidArgument is returned when a Map is constructed with an unusable capacity.
var ErrInvalidArgument = errors.New("invalid argument")

type entry[V any] struct {
	key   string
	value V
}

// Map is a fixed-capacity hash map from string keys to values of type V
type Map[V any] struct {
	slots    [][]entry[V]
	capacity int
	items    int
	logger   *zap.Logger
}

// New creates a map that holds at most capacity entries
func New[V any](capacity int, opts ...Option) (*Map[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be >= 1, got %d", ErrInvalidArgument, capacity)
	}

	o := newOptions(opts)
	m := &Map[V]{
		slots:    make([][]entry[V], slotCount(capacity)),
		capacity: capacity,
		logger:   o.logger,
	}

	m.logger.Debug("fixed hash map created",
		zap.Int("capacity", capacity),
		zap.Int("slots", len(m.slots)))
	return m, nil
}

// Set stores value under key. Replacing the value of an existing key always
// succeeds; adding a new key fails once the map holds Cap entries.
func (m *Map[V]) Set(key string, value V) bool {
	slot := m.slot(key)
	if i := lookup(key, m.slots[slot]); i >= 0 {
		m.slots[slot][i].value = value
		return true
	}

	if m.items >= m.capacity {
		m.logger.Debug("set rejected, map at capacity",
			zap.String("key", key),
			zap.Int("capacity", m.capacity))
		return false
	}

	m.slots[slot] = append(m.slots[slot], entry[V]{key: key, value: value})
	m.items++
	return true
}

// Get retrieves the value stored under key
func (m *Map[V]) Get(key string) (V, bool) {
	bucket := m.slots[m.slot(key)]
	if i := lookup(key, bucket); i >= 0 {
		return bucket[i].value, true
	}
	var zero V
	return zero, false
}

// Delete removes key from the map and returns the value it held.
func (m *Map[V]) Delete(key string) (V, bool) {
	slot := m.slot(key)
	bucket := m.slots[slot]
	i := lookup(key, bucket)
	if i < 0 {
		var zero V
		return zero, false
	}

	value := bucket[i].value
	last := len(bucket) - 1
	copy(bucket[i:], bucket[i+1:])
	bucket[last] = entry[V]{}
	if last == 0 {
		m.slots[slot] = nil
	} else {
		m.slots[slot] = bucket[:last]
	}
	m.items--
	return value, true
}

// Load returns the ratio of live entries to the declared capacity.
func (m *Map[V]) Load() float64 {
	return float64(m.items) / float64(m.capacity)
}

// Len returns the number of live entries.
func (m *Map[V]) Len() int {
	return m.items
}

// Cap returns the capacity the map was created with.
func (m *Map[V]) Cap() int {
	return m.capacity
}

// SlotCount returns the number of buckets.
func (m *Map[V]) SlotCount() int {
	return len(m.slots)
}

func (m *Map[V]) slot(key string) int {
	return slotIndex(key, len(m.slots))
}

func lookup[V any](key string, bucket []entry[V]) int {
	for i, e := range bucket {
		if e.key == key {
			return i
		}
	}
	return -1
}

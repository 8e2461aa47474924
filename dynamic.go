package fixedmap

import (
	"fmt"
	"math"
)

// NewFrom is New for capacities that arrive untyped, e.g. decoded from JSON
// into an interface value. Only Go integer kinds are accepted.
func NewFrom[V any](capacity any, opts ...Option) (*Map[V], error) {
	n, err := toInt(capacity)
	if err != nil {
		return nil, err
	}
	return New[V](n, opts...)
}

// SetAny is Set for keys of unknown type. Keys that are not strings are
// rejected without touching the map.
func (m *Map[V]) SetAny(key any, value V) bool {
	s, ok := key.(string)
	if !ok {
		return false
	}
	return m.Set(s, value)
}

func toInt(v any) (int, error) {
	var (
		i int64
		u uint64
	)
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case uint:
		u = uint64(n)
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	default:
		return 0, fmt.Errorf("%w: capacity must be an integer, got %T", ErrInvalidArgument, v)
	}

	if u > 0 {
		if u > math.MaxInt {
			return 0, fmt.Errorf("%w: capacity %d overflows int", ErrInvalidArgument, u)
		}
		return int(u), nil
	}
	if i > math.MaxInt || i < math.MinInt {
		return 0, fmt.Errorf("%w: capacity %d overflows int", ErrInvalidArgument, i)
	}
	return int(i), nil
}

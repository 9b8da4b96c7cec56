package templatetools

import (
	"fmt"
	"math"
	"time"
)

// asTime accepts time.Time and *time.Time. ok is false for a nil pointer.
func asTime(v any) (t time.Time, ok bool, err error) {
	switch x := v.(type) {
	case time.Time:
		return x, true, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, false, nil
		}
		return *x, true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: expected a time, got %T", ErrInvalidArgument, v)
	}
}

// asInt accepts the integer kinds whose value fits in an int.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		if uint64(x) > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	default:
		return 0, false
	}
}

// splitPiped separates the piped value, which html/template passes last,
// from the explicit arguments before it.
func splitPiped(name string, args []any, maxExtra int) (extra []any, value any, err error) {
	if len(args) == 0 || len(args) > maxExtra+1 {
		return nil, nil, fmt.Errorf("%w: %s takes 1 to %d arguments, got %d", ErrInvalidArgument, name, maxExtra+1, len(args))
	}
	return args[:len(args)-1], args[len(args)-1], nil
}

package checkval

import (
	"reflect"
)

// Ordered constrains the bound checks to types with a total order.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// CheckType ensures value conforms to the expected type spec. When elemType is
// given and value is a slice or array, each element must additionally conform
// to elemType.
func CheckType(name string, value any, expected TypeSpec, elemType ...TypeSpec) error {
	if !Matches(value, expected) {
		if len(expected) > 1 {
			return newError(KindTypeMismatch, name, nil,
				"unable to set %q to %q which is not one of the following types: %q",
				name, stringify(value), expected.String())
		}
		return newError(KindTypeMismatch, name, nil,
			"unable to set %q to %q which is not of type %q",
			name, stringify(value), expected.String())
	}

	if len(elemType) == 0 {
		return nil
	}
	et := elemType[0]

	rv := reflect.ValueOf(value)
	if !isContainer(rv) {
		return nil
	}
	for i := 0; i < rv.Len(); i++ {
		if Matches(rv.Index(i).Interface(), et) {
			continue
		}
		if len(et) > 1 {
			return newError(KindTypeMismatch, name, nil,
				"unable to set %q to %q since each item must be one of the following types: %q",
				name, stringify(value), et.String())
		}
		return newError(KindTypeMismatch, name, nil,
			"unable to set %q to %q since each item must be of type %q",
			name, stringify(value), et.String())
	}
	return nil
}

// CheckLength ensures a sized value's length equals min when max is omitted,
// or lies in [min, max] otherwise.
func CheckLength(name string, value any, min int, max ...int) error {
	n, ok := lengthOf(value)
	if !ok {
		return newError(KindTypeMismatch, name, nil,
			"unable to set %q to %q which is not a sized value", name, stringify(value))
	}

	maxLen := min
	if len(max) > 0 {
		maxLen = max[0]
	}
	if n >= min && n <= maxLen {
		return nil
	}
	if min == maxLen {
		return newError(KindLengthMismatch, name, nil,
			"unable to set %q to %q since it must be of length %d",
			name, stringify(value), min)
	}
	return newError(KindLengthMismatch, name, nil,
		"unable to set %q to %q since it must have length between %d and %d",
		name, stringify(value), min, maxLen)
}

// CheckValue ensures value is a member of the accepted set.
func CheckValue[T comparable](name string, value T, accepted []T) error {
	for _, a := range accepted {
		if value == a {
			return nil
		}
	}
	return newError(KindValueNotAccepted, name, nil,
		"unable to set %q to %q since it is not in %q", name, stringify(value), stringify(accepted))
}

// CheckLessThan ensures value does not exceed max. With inclusive set, equality
// is allowed; otherwise the bound is strict.
func CheckLessThan[T Ordered](name string, value, max T, inclusive bool) error {
	if inclusive {
		if value > max {
			return newError(KindRangeViolation, name, nil,
				"unable to set %q to %q since it is greater than %q", name, stringify(value), stringify(max))
		}
		return nil
	}
	if value >= max {
		return newError(KindRangeViolation, name, nil,
			"unable to set %q to %q since it is greater than or equal to %q", name, stringify(value), stringify(max))
	}
	return nil
}

// CheckGreaterThan ensures value does not fall below min. With inclusive set,
// equality is allowed; otherwise the bound is strict.
func CheckGreaterThan[T Ordered](name string, value, min T, inclusive bool) error {
	if inclusive {
		if value < min {
			return newError(KindRangeViolation, name, nil,
				"unable to set %q to %q since it is less than %q", name, stringify(value), stringify(min))
		}
		return nil
	}
	if value <= min {
		return newError(KindRangeViolation, name, nil,
			"unable to set %q to %q since it is less than or equal to %q", name, stringify(value), stringify(min))
	}
	return nil
}

// isContainer reports whether rv is a value the checks can walk element-wise.
// Strings are deliberately excluded: a string is always a leaf.
func isContainer(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// lengthOf returns the length of a sized value.
func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}

package checkval

import (
	"reflect"
	"strings"
)

// Rep identifies either a concrete runtime representation of a value or a
// logical category tag that expands to a fixed set of concrete
// representations. The enumeration is closed: values whose representation is
// not listed here classify as Unsupported and match nothing.
type Rep uint8

const (
	Unsupported Rep = iota

	Bool
	String
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Slice
	Array
	Map

	// Category tags. Each expands to a set of concrete representations via
	// the lookup table below.
	Integral
	Real
	Iterable
)

var repNames = map[Rep]string{
	Unsupported: "unsupported",
	Bool:        "bool",
	String:      "string",
	Int:         "int",
	Int8:        "int8",
	Int16:       "int16",
	Int32:       "int32",
	Int64:       "int64",
	Uint:        "uint",
	Uint8:       "uint8",
	Uint16:      "uint16",
	Uint32:      "uint32",
	Uint64:      "uint64",
	Float32:     "float32",
	Float64:     "float64",
	Slice:       "slice",
	Array:       "array",
	Map:         "map",
	Integral:    "integral",
	Real:        "real",
	Iterable:    "iterable",
}

func (r Rep) String() string {
	if s, ok := repNames[r]; ok {
		return s
	}
	return "unsupported"
}

var integralReps = []Rep{
	Int, Int8, Int16, Int32, Int64,
	Uint, Uint8, Uint16, Uint32, Uint64,
}

// categoryReps expands each category tag to its concrete representations.
// An integer is a real number, so Real subsumes Integral.
var categoryReps = map[Rep][]Rep{
	Integral: integralReps,
	Real:     append(append([]Rep{}, integralReps...), Float32, Float64),
	Iterable: {Slice, Array},
}

// TypeSpec is a non-empty set of representation tags a value may conform to.
// Category tags expand before the membership test.
type TypeSpec []Rep

// String renders the spec for diagnostics, e.g. "int, float64". Category tags
// render under their own names, unexpanded.
func (s TypeSpec) String() string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}

// contains reports membership of r in the expanded spec.
func (s TypeSpec) contains(r Rep) bool {
	for _, t := range s {
		if t == r {
			return true
		}
		if reps, ok := categoryReps[t]; ok {
			for _, c := range reps {
				if c == r {
					return true
				}
			}
		}
	}
	return false
}

// RepOf classifies the concrete runtime representation of v. Named types
// classify by their underlying kind, so a `type Width float64` is Float64.
func RepOf(v any) Rep {
	if v == nil {
		return Unsupported
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return Bool
	case reflect.String:
		return String
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Slice:
		return Slice
	case reflect.Array:
		return Array
	case reflect.Map:
		return Map
	default:
		return Unsupported
	}
}

// Matches reports whether v's concrete representation is a member of spec
// after category expansion. Pure; an empty spec matches nothing.
func Matches(v any, spec TypeSpec) bool {
	return spec.contains(RepOf(v))
}

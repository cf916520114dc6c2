package checkval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a precondition violation.
type Kind string

const (
	KindTypeMismatch      Kind = "type_mismatch"
	KindLengthMismatch    Kind = "length_mismatch"
	KindValueNotAccepted  Kind = "value_not_accepted"
	KindRangeViolation    Kind = "range_violation"
	KindDepthTooShallow   Kind = "depth_too_shallow"
	KindDepthTooDeep      Kind = "depth_too_deep"
	KindUnexpectedElement Kind = "unexpected_element"
)

// Error describes a single precondition violation. Name is the diagnostic
// label the caller attached to the value under test; Path is set only for
// nested-shape violations and addresses the offending element from the outer
// container inward.
type Error struct {
	Name    string
	Kind    Kind
	Message string
	Path    []int
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds an Error with a formatted message. The message embeds the
// diagnostic name, so Error() needs no further assembly.
func newError(kind Kind, name string, path []int, format string, args ...any) *Error {
	return &Error{
		Name:    name,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	}
}

// AsError extracts a *Error from err using errors.As.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the violation kind carried by err, or the empty string when
// err is not a checkval error.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a checkval error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// stringify renders a checked value for embedding in a diagnostic message.
func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}

// FormatPath renders an element path as a bracketed index list, e.g. "[2, 0, 1]".
func FormatPath(path []int) string {
	b := &strings.Builder{}
	b.WriteByte('[')
	for i, idx := range path {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteByte(']')
	return b.String()
}

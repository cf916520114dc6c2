package checkval

import (
	"context"
	"log/slog"
	"reflect"
)

// diag receives nested-shape violation reports before they are returned to the
// caller. Nil means slog.Default().
var diag *slog.Logger

// SetDiagnosticLogger routes nested-shape violation reports to l. Passing nil
// restores slog.Default(). Intended for startup wiring, not for swapping while
// checks are in flight.
func SetDiagnosticLogger(l *slog.Logger) {
	diag = l
}

func diagnostics() *slog.Logger {
	if diag != nil {
		return diag
	}
	return slog.Default()
}

// frame is one level of the depth-first walk: a container and the index of the
// element currently under inspection.
type frame struct {
	container reflect.Value
	index     int
}

// CheckIterableType ensures value is a nested container whose leaves all
// conform to the expected type spec and sit at a containment depth within
// [minDepth, maxDepth], both inclusive and counted from 1.
//
// The walk is iterative over an explicit frame stack, depth-first and
// index-ascending, so arbitrarily deep nesting never risks the call stack and
// every violation carries an exact element path. Every violation is reported
// through the diagnostic logger at Error level and returned, halting the walk.
func CheckIterableType(name string, value any, expected TypeSpec, minDepth, maxDepth int) error {
	outer := reflect.ValueOf(value)
	if !isContainer(outer) {
		return newError(KindTypeMismatch, name, nil,
			"unable to set %q to %q which is not an iterable", name, stringify(value))
	}

	stack := []frame{{container: outer}}

	for stack[0].index != stack[0].container.Len() {
		top := &stack[len(stack)-1]

		// This level is exhausted; back up one level and advance past the
		// container we just finished.
		if top.index == top.container.Len() {
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].index++
			continue
		}

		path := currentPath(stack)
		item := top.container.Index(top.index).Interface()

		switch {
		case Matches(item, expected):
			// A leaf. It must already be deep enough.
			if len(stack) < minDepth {
				return report(newError(KindDepthTooShallow, name, path,
					"error setting %q: the item at %s does not meet the minimum depth of %d",
					name, FormatPath(path), minDepth))
			}
			top.index++

		case isContainerAny(item):
			// Descend. The new level must not overshoot the depth bound.
			stack = append(stack, frame{container: reflect.ValueOf(item)})
			if len(stack) > maxDepth {
				return report(newError(KindDepthTooDeep, name, path,
					"error setting %q: found an iterable at %s whose items exceed the maximum depth of %d",
					name, FormatPath(path), maxDepth))
			}

		default:
			return report(newError(KindUnexpectedElement, name, path,
				"error setting %q: items must be of type %q, but the item at %s is of type %q",
				name, expected.String(), FormatPath(path), RepOf(item).String()))
		}
	}
	return nil
}

// currentPath snapshots the index of every frame, outermost first.
func currentPath(stack []frame) []int {
	path := make([]int, len(stack))
	for i, f := range stack {
		path[i] = f.index
	}
	return path
}

func isContainerAny(v any) bool {
	if v == nil {
		return false
	}
	return isContainer(reflect.ValueOf(v))
}

// report logs the violation through the severity-tagged sink and hands it back
// for the caller to return.
func report(e *Error) *Error {
	diagnostics().LogAttrs(context.Background(), slog.LevelError, e.Message,
		slog.String("name", e.Name),
		slog.String("kind", string(e.Kind)),
		slog.String("path", FormatPath(e.Path)),
	)
	return e
}

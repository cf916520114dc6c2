// Package checkval provides the runtime precondition checks that guard entry
// into the simkit object model. Every exported setter in the toolkit routes
// its argument through one of the six free functions here before assignment:
//
//   - CheckType — type conformance, with an optional per-element check
//   - CheckLength — exact or ranged length of a sized value
//   - CheckValue — membership in an accepted set
//   - CheckLessThan / CheckGreaterThan — strict or inclusive ordering bounds
//   - CheckIterableType — leaf type and depth bounds of a nested container
//
// Expected types are expressed as TypeSpec sets of Rep tags. The category tags
// Integral, Real and Iterable expand to fixed sets of concrete
// representations, so "any integer" accepts every signed and unsigned width.
//
// All checks are pure functions over their arguments: nothing is cached,
// retained or mutated, so concurrent calls need no coordination. On success a
// check returns nil; on violation it returns a *Error carrying the diagnostic
// name, the violation Kind and, for nested-shape checks, the bracketed path of
// the offending element. Nested-shape violations are additionally reported
// through a severity-tagged slog sink (see SetDiagnosticLogger) before being
// returned.
//
//	if err := checkval.CheckGreaterThan("track spacing", spacing, 0.0, false); err != nil {
//		return err
//	}
package checkval

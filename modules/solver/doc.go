// Package solver carries the solver runtime settings: thread count, track
// layout, quadrature choice and convergence criteria. Settings are assigned
// through guarded setters backed by pkg/checkval and can be loaded from the
// environment via pkg/config.
package solver

// Package geometry carries the guarded geometry surface of the toolkit:
// axis-aligned cells and rectangular lattices whose setters validate their
// arguments with pkg/checkval before assignment.
package geometry

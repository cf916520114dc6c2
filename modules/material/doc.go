// Package material carries the multigroup material object model. Setters are
// guard-clause validated with pkg/checkval, and material decks load from YAML
// through the same setters, so an invalid deck fails with the exact field,
// constraint and material name.
package material

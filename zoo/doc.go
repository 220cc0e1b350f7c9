// Package zoo exercises interface-based polymorphism over a tiny creature
// hierarchy: a base Animal that introduces itself by name and age, Dog and
// Cat overriding the introduction, and a Zoo container that owns its animals
// and lists them in insertion order.
//
// Speak returns the identification text (including the trailing newline)
// instead of printing it, so callers decide where the output goes and tests
// compare plain strings.
package zoo

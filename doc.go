// Package showcase collects small, self-contained packages that each explore
// one idiomatic way to model data or dispatch behavior in Go:
//
//   - attr: a sealed tagged-value type (one of a fixed set of shapes) plus a
//     string-keyed lookup table that reports absence explicitly instead of faulting
//   - flatmap: a generic ordered map backed by parallel sorted slices, with
//     binary-search lookup and in-order iteration
//   - zoo: interface-based polymorphism over a tiny creature hierarchy and an
//     ordered owning container
//   - fib: eager bounded sequence generation, a doubling helper that is equally
//     valid as a constant expression, and division with explicit absence on a
//     zero divisor
//
// The goal is to keep each pattern explicit and testable: no shared state, no
// hidden wiring, every operation a plain value-in/value-out call.
//
// Runnable walkthroughs live under cmd/:
//   - cmd/attrdemo: tagged values, optional lookup, multi-return unpacking,
//     path metadata queries
//   - cmd/flatdemo: ordered maps, substring checks, constant vs runtime
//     evaluation, receiver-form dispatch
package showcase

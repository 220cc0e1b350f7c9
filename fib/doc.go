// Package fib provides eager, bounded Fibonacci sequence generation and two
// small arithmetic helpers: Double, whose body is equally valid as a constant
// expression, and SafeDiv, which reports a zero divisor as an explicit
// absence instead of faulting.
package fib

package fib

// First returns the first n Fibonacci numbers, starting 0, 1.
// n <= 0 yields an empty (non-nil) slice. Values beyond the 93rd overflow
// uint64 and wrap; callers wanting larger terms need math/big.
func First(n int) []uint64 {
	out := []uint64{}
	a, b := uint64(0), uint64(1)
	for len(out) < n {
		out = append(out, a)
		a, b = b, a+b
	}
	return out
}

// UpTo returns, eagerly, every Fibonacci number strictly below limit,
// starting 0, 1. UpTo(10) is {0, 1, 1, 2, 3, 5, 8}.
func UpTo(limit uint64) []uint64 {
	out := []uint64{}
	a, b := uint64(0), uint64(1)
	for a < limit {
		out = append(out, a)
		a, b = b, a+b
	}
	return out
}

// Doubled is Double's computation for the input 6, written as an untyped
// constant expression so it is folded at compile time and usable in const
// contexts. It must always agree with Double(6) at run time.
const Doubled = 2 * 6

// Double returns twice n. The body is a single constant-foldable expression,
// so the same computation is valid in a const declaration (see Doubled):
//
//	fib.Doubled   // evaluated at compile time
//	fib.Double(6) // evaluated at run time, same result
func Double(n int) int {
	return 2 * n
}

// SafeDiv returns a/b, or (0, false) when b is zero. Division by zero is an
// absence, never a fault.
func SafeDiv(a, b int) (int, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

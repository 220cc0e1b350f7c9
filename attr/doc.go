// Package attr models attribute values that hold exactly one of a fixed set
// of shapes (a whole number, a floating-point number, or a piece of text) and
// a lookup table over them.
//
// The Value interface is sealed: only Int, Float and Text implement it, so a
// type switch over a Value is exhaustive by construction. Lookups never
// fault — a missing key is an explicit absence:
//
//	if v, ok := attrs.Get("name"); ok {
//		fmt.Print(attr.Display(v))
//	}
//
// Typed accessors (GetInt, GetFloat, GetText) return typed errors in the
// missing and wrong-shape cases so callers can distinguish the two without
// string matching.
package attr

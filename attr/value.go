package attr

import "strconv"

// Kind identifies which shape a Value currently holds.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindText
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a tagged value: at any time it holds exactly one of a fixed set of
// alternative shapes, and the held shape is inspectable via Kind or a type
// switch.
//
// The interface is sealed by the unexported marker method, so Int, Float and
// Text are the only implementations and a type switch over the three of them
// is exhaustive.
type Value interface {
	// Kind reports the shape this value holds.
	Kind() Kind

	// String renders the held value as text.
	String() string

	// value seals the interface to this package's variants.
	value()
}

// Int holds a whole number.
type Int int64

// Float holds a floating-point number.
type Float float64

// Text holds a piece of text.
type Text string

func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }
func (Text) Kind() Kind  { return KindText }

func (v Int) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Text) String() string  { return string(v) }

func (Int) value()   {}
func (Float) value() {}
func (Text) value()  {}

// Display renders whichever shape v currently holds, one line per value.
//
// This is the runtime dispatch: the caller does not need to know the shape.
func Display(v Value) string {
	if v == nil {
		return "Value: <none>\n"
	}
	return "Value: " + v.String() + "\n"
}

// Describe names the shape v holds.
//
// The switch is exhaustive over the sealed variants; the nil branch exists
// only because an interface value can always be nil.
func Describe(v Value) string {
	switch v.(type) {
	case Int:
		return "It's an int.\n"
	case Float:
		return "It's a float.\n"
	case Text:
		return "It's a string.\n"
	default:
		return "It's nothing.\n"
	}
}

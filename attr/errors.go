package attr

import (
	"errors"
	"strconv"
)

// ErrLookupPanic is returned by Resolve if the lookup panics internally
// (for example when called on a nil table).
var ErrLookupPanic = errors.New("attr: panic during Resolve")

// MissingKeyError is returned by the typed accessors when a key is not
// present.
//
// It distinguishes "missing" from "wrong shape" (see WrongKindError).
type MissingKeyError struct{ Key string }

// Error implements the error interface.
func (e MissingKeyError) Error() string {
	// Example: attr: key "weight" missing
	return "attr: key " + strconv.Quote(e.Key) + " missing"
}

// WrongKindError is returned by the typed accessors when a key is present but
// its value holds a different shape than the one requested.
type WrongKindError struct {
	// Key is the key that was looked up.
	Key string

	// Want is the shape the accessor asked for.
	Want Kind

	// Got is the shape actually stored under Key.
	Got Kind
}

// Error implements the error interface.
func (e WrongKindError) Error() string {
	// Example: attr: key "weight" holds float, not int
	return "attr: key " + strconv.Quote(e.Key) + " holds " + e.Got.String() + ", not " + e.Want.String()
}

package attr

import (
	"fmt"
	"slices"
)

// Attrs is a lookup table from string keys to tagged values.
//
// It is intentionally:
// - in-memory only
// - side effect free
// - explicit about absence
//
// Expected usage:
//
//	val, ok := attrs.Get("some.key")
type Attrs struct {
	items map[string]Value
}

// New constructs an empty table.
func New() *Attrs {
	return &Attrs{items: map[string]Value{}}
}

// Provide stores a value under a key and returns the table for chaining.
// Providing an existing key replaces its value.
func (a *Attrs) Provide(key string, val Value) *Attrs {
	a.items[key] = val
	return a
}

// Get returns the value if present. A missing key is reported as
// (nil, false), never as a default value and never as a fault.
func (a *Attrs) Get(key string) (Value, bool) {
	v, ok := a.items[key]
	return v, ok
}

// Resolve behaves like Get but defensively converts internal panics into
// errors, so a misused table (nil receiver) degrades into an error value.
func (a *Attrs) Resolve(key string) (val Value, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrLookupPanic, rec)
		}
	}()

	v, ok := a.items[key]
	return v, ok, nil
}

// MustGet returns the value or panics with a helpful message.
// Useful in examples/tests where missing keys should fail fast.
func (a *Attrs) MustGet(key string) Value {
	v, ok := a.items[key]
	if !ok {
		panic(MissingKeyError{Key: key})
	}
	return v
}

// Len reports the number of stored keys.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Keys returns the stored keys in sorted order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, 0, len(a.items))
	for k := range a.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// GetInt returns the whole number stored under key.
//
// It returns:
//   - MissingKeyError if the key is not present
//   - WrongKindError if the key holds a different shape
//
// It avoids fmt.Errorf so the failure paths stay cheap when used for control
// flow.
func (a *Attrs) GetInt(key string) (int64, error) {
	v, ok := a.items[key]
	if !ok {
		return 0, MissingKeyError{Key: key}
	}
	i, ok := v.(Int)
	if !ok {
		return 0, WrongKindError{Key: key, Want: KindInt, Got: v.Kind()}
	}
	return int64(i), nil
}

// GetFloat returns the floating-point number stored under key.
// Errors follow the same contract as GetInt.
func (a *Attrs) GetFloat(key string) (float64, error) {
	v, ok := a.items[key]
	if !ok {
		return 0, MissingKeyError{Key: key}
	}
	f, ok := v.(Float)
	if !ok {
		return 0, WrongKindError{Key: key, Want: KindFloat, Got: v.Kind()}
	}
	return float64(f), nil
}

// GetText returns the text stored under key.
// Errors follow the same contract as GetInt.
func (a *Attrs) GetText(key string) (string, error) {
	v, ok := a.items[key]
	if !ok {
		return "", MissingKeyError{Key: key}
	}
	t, ok := v.(Text)
	if !ok {
		return "", WrongKindError{Key: key, Want: KindText, Got: v.Kind()}
	}
	return string(t), nil
}

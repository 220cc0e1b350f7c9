package attr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// New / Provide
// -----------------------------------------------------------------------------

// TestNew_Empty verifies New initializes a non-nil table with no keys.
func TestNew_Empty(t *testing.T) {
	t.Parallel()

	a := New()
	require.NotNil(t, a)
	assert.Equal(t, 0, a.Len())
}

// TestProvide_ChainsAndStores verifies Provide stores values and returns the
// same table for chaining.
func TestProvide_ChainsAndStores(t *testing.T) {
	t.Parallel()

	a := New()

	ret := a.Provide("id", Int(123)).Provide("name", Text("Alice"))
	require.Same(t, a, ret)

	id, ok := a.Get("id")
	require.True(t, ok)
	assert.Equal(t, Int(123), id)

	name, ok := a.Get("name")
	require.True(t, ok)
	assert.Equal(t, Text("Alice"), name)
}

// TestProvide_ReplacesExisting verifies providing an existing key replaces the
// value without growing the table.
func TestProvide_ReplacesExisting(t *testing.T) {
	t.Parallel()

	a := New().Provide("k", Int(1)).Provide("k", Float(2.5))

	require.Equal(t, 1, a.Len())
	got, ok := a.Get("k")
	require.True(t, ok)
	assert.Equal(t, Float(2.5), got)
}

//
// -----------------------------------------------------------------------------
// Get
// -----------------------------------------------------------------------------

// TestGet_Present verifies Get returns the exact stored value for an existing
// key.
func TestGet_Present(t *testing.T) {
	t.Parallel()

	a := New().Provide("weight", Float(68.5))
	got, ok := a.Get("weight")
	require.True(t, ok)
	assert.Equal(t, Float(68.5), got)
}

// TestGet_Missing verifies a missing key is an explicit absence, never a
// default value.
func TestGet_Missing(t *testing.T) {
	t.Parallel()

	a := New().Provide("weight", Float(68.5))
	got, ok := a.Get("height")
	assert.False(t, ok)
	assert.Nil(t, got)
}

//
// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// TestResolve_Present verifies Resolve returns the stored value and ok=true.
func TestResolve_Present(t *testing.T) {
	t.Parallel()

	a := New().Provide("k", Text("v"))

	val, ok, err := a.Resolve("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Text("v"), val)
}

// TestResolve_Missing verifies Resolve reports (nil, false, nil) for missing
// keys.
func TestResolve_Missing(t *testing.T) {
	t.Parallel()

	a := New()

	val, ok, err := a.Resolve("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

// TestResolve_RecoversFromPanic verifies Resolve converts internal panics into
// errors. A nil receiver panics when Resolve touches a.items.
func TestResolve_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	var a *Attrs // nil receiver

	val, ok, err := a.Resolve("k")

	require.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.True(t, errors.Is(err, ErrLookupPanic), "expected ErrLookupPanic wrapping, got: %v", err)
}

//
// -----------------------------------------------------------------------------
// MustGet
// -----------------------------------------------------------------------------

// TestMustGet_Present verifies MustGet returns the stored value.
func TestMustGet_Present(t *testing.T) {
	t.Parallel()

	a := New().Provide("k", Int(7))
	assert.Equal(t, Int(7), a.MustGet("k"))
}

// TestMustGet_Missing verifies MustGet panics with a helpful message when the
// key is missing.
func TestMustGet_Missing(t *testing.T) {
	t.Parallel()

	a := New()

	require.PanicsWithError(t, `attr: key "missing" missing`, func() {
		_ = a.MustGet("missing")
	})
}

//
// -----------------------------------------------------------------------------
// Len / Keys
// -----------------------------------------------------------------------------

// TestKeys_Sorted verifies Keys returns the stored keys in sorted order and a
// nil table yields no keys.
func TestKeys_Sorted(t *testing.T) {
	t.Parallel()

	a := New().
		Provide("weight", Float(68.5)).
		Provide("id", Int(123)).
		Provide("name", Text("Alice"))

	assert.Equal(t, []string{"id", "name", "weight"}, a.Keys())

	var nilAttrs *Attrs
	assert.Nil(t, nilAttrs.Keys())
	assert.Equal(t, 0, nilAttrs.Len())
}

//
// -----------------------------------------------------------------------------
// Typed accessors
// -----------------------------------------------------------------------------

// TestTypedAccessors_Success verifies each accessor unwraps its own shape.
func TestTypedAccessors_Success(t *testing.T) {
	t.Parallel()

	a := New().
		Provide("id", Int(123)).
		Provide("name", Text("Alice")).
		Provide("weight", Float(68.5))

	id, err := a.GetInt("id")
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)

	name, err := a.GetText("name")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	weight, err := a.GetFloat("weight")
	require.NoError(t, err)
	assert.Equal(t, 68.5, weight)
}

// TestTypedAccessors_Missing verifies a missing key yields MissingKeyError
// with key context.
func TestTypedAccessors_Missing(t *testing.T) {
	t.Parallel()

	a := New()

	_, err := a.GetInt("id")
	require.Error(t, err)

	var mk MissingKeyError
	require.True(t, errors.As(err, &mk))
	assert.Equal(t, "id", mk.Key)
	assert.Equal(t, `attr: key "id" missing`, err.Error())
}

// TestTypedAccessors_WrongKind verifies a shape mismatch yields WrongKindError
// carrying both the requested and the stored shape.
func TestTypedAccessors_WrongKind(t *testing.T) {
	t.Parallel()

	a := New().Provide("name", Text("Alice"))

	_, err := a.GetInt("name")
	require.Error(t, err)

	var wk WrongKindError
	require.True(t, errors.As(err, &wk))
	assert.Equal(t, "name", wk.Key)
	assert.Equal(t, KindInt, wk.Want)
	assert.Equal(t, KindText, wk.Got)
	assert.Equal(t, `attr: key "name" holds text, not int`, err.Error())
}

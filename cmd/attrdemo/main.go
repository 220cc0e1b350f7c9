// Command attrdemo walks through the attr package: tagged values, optional
// lookup, multi-return unpacking, and a couple of path metadata queries.
//
// It takes no arguments, prints to stdout, and always exits 0.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sghaida/showcase/attr"
)

// tupleData returns three values of different types in one call; the caller
// unpacks them into separate variables at the call site.
func tupleData() (int, float64, string) {
	return 42, 3.14, "hello"
}

// describePath reports existence and file-vs-directory for a path using only
// metadata queries.
func describePath(path string) string {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return fmt.Sprintf("%s: does not exist", path)
	case info.IsDir():
		return fmt.Sprintf("%s: directory", path)
	default:
		return fmt.Sprintf("%s: file", path)
	}
}

func main() {
	/*
		1) Provide(): build the attribute table.
		Each value is one of the sealed shapes: Int, Float or Text.
	*/
	attrs := attr.New().
		Provide("id", attr.Int(123)).
		Provide("name", attr.Text("Alice")).
		Provide("weight", attr.Float(68.5))

	/*
		2) Get(): optional lookup.
		A present key yields the stored value; a missing key is an explicit
		absence, not a fault.
	*/
	if v, ok := attrs.Get("name"); ok {
		fmt.Print(attr.Display(v))
	} else {
		fmt.Println("Attribute not found")
	}

	if _, ok := attrs.Get("height"); !ok {
		fmt.Println("Attribute not found")
	}

	/*
		3) Multi-return unpacking.
		One call, three typed variables.
	*/
	a, b, c := tupleData()
	fmt.Printf("Tuple unpacked: %d, %g, %s\n", a, b, c)

	/*
		4) Path metadata queries.
		Only existence and file-vs-directory checks; nothing is read or
		written.
	*/
	if cwd, err := os.Getwd(); err == nil {
		fmt.Printf("Current path: %q\n", cwd)
	}
	fmt.Println(describePath(string(os.PathSeparator) + "tmp"))
	fmt.Println(describePath("no-such-path"))

	/*
		5) Describe(): name the shape a value holds.
		The type switch behind Describe is exhaustive over the sealed
		variants.
	*/
	fmt.Print(attr.Describe(attrs.MustGet("weight")))

	/*
		6) Typed accessors and their typed errors.
		GetInt on a text value reports the shape mismatch with key context;
		a missing key is a distinct error type.
	*/
	if _, err := attrs.GetInt("name"); err != nil {
		var wk attr.WrongKindError
		if errors.As(err, &wk) {
			fmt.Printf("GetInt wrong shape: key=%q got=%s\n", wk.Key, wk.Got)
		}
	}

	if _, err := attrs.GetFloat("height"); err != nil {
		var mk attr.MissingKeyError
		if errors.As(err, &mk) {
			fmt.Printf("GetFloat missing: key=%q\n", mk.Key)
		}
	}

	/*
		7) Resolve(): panic-safe lookup.
		A nil table degrades into ErrLookupPanic instead of crashing.
	*/
	var nilAttrs *attr.Attrs
	if _, _, err := nilAttrs.Resolve("id"); errors.Is(err, attr.ErrLookupPanic) {
		fmt.Println("Resolve on nil table => ErrLookupPanic")
	}
}

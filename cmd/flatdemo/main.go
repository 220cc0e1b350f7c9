// Command flatdemo walks through the flatmap package plus a few small
// dispatch and evaluation patterns: substring containment, constant vs
// runtime evaluation of the same expression, receiver-form method dispatch,
// and bounded Fibonacci generation.
//
// It takes no arguments, prints to stdout, and always exits 0.
package main

import (
	"fmt"
	"strings"

	"github.com/sghaida/showcase/fib"
	"github.com/sghaida/showcase/flatmap"
)

// box demonstrates how the receiver form decides what a method may observe
// and mutate: a value receiver works on a copy, a pointer receiver on the
// original.
type box struct {
	value int
}

// Value reads through a copy of the box.
func (b box) Value() int { return b.value }

// Set mutates the original box.
func (b *box) Set(v int) { b.value = v }

func main() {
	/*
		1) Ordered flat map.
		Insertion order is Alice, Bob, Charlie but iteration is always in
		ascending key order over contiguous storage.
	*/
	ages := flatmap.New[string, int]()
	ages.Set("Alice", 30)
	ages.Set("Bob", 25)
	ages.Set("Charlie", 35)

	fmt.Println("Ages in flat map:")
	for name, age := range ages.All() {
		fmt.Printf("  %s: %d\n", name, age)
	}

	if age, ok := ages.Get("Bob"); ok {
		fmt.Printf("Bob is %d\n", age)
	}

	/*
		2) Substring containment.
	*/
	sentence := "The quick brown fox jumps over the lazy dog."
	if strings.Contains(sentence, "fox") {
		fmt.Println("Sentence contains 'fox'.")
	}
	if !strings.Contains(sentence, "cat") {
		fmt.Println("Sentence does not contain 'cat'.")
	}

	/*
		3) Constant vs runtime evaluation.
		The doubling expression is valid in a const declaration, where it is
		folded at compile time, and as a function call at run time. Both must
		agree.
	*/
	fmt.Printf("doubled at compile time: %d\n", fib.Doubled)
	fmt.Printf("doubled at run time:     %d\n", fib.Double(6))

	/*
		4) Receiver-form dispatch.
		Value() sees a copy; Set() reaches the original through the pointer.
	*/
	bx := box{value: 100}
	fmt.Printf("box.Value(): %d\n", bx.Value())
	bx.Set(200)
	fmt.Printf("box.Value() after Set(200): %d\n", bx.Value())

	/*
		5) Bounded Fibonacci generation, eagerly.
	*/
	fmt.Printf("first 5 Fibonacci numbers: %v\n", fib.First(5))
	fmt.Printf("Fibonacci numbers below 10: %v\n", fib.UpTo(10))

	/*
		6) Division with explicit absence.
	*/
	if _, ok := fib.SafeDiv(1, 0); !ok {
		fmt.Println("1/0 has no result")
	}
}

// Package bindings covers named values: declaration, mutability, scope,
// shadowing and freezing while borrowed.
package bindings

import (
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/ownership"
	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the bindings topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "bindings",
		Title: "Variable bindings, mutability, scope and shadowing",
		Group: "Basics",
		Sections: []tour.Section{
			{Title: "Bindings — literals and the blank identifier", Run: demoLiterals},
			{Title: "Bindings — mutability", Run: demoMutability},
			{Title: "Bindings — scope and shadowing", Run: demoShadowing},
			{Title: "Bindings — zero values", Run: demoZeroValues},
			{Title: "Bindings — freezing", Run: demoFreezing},
		},
	}
}

// demoLiterals binds a few literal values. The empty struct is Go's unit
// value: it carries no data and occupies no memory.
func demoLiterals(w io.Writer) {
	anInteger := uint32(1)
	aBoolean := true
	unit := struct{}{}

	copiedInteger := anInteger // plain copy

	fmt.Fprintln(w, "  An integer:", copiedInteger)
	fmt.Fprintln(w, "  A boolean:", aBoolean)
	fmt.Fprintf(w, "  Meet the unit value: %v\n", unit)

	// An unused local is a compile error in Go, not a warning.
	// The blank identifier discards a value on purpose.
	_ = uint32(3)
}

// demoMutability contrasts constants, which can never be reassigned, with
// variables.
func demoMutability(w io.Writer) {
	const immutableBinding = 1
	mutableBinding := 1

	fmt.Fprintln(w, "  Before mutation:", mutableBinding)
	mutableBinding++
	fmt.Fprintln(w, "  After mutation:", mutableBinding)

	// immutableBinding++  ← cannot assign to immutableBinding (constant)
	_ = immutableBinding
}

// demoShadowing shows block scope. An inner := declares a new variable that
// shadows the outer one until the block ends, and may change its type.
func demoShadowing(w io.Writer) {
	longLived := 1

	{
		shortLived := 2
		fmt.Fprintln(w, "  inner short:", shortLived)

		longLived := float32(5) // new variable, new type
		fmt.Fprintln(w, "  inner long:", longLived)
	}

	// fmt.Println(shortLived)  ← undefined: shortLived

	fmt.Fprintln(w, "  outer long:", longLived)

	// Redeclaring longLived in the same block is not allowed
	// ("no new variables on left side of :="), so the next shadow
	// needs a block of its own.
	{
		longLived := 'a'
		fmt.Fprintf(w, "  outer long: %c\n", longLived)
	}
}

// demoZeroValues shows that Go has no uninitialized variables: a declared
// variable always holds the zero value of its type.
func demoZeroValues(w io.Writer) {
	initialized := 1

	var (
		n int
		s string
		p *int
	)
	fmt.Fprintln(w, "  initialized:", initialized)
	fmt.Fprintf(w, "  zero values: int=%d string=%q pointer=%v\n", n, s, p)
}

// demoFreezing shows that data borrowed immutably is frozen: writes fail
// until the borrow ends.
func demoFreezing(w io.Writer) {
	mutableInteger := ownership.NewCell(int32(7))

	{
		largeInteger := ownership.Must(mutableInteger.Borrow())

		err := mutableInteger.Set(50) // frozen: rejected, value unchanged
		fmt.Fprintln(w, "  Immutably borrowed:", largeInteger.Get())
		fmt.Fprintln(w, "  write while borrowed:", err)

		largeInteger.Release() // the borrow ends here
	}

	if err := mutableInteger.Set(3); err != nil {
		panic(err)
	}
	fmt.Fprintln(w, "  after the borrow ends:", ownership.Must(mutableInteger.Get()))
}

// Package functions covers declarations, parameters and return values.
package functions

import (
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the functions topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "functions",
		Title: "Functions, parameters and return values",
		Group: "Basics",
		Sections: []tour.Section{
			{Title: "Functions — parameters", Run: demoParameters},
			{Title: "Functions — statements and expressions", Run: demoExpressions},
			{Title: "Functions — return values", Run: demoReturns},
		},
	}
}

// Every parameter carries its type; adjacent parameters of the same type
// may share it (func f(a, b int)).
func anotherFunction(w io.Writer, x int, unitLabel rune) {
	fmt.Fprintf(w, "  The value of x is: %d%c\n", x, unitLabel)
}

func demoParameters(w io.Writer) {
	fmt.Fprintln(w, "  Hello from functions!")
	anotherFunction(w, 5, 'h')
}

// demoExpressions shows that Go blocks are statements, not expressions. The
// nearest equivalent of a block that yields a value is an immediately
// invoked function literal.
func demoExpressions(w io.Writer) {
	x := 5
	y := func() int {
		x := 3 // shadows the outer x inside the literal only
		return x + 1
	}()

	fmt.Fprintln(w, "  The value of y is:", y)
	fmt.Fprintln(w, "  The outer x is still:", x)
}

func five() int { return 5 }

func plusOne(x int) int { return x + 1 }

// divMod returns two values; callers must take both or discard one with _.
func divMod(a, b int) (q, r int) {
	q = a / b
	r = a % b
	return
}

func demoReturns(w io.Writer) {
	fmt.Fprintln(w, "  The value of five is:", five())
	fmt.Fprintln(w, "  The value of plusOne(5) is:", plusOne(5))

	q, r := divMod(17, 5)
	fmt.Fprintf(w, "  divMod(17, 5) = %d, %d\n", q, r)
}

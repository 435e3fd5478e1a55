// Package controlflow covers if/else, the three shapes of for, and ranging
// over fixed sequences.
package controlflow

import (
	"fmt"
	"io"
	"slices"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the control-flow topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "controlflow",
		Title: "Branches and loops",
		Group: "Basics",
		Sections: []tour.Section{
			{Title: "Control flow — if / else", Run: demoIf},
			{Title: "Control flow — loop yielding a value", Run: demoLoop},
			{Title: "Control flow — conditional loop", Run: demoWhile},
			{Title: "Control flow — ranging over a sequence", Run: demoRange},
		},
	}
}

// demoIf shows that if is a statement in Go. To pick a value, declare it
// first and assign in each branch; the compiler checks both assignments
// have the variable's type.
func demoIf(w io.Writer) {
	number := 3
	if number < 5 {
		fmt.Fprintln(w, "  condition was true")
	} else {
		fmt.Fprintln(w, "  condition was false")
	}

	condition := true
	var value int
	if condition {
		value = 5
	} else {
		value = 6
		// value = "six"  ← cannot use "six" (untyped string constant) as int value
	}
	fmt.Fprintln(w, "  The value of number is:", value)
}

// LoopUntil spins an unconditional for until counter reaches limit and
// returns counter*2, the value the loop "breaks with".
func LoopUntil(limit int) int {
	counter := 0
	var result int
	for {
		counter++
		if counter >= limit {
			result = counter * 2
			break
		}
	}
	return result
}

func demoLoop(w io.Writer) {
	fmt.Fprintln(w, "  The result of loop is:", LoopUntil(10))

	// A labeled break leaves an outer loop from inside an inner one.
	found := -1
outer:
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i*j == 6 {
				found = i*10 + j
				break outer
			}
		}
	}
	fmt.Fprintln(w, "  labeled break found i*j == 6 at", found)
}

// Countdown returns from, from-1, ..., 1 using a condition-only for,
// Go's spelling of while. It returns nil for from <= 0.
func Countdown(from int) []int {
	var out []int
	n := from
	for n > 0 {
		out = append(out, n)
		n--
	}
	return out
}

func demoWhile(w io.Writer) {
	for _, n := range Countdown(3) {
		fmt.Fprintf(w, "  %d!\n", n)
	}
	fmt.Fprintln(w, "  LIFTOFF!!!")
}

// demoRange iterates a fixed array forwards, then a range backwards.
func demoRange(w io.Writer) {
	a := [5]int{10, 20, 30, 40, 50}
	for _, element := range a {
		fmt.Fprintln(w, "  The value is:", element)
	}

	// There is no reversed range; walk the index down or use slices.Backward.
	nums := []int{1, 2, 3}
	for _, n := range slices.Backward(nums) {
		fmt.Fprintf(w, "  %d!\n", n)
	}
	fmt.Fprintln(w, "  LIFTOFF!!!")
}

// Package closures covers function literals and what they capture.
package closures

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the closures topic. delay is how long the "expensive"
// closure pretends to work.
func Topic(delay time.Duration) tour.Topic {
	return tour.Topic{
		Name:  "closures",
		Title: "Closures, captures and higher-order functions",
		Group: "Advanced",
		Sections: []tour.Section{
			{Title: "Closures — defining and calling", Run: func(w io.Writer) { demoExpensive(w, delay) }},
			{Title: "Closures — capturing by reference", Run: demoCaptureRef},
			{Title: "Closures — capturing a snapshot", Run: demoCaptureValue},
			{Title: "Closures — call at most once", Run: demoOnce},
			{Title: "Closures — mapping over a slice", Run: demoMap},
		},
	}
}

func demoExpensive(w io.Writer, delay time.Duration) {
	expensive := func(num int) int {
		fmt.Fprintln(w, "  calculating slowly...")
		time.Sleep(delay)
		return num
	}

	intensity := 10
	if intensity < 25 {
		fmt.Fprintf(w, "  Today, do %d pushups!\n", expensive(intensity))
	} else {
		fmt.Fprintf(w, "  Today, take %d breaks!\n", expensive(intensity))
	}
}

// demoCaptureRef shows that a Go closure captures variables, not values:
// it sees later writes and can make its own.
func demoCaptureRef(w io.Writer) {
	x := 4
	equalToX := func(z int) bool { return z == x }
	y := 4
	fmt.Fprintln(w, "  equalToX(4):", equalToX(y))

	x = 5 // the closure sees this
	fmt.Fprintln(w, "  after x = 5, equalToX(4):", equalToX(y))

	// A closure that writes to its capture: each call advances the counter.
	count := 0
	inc := func() int { count++; return count }
	inc()
	inc()
	fmt.Fprintln(w, "  counter after two calls:", count)
}

// demoCaptureValue forces an owned snapshot: copy into a fresh variable (or
// a parameter) and capture that. Later changes to the original are invisible.
func demoCaptureValue(w io.Writer) {
	x := []int{1, 2, 3}
	snapshot := slices.Clone(x)
	equalToX := func(z []int) bool { return slices.Equal(z, snapshot) }

	x[0] = 99 // does not touch the closure's copy
	y := []int{1, 2, 3}
	fmt.Fprintln(w, "  equalToX([1 2 3]):", equalToX(y))
	fmt.Fprintln(w, "  original now:", x)
}

// Apply calls f and returns its result.
func Apply[R any](f func() R) R { return f() }

// ApplyOnce wraps f so that it runs at most once; later calls return the
// first result without running f again.
func ApplyOnce[R any](f func() R) func() R { return sync.OnceValue(f) }

func demoOnce(w io.Writer) {
	greeting := "hello"
	closureWithMove := func() int {
		fmt.Fprintln(w, " ", greeting)
		return 42
	}
	fmt.Fprintln(w, "  Closure result:", Apply(closureWithMove))

	once := ApplyOnce(closureWithMove)
	a, b := once(), once() // greeting printed only once
	fmt.Fprintln(w, "  once, twice:", a, b)
}

// Map applies f to each element of s and returns the results in order.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

func demoMap(w io.Writer) {
	v1 := []int{1, 2, 3}
	v2 := Map(v1, func(x int) int { return x + 1 })
	fmt.Fprintln(w, "  v2:", v2)

	// A method value is a closure over its receiver.
	title := cases.Title(language.English)
	words := Map([]string{"hello", "closure", "world"}, title.String)
	fmt.Fprintln(w, "  titled:", words)
}

// Package generics covers type parameters on functions and types,
// constraints, and methods tied to one instantiation.
package generics

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the generics topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "generics",
		Title: "Type parameters, constraints and instantiation",
		Group: "Advanced",
		Sections: []tour.Section{
			{Title: "Generics — functions with constraints", Run: demoLargest},
			{Title: "Generics — types with one and two parameters", Run: demoPoints},
			{Title: "Generics — methods on one instantiation", Run: demoDistance},
			{Title: "Generics — Result[T]", Run: demoResult},
		},
	}
}

// ── Ordered union constraint ──────────────────────────────────────────────────
// T must be one of the listed types (or a type defined on one of them, via ~),
// which is what makes < and > legal inside Largest. The standard library
// ships the same set as cmp.Ordered.
//
// There is no separate "copyable" bound: every Go value can be copied.

type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Largest returns the greatest element of list. Like indexing an empty
// slice, calling it with no elements panics.
func Largest[T Ordered](list []T) T {
	if len(list) == 0 {
		panic("generics: Largest of empty slice")
	}
	largest := list[0]
	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest
}

func demoLargest(w io.Writer) {
	numberList := []int{34, 50, 25, 100, 65}
	fmt.Fprintln(w, "  The largest number is", Largest(numberList))

	charList := []rune{'y', 'm', 'a', 'q'}
	fmt.Fprintf(w, "  The largest char is %c\n", Largest(charList))
}

// ── Generic types ────────────────────────────────────────────────────────────

// Point has both coordinates of the same type T.
type Point[T any] struct {
	X, Y T
}

// GetX is defined for every instantiation of Point.
func (p Point[T]) GetX() T { return p.X }

// PointMix lets each coordinate pick its own type.
type PointMix[T, U any] struct {
	X T
	Y U
}

func demoPoints(w io.Writer) {
	integer := Point[int]{X: 5, Y: 10}
	float := Point[float64]{X: 1.0, Y: 4.0}
	fmt.Fprintf(w, "  Integer Point: %+v\n", integer)
	fmt.Fprintf(w, "  Float Point: %+v\n", float)

	p := PointMix[int, float64]{X: 5, Y: 10.4}
	fmt.Fprintf(w, "  Mixed Point: %+v\n", p)

	fmt.Fprintln(w, "  integer.GetX() =", integer.GetX())

	// Both fields share T, so they cannot disagree:
	// Point[int]{X: 5, Y: 4.5}  ← cannot use 4.5 (untyped float constant) as int value (truncated)
}

// ── Methods on one instantiation ─────────────────────────────────────────────
//
// A method cannot be declared only for Point[float32]:
//
//	func (p Point[float32]) DistanceFromOrigin() float32  // float32 here is a NEW type parameter name
//
// A plain function whose parameter is the concrete instantiation gives the
// same guarantee: it only accepts Point[float32].

func DistanceFromOrigin(p Point[float32]) float32 {
	return float32(math.Sqrt(float64(p.X*p.X + p.Y*p.Y)))
}

func demoDistance(w io.Writer) {
	float := Point[float32]{X: 1.0, Y: 4.0}
	fmt.Fprintln(w, "  Distance from origin:", DistanceFromOrigin(float))

	// DistanceFromOrigin(Point[int]{X: 1, Y: 4})  ← cannot use Point[int] as Point[float32]

	// Go compiles one copy of generic code per memory shape rather than per
	// type; pointer-shaped type arguments share an implementation.
}

// ── Result[T] ────────────────────────────────────────────────────────────────
// A generic sum of "value or error". Ordinary Go code returns (T, error);
// Result is handy when outcomes are stored or sent over a channel.

type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T]      { return Result[T]{Value: v} }
func Err[T any](e error) Result[T] { return Result[T]{Err: e} }

func (r Result[T]) IsOk() bool { return r.Err == nil }

// Unwrap returns the value, panicking on an error result.
func (r Result[T]) Unwrap() T {
	if r.Err != nil {
		panic(r.Err)
	}
	return r.Value
}

func demoResult(w io.Writer) {
	results := []Result[int]{Ok(42), Err[int](errors.New("not found"))}
	for _, r := range results {
		if r.IsOk() {
			fmt.Fprintln(w, "  Ok:", r.Unwrap())
			continue
		}
		fmt.Fprintln(w, "  Err:", r.Err)
	}
}

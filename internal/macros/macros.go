// Package macros covers code that builds code. Go has no syntactic macros;
// variadic generic functions give the same call-site convenience, and
// go:generate plus struct tags cover most of what derive-style expansion
// is used for.
package macros

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the macros topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "macros",
		Title: "Sequence builders, code generation and struct tags",
		Group: "Advanced",
		Sections: []tour.Section{
			{Title: "Macros — building a sequence from arguments", Run: demoVecOf},
			{Title: "Macros — building a map from pairs", Run: demoMapOf},
			{Title: "Macros — generated code and struct tags", Run: demoTags},
		},
	}
}

// VecOf returns its arguments as a new slice, in argument order. With no
// arguments it returns an empty, non-nil slice.
func VecOf[T any](xs ...T) []T {
	v := make([]T, 0, len(xs))
	for _, x := range xs {
		v = append(v, x)
	}
	return v
}

// Pair is one key/value argument to MapOf.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// KV builds a Pair.
func KV[K comparable, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Val: v} }

// MapOf builds a map from pairs. A repeated key keeps its last value.
func MapOf[K comparable, V any](pairs ...Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Val
	}
	return m
}

func demoVecOf(w io.Writer) {
	v := VecOf(1, 2, 3)
	fmt.Fprintln(w, "  VecOf(1, 2, 3):", v)

	v2 := VecOf[int]()
	fmt.Fprintf(w, "  VecOf[int](): %v (len %d, nil %t)\n", v2, len(v2), v2 == nil)

	words := VecOf("a", "b")
	fmt.Fprintf(w, "  VecOf(\"a\", \"b\"): %q\n", words)
}

func demoMapOf(w io.Writer) {
	m := MapOf(KV("one", 1), KV("two", 2), KV("one", 11))
	fmt.Fprintln(w, "  MapOf:", m) // fmt prints maps in key order
}

// ── Generated code ───────────────────────────────────────────────────────────
//
// Go writes generated code to ordinary source files, driven by directives
// such as
//
//	//go:generate stringer -type=Kind
//
// which `go generate` runs on request. The output is checked in and
// compiled like any other file.

// Manifest gets its wire form from struct tags; the encoder reads them via
// reflection at run time, where a derive macro would expand at compile time.
type Manifest struct {
	Name    string   `yaml:"name"`
	Retries int      `yaml:"retries,omitempty"`
	Tags    []string `yaml:"tags,flow"`
}

func demoTags(w io.Writer) {
	out, err := yaml.Marshal(Manifest{Name: "tour", Tags: VecOf("basics", "advanced")})
	if err != nil {
		panic(err)
	}
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		fmt.Fprintln(w, " ", line)
	}
}

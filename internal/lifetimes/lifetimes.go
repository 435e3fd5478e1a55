// Package lifetimes covers what reference lifetimes become in a garbage
// collected language: returning one of two inputs, structs that hold a
// reference into other data, and values that live for the whole program.
//
// Go has no lifetime annotations. A reference keeps its target alive for as
// long as it is reachable, so none of these functions can dangle.
package lifetimes

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the lifetimes topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "lifetimes",
		Title: "References, their validity and the garbage collector",
		Group: "Advanced",
		Sections: []tour.Section{
			{Title: "Lifetimes — returning one of two references", Run: demoLongest},
			{Title: "Lifetimes — structs holding a reference", Run: demoExcerpt},
			{Title: "Lifetimes — program-lifetime values", Run: demoStatic},
			{Title: "Lifetimes — with type parameters", Run: demoAnnounce},
		},
	}
}

// Longest returns the longer of x and y, measured in bytes. On a tie it
// returns y.
//
// In a borrow-checked language the result would be valid only as long as
// the shorter-lived input. Here it is simply a string header pointing into
// whichever input won; the GC keeps that data alive.
func Longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}

func demoLongest(w io.Writer) {
	string1 := "long string is long"
	var result string
	{
		string2 := "xyz"
		result = Longest(string1, string2)
	}
	// string2 is out of scope, yet result is still safe to use here.
	fmt.Fprintln(w, "  The longest string is", result)
}

// ImportantExcerpt holds a substring of some larger text. The substring
// shares the larger text's memory, so the whole text stays alive while the
// excerpt does.
type ImportantExcerpt struct {
	Part string
}

// FirstSentence returns the text before the first '.', or all of text if it
// has none.
func FirstSentence(text string) string {
	before, _, _ := strings.Cut(text, ".")
	return before
}

// Level has no reference inputs or outputs; nothing to relate.
func (e ImportantExcerpt) Level() int { return 3 }

// AnnounceAndReturnPart prints announcement and returns the excerpt.
func (e ImportantExcerpt) AnnounceAndReturnPart(w io.Writer, announcement string) string {
	fmt.Fprintln(w, "  Attention please:", announcement)
	return e.Part
}

func demoExcerpt(w io.Writer) {
	novel := "Call me Ishmael. Some years ago..."
	i := ImportantExcerpt{Part: FirstSentence(novel)}
	fmt.Fprintf(w, "  ImportantExcerpt: %+v\n", i)
	fmt.Fprintln(w, "  level:", i.Level())
	fmt.Fprintln(w, "  part:", i.AnnounceAndReturnPart(w, "here it comes"))

	// To let the big text be collected while keeping the excerpt, copy it.
	detached := ImportantExcerpt{Part: strings.Clone(i.Part)}
	fmt.Fprintln(w, "  detached copy equal:", detached == i)
}

// static lives for the whole program, like every string literal.
const static = "I have a static lifetime."

func demoStatic(w io.Writer) {
	fmt.Fprintln(w, " ", static)
}

// LongestWithAnnouncement combines a type parameter with the reference
// question above. T only needs to be printable, and everything is.
func LongestWithAnnouncement[T any](w io.Writer, x, y string, ann T) string {
	fmt.Fprintf(w, "  Announcement! %v\n", ann)
	return Longest(x, y)
}

func demoAnnounce(w io.Writer) {
	string1 := "long string is long"
	result := LongestWithAnnouncement(w, string1, "short", "Today's news")
	fmt.Fprintln(w, "  The longest string with announcement is:", result)
}

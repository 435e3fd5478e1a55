// Package ownership walks through moves, clones, copies and borrowing.
//
// Go has neither move semantics nor a borrow checker: assignment copies,
// and the garbage collector keeps shared data alive. Owned and Cell
// simulate both rules at runtime so the tour can show what the rules
// allow and what they reject.
package ownership

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the ownership topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "ownership",
		Title: "Moves, clones, copies and borrowing",
		Group: "Basics",
		Sections: []tour.Section{
			{Title: "Ownership — scope and drop", Run: demoScope},
			{Title: "Ownership — move", Run: demoMove},
			{Title: "Ownership — clone", Run: demoClone},
			{Title: "Ownership — copy of small values", Run: demoCopy},
			{Title: "Ownership — functions", Run: demoFunctions},
			{Title: "Borrowing — shared and exclusive", Run: demoBorrowing},
			{Title: "Borrowing — dangling references", Run: demoDangling},
		},
	}
}

// demoScope shows that a value lives until the end of its block. defer is
// the closest Go gets to a destructor: it runs when the function returns.
func demoScope(w io.Writer) {
	func() {
		s := "hello" // s is valid from here on
		defer fmt.Fprintln(w, "  (s dropped at end of scope)")
		fmt.Fprintln(w, " ", s)
	}() // s is gone after this point

	// A growable buffer is the heap-allocated counterpart of a string literal.
	s := Own([]byte("hello"))
	buf := Must(s.Get())
	buf = append(buf, ", world!"...)
	fmt.Fprintln(w, " ", string(buf))
}

// demoMove shows that assigning an owned value transfers it: the source is
// left empty and any later use fails.
func demoMove(w io.Writer) {
	s1 := Own([]byte("hello"))
	s2 := Must(s1.Move())

	// fmt.Println(s1)  ← in a borrow-checked language this does not compile.
	_, err := s1.Get()
	fmt.Fprintf(w, "  s1 after move: %v\n", err)
	fmt.Fprintln(w, "  s2 =", string(Must(s2.Get())))
}

// demoClone shows an explicit deep copy: both owners keep independent data.
func demoClone(w io.Writer) {
	s1 := Own([]byte("hello"))
	s2 := Must(s1.Clone(bytes.Clone))

	b := Must(s2.Get())
	b[0] = 'j' // touches s2's copy only

	fmt.Fprintf(w, "  s1 = %s, s2 = %s\n", Must(s1.Get()), b)
}

// demoCopy shows that fixed-size values are copied bit for bit: both
// bindings stay usable and no ownership is involved.
func demoCopy(w io.Writer) {
	x := 5
	y := x
	fmt.Fprintf(w, "  x = %d, y = %d\n", x, y)
}

// ── Ownership into and out of functions ───────────────────────────────────────

// takesOwnership consumes s: when it returns the value is dropped.
func takesOwnership(w io.Writer, s *Owned[[]byte]) {
	mine := Must(s.Move())
	defer mine.Drop()
	fmt.Fprintln(w, " ", string(Must(mine.Get())))
}

// makesCopy receives a copy; the caller's int is untouched.
func makesCopy(w io.Writer, n int) {
	fmt.Fprintln(w, " ", n)
}

// givesOwnership hands a freshly created value to the caller.
func givesOwnership() *Owned[[]byte] {
	return Own([]byte("yours"))
}

// takesAndGivesBack moves s in and straight back out.
func takesAndGivesBack(s *Owned[[]byte]) *Owned[[]byte] {
	return Must(s.Move())
}

func demoFunctions(w io.Writer) {
	s := Own([]byte("hello"))
	takesOwnership(w, s)
	fmt.Fprintln(w, "  s still valid after takesOwnership:", s.Valid())

	x := 5
	makesCopy(w, x)
	fmt.Fprintln(w, "  x still usable after makesCopy:", x)

	s1 := givesOwnership()
	s2 := Own([]byte("hello"))
	s3 := takesAndGivesBack(s2)
	fmt.Fprintf(w, "  s1: %s, s3: %s\n", Must(s1.Get()), Must(s3.Get()))
	fmt.Fprintln(w, "  s2 still valid:", s2.Valid())
}

// ── Borrowing ────────────────────────────────────────────────────────────────

// calculateLength reads through a shared borrow; the caller keeps ownership.
func calculateLength(r *Ref[string]) int { return len(r.Get()) }

// change appends through an exclusive borrow.
func change(m *RefMut[string]) error {
	return m.Update(func(s *string) { *s += ", world" })
}

// demoBorrowing shows the two kinds of borrow and the rule between them:
// many shared borrows, or one exclusive borrow, over any given stretch.
func demoBorrowing(w io.Writer) {
	s := NewCell("hello")

	r := Must(s.Borrow())
	fmt.Fprintf(w, "  The length of '%s' is %d.\n", r.Get(), calculateLength(r))

	r2 := Must(s.Borrow()) // a second shared borrow is fine
	_, err := s.BorrowMut()
	fmt.Fprintln(w, "  exclusive borrow while shared are live:", errors.Is(err, ErrBorrowed))
	r.Release()
	r2.Release()

	m := Must(s.BorrowMut())
	if err := change(m); err != nil {
		panic(err)
	}
	_, err = s.BorrowMut()
	fmt.Fprintln(w, "  second exclusive borrow rejected:", errors.Is(err, ErrMutBorrowed))
	m.Release()

	fmt.Fprintln(w, " ", Must(s.Get()))
}

// ── Dangling references ──────────────────────────────────────────────────────
//
// The classic dangling reference returns the address of a local:
//
//	func dangle() *string {
//	    s := "hello"
//	    return &s
//	}
//
// In a borrow-checked language this is rejected because s is dropped when
// dangle returns. In Go it is perfectly safe: escape analysis moves s to the
// heap and the garbage collector keeps it alive while referenced.

func demoDangling(w io.Writer) {
	fmt.Fprintln(w, "  returning &local is safe in Go: the value escapes to the heap")
}

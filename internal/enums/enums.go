// Package enums covers closed sets of variants: iota constants, variants
// carrying data, sealed interfaces with a type switch, and the optional
// value.
package enums

import (
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the enums topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "enums",
		Title: "Tagged unions, exhaustive dispatch and optional values",
		Group: "Basics",
		Sections: []tour.Section{
			{Title: "Enums — iota constants", Run: demoKinds},
			{Title: "Enums — variants with data", Run: demoMessages},
			{Title: "Enums — exhaustive switch", Run: demoCoins},
			{Title: "Enums — Option[T]", Run: demoOption},
			{Title: "Enums — single-arm match", Run: demoIfLet},
		},
	}
}

// ── Data-less variants ────────────────────────────────────────────────────────
// iota numbers the constants; String makes them print by name.

type IPAddrKind int

const (
	V4 IPAddrKind = iota
	V6
)

func (k IPAddrKind) String() string {
	switch k {
	case V4:
		return "V4"
	case V6:
		return "V6"
	}
	return fmt.Sprintf("IPAddrKind(%d)", int(k))
}

// IPAddr attaches an address to its kind. Every variant carries the same
// data, so a plain struct is enough.
type IPAddr struct {
	Kind IPAddrKind
	Addr string
}

func (a IPAddr) String() string { return fmt.Sprintf("%v(%s)", a.Kind, a.Addr) }

func demoKinds(w io.Writer) {
	four, six := V4, V6
	fmt.Fprintf(w, "  four = %v, six = %v\n", four, six)

	home := IPAddr{Kind: V4, Addr: "127.0.0.1"}
	loopback := IPAddr{Kind: V6, Addr: "::1"}
	fmt.Fprintf(w, "  home = %v, loopback = %v\n", home, loopback)
}

// ── Variants with different data ──────────────────────────────────────────────
// A sealed interface (unexported marker method) closes the set: only types
// in this package can be a Message.

type Message interface{ isMessage() }

type (
	Quit        struct{}
	Move        struct{ X, Y int32 }
	Write       string
	ChangeColor [3]int32
)

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// Call dispatches on the variant. Go does not check a type switch for
// exhaustiveness, so the default arm turns a forgotten variant into a panic
// instead of silently doing nothing.
func Call(m Message) string {
	switch v := m.(type) {
	case Quit:
		return "Quit message"
	case Move:
		return fmt.Sprintf("Move to x: %d, y: %d", v.X, v.Y)
	case Write:
		return fmt.Sprintf("Write: %s", string(v))
	case ChangeColor:
		return fmt.Sprintf("Change color to R: %d, G: %d, B: %d", v[0], v[1], v[2])
	default:
		panic(fmt.Sprintf("enums: unhandled Message variant %T", m))
	}
}

func demoMessages(w io.Writer) {
	m := Write("hello")
	fmt.Fprintln(w, " ", Call(m))

	for _, m := range []Message{Quit{}, Move{X: 1, Y: 2}, ChangeColor{0, 160, 255}} {
		fmt.Fprintln(w, " ", Call(m))
	}
}

// ── Exhaustive switch ────────────────────────────────────────────────────────

type UsState int

const (
	Alabama UsState = iota
	Alaska
)

func (s UsState) String() string {
	switch s {
	case Alabama:
		return "Alabama"
	case Alaska:
		return "Alaska"
	}
	return fmt.Sprintf("UsState(%d)", int(s))
}

type Coin interface{ isCoin() }

type (
	Penny   struct{}
	Nickel  struct{}
	Dime    struct{}
	Quarter struct{ State UsState }
)

func (Penny) isCoin()   {}
func (Nickel) isCoin()  {}
func (Dime) isCoin()    {}
func (Quarter) isCoin() {}

// ValueInCents maps every coin to its value, narrating two of the arms.
func ValueInCents(w io.Writer, c Coin) uint8 {
	switch v := c.(type) {
	case Penny:
		fmt.Fprintln(w, "  Lucky penny!")
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		fmt.Fprintf(w, "  State quarter from %v!\n", v.State)
		return 25
	default:
		panic(fmt.Sprintf("enums: unhandled Coin variant %T", c))
	}
}

func demoCoins(w io.Writer) {
	coin := Quarter{State: Alaska}
	fmt.Fprintln(w, "  Value in cents:", ValueInCents(w, coin))
}

// ── Option[T] ────────────────────────────────────────────────────────────────
// Go's usual "maybe" is the comma-ok pair or a nil pointer. Option makes the
// two states explicit; the zero value is None.

type Option[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Option[T] { return Option[T]{v: v, ok: true} }
func None[T any]() Option[T]    { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.v, o.ok }

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

func demoOption(w io.Writer) {
	someNumber := Some(5)
	someString := Some("a string")
	absentNumber := None[int32]()

	fmt.Fprintf(w, "  some_number=%v some_string=%v absent=%v\n", someNumber, someString, absentNumber)
}

// demoIfLet shows the single-arm match: handle one case, ignore the rest.
// In Go that is an if with a comma-ok test.
func demoIfLet(w io.Writer) {
	configMax := Some(uint8(3))

	// Long form: a switch with an arm that does nothing.
	switch limit, ok := configMax.Get(); {
	case ok:
		fmt.Fprintln(w, "  The maximum is configured to be", limit)
	default:
	}

	// Short form.
	if limit, ok := configMax.Get(); ok {
		fmt.Fprintln(w, "  The maximum is configured to be", limit)
	}

	count := 0
	var coin Coin = Quarter{State: Alabama}
	if q, ok := coin.(Quarter); ok {
		fmt.Fprintf(w, "  State quarter from %v!\n", q.State)
	} else {
		count++
	}
	fmt.Fprintln(w, "  Count:", count)
}

// Package structs covers records, positional aggregates, the zero-size
// marker type and methods.
package structs

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the structs topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "structs",
		Title: "Records, positional aggregates and methods",
		Group: "Basics",
		Sections: []tour.Section{
			{Title: "Structs — named fields", Run: demoRecords},
			{Title: "Structs — update from an existing value", Run: demoUpdate},
			{Title: "Structs — positional and zero-size types", Run: demoPositional},
			{Title: "Structs — methods and constructors", Run: demoMethods},
		},
	}
}

// ── Records ──────────────────────────────────────────────────────────────────

// User is a plain record. %+v prints it with field names.
type User struct {
	Active      bool
	Username    string
	Email       string
	SignInCount uint64
}

// buildUser uses parameters named like the fields; Go has no field-init
// shorthand, so each field is still spelled out.
func buildUser(email, username string) User {
	return User{
		Email:       email,
		Username:    username,
		Active:      true,
		SignInCount: 1,
	}
}

func demoRecords(w io.Writer) {
	user1 := User{
		Email:       "someone@example.com",
		Username:    "someusername123",
		Active:      true,
		SignInCount: 1,
	}
	user1.Email = "anotheremail@example.com"
	fmt.Fprintf(w, "  User 1: %+v\n", user1)

	user2 := buildUser("user2@example.com", "user2")
	fmt.Fprintf(w, "  User 2: %+v\n", user2)
}

// withEmail builds a new User from src with a different email. The
// heap-backed field the new value takes over (Username) is moved out of
// src; plain-copy fields stay behind. Assigning one struct to another in Go
// copies every field; clearing src is what makes the hand-off a move.
func withEmail(src *User, email string) User {
	u := *src
	u.Email = email
	src.Username = ""
	return u
}

func demoUpdate(w io.Writer) {
	user1 := buildUser("anotheremail@example.com", "someusername123")

	user3 := withEmail(&user1, "user3@example.com")
	fmt.Fprintf(w, "  User 3: %+v\n", user3)
	fmt.Fprintf(w, "  User 1 after update: %+v\n", user1)
}

// ── Positional aggregates ────────────────────────────────────────────────────

// Color and Point have identical layouts but are different types: a Color
// cannot be passed where a Point is expected without a conversion.
type (
	Color [3]int
	Point [3]int
)

// AlwaysEqual has no fields. Every value equals every other and takes no
// memory; it is useful as a marker or a set element.
type AlwaysEqual struct{}

func demoPositional(w io.Writer) {
	black := Color{0, 0, 0}
	origin := Point{0, 0, 0}
	fmt.Fprintf(w, "  Color: (%d, %d, %d)\n", black[0], black[1], black[2])
	fmt.Fprintf(w, "  Point: (%d, %d, %d)\n", origin[0], origin[1], origin[2])

	// var p Point = black  ← cannot use black (variable of type Color) as Point value
	p := Point(black) // explicit conversion is allowed
	_ = p

	subject := AlwaysEqual{}
	fmt.Fprintf(w, "  AlwaysEqual{} == AlwaysEqual{}: %v, size: %d\n",
		subject == AlwaysEqual{}, unsafe.Sizeof(subject))
}

// ── Methods ──────────────────────────────────────────────────────────────────

type Rectangle struct {
	Width, Height uint32
}

// Area uses a value receiver: it reads a copy of r.
func (r Rectangle) Area() uint32 { return r.Width * r.Height }

// CanHold reports whether other fits strictly inside r.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Scale uses a pointer receiver so the change is visible to the caller.
func (r *Rectangle) Scale(factor uint32) {
	r.Width *= factor
	r.Height *= factor
}

// Square is a constructor. Go has no associated functions; a package-level
// function named after what it builds plays that role.
func Square(size uint32) Rectangle {
	return Rectangle{Width: size, Height: size}
}

func demoMethods(w io.Writer) {
	rect1 := Rectangle{Width: 30, Height: 50}
	fmt.Fprintf(w, "  The area of the rectangle is %d square pixels.\n", rect1.Area())

	rect2 := Rectangle{Width: 10, Height: 40}
	rect3 := Rectangle{Width: 60, Height: 45}
	fmt.Fprintln(w, "  Can rect1 hold rect2?", rect1.CanHold(rect2))
	fmt.Fprintln(w, "  Can rect1 hold rect3?", rect1.CanHold(rect3))

	sq := Square(3)
	fmt.Fprintf(w, "  Square: %+v\n", sq)

	sq.Scale(2) // Go takes &sq automatically
	fmt.Fprintf(w, "  Scaled: %+v\n", sq)
}

// Package catalog assembles the default tour: every topic package,
// registered in the order the tour visits them.
package catalog

import (
	"time"

	"github.com/marcodamonte/langtour/internal/bindings"
	"github.com/marcodamonte/langtour/internal/closures"
	"github.com/marcodamonte/langtour/internal/controlflow"
	"github.com/marcodamonte/langtour/internal/enums"
	"github.com/marcodamonte/langtour/internal/functions"
	"github.com/marcodamonte/langtour/internal/generics"
	"github.com/marcodamonte/langtour/internal/lifetimes"
	"github.com/marcodamonte/langtour/internal/macros"
	"github.com/marcodamonte/langtour/internal/ownership"
	"github.com/marcodamonte/langtour/internal/structs"
	"github.com/marcodamonte/langtour/internal/threads"
	"github.com/marcodamonte/langtour/internal/tour"
	"github.com/marcodamonte/langtour/internal/traits"
)

// DefaultPace is the pause used by the demos that sleep between steps.
const DefaultPace = time.Millisecond

// Topics returns every topic in tour order: the basics first, then the
// advanced topics. pace is passed to the topics that sleep.
func Topics(pace time.Duration) []tour.Topic {
	return []tour.Topic{
		bindings.Topic(),
		functions.Topic(),
		controlflow.Topic(),
		ownership.Topic(),
		structs.Topic(),
		enums.Topic(),

		lifetimes.Topic(),
		traits.Topic(),
		generics.Topic(),
		closures.Topic(pace),
		threads.Topic(pace),
		macros.Topic(),
	}
}

// Default builds the catalogue from Topics. Topic names are fixed at
// compile time, so a registration error is a programming mistake and
// panics.
func Default(pace time.Duration) *tour.Catalogue {
	c, err := tour.NewCatalogue(Topics(pace)...)
	if err != nil {
		panic(err)
	}
	return c
}

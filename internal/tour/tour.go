// Package tour holds the catalogue of topics that make up the language tour
// and the runner that walks them in order, printing a banner before each
// section.
package tour

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Section is the smallest runnable unit of the tour. Run writes its
// narration to w and has no other observable effect.
type Section struct {
	Title string
	Run   func(w io.Writer)
}

// Topic groups the sections that illustrate one concept.
type Topic struct {
	// Name is the short key used on the command line (e.g. "ownership").
	Name string

	// Title is a one-line description shown by `langtour list`.
	Title string

	// Group is printed as a banner whenever it changes between topics.
	Group string

	Sections []Section
}

// Catalogue is an ordered, name-indexed set of topics. Registration order
// is the order in which the runner visits them.
type Catalogue struct {
	topics []Topic
	index  map[string]int
}

// NewCatalogue builds a catalogue from topics, in the order given.
func NewCatalogue(topics ...Topic) (*Catalogue, error) {
	c := &Catalogue{index: make(map[string]int, len(topics))}
	for _, t := range topics {
		if err := c.Add(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends t to the catalogue. Names are case-insensitive and unique.
func (c *Catalogue) Add(t Topic) error {
	key := normalize(t.Name)
	if key == "" {
		return fmt.Errorf("add topic %q: %w", t.Title, ErrEmptyName)
	}
	if _, ok := c.index[key]; ok {
		return fmt.Errorf("add topic %q: %w", t.Name, ErrDuplicateTopic)
	}
	c.index[key] = len(c.topics)
	c.topics = append(c.topics, t)
	return nil
}

// Topics returns every topic in catalogue order.
func (c *Catalogue) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Len reports the number of registered topics.
func (c *Catalogue) Len() int { return len(c.topics) }

// Lookup returns the topic registered under name.
func (c *Catalogue) Lookup(name string) (Topic, error) {
	i, ok := c.index[normalize(name)]
	if !ok {
		return Topic{}, fmt.Errorf("lookup %q: %w", name, ErrUnknownTopic)
	}
	return c.topics[i], nil
}

// Select resolves names to topics. The result follows catalogue order, not
// argument order, and repeated names collapse to one entry. An empty names
// list selects the whole catalogue.
func (c *Catalogue) Select(names []string) ([]Topic, error) {
	if len(names) == 0 {
		return c.Topics(), nil
	}

	want := make([]bool, len(c.topics))
	for _, n := range names {
		i, ok := c.index[normalize(n)]
		if !ok {
			return nil, fmt.Errorf("select %q: %w", n, ErrUnknownTopic)
		}
		want[i] = true
	}

	var out []Topic
	for i, t := range c.topics {
		if want[i] {
			out = append(out, t)
		}
	}
	return out, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Sentinel errors returned by the catalogue.
var (
	ErrUnknownTopic   = errors.New("unknown topic")
	ErrDuplicateTopic = errors.New("duplicate topic")
	ErrEmptyName      = errors.New("topic name is empty")
)

// Package traits covers capability interfaces: required methods, default
// behaviour through embedding, the ways to accept "anything that can
// summarize", and returning an interface to hide the concrete type.
package traits

import (
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the traits topic.
func Topic() tour.Topic {
	return tour.Topic{
		Name:  "traits",
		Title: "Interfaces, default methods and dispatch",
		Group: "Advanced",
		Sections: []tour.Section{
			{Title: "Traits — implementing an interface", Run: demoImplement},
			{Title: "Traits — accepting any Summary", Run: demoParameters},
			{Title: "Traits — multiple bounds", Run: demoMultipleBounds},
			{Title: "Traits — returning an interface", Run: demoReturn},
			{Title: "Traits — default vs override", Run: demoDefaults},
		},
	}
}

// Summary is implemented implicitly: any type with both methods satisfies
// it, with no declaration of intent.
type Summary interface {
	Summarize() string
	ReadMore() string
}

// DefaultReadMore supplies the default ReadMore. Embedding it promotes the
// method to the outer type; declaring ReadMore on the outer type overrides
// it. Unlike a default method body, the promoted method cannot call back
// into the outer type's methods.
type DefaultReadMore struct{}

func (DefaultReadMore) ReadMore() string { return "(Read more...)" }

// NewsArticle overrides ReadMore.
type NewsArticle struct {
	Headline string
	Location string
	Author   string
	Content  string
}

func (a NewsArticle) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

func (a NewsArticle) ReadMore() string {
	return fmt.Sprintf("(Read more from %s...)", a.Author)
}

// String makes NewsArticle a fmt.Stringer too.
func (a NewsArticle) String() string { return "NewsArticle(" + a.Headline + ")" }

// Tweet keeps the default ReadMore.
type Tweet struct {
	DefaultReadMore
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

func (t Tweet) Summarize() string { return fmt.Sprintf("%s: %s", t.Username, t.Content) }

// Compile-time proof that both types satisfy Summary.
var (
	_ Summary = NewsArticle{}
	_ Summary = Tweet{}
)

func sampleTweet() Tweet {
	return Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know, people",
	}
}

func sampleArticle() NewsArticle {
	return NewsArticle{
		Headline: "Penguins win Stanley Cup in overtime!",
		Location: "Pittsburgh, PA",
		Author:   "Iceburgh",
		Content:  "The Pittsburgh Penguins once again are the best hockey team in the NHL.",
	}
}

func demoImplement(w io.Writer) {
	tweet := sampleTweet()
	fmt.Fprintln(w, "  1 new tweet:", tweet.Summarize())
	fmt.Fprintln(w, "  1 new tweet (default):", tweet.ReadMore())

	article := sampleArticle()
	fmt.Fprintln(w, "  New article available!", article.Summarize())
}

// ── Three ways to accept a Summary ────────────────────────────────────────────

// NotifyInline spells the constraint out inline.
func NotifyInline[T interface{ Summarize() string }](w io.Writer, item T) {
	fmt.Fprintln(w, "  Breaking news!", item.Summarize())
}

// NotifyBound names the constraint; T is fixed per call site and resolved
// at compile time.
func NotifyBound[T Summary](w io.Writer, item T) {
	fmt.Fprintln(w, "  Breaking news (type parameter)!", item.Summarize())
}

// Notify takes an interface value and dispatches at run time through the
// method table of whatever concrete type is inside.
func Notify(w io.Writer, item Summary) {
	fmt.Fprintln(w, "  Breaking news (interface value)!", item.Summarize())
}

func demoParameters(w io.Writer) {
	tweet, article := sampleTweet(), sampleArticle()

	NotifyInline(w, tweet)
	NotifyInline(w, article)
	NotifyBound(w, tweet)

	for _, item := range []Summary{tweet, article} {
		Notify(w, item)
	}
}

// NotifyDescribed requires both Summary and fmt.Stringer.
func NotifyDescribed[T interface {
	Summary
	fmt.Stringer
}](w io.Writer, item T) {
	fmt.Fprintf(w, "  %s → %s\n", item.String(), item.Summarize())
}

func demoMultipleBounds(w io.Writer) {
	NotifyDescribed(w, sampleArticle())
	// NotifyDescribed(w, sampleTweet())  ← Tweet does not satisfy fmt.Stringer (missing method String)
}

// ReturnsSummarizable hides which concrete type it builds.
func ReturnsSummarizable() Summary {
	return sampleTweet()
}

func demoReturn(w io.Writer) {
	s := ReturnsSummarizable()
	fmt.Fprintln(w, "  Returned summarizable:", s.Summarize())
}

// demoDefaults calls ReadMore through the interface: each type's override
// runs when it has one, the embedded default otherwise.
func demoDefaults(w io.Writer) {
	for _, item := range []Summary{sampleTweet(), sampleArticle()} {
		fmt.Fprintf(w, "  %T: %s\n", item, item.ReadMore())
	}
}

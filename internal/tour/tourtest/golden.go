// Package tourtest holds test helpers shared by the topic packages.
package tourtest

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Transcript runs topic on its own and returns everything it printed,
// banners included.
func Transcript(t testing.TB, topic tour.Topic) []byte {
	t.Helper()
	var buf bytes.Buffer
	tour.NewRunner(tour.RunnerConfig{Out: &buf}).Run([]tour.Topic{topic})
	return buf.Bytes()
}

// AssertGolden compares the topic's transcript against
// testdata/golden/{topic.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
func AssertGolden(t *testing.T, topic tour.Topic) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, topic.Name, Transcript(t, topic))
}

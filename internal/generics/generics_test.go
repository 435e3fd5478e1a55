package generics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/langtour/internal/tour/tourtest"
)

func TestTranscript(t *testing.T) {
	tourtest.AssertGolden(t, Topic())
}

func TestLargest(t *testing.T) {
	assert.Equal(t, 100, Largest([]int{34, 50, 25, 100, 65}))
	assert.Equal(t, 'y', Largest([]rune{'y', 'm', 'a', 'q'}))
	assert.Equal(t, "pear", Largest([]string{"apple", "pear", "fig"}))
	assert.Equal(t, -1.5, Largest([]float64{-3, -1.5, -2}))
	assert.Equal(t, 7, Largest([]int{7}))

	type celsius float64 // satisfies Ordered through ~float64
	assert.Equal(t, celsius(30), Largest([]celsius{12, 30, 18}))
}

func TestLargestMatchesEveryElement(t *testing.T) {
	lists := [][]int{
		{1, 2, 3},
		{3, 2, 1},
		{5, 5, 5},
		{-7, 0, -1},
	}
	for _, l := range lists {
		got := Largest(l)
		assert.Contains(t, l, got)
		for _, v := range l {
			assert.GreaterOrEqual(t, got, v)
		}
	}
}

func TestLargestPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Largest([]int{}) })
}

func TestDistanceFromOrigin(t *testing.T) {
	assert.InDelta(t, 5.0, DistanceFromOrigin(Point[float32]{X: 3, Y: 4}), 1e-6)
	assert.Equal(t, float32(0), DistanceFromOrigin(Point[float32]{}))
}

func TestResult(t *testing.T) {
	assert.Equal(t, 7, Ok(7).Unwrap())

	boom := errors.New("boom")
	r := Err[string](boom)
	assert.False(t, r.IsOk())
	assert.PanicsWithError(t, "boom", func() { r.Unwrap() })
}

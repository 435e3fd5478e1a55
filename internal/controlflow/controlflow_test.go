package controlflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/langtour/internal/tour/tourtest"
)

func TestTranscript(t *testing.T) {
	tourtest.AssertGolden(t, Topic())
}

func TestLoopUntil(t *testing.T) {
	assert.Equal(t, 20, LoopUntil(10))
	assert.Equal(t, 2, LoopUntil(1))
	assert.Equal(t, 2, LoopUntil(0)) // the body always runs once
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, Countdown(3))
	assert.Nil(t, Countdown(0))
}

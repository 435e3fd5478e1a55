package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/langtour/internal/tour/tourtest"
)

func TestTranscript(t *testing.T) {
	tourtest.AssertGolden(t, Topic())
}

func TestReturnValues(t *testing.T) {
	assert.Equal(t, 5, five())
	assert.Equal(t, 6, plusOne(5))

	q, r := divMod(17, 5)
	assert.Equal(t, 3, q)
	assert.Equal(t, 2, r)
}

package threads

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/marcodamonte/langtour/internal/tour/tourtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSharedCounter(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		require.Equal(t, 10, SharedCounter(10))
	}
	assert.Equal(t, 0, SharedCounter(0))
}

func TestCounterConcurrentInc(t *testing.T) {
	t.Parallel()

	var c Counter
	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		go func() {
			c.Inc()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 100; i++ {
		<-done
	}
	assert.Equal(t, 100, c.Value())
}

func TestGatherReceivesEveryMessage(t *testing.T) {
	t.Parallel()

	first := []string{"hi", "from", "the", "goroutine"}
	second := []string{"more", "messages", "for", "you"}

	got := Gather(0, first, second)
	assert.Len(t, got, 8)
	assert.ElementsMatch(t, append(append([]string{}, first...), second...), got)
}

func TestGatherKeepsPerSenderOrder(t *testing.T) {
	t.Parallel()

	a := []string{"a1", "a2", "a3"}
	b := []string{"b1", "b2", "b3"}

	var gotA, gotB []string
	for _, v := range Gather(0, a, b) {
		if strings.HasPrefix(v, "a") {
			gotA = append(gotA, v)
		} else {
			gotB = append(gotB, v)
		}
	}
	assert.Equal(t, a, gotA)
	assert.Equal(t, b, gotB)
}

func TestFaninWithoutSendersCloses(t *testing.T) {
	t.Parallel()

	_, ok := <-Fanin(0)
	assert.False(t, ok)
}

func TestParallelSum(t *testing.T) {
	t.Parallel()

	nums := make([]int, 100)
	for i := range nums {
		nums[i] = i + 1
	}

	tests := []struct {
		name  string
		nums  []int
		parts int
		want  int
	}{
		{"four parts", nums, 4, 5050},
		{"more parts than values", nums[:3], 8, 6},
		{"single part", nums, 1, 5050},
		{"non-positive parts", nums, 0, 5050},
		{"empty", nil, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParallelSum(context.Background(), tt.nums, tt.parts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParallelSumCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParallelSum(ctx, []int{1, 2, 3}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// The interleaving differs between runs, so the transcript is checked by
// counting lines rather than against a golden file.
func TestTranscript(t *testing.T) {
	out := string(tourtest.Transcript(t, Topic(0)))

	assert.Equal(t, 9, strings.Count(out, "from the spawned goroutine!"))
	assert.Equal(t, 4, strings.Count(out, "from the main goroutine!"))
	assert.Contains(t, out, "Here's a slice from the spawned goroutine: [1 2 3]")
	assert.Equal(t, 8, strings.Count(out, "  Got: "))
	assert.Contains(t, out, "received 8 messages; all senders closed")
	assert.Contains(t, out, "  Result: 10\n")
	assert.Contains(t, out, "sum of 1..100 on 4 goroutines: 5050")
}

func TestLockedWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lw := &lockedWriter{w: &buf}
	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func() {
			_, _ = lw.Write([]byte("x\n"))
			done <- struct{}{}
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}
	assert.Equal(t, 20, strings.Count(buf.String(), "x\n"))
}

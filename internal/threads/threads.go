// Package threads covers goroutines, joining them, channels with several
// senders, and shared state guarded by a mutex.
package threads

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/marcodamonte/langtour/internal/tour"
)

// Topic returns the concurrency topic. pace is the pause between the
// messages each goroutine prints or sends.
func Topic(pace time.Duration) tour.Topic {
	return tour.Topic{
		Name:  "threads",
		Title: "Goroutines, channels and mutexes",
		Group: "Advanced",
		Sections: []tour.Section{
			{Title: "Threads — spawn and join", Run: func(w io.Writer) { demoSpawn(w, pace) }},
			{Title: "Threads — moving data into a goroutine", Run: demoMove},
			{Title: "Threads — one channel, several senders", Run: func(w io.Writer) { demoChannel(w, pace) }},
			{Title: "Threads — shared counter behind a mutex", Run: demoMutex},
			{Title: "Threads — scoped workers with errgroup", Run: demoScoped},
		},
	}
}

// lockedWriter serializes writes so goroutines can share one io.Writer.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// ── Spawn and join ───────────────────────────────────────────────────────────

// demoSpawn runs a goroutine next to the caller. Lines from both interleave
// in whatever order the scheduler picks; Wait is the join point.
func demoSpawn(w io.Writer, pace time.Duration) {
	out := &lockedWriter{w: w}
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i < 10; i++ {
			fmt.Fprintf(out, "  hi number %d from the spawned goroutine!\n", i)
			time.Sleep(pace)
		}
	}()

	for i := 1; i < 5; i++ {
		fmt.Fprintf(out, "  hi number %d from the main goroutine!\n", i)
		time.Sleep(pace)
	}

	wg.Wait() // without this, the tour could move on before the worker finishes
}

// demoMove hands a slice to a goroutine as an argument. After the hand-off
// only the goroutine should touch it; nothing in Go enforces that. A done
// channel serves as the join point here.
func demoMove(w io.Writer) {
	v := []int{1, 2, 3}
	done := make(chan struct{})

	go func(v []int) {
		defer close(done)
		fmt.Fprintln(w, "  Here's a slice from the spawned goroutine:", v)
	}(v)

	<-done
}

// ── Message passing ──────────────────────────────────────────────────────────

// Fanin starts one sender per batch, all writing to the same channel, and
// returns the receiving end. The channel is closed once every sender is
// done, which ends a range over it. Messages from different senders arrive
// in no particular order; each sender's own messages keep their order.
func Fanin(pace time.Duration, batches ...[]string) <-chan string {
	ch := make(chan string)
	var wg sync.WaitGroup

	send := func(vals []string) {
		defer wg.Done()
		for _, v := range vals {
			ch <- v
			time.Sleep(pace)
		}
	}

	wg.Add(len(batches))
	for _, b := range batches {
		go send(b)
	}

	// Only the last sender to finish may close; a separate goroutine waits
	// for all of them.
	go func() {
		wg.Wait()
		close(ch)
	}()

	return ch
}

// Gather drains Fanin and returns every message received.
func Gather(pace time.Duration, batches ...[]string) []string {
	var got []string
	for v := range Fanin(pace, batches...) {
		got = append(got, v)
	}
	return got
}

func demoChannel(w io.Writer, pace time.Duration) {
	first := []string{"hi", "from", "the", "goroutine"}
	second := []string{"more", "messages", "for", "you"}

	n := 0
	for received := range Fanin(pace, first, second) {
		fmt.Fprintln(w, "  Got:", received)
		n++
	}
	fmt.Fprintln(w, "  received", n, "messages; all senders closed")
}

// ── Shared state ─────────────────────────────────────────────────────────────

// Counter is an int guarded by a mutex. Share it by pointer: goroutines hold
// the same *Counter and the garbage collector keeps it alive while any of
// them does.
type Counter struct {
	mu sync.Mutex
	n  int
}

// Inc holds the lock only for the read-modify-write.
func (c *Counter) Inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// SharedCounter starts workers goroutines that each increment one shared
// Counter once, joins them all and returns the final count. The lock
// serializes the increments, so the result is always workers.
func SharedCounter(workers int) int {
	counter := &Counter{}
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(c *Counter) {
			defer wg.Done()
			c.Inc()
		}(counter)
	}

	wg.Wait()
	return counter.Value()
}

func demoMutex(w io.Writer) {
	fmt.Fprintln(w, "  Result:", SharedCounter(10))
}

// ── Scoped workers ───────────────────────────────────────────────────────────

// ParallelSum splits nums into parts chunks and sums them on separate
// goroutines. errgroup joins them; the first error cancels ctx for the rest
// and is returned.
func ParallelSum(ctx context.Context, nums []int, parts int) (int, error) {
	if parts < 1 {
		parts = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	partial := make([]int, parts)
	size := (len(nums) + parts - 1) / parts

	for i := 0; i < parts; i++ {
		lo := min(i*size, len(nums))
		hi := min(lo+size, len(nums))
		g.Go(func() error {
			for _, v := range nums[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				partial[i] += v // each goroutine owns its own slot
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, p := range partial {
		total += p
	}
	return total, nil
}

func demoScoped(w io.Writer) {
	nums := make([]int, 100)
	for i := range nums {
		nums[i] = i + 1
	}
	sum, err := ParallelSum(context.Background(), nums, 4)
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(w, "  sum of 1..100 on 4 goroutines:", sum)
}

package ownership

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/internal/tour/tourtest"
)

func TestTranscript(t *testing.T) {
	tourtest.AssertGolden(t, Topic())
}

// ── Owned ────────────────────────────────────────────────────────────────────

func TestMoveInvalidatesSource(t *testing.T) {
	t.Parallel()

	src := Own("hello")
	dst, err := src.Move()
	require.NoError(t, err)

	_, err = src.Get()
	assert.ErrorIs(t, err, ErrMoved)
	_, err = src.Move()
	assert.ErrorIs(t, err, ErrMoved)
	_, err = src.Clone(func(s string) string { return s })
	assert.ErrorIs(t, err, ErrMoved)
	assert.False(t, src.Valid())

	v, err := dst.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestTakesOwnershipDropsValue(t *testing.T) {
	t.Parallel()

	s := Own([]byte("hello"))
	var out bytes.Buffer
	takesOwnership(&out, s)

	assert.Equal(t, "  hello\n", out.String())
	_, err := s.Get()
	assert.ErrorIs(t, err, ErrMoved)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := Own([]byte("abc"))
	b, err := a.Clone(bytes.Clone)
	require.NoError(t, err)

	Must(b.Get())[0] = 'x'
	assert.Equal(t, "abc", string(Must(a.Get())))
	assert.Equal(t, "xbc", string(Must(b.Get())))
}

func TestDropIsIdempotent(t *testing.T) {
	t.Parallel()

	o := Own(42)
	o.Drop()
	o.Drop()
	assert.False(t, o.Valid())

	var nilOwner *Owned[int]
	assert.False(t, nilOwner.Valid())
}

func TestMustPanicsOnMoved(t *testing.T) {
	t.Parallel()

	o := Own(1)
	_ = Must(o.Move())
	assert.PanicsWithError(t, ErrMoved.Error(), func() { Must(o.Get()) })
}

// ── Cell ─────────────────────────────────────────────────────────────────────

func TestManySharedBorrows(t *testing.T) {
	t.Parallel()

	c := NewCell(7)
	r1 := Must(c.Borrow())
	r2 := Must(c.Borrow())
	shared, exclusive := c.Borrows()
	assert.Equal(t, 2, shared)
	assert.False(t, exclusive)
	assert.Equal(t, 7, r1.Get())
	assert.Equal(t, 7, r2.Get())

	r1.Release()
	r1.Release() // no-op
	shared, _ = c.Borrows()
	assert.Equal(t, 1, shared)
	r2.Release()
}

func TestExclusiveBorrowRules(t *testing.T) {
	t.Parallel()

	c := NewCell("v")

	r := Must(c.Borrow())
	_, err := c.BorrowMut()
	assert.ErrorIs(t, err, ErrBorrowed)
	assert.ErrorIs(t, c.Set("frozen"), ErrBorrowed)
	r.Release()

	m := Must(c.BorrowMut())
	_, err = c.Borrow()
	assert.ErrorIs(t, err, ErrMutBorrowed)
	_, err = c.BorrowMut()
	assert.ErrorIs(t, err, ErrMutBorrowed)
	_, err = c.Get()
	assert.ErrorIs(t, err, ErrMutBorrowed)

	require.NoError(t, m.Set("w"))
	m.Release()
	assert.ErrorIs(t, m.Set("late"), ErrReleased)

	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "w", v)

	require.NoError(t, c.Set("x"))
	assert.Equal(t, "x", Must(c.Get()))
}

// ── Benchmarks ───────────────────────────────────────────────────────────────

var sink []byte

// BenchmarkMove measures handing a buffer to a new owner: no data is copied.
func BenchmarkMove(b *testing.B) {
	buf := bytes.Repeat([]byte("x"), 4096)
	for i := 0; i < b.N; i++ {
		o := Own(buf)
		sink = Must(Must(o.Move()).Get())
	}
}

// BenchmarkClone measures a deep copy of the same buffer.
func BenchmarkClone(b *testing.B) {
	buf := bytes.Repeat([]byte("x"), 4096)
	o := Own(buf)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = Must(Must(o.Clone(bytes.Clone)).Get())
	}
}

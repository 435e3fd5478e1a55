package ownership

import (
	"errors"
	"sync"
)

// Cell enforces the borrowing discipline at runtime: any number of shared
// borrows, or exactly one exclusive borrow, never both.
//
// The zero value is not usable; create cells with NewCell.
type Cell[T any] struct {
	mu        sync.Mutex
	v         T
	shared    int
	exclusive bool
}

// NewCell wraps v in a borrow-checked cell.
func NewCell[T any](v T) *Cell[T] { return &Cell[T]{v: v} }

// Ref is a shared, read-only borrow.
type Ref[T any] struct {
	c        *Cell[T]
	released bool
}

// RefMut is an exclusive, read-write borrow.
type RefMut[T any] struct {
	c        *Cell[T]
	released bool
}

// Borrow takes a shared borrow. It fails while an exclusive borrow is live.
func (c *Cell[T]) Borrow() (*Ref[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exclusive {
		return nil, ErrMutBorrowed
	}
	c.shared++
	return &Ref[T]{c: c}, nil
}

// BorrowMut takes the exclusive borrow. It fails while any other borrow,
// shared or exclusive, is live.
func (c *Cell[T]) BorrowMut() (*RefMut[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.exclusive:
		return nil, ErrMutBorrowed
	case c.shared > 0:
		return nil, ErrBorrowed
	}
	c.exclusive = true
	return &RefMut[T]{c: c}, nil
}

// Get reads the value through a short-lived shared borrow.
func (c *Cell[T]) Get() (T, error) {
	r, err := c.Borrow()
	if err != nil {
		var zero T
		return zero, err
	}
	defer r.Release()
	return r.Get(), nil
}

// Set replaces the value through a short-lived exclusive borrow. While the
// cell is borrowed it is frozen and Set fails without writing.
func (c *Cell[T]) Set(v T) error {
	m, err := c.BorrowMut()
	if err != nil {
		return err
	}
	defer m.Release()
	return m.Set(v)
}

// Borrows reports the number of live shared borrows and whether the
// exclusive borrow is held.
func (c *Cell[T]) Borrows() (shared int, exclusive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shared, c.exclusive
}

// Get returns the borrowed value.
func (r *Ref[T]) Get() T {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.v
}

// Release ends the borrow. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	r.c.shared--
}

// Get returns the borrowed value.
func (m *RefMut[T]) Get() T {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	return m.c.v
}

// Set writes v into the cell. It fails once the borrow has been released.
func (m *RefMut[T]) Set(v T) error {
	return m.Update(func(p *T) { *p = v })
}

// Update mutates the value in place.
func (m *RefMut[T]) Update(f func(*T)) error {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	if m.released {
		return ErrReleased
	}
	f(&m.c.v)
	return nil
}

// Release ends the borrow. Releasing twice is a no-op.
func (m *RefMut[T]) Release() {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	if m.released {
		return
	}
	m.released = true
	m.c.exclusive = false
}

// Sentinel errors returned by Cell and its borrows.
var (
	ErrBorrowed    = errors.New("already borrowed: cannot borrow as mutable while shared borrows are live")
	ErrMutBorrowed = errors.New("already mutably borrowed")
	ErrReleased    = errors.New("borrow already released")
)

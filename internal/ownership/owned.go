package ownership

import "errors"

// Owned is a value with exactly one valid owner at a time.
//
// Go copies values freely and the garbage collector keeps anything
// reachable alive, so there is no compile-time move. Owned makes the
// hand-off explicit instead: Move returns a new owner and leaves the source
// empty, and every later use of the source reports ErrMoved.
//
// An Owned must not be copied after first use; pass *Owned around.
type Owned[T any] struct {
	v     T
	moved bool
}

// Own takes ownership of v.
func Own[T any](v T) *Owned[T] { return &Owned[T]{v: v} }

// Valid reports whether o still owns its value.
func (o *Owned[T]) Valid() bool { return o != nil && !o.moved }

// Get returns the owned value, or ErrMoved once ownership left o.
func (o *Owned[T]) Get() (T, error) {
	if !o.Valid() {
		var zero T
		return zero, ErrMoved
	}
	return o.v, nil
}

// Move transfers the value to a new owner. The source is emptied so the
// old binding can no longer reach the value.
func (o *Owned[T]) Move() (*Owned[T], error) {
	if !o.Valid() {
		return nil, ErrMoved
	}
	dst := &Owned[T]{v: o.v}
	var zero T
	o.v, o.moved = zero, true
	return dst, nil
}

// Clone returns an independent owner holding dup(value). dup must produce a
// deep copy (e.g. bytes.Clone) for the two owners to be truly independent.
func (o *Owned[T]) Clone(dup func(T) T) (*Owned[T], error) {
	v, err := o.Get()
	if err != nil {
		return nil, err
	}
	return &Owned[T]{v: dup(v)}, nil
}

// Drop releases the value. Dropping an already moved owner is a no-op.
func (o *Owned[T]) Drop() {
	if !o.Valid() {
		return
	}
	var zero T
	o.v, o.moved = zero, true
}

// Must unwraps (value, error), panicking if err != nil. Using a moved
// value is a programming error, so the tour treats it as fatal.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ErrMoved is returned when a value is used after its ownership moved away.
var ErrMoved = errors.New("value used after move")

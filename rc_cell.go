package galbi

import (
	"fmt"

	"github.com/myyrakle/galbi/internal/goid"
)

// BorrowState is the kind of borrow outstanding on an RcCell.
type BorrowState int

const (
	Unused BorrowState = iota
	Shared
	Exclusive
)

func (s BorrowState) String() string {
	switch s {
	case Unused:
		return "unused"
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

type cellInner[T any] struct {
	// borrow is 0 when unused, the number of live Refs when positive and
	// -1 while a RefMut is live.
	borrow int
	value  T
	owner  int64
	cfg    config
}

// RcCell is a handle to a value shared within a single goroutine, with
// borrows checked at run time instead of a lock. Copying the handle or
// calling Clone yields another handle to the same value.
//
// Any number of shared borrows (Borrow) may be live at once, or exactly
// one exclusive borrow (BorrowMut), never both. A borrow that would break
// this rule panics immediately; nothing ever blocks.
//
// RcCell is not safe for concurrent use. All handles to one value must be
// used from the goroutine that created it; doing otherwise is undefined
// behavior. WithGoroutineCheck turns such misuse into a panic.
type RcCell[T any] struct {
	inner *cellInner[T]
}

// NewRcCell takes value and returns the first handle to it.
func NewRcCell[T any](value T, opts ...Option) RcCell[T] {
	in := &cellInner[T]{value: value, cfg: newConfig(opts)}
	if in.cfg.checkGoroutine {
		in.owner = goid.Get()
	}
	return RcCell[T]{inner: in}
}

func (c RcCell[T]) shared() *cellInner[T] {
	in := c.inner
	if in == nil {
		panic("galbi: use of zero RcCell, create it with NewRcCell")
	}
	in.checkOwner()
	return in
}

// checkOwner panics with ErrWrongGoroutine if the cell was created
// WithGoroutineCheck and the caller is not the creating goroutine.
// Handles, Refs and RefMuts all go through it.
func (in *cellInner[T]) checkOwner() {
	if in.owner == 0 {
		return
	}
	if id := goid.Get(); id != in.owner {
		err := fmt.Errorf("%w: owner goroutine %d, caller goroutine %d", ErrWrongGoroutine, in.owner, id)
		in.cfg.logf("error", "%v", err)
		panic(err)
	}
}

// Clone returns another handle to the same value.
func (c RcCell[T]) Clone() RcCell[T] {
	return RcCell[T]{inner: c.shared()}
}

// Same reports whether c and other refer to the same value.
func (c RcCell[T]) Same(other RcCell[T]) bool {
	return c.inner != nil && c.inner == other.inner
}

// BorrowState reports the borrow currently outstanding on the value.
func (c RcCell[T]) BorrowState() BorrowState {
	switch b := c.shared().borrow; {
	case b > 0:
		return Shared
	case b < 0:
		return Exclusive
	default:
		return Unused
	}
}

// Borrow returns a shared accessor to the value.
// It panics with a *BorrowError wrapping ErrAlreadyMutablyBorrowed if a
// RefMut is live. Release the Ref with defer r.Release().
func (c RcCell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		c.inner.cfg.logf("error", "RcCell borrow violation: %v", err)
		panic(err)
	}
	return r
}

// TryBorrow is Borrow returning the *BorrowError instead of panicking.
func (c RcCell[T]) TryBorrow() (*Ref[T], error) {
	in := c.shared()
	if in.borrow < 0 {
		in.cfg.metrics.conflict(Shared)
		return nil, &BorrowError{Requested: Shared, Held: Exclusive}
	}
	in.borrow++
	return &Ref[T]{inner: in}, nil
}

// BorrowMut returns an exclusive accessor to the value.
// It panics with a *BorrowError wrapping ErrAlreadyBorrowed or
// ErrAlreadyMutablyBorrowed if any Ref or RefMut is live.
// Release the RefMut with defer w.Release().
func (c RcCell[T]) BorrowMut() *RefMut[T] {
	w, err := c.TryBorrowMut()
	if err != nil {
		c.inner.cfg.logf("error", "RcCell borrow violation: %v", err)
		panic(err)
	}
	return w
}

// TryBorrowMut is BorrowMut returning the *BorrowError instead of panicking.
func (c RcCell[T]) TryBorrowMut() (*RefMut[T], error) {
	in := c.shared()
	switch {
	case in.borrow > 0:
		in.cfg.metrics.conflict(Exclusive)
		return nil, &BorrowError{Requested: Exclusive, Held: Shared, Readers: in.borrow}
	case in.borrow < 0:
		in.cfg.metrics.conflict(Exclusive)
		return nil, &BorrowError{Requested: Exclusive, Held: Exclusive}
	}
	in.borrow = -1
	return &RefMut[T]{inner: in}, nil
}

// Replace stores value and returns the previous one.
// It panics like BorrowMut if the value is borrowed.
func (c RcCell[T]) Replace(value T) T {
	w := c.BorrowMut()
	defer w.Release()

	old := w.inner.value
	w.inner.value = value
	return old
}

// ReplaceWith stores fn's result and returns the previous value, as
// observed after fn ran. fn may modify the value through its argument.
func (c RcCell[T]) ReplaceWith(fn func(v *T) T) T {
	w := c.BorrowMut()
	defer w.Release()

	next := fn(&w.inner.value)
	old := w.inner.value
	w.inner.value = next
	return old
}

// Swap exchanges the values of c and other.
// Both must be unborrowed; swapping a cell with itself panics.
func (c RcCell[T]) Swap(other RcCell[T]) {
	a := c.BorrowMut()
	defer a.Release()
	b := other.BorrowMut()
	defer b.Release()

	a.inner.value, b.inner.value = b.inner.value, a.inner.value
}

// Take replaces the value with its zero value and returns the old one.
func (c RcCell[T]) Take() T {
	var zero T
	return c.Replace(zero)
}

// Ref is a shared borrow of an RcCell value.
type Ref[T any] struct {
	inner    *cellInner[T]
	released bool
}

// Get returns a copy of the borrowed value.
func (r *Ref[T]) Get() T {
	r.inner.checkOwner()
	if r.released {
		panic("galbi: Ref used after Release")
	}
	return r.inner.value
}

// Release ends the borrow. Calling it more than once is a no-op.
func (r *Ref[T]) Release() {
	r.inner.checkOwner()
	if r.released {
		return
	}
	r.released = true
	r.inner.borrow--
}

// RefMut is an exclusive borrow of an RcCell value.
type RefMut[T any] struct {
	inner    *cellInner[T]
	released bool
}

// Get returns a pointer to the borrowed value. The pointer must not be used
// after Release.
func (w *RefMut[T]) Get() *T {
	w.inner.checkOwner()
	if w.released {
		panic("galbi: RefMut used after Release")
	}
	return &w.inner.value
}

// Set replaces the borrowed value.
func (w *RefMut[T]) Set(value T) {
	*w.Get() = value
}

// Release ends the borrow. Calling it more than once is a no-op.
func (w *RefMut[T]) Release() {
	w.inner.checkOwner()
	if w.released {
		return
	}
	w.released = true
	w.inner.borrow = 0
}

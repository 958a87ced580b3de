package galbi

import (
	"cmp"
	"fmt"
	"iter"
)

// OptionBox is either None or Some, holding exactly one heap-allocated
// value of type T.
//
// The zero OptionBox is None. Methods that transform an OptionBox into one
// of a different type are package functions (Map, AndThen, ...), because
// Go methods cannot declare type parameters.
//
// Extraction and transform methods hand the contained value out. Treat the
// receiver as spent afterwards; use Take to move a value out explicitly and
// leave None behind.
type OptionBox[T any] struct {
	ptr *T
}

// None returns an empty OptionBox.
func None[T any]() OptionBox[T] {
	return OptionBox[T]{}
}

// Some returns an OptionBox holding value.
func Some[T any](value T) OptionBox[T] {
	return OptionBox[T]{ptr: &value}
}

// FromOption converts a comma-ok pair into an OptionBox.
//
//	v, ok := m[key]
//	opt := galbi.FromOption(v, ok)
func FromOption[T any](value T, ok bool) OptionBox[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr returns None for a nil p, otherwise Some holding a copy of *p.
func FromPtr[T any](p *T) OptionBox[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether o holds a value.
func (o OptionBox[T]) IsSome() bool {
	return o.ptr != nil
}

// IsNone reports whether o is empty.
func (o OptionBox[T]) IsNone() bool {
	return o.ptr == nil
}

// IsZero reports whether o is None. It lets `json:",omitzero"` and
// `yaml:",omitempty"` drop None fields.
func (o OptionBox[T]) IsZero() bool {
	return o.ptr == nil
}

// IsSomeAnd reports whether o holds a value matching pred.
func (o OptionBox[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.ptr != nil && pred(*o.ptr)
}

// AsRef returns a view of o holding a pointer to the contained value,
// leaving o untouched.
//
//	text := galbi.Some("Hello, world!")
//	n := galbi.Map(galbi.AsRef(text), func(s *string) int { return len(*s) })
func AsRef[T any](o OptionBox[T]) OptionBox[*T] {
	if o.ptr == nil {
		return None[*T]()
	}
	return Some(o.ptr)
}

// AsMut is AsRef for callers that intend to write: stores through the
// pointer are visible in o.
func AsMut[T any](o OptionBox[T]) OptionBox[*T] {
	return AsRef(o)
}

// Get returns the contained value and true, or the zero value and false.
func (o OptionBox[T]) Get() (T, bool) {
	if o.ptr == nil {
		var zero T
		return zero, false
	}
	return *o.ptr, true
}

// Ptr returns the pointer to the contained value, or nil for None.
func (o OptionBox[T]) Ptr() *T {
	return o.ptr
}

// Expect returns the contained value. It panics with msg if o is None.
func (o OptionBox[T]) Expect(msg string) T {
	if o.ptr == nil {
		panic(msg)
	}
	return *o.ptr
}

// Unwrap returns the contained value. It panics if o is None; prefer
// UnwrapOr, UnwrapOrElse or Get when absence is expected.
func (o OptionBox[T]) Unwrap() T {
	return o.Expect("galbi: called OptionBox.Unwrap on a None value")
}

// UnwrapOr returns the contained value or def.
// def is evaluated by the caller even when unused; use UnwrapOrElse for an
// expensive fallback.
func (o OptionBox[T]) UnwrapOr(def T) T {
	if o.ptr == nil {
		return def
	}
	return *o.ptr
}

// UnwrapOrElse returns the contained value, calling fn only if o is None.
func (o OptionBox[T]) UnwrapOrElse(fn func() T) T {
	if o.ptr == nil {
		return fn()
	}
	return *o.ptr
}

// UnwrapOrZero returns the contained value or the zero value of T.
func (o OptionBox[T]) UnwrapOrZero() T {
	v, _ := o.Get()
	return v
}

// OkOr returns the contained value and a nil error, or err if o is None.
func (o OptionBox[T]) OkOr(err error) (T, error) {
	if o.ptr == nil {
		var zero T
		return zero, err
	}
	return *o.ptr, nil
}

// OkOrElse is OkOr with the error built by fn, called only if o is None.
func (o OptionBox[T]) OkOrElse(fn func() error) (T, error) {
	if o.ptr == nil {
		var zero T
		return zero, fn()
	}
	return *o.ptr, nil
}

// Or returns o if it holds a value, otherwise other.
func (o OptionBox[T]) Or(other OptionBox[T]) OptionBox[T] {
	if o.ptr != nil {
		return o
	}
	return other
}

// OrElse returns o if it holds a value, otherwise the result of fn.
func (o OptionBox[T]) OrElse(fn func() OptionBox[T]) OptionBox[T] {
	if o.ptr != nil {
		return o
	}
	return fn()
}

// Xor returns whichever of o and other holds a value if exactly one does,
// otherwise None.
func (o OptionBox[T]) Xor(other OptionBox[T]) OptionBox[T] {
	switch {
	case o.ptr != nil && other.ptr == nil:
		return o
	case o.ptr == nil && other.ptr != nil:
		return other
	default:
		return None[T]()
	}
}

// Filter returns o if it holds a value matching pred, otherwise None.
func (o OptionBox[T]) Filter(pred func(T) bool) OptionBox[T] {
	if o.ptr != nil && pred(*o.ptr) {
		return o
	}
	return None[T]()
}

// Inspect calls fn with the contained value, if any, and returns o.
func (o OptionBox[T]) Inspect(fn func(T)) OptionBox[T] {
	if o.ptr != nil {
		fn(*o.ptr)
	}
	return o
}

// Iter yields the contained value once, or nothing for None.
func (o OptionBox[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ptr != nil {
			yield(*o.ptr)
		}
	}
}

// IterMut yields a pointer to the contained value once, or nothing for None.
func (o OptionBox[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if o.ptr != nil {
			yield(o.ptr)
		}
	}
}

// Take moves the value out of o, leaving None.
func (o *OptionBox[T]) Take() OptionBox[T] {
	old := *o
	o.ptr = nil
	return old
}

// Replace stores value in o and returns what o held before.
func (o *OptionBox[T]) Replace(value T) OptionBox[T] {
	old := *o
	o.ptr = &value
	return old
}

// Insert stores value in o, dropping any previous value, and returns a
// pointer to the stored value.
func (o *OptionBox[T]) Insert(value T) *T {
	o.ptr = &value
	return o.ptr
}

// GetOrInsert stores value if o is None and returns a pointer to the
// contained value.
func (o *OptionBox[T]) GetOrInsert(value T) *T {
	if o.ptr == nil {
		o.ptr = &value
	}
	return o.ptr
}

// GetOrInsertWith is GetOrInsert with the value built by fn, called only if
// o is None.
func (o *OptionBox[T]) GetOrInsertWith(fn func() T) *T {
	if o.ptr == nil {
		v := fn()
		o.ptr = &v
	}
	return o.ptr
}

// Clone returns an OptionBox holding its own copy of the value.
// The copy is shallow: maps, slices and pointers inside T are shared.
func (o OptionBox[T]) Clone() OptionBox[T] {
	if o.ptr == nil {
		return None[T]()
	}
	return Some(*o.ptr)
}

// String renders o as "Some(<value>)" or "None".
func (o OptionBox[T]) String() string {
	if o.ptr == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", *o.ptr)
}

// Map applies f to the value held by o.
//
//	galbi.Map(galbi.Some(20), func(v int) int { return v * 2 }) // Some(40)
func Map[T, U any](o OptionBox[T], f func(T) U) OptionBox[U] {
	if o.ptr == nil {
		return None[U]()
	}
	return Some(f(*o.ptr))
}

// MapOr applies f to the value held by o, or returns def for None.
func MapOr[T, U any](o OptionBox[T], def U, f func(T) U) U {
	if o.ptr == nil {
		return def
	}
	return f(*o.ptr)
}

// MapOrElse applies f to the value held by o, or returns def() for None.
func MapOrElse[T, U any](o OptionBox[T], def func() U, f func(T) U) U {
	if o.ptr == nil {
		return def()
	}
	return f(*o.ptr)
}

// And returns None if o is None, otherwise other. The value held by o is
// dropped.
func And[T, U any](o OptionBox[T], other OptionBox[U]) OptionBox[U] {
	if o.ptr == nil {
		return None[U]()
	}
	return other
}

// AndThen returns None if o is None, otherwise f applied to its value.
func AndThen[T, U any](o OptionBox[T], f func(T) OptionBox[U]) OptionBox[U] {
	if o.ptr == nil {
		return None[U]()
	}
	return f(*o.ptr)
}

// Flatten removes one level of nesting.
func Flatten[T any](o OptionBox[OptionBox[T]]) OptionBox[T] {
	if o.ptr == nil {
		return None[T]()
	}
	return *o.ptr
}

// Pair is the value type of a zipped OptionBox.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip returns Some pair if both a and b hold values, otherwise None.
func Zip[A, B any](a OptionBox[A], b OptionBox[B]) OptionBox[Pair[A, B]] {
	if a.ptr == nil || b.ptr == nil {
		return None[Pair[A, B]]()
	}
	return Some(Pair[A, B]{First: *a.ptr, Second: *b.ptr})
}

// Equal reports whether a and b are both None, or both Some with equal
// values.
func Equal[T comparable](a, b OptionBox[T]) bool {
	if a.ptr == nil || b.ptr == nil {
		return a.ptr == nil && b.ptr == nil
	}
	return *a.ptr == *b.ptr
}

// Compare orders None before any Some, and Some values by cmp.Compare.
func Compare[T cmp.Ordered](a, b OptionBox[T]) int {
	switch {
	case a.ptr == nil && b.ptr == nil:
		return 0
	case a.ptr == nil:
		return -1
	case b.ptr == nil:
		return 1
	default:
		return cmp.Compare(*a.ptr, *b.ptr)
	}
}

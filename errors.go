package galbi

import (
	"errors"
	"fmt"
)

var (
	ErrPoisoned               = errors.New("galbi: poisoned")
	ErrWouldBlock             = errors.New("galbi: lock would block")
	ErrAlreadyBorrowed        = errors.New("galbi: already borrowed")
	ErrAlreadyMutablyBorrowed = errors.New("galbi: already mutably borrowed")
	ErrWrongGoroutine         = errors.New("galbi: RcCell used from a goroutine other than its owner")
)

// BorrowError describes a rejected RcCell borrow.
// It is returned by TryBorrow/TryBorrowMut and is the panic value of
// Borrow/BorrowMut.
type BorrowError struct {
	// Requested is the borrow that was refused.
	Requested BorrowState
	// Held is the borrow state at the time of the request.
	Held BorrowState
	// Readers is the number of shared borrows outstanding when Held is Shared.
	Readers int
}

func (e *BorrowError) Error() string {
	if e.Held == Shared {
		return fmt.Sprintf("%v: %s borrow refused, %d shared borrow(s) outstanding",
			e.Unwrap(), e.Requested, e.Readers)
	}
	return fmt.Sprintf("%v: %s borrow refused", e.Unwrap(), e.Requested)
}

// Unwrap returns ErrAlreadyMutablyBorrowed for a refused shared borrow and
// ErrAlreadyBorrowed for a refused exclusive one.
func (e *BorrowError) Unwrap() error {
	if e.Requested == Shared {
		return ErrAlreadyMutablyBorrowed
	}
	return ErrAlreadyBorrowed
}

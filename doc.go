// Package galbi provides shortcut types for common ownership patterns.
//
// # Overview
//
// galbi packages three patterns behind named generic types instead of
// hand-assembled combinations of pointers, mutexes and flags:
//
//  1. ArcMutex[T]: a value shared between goroutines, accessed under a mutex
//  2. RcCell[T]: a value shared within one goroutine, with borrows checked at run time
//  3. OptionBox[T]: an optional heap-allocated value with the usual optional combinators
//
// The three types are independent of each other.
//
// # Quick Start
//
//	shared := galbi.NewArcMutex(15)
//	worker := shared.Clone() // same value, safe to hand to another goroutine
//
//	g, err := worker.Lock()
//	if err != nil {
//	    return err // galbi.ErrPoisoned
//	}
//	defer g.Unlock()
//	*g.Get() += 1
//
// Handles are small values. Copying or cloning one never copies the value
// behind it, and the value lives for as long as any handle refers to it.
//
// # Poisoning
//
// When a goroutine panics while holding an ArcMutex guard released with
// defer g.Unlock(), the value is marked poisoned. Every later Lock on any
// handle returns ErrPoisoned until ClearPoison is called:
//
//	if _, err := shared.Lock(); errors.Is(err, galbi.ErrPoisoned) {
//	    v, _ := shared.Load() // inspect what the failed holder left behind
//	    shared.ClearPoison()
//	}
//
// # Borrowing
//
// RcCell never blocks. Borrow and BorrowMut either succeed at once or panic
// with a *BorrowError; TryBorrow and TryBorrowMut return the error instead.
// Every Ref and RefMut must be released, ideally with defer:
//
//	cell := galbi.NewRcCell([]string{"a"})
//	w := cell.BorrowMut()
//	*w.Get() = append(*w.Get(), "b")
//	w.Release()
//
//	r := cell.Borrow()
//	defer r.Release()
//
// RcCell handles must stay on the goroutine that created them. Go cannot
// reject a transfer at compile time; build cells WithGoroutineCheck in tests
// to turn violations into panics.
//
// # Optional values
//
//	port := galbi.FromOption(os.LookupEnv("PORT"))
//	addr := galbi.MapOr(port, ":8080", func(p string) string { return ":" + p })
//
// OptionBox encodes None as null in JSON and YAML, so it can be used for
// optional configuration fields.
//
// # Observability
//
// ArcMutex and RcCell accept WithLogger (see NewZerologLogger) and
// WithMetrics (Prometheus) options. Build with -tags=deadlock to back
// ArcMutex with github.com/sasha-s/go-deadlock.
//
// # Error Handling
//
// The package defines sentinel errors:
//
//	_, err := cell.TryBorrowMut()
//	if errors.Is(err, galbi.ErrAlreadyBorrowed) {
//	    // a Ref is still live
//	}
//
// Available errors: ErrPoisoned, ErrWouldBlock, ErrAlreadyBorrowed,
// ErrAlreadyMutablyBorrowed, ErrWrongGoroutine
package galbi

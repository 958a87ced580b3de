package galbi

import (
	"sync/atomic"
	"time"

	"github.com/myyrakle/galbi/internal/syncutil"
)

type mutexInner[T any] struct {
	mu     syncutil.Mutex
	poison atomic.Bool
	value  T
	cfg    config
}

// ArcMutex is a handle to a value shared between goroutines and guarded by
// a mutex. Copying the handle or calling Clone yields another handle to the
// same value; the value itself is never copied.
//
// The zero ArcMutex has no value behind it. Create one with NewArcMutex.
type ArcMutex[T any] struct {
	inner *mutexInner[T]
}

// NewArcMutex takes value and returns the first handle to it.
//
//	shared := galbi.NewArcMutex(15)
//	g, err := shared.Lock()
//	if err != nil {
//	    return err
//	}
//	defer g.Unlock()
//	fmt.Println(*g.Get())
func NewArcMutex[T any](value T, opts ...Option) ArcMutex[T] {
	return ArcMutex[T]{inner: &mutexInner[T]{value: value, cfg: newConfig(opts)}}
}

func (m ArcMutex[T]) shared() *mutexInner[T] {
	if m.inner == nil {
		panic("galbi: use of zero ArcMutex, create it with NewArcMutex")
	}
	return m.inner
}

// Clone returns another handle to the same guarded value.
func (m ArcMutex[T]) Clone() ArcMutex[T] {
	return ArcMutex[T]{inner: m.shared()}
}

// Same reports whether m and other refer to the same guarded value.
func (m ArcMutex[T]) Same(other ArcMutex[T]) bool {
	return m.inner != nil && m.inner == other.inner
}

// Lock blocks until no other guard on the value is live, then returns a
// guard granting exclusive access. There is no timeout.
//
// If an earlier holder panicked while holding the lock, the value is
// poisoned: Lock releases the lock again and returns ErrPoisoned, on every
// handle, until ClearPoison is called.
//
// Waiters are not served in FIFO order. A waiter that has been blocked for
// more than a millisecond switches the mutex to hand-off mode, which bounds
// starvation (see sync.Mutex).
func (m ArcMutex[T]) Lock() (*MutexGuard[T], error) {
	in := m.shared()

	var start time.Time
	if in.cfg.metrics != nil {
		start = time.Now()
	}
	in.mu.Lock()

	if in.poison.Load() {
		in.mu.Unlock()
		in.cfg.metrics.acquired("poisoned")
		return nil, ErrPoisoned
	}
	if in.cfg.metrics != nil {
		in.cfg.metrics.observeLock(time.Since(start))
	}
	return &MutexGuard[T]{inner: in}, nil
}

// TryLock is Lock without blocking. It returns ErrWouldBlock if another
// guard is live.
//
// Under -tags=deadlock, a TryLock from the goroutine that already holds the
// lock is reported by go-deadlock as recursive locking, which exits the
// process by default instead of returning ErrWouldBlock.
func (m ArcMutex[T]) TryLock() (*MutexGuard[T], error) {
	in := m.shared()
	if !in.mu.TryLock() {
		in.cfg.metrics.acquired("would_block")
		return nil, ErrWouldBlock
	}
	if in.poison.Load() {
		in.mu.Unlock()
		in.cfg.metrics.acquired("poisoned")
		return nil, ErrPoisoned
	}
	in.cfg.metrics.acquired("ok")
	return &MutexGuard[T]{inner: in}, nil
}

// With runs fn while holding the lock and returns its error.
// If fn panics or calls runtime.Goexit the value is poisoned before the
// lock is released; the panic continues unchanged.
func (m ArcMutex[T]) With(fn func(v *T) error) error {
	g, err := m.Lock()
	if err != nil {
		return err
	}

	completed := false
	defer func() {
		if !completed {
			g.inner.poisonWith("holder exited abnormally inside With")
		}
		g.release()
	}()

	err = fn(&g.inner.value)
	completed = true
	return err
}

// Load returns a copy of the value, taken under the lock.
// Unlike Lock it also reads a poisoned value, returning it together with
// ErrPoisoned so the caller can inspect what the failed holder left behind.
func (m ArcMutex[T]) Load() (T, error) {
	in := m.shared()
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.poison.Load() {
		return in.value, ErrPoisoned
	}
	return in.value, nil
}

// IsPoisoned reports whether a holder panicked while holding the lock.
func (m ArcMutex[T]) IsPoisoned() bool {
	return m.shared().poison.Load()
}

// ClearPoison clears the poisoned state so Lock succeeds again.
// The caller is responsible for restoring the value to a consistent state.
func (m ArcMutex[T]) ClearPoison() {
	in := m.shared()
	if in.poison.Swap(false) {
		in.cfg.logf("info", "ArcMutex poison cleared")
	}
}

func (in *mutexInner[T]) poisonWith(cause interface{}) {
	in.poison.Store(true)
	in.cfg.metrics.poisoned()
	in.cfg.logf("warn", "ArcMutex poisoned: %v", cause)
}

// MutexGuard grants exclusive access to an ArcMutex value until Unlock.
type MutexGuard[T any] struct {
	inner    *mutexInner[T]
	released bool
}

// Get returns a pointer to the guarded value. The pointer must not be used
// after Unlock.
func (g *MutexGuard[T]) Get() *T {
	g.live()
	return &g.inner.value
}

// Set replaces the guarded value.
func (g *MutexGuard[T]) Set(value T) {
	g.live()
	g.inner.value = value
}

// Unlock releases the lock, waking at most one blocked Lock call.
// Calling it more than once is a no-op.
//
// Unlock must be deferred directly (defer g.Unlock()) for poisoning to
// work: if the goroutine is panicking, Unlock marks the value poisoned,
// releases the lock and re-panics with the original value.
//
// runtime.Goexit is not a panic, so a deferred Unlock releases the lock
// without poisoning. Use With when Goexit must poison too.
func (g *MutexGuard[T]) Unlock() {
	if g.released {
		return
	}
	if r := recover(); r != nil {
		g.inner.poisonWith(r)
		g.release()
		panic(r)
	}
	g.release()
}

func (g *MutexGuard[T]) release() {
	if g.released {
		return
	}
	g.released = true
	g.inner.mu.Unlock()
}

func (g *MutexGuard[T]) live() {
	if g.released {
		panic("galbi: MutexGuard used after Unlock")
	}
}

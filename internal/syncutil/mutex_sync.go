//go:build !deadlock

// Package syncutil provides the mutex that backs ArcMutex.
// By default it is a plain sync.Mutex with zero overhead.
// Build with -tags=deadlock to enable lock-order and timeout diagnostics via
// github.com/sasha-s/go-deadlock.
package syncutil

import "sync"

// DeadlockEnabled is true if the deadlock detector is compiled in.
const DeadlockEnabled = false

// Mutex wraps sync.Mutex. Build with -tags=deadlock for deadlock detection.
//
//nolint:gocritic // embedding sync.Mutex is intentional, this IS the wrapper
type Mutex struct {
	sync.Mutex
}

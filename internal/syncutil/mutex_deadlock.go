//go:build deadlock

package syncutil

import deadlock "github.com/sasha-s/go-deadlock"

// DeadlockEnabled is true if the deadlock detector is compiled in.
const DeadlockEnabled = true

// Mutex wraps deadlock.Mutex, which reports potential deadlocks and locks
// held for longer than deadlock.Opts.DeadlockTimeout.
type Mutex struct {
	deadlock.Mutex
}

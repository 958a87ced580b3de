// Package goid reports the id of the calling goroutine.
//
// The id is read from the first line of runtime.Stack output
// ("goroutine 123 [running]:"). This is slow (around a microsecond) but
// does not depend on the runtime's internal g struct layout, so it keeps
// working across Go releases.
package goid

import "runtime"

// Get returns the current goroutine id, or 0 if it cannot be determined.
func Get() int64 {
	// Only the first line is needed.
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parse(buf[:n])
}

// parse extracts the id from "goroutine 123 [running]:...".
func parse(buf []byte) int64 {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}

	var id int64
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}

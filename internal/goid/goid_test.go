package goid

import (
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"running", "goroutine 1 [running]:\nmain.main()", 1},
		{"large id", "goroutine 1234567 [running]:", 1234567},
		{"no prefix", "thread 12 [running]:", 0},
		{"too short", "gorout", 0},
		{"empty", "", 0},
		{"no digits", "goroutine [running]:", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse([]byte(tt.in)); got != tt.want {
				t.Errorf("parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestGet_StableWithinGoroutine(t *testing.T) {
	a, b := Get(), Get()
	if a <= 0 {
		t.Fatalf("Get() = %d, want positive id", a)
	}
	if a != b {
		t.Errorf("Get() returned %d then %d on the same goroutine", a, b)
	}
}

func TestGet_DiffersAcrossGoroutines(t *testing.T) {
	main := Get()

	var wg sync.WaitGroup
	var other int64
	wg.Add(1)
	go func() {
		defer wg.Done()
		other = Get()
	}()
	wg.Wait()

	if other <= 0 {
		t.Fatalf("Get() in goroutine = %d, want positive id", other)
	}
	if other == main {
		t.Errorf("Get() = %d in both goroutines", main)
	}
}

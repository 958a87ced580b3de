package galbi

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// Benchmark basic operations.

func BenchmarkArcMutex_Lock(b *testing.B) {
	m := NewArcMutex(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := m.Lock()
		*g.Get()++
		g.Unlock()
	}
}

func BenchmarkArcMutex_Lock_Metrics(b *testing.B) {
	metrics, err := NewMetrics(prometheus.NewRegistry(), "bench")
	if err != nil {
		b.Fatal(err)
	}
	m := NewArcMutex(0, WithMetrics(metrics))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := m.Lock()
		*g.Get()++
		g.Unlock()
	}
}

func BenchmarkArcMutex_With(b *testing.B) {
	m := NewArcMutex(0)
	inc := func(v *int) error {
		*v++
		return nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.With(inc)
	}
}

// Benchmark concurrent operations.

func BenchmarkArcMutex_Lock_Parallel(b *testing.B) {
	m := NewArcMutex(0)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		h := m.Clone()
		for pb.Next() {
			g, _ := h.Lock()
			*g.Get()++
			g.Unlock()
		}
	})
}

func BenchmarkRcCell_Borrow(b *testing.B) {
	cell := NewRcCell([]int{1, 2, 3})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := cell.Borrow()
		_ = r.Get()[0]
		r.Release()
	}
}

func BenchmarkRcCell_BorrowMut(b *testing.B) {
	cell := NewRcCell(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := cell.BorrowMut()
		*w.Get()++
		w.Release()
	}
}

func BenchmarkRcCell_Borrow_GoroutineCheck(b *testing.B) {
	cell := NewRcCell(0, WithGoroutineCheck())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cell.Borrow().Release()
	}
}

func BenchmarkOptionBox_Map(b *testing.B) {
	o := Some(21)
	double := func(v int) int { return v * 2 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Map(o, double)
	}
}

func BenchmarkOptionBox_UnwrapOr(b *testing.B) {
	some, none := Some(1), None[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = some.UnwrapOr(0) + none.UnwrapOr(0)
	}
}

package galbi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records lock and borrow activity of the cells it is attached to
// with WithMetrics. One Metrics may be shared by any number of cells; the
// series are aggregated across them.
type Metrics struct {
	lockWait     prometheus.Histogram
	acquisitions *prometheus.CounterVec
	poisonings   prometheus.Counter
	conflicts    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		lockWait: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "galbi",
				Name:      "lock_wait_seconds",
				Help:      "Time spent blocked in ArcMutex.Lock before the lock was granted",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
			},
		),
		acquisitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "galbi",
				Name:      "lock_acquisitions_total",
				Help:      "ArcMutex lock attempts by result",
			},
			[]string{"result"}, // "ok", "poisoned", "would_block"
		),
		poisonings: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "galbi",
				Name:      "poisonings_total",
				Help:      "ArcMutex values poisoned by a panicking holder",
			},
		),
		conflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "galbi",
				Name:      "borrow_conflicts_total",
				Help:      "RcCell borrows refused by requested kind",
			},
			[]string{"requested"}, // "shared", "exclusive"
		),
	}

	for _, c := range []prometheus.Collector{m.lockWait, m.acquisitions, m.poisonings, m.conflicts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observeLock records a Lock that was granted after waiting for wait.
func (m *Metrics) observeLock(wait time.Duration) {
	if m == nil {
		return
	}
	m.lockWait.Observe(wait.Seconds())
	m.acquisitions.WithLabelValues("ok").Inc()
}

// acquired records a lock attempt without a wait sample: every TryLock
// and any Lock refused because of poisoning.
func (m *Metrics) acquired(result string) {
	if m == nil {
		return
	}
	m.acquisitions.WithLabelValues(result).Inc()
}

func (m *Metrics) poisoned() {
	if m == nil {
		return
	}
	m.poisonings.Inc()
}

func (m *Metrics) conflict(requested BorrowState) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(requested.String()).Inc()
}

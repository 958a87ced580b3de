package galbi

import "fmt"

// Option customizes ArcMutex and RcCell behavior.
type Option func(*config)

type config struct {
	logger         Logger
	logTag         string
	metrics        *Metrics
	checkGoroutine bool
}

func newConfig(opts []Option) config {
	c := config{logger: defaultLogger}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger specifies a logger for cell events such as poisoning and
// borrow violations.
// If not provided, a no-op logger is used (no logging).
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLogTag sets a tag prefix for all log messages.
// Useful for telling cells apart when several share one logger.
func WithLogTag(tag string) Option {
	return func(c *config) {
		c.logTag = tag
	}
}

// WithMetrics reports lock and borrow activity to m.
// A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithGoroutineCheck makes an RcCell remember the goroutine that created it
// and panic with ErrWrongGoroutine when any of its handles, Refs or RefMuts
// is used from another goroutine. Each check costs roughly a microsecond, so it is meant
// for tests and debugging. ArcMutex ignores it.
func WithGoroutineCheck() Option {
	return func(c *config) {
		c.checkGoroutine = true
	}
}

func (c *config) logf(level string, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.logTag != "" {
		msg = c.logTag + " " + msg
	}
	switch level {
	case "info":
		c.logger.Info("%s", msg)
	case "warn":
		c.logger.Warn("%s", msg)
	case "error":
		c.logger.Error("%s", msg)
	case "debug":
		c.logger.Debug("%s", msg)
	}
}

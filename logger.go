package galbi

import "github.com/rs/zerolog"

// Logger defines an interface for logging cell events.
// Implementations should be safe for concurrent use.
type Logger interface {
	// Info logs informational messages
	Info(format string, args ...interface{})

	// Warn logs warning messages
	Warn(format string, args ...interface{})

	// Error logs error messages
	Error(format string, args ...interface{})

	// Debug logs debug messages
	Debug(format string, args ...interface{})
}

// noopLogger is a Logger that does nothing.
type noopLogger struct{}

func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}
func (noopLogger) Debug(format string, args ...interface{}) {}

var defaultLogger Logger = noopLogger{}

// zerologLogger forwards to a zerolog.Logger.
type zerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to Logger.
//
//	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
//	logger := galbi.NewZerologLogger(zerolog.New(out).With().Timestamp().Logger())
//	shared := galbi.NewArcMutex(cfg, galbi.WithLogger(logger))
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologLogger{l: l}
}

func (z zerologLogger) Info(format string, args ...interface{}) {
	z.l.Info().Msgf(format, args...)
}

func (z zerologLogger) Warn(format string, args ...interface{}) {
	z.l.Warn().Msgf(format, args...)
}

func (z zerologLogger) Error(format string, args ...interface{}) {
	z.l.Error().Msgf(format, args...)
}

func (z zerologLogger) Debug(format string, args ...interface{}) {
	z.l.Debug().Msgf(format, args...)
}

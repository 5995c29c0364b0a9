// Package ports defines the interfaces between the decoder core and its adapters.
package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for decoder state transitions and rejected option calls.
	LevelDebug LogLevel = iota
	// LevelInfo is for session progress.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failures that abort a session.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var logLevelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if l >= LevelDebug && l <= LevelQuiet {
		return logLevelNames[l]
	}
	return "unknown"
}

// ParseLogLevel parses a string into a LogLevel. Unknown names map to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	for i, name := range logLevelNames {
		if name == s {
			return LogLevel(i)
		}
	}
	return LevelInfo
}

// Logger abstracts logging with message translation.
type Logger interface {
	// Debug logs a debug message. The msg parameter is a translatable format key.
	Debug(msg string, args ...interface{})

	// Info logs an informational message.
	Info(msg string, args ...interface{})

	// Warn logs a warning message.
	Warn(msg string, args ...interface{})

	// Error logs an error message.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}

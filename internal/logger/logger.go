package logger

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings.
const (
	ConsoleEncoding = "console"
	JSONEncoding    = "json"
)

// New returns a logger writing to stdout at the given level and encoding.
// Unknown levels fall back to debug, unknown encodings to console.
func New(level, encoding string) *Logger {
	return newZapLogger(level, encoding)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return newNopLogger()
}

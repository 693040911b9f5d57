package ports

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	SetDebug(enable bool)
}

package adapters

// NoOpLoggerAdapter implements LoggerAdapter with no-op methods
type NoOpLoggerAdapter struct{}

// Ensure NoOpLoggerAdapter implements LoggerAdapter interface
var _ LoggerAdapter = (*NoOpLoggerAdapter)(nil)

// NewNoOpLoggerAdapter creates a logger that discards everything, for tests
// and hosts that bring their own diagnostics.
func NewNoOpLoggerAdapter() *NoOpLoggerAdapter {
	return &NoOpLoggerAdapter{}
}

func (*NoOpLoggerAdapter) Debug(string, ...any) {}
func (*NoOpLoggerAdapter) Info(string, ...any)  {}
func (*NoOpLoggerAdapter) Warn(string, ...any)  {}
func (*NoOpLoggerAdapter) Error(string, ...any) {}

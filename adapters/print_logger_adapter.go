package adapters

import (
	"log"
)

// PrintLoggerAdapter implements LoggerAdapter using standard log package
type PrintLoggerAdapter struct {
	level  LogLevel
	prefix string
}

// NewPrintLoggerAdapter creates a new print logger with the specified level
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return &PrintLoggerAdapter{level: level, prefix: "[SatisMeter] "}
}

func (p *PrintLoggerAdapter) shouldLog(level LogLevel) bool {
	return logLevelOrder[level] >= logLevelOrder[p.level]
}

func (p *PrintLoggerAdapter) print(level LogLevel, message string, args []any) {
	if p.shouldLog(level) {
		log.Printf("["+string(level)+"] "+p.prefix+message, args...)
	}
}

func (p *PrintLoggerAdapter) Debug(message string, args ...any) {
	p.print(LogLevelDebug, message, args)
}

func (p *PrintLoggerAdapter) Info(message string, args ...any) {
	p.print(LogLevelInfo, message, args)
}

func (p *PrintLoggerAdapter) Warn(message string, args ...any) {
	p.print(LogLevelWarn, message, args)
}

func (p *PrintLoggerAdapter) Error(message string, args ...any) {
	p.print(LogLevelError, message, args)
}

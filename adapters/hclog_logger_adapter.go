package adapters

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// HclogLoggerAdapter implements LoggerAdapter on top of an hclog.Logger.
type HclogLoggerAdapter struct {
	logger hclog.Logger
}

// Ensure HclogLoggerAdapter implements LoggerAdapter interface
var _ LoggerAdapter = (*HclogLoggerAdapter)(nil)

// NewHclogLoggerAdapter wraps logger. A nil logger gets a named default at warn level.
func NewHclogLoggerAdapter(logger hclog.Logger) *HclogLoggerAdapter {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "satismeter",
			Level: hclog.Warn,
		})
	}
	return &HclogLoggerAdapter{logger: logger}
}

func (h *HclogLoggerAdapter) Debug(message string, args ...any) {
	if h.logger.IsDebug() {
		h.logger.Debug(fmt.Sprintf(message, args...))
	}
}

func (h *HclogLoggerAdapter) Info(message string, args ...any) {
	if h.logger.IsInfo() {
		h.logger.Info(fmt.Sprintf(message, args...))
	}
}

func (h *HclogLoggerAdapter) Warn(message string, args ...any) {
	if h.logger.IsWarn() {
		h.logger.Warn(fmt.Sprintf(message, args...))
	}
}

func (h *HclogLoggerAdapter) Error(message string, args ...any) {
	if h.logger.IsError() {
		h.logger.Error(fmt.Sprintf(message, args...))
	}
}

package satismeter

import (
	"time"

	"github.com/Tap30/satismeter-go/adapters"
)

// Re-export adapter types for convenience
type (
	VendorRuntime   = adapters.VendorRuntime
	ScriptLoader    = adapters.ScriptLoader
	ScriptEvaluator = adapters.ScriptEvaluator
	LoggerAdapter   = adapters.LoggerAdapter
	LogLevel        = adapters.LogLevel
)

const (
	// Name is the symbolic name the integration registers under.
	Name = "SatisMeter"

	// Global is the symbol the vendor script defines.
	Global = "satismeter"

	// Tag is the script tag that loads the vendor script.
	Tag = `<script src="https://app.satismeter.com/satismeter.js">`

	// DefaultPollInterval is how often readiness is checked after loading.
	DefaultPollInterval = 50 * time.Millisecond
)

// Config configures a SatisMeter integration.
type Config struct {
	Options      Options
	PollInterval time.Duration
	Adapters     struct {
		Runtime       VendorRuntime
		ScriptLoader  ScriptLoader
		LoggerAdapter LoggerAdapter
	}
	// Metrics is optional.
	Metrics *Metrics
}

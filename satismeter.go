// Package satismeter forwards analytics calls to the SatisMeter survey
// widget's `satismeter` global.
package satismeter

import (
	"context"
	"errors"
	"sync"

	"github.com/Tap30/satismeter-go/adapters"
	"github.com/Tap30/satismeter-go/analytics"
)

// Host exposes the identity context owned by the analytics host.
type Host interface {
	User() *analytics.User
}

// Integration bridges identify, track, page and group calls to the vendor
// global. It never checks the global before calling it; calls made before
// the vendor script has loaded return adapters.ErrGlobalUndefined.
type Integration struct {
	config    Config
	host      Host
	runtime   VendorRuntime
	loader    ScriptLoader
	logger    LoggerAdapter
	metrics   *Metrics
	ready     chan struct{}
	readyOnce sync.Once
	initOnce  sync.Once
}

// Ensure Integration implements analytics.Integration interface
var _ analytics.Integration = (*Integration)(nil)

// New creates a SatisMeter integration bound to host.
func New(config Config, host Host) (*Integration, error) {
	if host == nil {
		return nil, errors.New("host must be provided")
	}
	if config.Adapters.Runtime == nil {
		return nil, errors.New("Runtime adapter must be provided in config")
	}

	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}

	i := &Integration{
		config:  config,
		host:    host,
		runtime: config.Adapters.Runtime,
		metrics: config.Metrics,
		ready:   make(chan struct{}),
	}

	// Use provided adapters or defaults
	if config.Adapters.LoggerAdapter != nil {
		i.logger = config.Adapters.LoggerAdapter
	} else {
		i.logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}

	if config.Adapters.ScriptLoader != nil {
		i.loader = config.Adapters.ScriptLoader
	} else if evaluator, ok := i.runtime.(ScriptEvaluator); ok {
		i.loader = adapters.NewNetHTTPScriptLoader(evaluator)
	}

	if config.Options.WriteKey() == "" {
		i.logger.Warn("Neither apiKey nor token is set")
	}

	return i, nil
}

func (i *Integration) Name() string { return Name }

// Options returns the settings the integration was created with.
func (i *Integration) Options() Options { return i.config.Options }

// Initialize loads the vendor script and polls until the global is defined,
// then closes Ready. It returns immediately. Polling has no timeout and
// stops only when ctx ends. Only the first call has any effect.
func (i *Integration) Initialize(ctx context.Context) {
	i.initOnce.Do(func() {
		go i.initialize(ctx)
	})
}

func (i *Integration) initialize(ctx context.Context) {
	if err := i.load(ctx); err != nil {
		i.logger.Warn("Failed to load vendor script: %v", err)
	}

	i.logger.Debug("Waiting for %s, checking every %v", Global, i.config.PollInterval)
	if err := waitUntil(ctx, i.config.PollInterval, i.Loaded); err != nil {
		i.logger.Debug("Stopped waiting for %s: %v", Global, err)
		return
	}

	i.readyOnce.Do(func() {
		i.logger.Info("Vendor global %s is ready", Global)
		i.metrics.setReady()
		close(i.ready)
	})
}

func (i *Integration) load(ctx context.Context) error {
	if i.loader == nil {
		i.logger.Debug("No script loader, expecting %s to be provided by the runtime", Global)
		return nil
	}
	src, err := adapters.ScriptSource(Tag)
	if err != nil {
		return err
	}
	i.logger.Debug("Loading %s", src)
	return i.loader.Load(ctx, src)
}

// Loaded reports whether the vendor global exists.
func (i *Integration) Loaded() bool {
	return i.runtime.Defined(Global)
}

// Ready is closed once the vendor global has been detected.
func (i *Integration) Ready() <-chan struct{} {
	return i.ready
}

// Identify sends the full accumulated host traits, not only the traits of msg.
func (i *Integration) Identify(msg *analytics.Identify) error {
	err := i.runtime.Send(Global, map[string]any{
		"writeKey": i.config.Options.WriteKey(),
		"userId":   msg.UserID(),
		"traits":   i.host.User().Traits(),
		"type":     "identify",
	})
	i.metrics.observe("identify", err)
	return err
}

// Track forwards (track, event, properties). No write key is attached.
func (i *Integration) Track(msg *analytics.Track) error {
	err := i.runtime.Command(Global, "track", msg.Event(), msg.Properties())
	i.metrics.observe("track", err)
	return err
}

// Page sends the host's current user id, whatever was last identified.
func (i *Integration) Page(msg *analytics.Page) error {
	err := i.runtime.Send(Global, map[string]any{
		"writeKey":   i.config.Options.WriteKey(),
		"userId":     i.host.User().ID(),
		"type":       "page",
		"name":       msg.Name(),
		"properties": msg.Properties(),
	})
	i.metrics.observe("page", err)
	return err
}

// Group forwards (group, groupId, properties). No write key is attached.
func (i *Integration) Group(msg *analytics.Group) error {
	err := i.runtime.Command(Global, "group", msg.GroupID(), msg.Properties())
	i.metrics.observe("group", err)
	return err
}

package analytics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Tap30/satismeter-go/adapters"
)

// Config configures the host.
type Config struct {
	// Page supplies the standard fields merged into page calls.
	Page          PageContext
	LoggerAdapter adapters.LoggerAdapter
}

// Analytics routes generic analytics calls to registered integrations in
// registration order.
type Analytics struct {
	config       Config
	user         *User
	integrations []Integration
	logger       adapters.LoggerAdapter
	ready        chan struct{}
	initialized  bool
	mu           sync.RWMutex
}

// New creates a host with an anonymous user
func New(config Config) *Analytics {
	a := &Analytics{
		config: config,
		user:   NewUser(),
		ready:  make(chan struct{}),
	}

	if config.LoggerAdapter != nil {
		a.logger = config.LoggerAdapter
	} else {
		a.logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}

	return a
}

// Add registers integrations.
// Must be called before Initialize().
func (a *Analytics) Add(integrations ...Integration) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return errors.New("integrations cannot be added after Initialize()")
	}

	for _, integration := range integrations {
		for _, existing := range a.integrations {
			if existing.Name() == integration.Name() {
				return fmt.Errorf("integration %q is already registered", integration.Name())
			}
		}
		a.integrations = append(a.integrations, integration)
	}
	return nil
}

// User returns the identity context shared with integrations.
func (a *Analytics) User() *User {
	return a.user
}

// Initialize initializes every integration once. Ready is closed after all
// of them are ready, or never if ctx ends first.
func (a *Analytics) Initialize(ctx context.Context) {
	a.mu.Lock()
	if a.initialized {
		a.mu.Unlock()
		return
	}
	a.initialized = true
	integrations := append([]Integration(nil), a.integrations...)
	a.mu.Unlock()

	for _, integration := range integrations {
		a.logger.Debug("Initializing integration %s", integration.Name())
		integration.Initialize(ctx)
	}

	go func() {
		for _, integration := range integrations {
			select {
			case <-integration.Ready():
				a.logger.Debug("Integration %s is ready", integration.Name())
			case <-ctx.Done():
				return
			}
		}
		a.logger.Info("All integrations ready")
		close(a.ready)
	}()
}

// Ready is closed once every integration has signalled ready.
func (a *Analytics) Ready() <-chan struct{} {
	return a.ready
}

// Identify records the user and forwards the call.
func (a *Analytics) Identify(id string, traits map[string]any) error {
	a.user.Identify(id, traits)
	if id == "" {
		id = a.user.ID()
	}
	msg := NewIdentify(id, traits)
	return a.dispatch("identify", func(i Integration) error { return i.Identify(msg) })
}

func (a *Analytics) Track(event string, properties map[string]any) error {
	msg := NewTrack(event, properties)
	return a.dispatch("track", func(i Integration) error { return i.Track(msg) })
}

func (a *Analytics) Page(name string, properties map[string]any) error {
	msg := NewPage(name, properties, a.config.Page)
	return a.dispatch("page", func(i Integration) error { return i.Page(msg) })
}

func (a *Analytics) Group(groupID string, traits map[string]any) error {
	msg := NewGroup(groupID, traits)
	return a.dispatch("group", func(i Integration) error { return i.Group(msg) })
}

// Reset forgets the current user.
func (a *Analytics) Reset() {
	a.user.Reset()
}

func (a *Analytics) dispatch(method string, call func(Integration) error) error {
	a.mu.RLock()
	integrations := a.integrations
	a.mu.RUnlock()

	var errs []error
	for _, integration := range integrations {
		if err := call(integration); err != nil {
			a.logger.Error("%s %s failed: %v", integration.Name(), method, err)
			errs = append(errs, fmt.Errorf("%s %s: %w", integration.Name(), method, err))
		}
	}
	return errors.Join(errs...)
}

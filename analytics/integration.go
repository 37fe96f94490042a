package analytics

import "context"

// Integration is a destination plugin driven by the host.
type Integration interface {
	// Name is the symbolic name the integration registers under.
	Name() string

	// Initialize starts acquiring the destination. It must not block; the
	// integration reports readiness by closing the channel returned from Ready.
	Initialize(ctx context.Context)

	// Loaded reports whether the destination is available.
	Loaded() bool

	// Ready is closed once the integration is ready.
	Ready() <-chan struct{}

	Identify(msg *Identify) error
	Track(msg *Track) error
	Page(msg *Page) error
	Group(msg *Group) error
}

package satismeter

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var errNotReady = errors.New("vendor global not defined yet")

// waitUntil checks predicate immediately and then every interval until it
// holds. It only gives up when ctx ends.
func waitUntil(ctx context.Context, interval time.Duration, predicate func() bool) error {
	check := func() error {
		if predicate() {
			return nil
		}
		return errNotReady
	}
	return backoff.Retry(check, backoff.WithContext(backoff.NewConstantBackOff(interval), ctx))
}

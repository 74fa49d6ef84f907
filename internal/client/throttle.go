// Package client provides request pacing shared by API clients.
//
// Purpose:
//
//	Pace mutating API calls so the server is never hammered: after every call
//	that changes state the caller waits a fixed delay before the next request.
//	The delay is configurable and the wait honors context cancellation. There
//	is deliberately no retry logic; a failed call surfaces immediately.
//
// Dependencies:
//   - context: Cancellation during waits
//   - time: Delay timing
package client

import (
	"context"
	"time"
)

// ThrottleConfig holds pacing configuration for mutating calls.
type ThrottleConfig struct {
	MutationDelay time.Duration // Wait after each mutating call (default: 2s)
}

// DefaultThrottleConfig returns the default pacing configuration.
func DefaultThrottleConfig() ThrottleConfig {
	return ThrottleConfig{
		MutationDelay: 2 * time.Second,
	}
}

// Wait blocks for the configured mutation delay or until the context is
// cancelled, whichever comes first. A zero or negative delay returns
// immediately.
func (c ThrottleConfig) Wait(ctx context.Context) error {
	if c.MutationDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(c.MutationDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

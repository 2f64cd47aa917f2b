// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"context"
	"time"
)

// CancelFunc reports whether cancellation was requested. It is polled once per
// readiness slice and must be repeatable and free of side effects. The state
// it inspects is owned by the caller, e.g., a flag flipped on shutdown.
type CancelFunc func() bool

// Never returns a CancelFunc which never requests cancellation.
func Never() CancelFunc {
	return func() bool { return false }
}

// WithTimeout returns a CancelFunc requesting cancellation once the given
// duration has passed, measured from this call.
func WithTimeout(d time.Duration) CancelFunc {
	deadline := time.Now().Add(d)
	return func() bool {
		return time.Now().After(deadline)
	}
}

// WithContext returns a CancelFunc requesting cancellation once the Context
// was cancelled or has exceeded its deadline.
func WithContext(ctx context.Context) CancelFunc {
	return func() bool {
		return ctx.Err() != nil
	}
}

// Any combines multiple CancelFuncs; the result requests cancellation as soon
// as one of them does.
func Any(fns ...CancelFunc) CancelFunc {
	return func() bool {
		for _, fn := range fns {
			if fn() {
				return true
			}
		}
		return false
	}
}

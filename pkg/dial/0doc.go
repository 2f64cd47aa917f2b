// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dial establishes TCP connections through cancellable, timeout-bounded
// non-blocking connect attempts.
//
// A Dialer resolves a hostname into an ordered list of Candidates and tries
// them one after another. Each attempt drives a non-blocking connect through
// short readiness slices, so a pending cancellation is honored within one
// slice instead of blocking for the whole connect timeout. The resulting
// socket is configured (non-blocking mode, TCP_NODELAY, and SO_NOSIGPIPE where
// available) and handed over to the caller as a Handle.
package dial

import "time"

const (
	// DefaultTimeout is the connect budget granted to every single Candidate.
	DefaultTimeout = 60 * time.Second

	// DefaultInterval is the length of one readiness slice. The cancellation
	// capability is polled once per slice.
	DefaultInterval = 50 * time.Millisecond
)

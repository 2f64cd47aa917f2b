// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// Dialer establishes TCP connections. The zero value is usable and applies
// DefaultTimeout, DefaultInterval, and a SystemResolver.
//
// A Dialer holds no connection state; one Dialer may be shared between
// goroutines as long as its fields are not mutated concurrently.
type Dialer struct {
	// Timeout is the connect budget granted to every single Candidate, not to
	// the whole Connect call.
	Timeout time.Duration

	// Interval is the length of one readiness slice. The Timeout/Interval
	// ratio determines the slice count per Candidate.
	Interval time.Duration

	// Resolver turns the hostname into Candidates. Defaults to a
	// SystemResolver.
	Resolver Resolver

	// open creates the platform socket for a Candidate; tests replace it.
	open func(Candidate) (sockOps, error)
}

// Connect resolves hostname and tries each resolved Candidate in resolution
// order until one connects. The first established socket is returned as a
// Handle, whose ownership passes to the caller.
//
// Per-candidate failures advance the failover loop. Cancellation and an
// exhausted budget abort the whole call instead, as they describe the caller
// respectively the environment rather than a single address. If every
// Candidate fails, the returned Error carries the last candidate's failure
// message and wraps the errors of all attempts.
//
// cancelled is polled between readiness slices; a nil value disables
// cancellation.
func (d *Dialer) Connect(hostname string, port int, cancelled CancelFunc) (*Handle, error) {
	if cancelled == nil {
		cancelled = Never()
	}

	candidates, err := d.resolver().Resolve(hostname, port, cancelled)
	if err != nil {
		return nil, newError(KindResolution, err.Error(), err)
	}
	if len(candidates) == 0 {
		// A well-behaved Resolver errors on empty results itself.
		return nil, newError(KindResolution,
			fmt.Sprintf("no addresses resolved for %s", hostname), nil)
	}

	var (
		attemptErrs error
		lastMessage string
	)

	for _, c := range candidates {
		ops, attemptErr := d.attempt(c, cancelled)
		if attemptErr == nil {
			log.WithFields(log.Fields{
				"host":      hostname,
				"candidate": c.String(),
			}).Debug("Connection established")

			return &Handle{ops: ops, candidate: c}, nil
		}

		if IsKind(attemptErr, KindCancelled) || IsKind(attemptErr, KindTimeout) {
			return nil, attemptErr
		}

		log.WithFields(log.Fields{
			"host":      hostname,
			"candidate": c.String(),
			"error":     attemptErr,
		}).Debug("Connect attempt failed, trying next candidate")

		lastMessage = attemptErr.Error()
		attemptErrs = multierror.Append(attemptErrs,
			fmt.Errorf("%s: %w", c.String(), attemptErr))
	}

	return nil, newError(KindAllCandidatesFailed, lastMessage, attemptErrs)
}

// Connect establishes a TCP connection to hostname:port with a zero value
// Dialer.
func Connect(hostname string, port int, cancelled CancelFunc) (*Handle, error) {
	var d Dialer
	return d.Connect(hostname, port, cancelled)
}

func (d *Dialer) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return DefaultTimeout
}

func (d *Dialer) interval() time.Duration {
	if d.Interval > 0 {
		return d.Interval
	}
	return DefaultInterval
}

// maxAttempts is the slice count per Candidate, always derived from the
// budget/interval ratio.
func (d *Dialer) maxAttempts() int {
	if n := int(d.timeout() / d.interval()); n > 0 {
		return n
	}
	return 1
}

func (d *Dialer) resolver() Resolver {
	if d.Resolver != nil {
		return d.Resolver
	}
	return SystemResolver{}
}

func (d *Dialer) openSock(c Candidate) (sockOps, error) {
	if d.open != nil {
		return d.open(c)
	}
	return openSocket(c)
}

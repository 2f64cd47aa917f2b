// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// attempt performs one bounded connect attempt against a single Candidate.
//
// The attempt can be cancelled every slice. This matters when Connect runs on
// a worker serving a responsiveness-critical caller, e.g., a shutdown path
// tearing down a connection which is currently trying to reconnect; such a
// caller must not wait out the full connect budget.
//
// On success the returned sockOps owns an established, configured socket. On
// every failure path the socket is closed before returning; no descriptor
// outlives a failed attempt.
func (d *Dialer) attempt(c Candidate, cancelled CancelFunc) (sockOps, error) {
	ops, err := d.openSock(c)
	if err != nil {
		return nil, newError(KindSocketCreation, err.Error(), err)
	}

	if err := ops.connect(); err != nil {
		_ = ops.close()
		return nil, newError(KindConnectInitiation, err.Error(), err)
	}

	interval := d.interval()
	for i := d.maxAttempts(); i > 0; i-- {
		if cancelled() {
			_ = ops.close()
			return nil, newError(KindCancelled, "Cancelled", nil)
		}

		// Nothing was signalled on the socket, spend another slice.
		if !ops.waitWritable(interval) {
			continue
		}

		if err := ops.pendingError(); err != nil {
			_ = ops.close()

			log.WithFields(log.Fields{
				"candidate": c.String(),
				"error":     err,
			}).Debug("Non-blocking connect settled with an error")

			// Recovered by the caller's failover loop, not kind-tagged.
			return nil, err
		}

		return ops, nil
	}

	_ = ops.close()
	return nil, newError(KindTimeout,
		fmt.Sprintf("connect timed out after %d seconds", int(d.timeout().Seconds())), nil)
}

// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Resolver turns a hostname and port into an ordered Candidate sequence. The
// order encodes the Resolver's preference and is preserved by the Dialer as
// the failover order. A Resolver must respect the cancellation capability and
// must return an error instead of an empty sequence.
type Resolver interface {
	Resolve(hostname string, port int, cancelled CancelFunc) ([]Candidate, error)
}

// resolvePollInterval is the cancellation poll rate while a lookup is in
// flight.
const resolvePollInterval = 10 * time.Millisecond

// SystemResolver resolves hostnames through the operating system's stub
// resolver. The lookup itself runs in a separate goroutine while the
// cancellation capability is polled, so a caller-requested cancellation
// aborts the in-flight lookup instead of waiting it out.
type SystemResolver struct {
	// Interval overrides the cancellation poll rate, mainly for tests.
	Interval time.Duration

	// lookup overrides the stub resolver's lookup; tests replace it.
	lookup func(ctx context.Context, hostname string) ([]net.IPAddr, error)
}

type lookupResult struct {
	addrs []net.IPAddr
	err   error
}

// Resolve implements the Resolver interface.
func (r SystemResolver) Resolve(hostname string, port int, cancelled CancelFunc) ([]Candidate, error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("port %d is out of range", port)
	}
	if cancelled == nil {
		cancelled = Never()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lookup := r.lookup
	if lookup == nil {
		lookup = net.DefaultResolver.LookupIPAddr
	}

	// The channel is buffered so an abandoned lookup goroutine can still
	// deliver its result and terminate.
	results := make(chan lookupResult, 1)
	go func() {
		addrs, err := lookup(ctx, hostname)
		results <- lookupResult{addrs: addrs, err: err}
	}()

	interval := r.Interval
	if interval <= 0 {
		interval = resolvePollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var res lookupResult
wait:
	for {
		select {
		case res = <-results:
			break wait

		case <-ticker.C:
			if cancelled() {
				cancel()
				<-results
				return nil, fmt.Errorf("resolution of %s was cancelled", hostname)
			}
		}
	}

	if res.err != nil {
		return nil, res.err
	}
	if len(res.addrs) == 0 {
		return nil, fmt.Errorf("no addresses resolved for %s", hostname)
	}

	candidates := make([]Candidate, 0, len(res.addrs))
	for _, addr := range res.addrs {
		candidates = append(candidates, Candidate{
			IP:   addr.IP,
			Port: port,
			Zone: addr.Zone,
		})
	}

	return candidates, nil
}

// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"fmt"
	"net"
	"strconv"
)

// Candidate is one resolved network endpoint to attempt a connection to. It is
// created by a Resolver and consumed read-only by the Dialer. The order of a
// Candidate slice is significant; it is the failover order.
type Candidate struct {
	// IP is the resolved address, either a four byte IPv4 or a 16 byte IPv6.
	IP net.IP

	// Port is the TCP port, 1 to 65535.
	Port int

	// Zone is the IPv6 scoped addressing zone, if any.
	Zone string
}

// String returns the Candidate in "host:port" notation.
func (c Candidate) String() string {
	host := c.IP.String()
	if c.Zone != "" {
		host += "%" + c.Zone
	}
	return net.JoinHostPort(host, fmt.Sprintf("%d", c.Port))
}

// zoneID resolves an IPv6 zone to the matching interface index. Unknown zones
// map to zero, the unscoped default.
func zoneID(zone string) uint32 {
	if zone == "" {
		return 0
	}
	if ifi, err := net.InterfaceByName(zone); err == nil {
		return uint32(ifi.Index)
	}
	if index, err := strconv.Atoi(zone); err == nil {
		return uint32(index)
	}
	return 0
}

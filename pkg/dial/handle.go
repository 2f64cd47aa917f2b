// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import "net"

// Handle is an established, configured TCP socket as returned by Connect. The
// caller owns it exclusively and must either Close it or consume it through
// Conn.
//
// The descriptor is in non-blocking mode.
type Handle struct {
	ops       sockOps
	candidate Candidate
}

// Fd returns the raw socket descriptor. Ownership stays with the Handle.
func (h *Handle) Fd() uintptr {
	return h.ops.fd()
}

// Candidate returns the resolved endpoint this Handle is connected to.
func (h *Handle) Candidate() Candidate {
	return h.candidate
}

// Conn converts the Handle into a net.Conn, transferring ownership of the
// connection. The Handle must not be used afterwards, not even Close.
//
// Conn is not supported on Windows, where the net package cannot adopt a
// foreign socket handle.
func (h *Handle) Conn() (net.Conn, error) {
	return h.ops.conn()
}

// Close releases the socket.
func (h *Handle) Close() error {
	return h.ops.close()
}

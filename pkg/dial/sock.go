// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"net"
	"time"
)

// sockOps is the seam between the attempt loop and the platform socket layer.
// The loop never inspects raw platform error codes; classification happens
// behind this interface. Tests drive the loop with fakes.
type sockOps interface {
	// connect issues the non-blocking connect. A nil return means either an
	// immediate success or an operation in progress; both settle through
	// waitWritable and pendingError. Every other outcome is the error.
	connect() error

	// waitWritable waits at most d for the socket to become writable. A false
	// return is not a failure, the attempt loop simply spends another slice.
	waitWritable(d time.Duration) bool

	// pendingError reads the socket's pending error status after a writable
	// readiness signal. nil means the connection is established.
	pendingError() error

	// conn converts the connected socket into a net.Conn, consuming the
	// underlying descriptor.
	conn() (net.Conn, error)

	// fd exposes the raw descriptor.
	fd() uintptr

	// close releases the descriptor.
	close() error
}

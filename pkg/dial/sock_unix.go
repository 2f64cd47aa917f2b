// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd
// +build darwin dragonfly freebsd linux netbsd openbsd

package dial

import (
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"golang.org/x/sys/unix"
)

// unixSock drives one raw TCP socket through golang.org/x/sys/unix.
type unixSock struct {
	sockfd int
	sa     unix.Sockaddr
}

// openSocket creates the socket for a Candidate and configures it. The
// non-blocking mode is in effect before connect is ever issued, so the
// readiness loop can never be stalled by a blocking connect.
func openSocket(c Candidate) (sockOps, error) {
	sa, family, err := sockaddr(c)
	if err != nil {
		return nil, err
	}

	sockfd, err := unix.Socket(family, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, fmt.Errorf("cannot create a socket: %w", err)
	}

	s := &unixSock{sockfd: sockfd, sa: sa}
	if err := s.configure(); err != nil {
		_ = s.close()
		return nil, err
	}

	return s, nil
}

// configure applies the socket options. Disabling Nagle's algorithm and
// suppressing SIGPIPE are best-effort. Non-blocking mode is required; without
// it the readiness loop's semantics do not hold.
func (s *unixSock) configure() error {
	if err := unix.SetsockoptInt(s.sockfd, unix.IPPROTO_TCP, unix.TCP_NODELAY, 1); err != nil {
		log.WithFields(log.Fields{
			"fd":    s.sockfd,
			"error": err,
		}).Debug("Disabling Nagle's algorithm failed")
	}

	if err := unix.SetNonblock(s.sockfd, true); err != nil {
		return fmt.Errorf("cannot set the socket to non-blocking mode: %w", err)
	}

	setNoSigpipe(s.sockfd)

	return nil
}

func (s *unixSock) connect() error {
	// EINTR leaves the connect in progress, like EINPROGRESS.
	if err := unix.Connect(s.sockfd, s.sa); err != nil &&
		err != unix.EINPROGRESS && err != unix.EINTR {
		return err
	}
	return nil
}

func (s *unixSock) waitWritable(d time.Duration) bool {
	var wfds unix.FdSet
	wfds.Set(s.sockfd)

	// Select mutates the timeout on Linux, so it is rebuilt every slice.
	timeout := unix.NsecToTimeval(d.Nanoseconds())

	// A failed asynchronous connect marks the descriptor writable too; the
	// verdict comes from the pending error status.
	n, err := unix.Select(s.sockfd+1, nil, &wfds, nil, &timeout)
	if err != nil || n == 0 {
		return false
	}
	return wfds.IsSet(s.sockfd)
}

func (s *unixSock) pendingError() error {
	optval, err := unix.GetsockoptInt(s.sockfd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return err
	}
	if optval != 0 {
		return syscall.Errno(optval)
	}
	return nil
}

// conn adopts the descriptor into the net package. net.FileConn duplicates
// the descriptor, the original one is closed afterwards.
func (s *unixSock) conn() (net.Conn, error) {
	f := os.NewFile(uintptr(s.sockfd), "tcp")
	if f == nil {
		return nil, fmt.Errorf("descriptor %d cannot be converted", s.sockfd)
	}
	defer func() { _ = f.Close() }()

	return net.FileConn(f)
}

func (s *unixSock) fd() uintptr {
	return uintptr(s.sockfd)
}

func (s *unixSock) close() error {
	return closeSocket(s.sockfd)
}

// closeSocket releases a descriptor. It has no side effects beyond closing.
func closeSocket(sockfd int) error {
	return unix.Close(sockfd)
}

// sockaddr converts a Candidate into the matching unix.Sockaddr and address
// family.
func sockaddr(c Candidate) (unix.Sockaddr, int, error) {
	if ip4 := c.IP.To4(); ip4 != nil {
		sa := &unix.SockaddrInet4{Port: c.Port}
		copy(sa.Addr[:], ip4)
		return sa, unix.AF_INET, nil
	}

	if ip6 := c.IP.To16(); ip6 != nil {
		sa := &unix.SockaddrInet6{Port: c.Port, ZoneId: zoneID(c.Zone)}
		copy(sa.Addr[:], ip6)
		return sa, unix.AF_INET6, nil
	}

	return nil, 0, fmt.Errorf("candidate %s carries no usable IP address", c)
}

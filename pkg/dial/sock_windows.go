// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows
// +build windows

package dial

import (
	"fmt"
	"net"
	"syscall"
	"time"
	"unsafe"

	log "github.com/sirupsen/logrus"

	"golang.org/x/sys/windows"
)

// soError is Winsock's SO_ERROR; golang.org/x/sys/windows does not export it.
const soError = 0x1007

// winSock drives one raw TCP socket through golang.org/x/sys/windows.
//
// Winsock exposes no handy writability poll here, so a pending connect is
// probed once per slice by re-issuing connect: WSAEISCONN reports completion,
// WSAEALREADY and friends report an attempt still in flight.
type winSock struct {
	handle windows.Handle
	sa     windows.Sockaddr

	// settled holds the probe's verdict once the connect left the in-flight
	// state with an error.
	settled error
}

// openSocket creates the socket for a Candidate and configures it. The
// non-blocking mode is in effect before connect is ever issued.
func openSocket(c Candidate) (sockOps, error) {
	sa, family, err := winSockaddr(c)
	if err != nil {
		return nil, err
	}

	handle, err := windows.WSASocket(family, windows.SOCK_STREAM, windows.IPPROTO_TCP,
		nil, 0, windows.WSA_FLAG_OVERLAPPED|windows.WSA_FLAG_NO_HANDLE_INHERIT)
	if err != nil {
		return nil, fmt.Errorf("cannot create a socket: %w", err)
	}

	s := &winSock{handle: handle, sa: sa}
	if err := s.configure(); err != nil {
		_ = s.close()
		return nil, err
	}

	return s, nil
}

// configure applies the socket options. Disabling Nagle's algorithm is
// best-effort, non-blocking mode is required. Windows knows no SIGPIPE, so
// there is no third option to set.
func (s *winSock) configure() error {
	if err := windows.SetsockoptInt(s.handle, windows.IPPROTO_TCP, windows.TCP_NODELAY, 1); err != nil {
		log.WithFields(log.Fields{
			"handle": s.handle,
			"error":  err,
		}).Debug("Disabling Nagle's algorithm failed")
	}

	if err := syscall.SetNonblock(syscall.Handle(s.handle), true); err != nil {
		return fmt.Errorf("cannot set the socket to non-blocking mode: %w", err)
	}

	return nil
}

func (s *winSock) connect() error {
	switch err := windows.Connect(s.handle, s.sa); err {
	case nil, windows.WSAEWOULDBLOCK, windows.WSAEINPROGRESS:
		return nil
	default:
		return err
	}
}

// waitWritable probes first and sleeps only while the connect is still in
// flight, so a settled connect is reported without paying the slice. At most
// one sleep per slice keeps the cancellation latency bound intact.
func (s *winSock) waitWritable(d time.Duration) bool {
	switch err := windows.Connect(s.handle, s.sa); err {
	case nil, windows.WSAEISCONN:
		return true

	case windows.WSAEALREADY, windows.WSAEWOULDBLOCK, windows.WSAEINVAL:
		time.Sleep(d)
		return false

	default:
		s.settled = err
		return true
	}
}

func (s *winSock) pendingError() error {
	if s.settled != nil {
		return s.settled
	}

	var optval int32
	optlen := int32(unsafe.Sizeof(optval))
	if err := windows.Getsockopt(s.handle, windows.SOL_SOCKET, soError,
		(*byte)(unsafe.Pointer(&optval)), &optlen); err != nil {
		return err
	}
	if optval != 0 {
		return syscall.Errno(optval)
	}
	return nil
}

// conn is not available on Windows; the net package cannot adopt a foreign
// socket handle there.
func (s *winSock) conn() (net.Conn, error) {
	return nil, fmt.Errorf("socket handle conversion is not supported on windows")
}

func (s *winSock) fd() uintptr {
	return uintptr(s.handle)
}

func (s *winSock) close() error {
	return closeSocket(s.handle)
}

// closeSocket releases a socket handle. It has no side effects beyond
// closing.
func closeSocket(handle windows.Handle) error {
	return windows.Closesocket(handle)
}

// winSockaddr converts a Candidate into the matching windows.Sockaddr and
// address family.
func winSockaddr(c Candidate) (windows.Sockaddr, int32, error) {
	if ip4 := c.IP.To4(); ip4 != nil {
		sa := &windows.SockaddrInet4{Port: c.Port}
		copy(sa.Addr[:], ip4)
		return sa, windows.AF_INET, nil
	}

	if ip6 := c.IP.To16(); ip6 != nil {
		sa := &windows.SockaddrInet6{Port: c.Port, ZoneId: zoneID(c.Zone)}
		copy(sa.Addr[:], ip6)
		return sa, windows.AF_INET6, nil
	}

	return nil, 0, fmt.Errorf("candidate %s carries no usable IP address", c)
}

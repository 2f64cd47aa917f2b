// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build darwin || dragonfly || freebsd || netbsd || openbsd
// +build darwin dragonfly freebsd netbsd openbsd

package dial

import (
	log "github.com/sirupsen/logrus"

	"golang.org/x/sys/unix"
)

// setNoSigpipe requests writes to a closed peer to fail with EPIPE instead of
// raising a SIGPIPE signal. Best-effort; a failure is logged, never surfaced.
func setNoSigpipe(sockfd int) {
	if err := unix.SetsockoptInt(sockfd, unix.SOL_SOCKET, unix.SO_NOSIGPIPE, 1); err != nil {
		log.WithFields(log.Fields{
			"fd":    sockfd,
			"error": err,
		}).Debug("Setting SO_NOSIGPIPE failed")
	}
}

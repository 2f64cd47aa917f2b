// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sockdial/sockdial-go/pkg/dial"
)

// printUsage of dial-probe and exit with an error code afterwards.
func printUsage() {
	_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [configuration.toml] host:port\n\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Tries to establish a TCP connection to host:port and reports the outcome.\n")
	_, _ = fmt.Fprintf(os.Stderr, "  The optional TOML configuration tunes the connect budget, the readiness\n")
	_, _ = fmt.Fprintf(os.Stderr, "  slice, an overall deadline, and the logging.\n")

	os.Exit(1)
}

func main() {
	var confFile, target string
	switch len(os.Args) {
	case 2:
		target = os.Args[1]
	case 3:
		confFile, target = os.Args[1], os.Args[2]
	default:
		printUsage()
	}

	dialer, cancelled, err := parseConfiguration(confFile)
	if err != nil {
		log.WithFields(log.Fields{
			"configuration": confFile,
			"error":         err,
		}).Fatal("Failed to parse configuration")
	}

	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		log.WithFields(log.Fields{
			"target": target,
			"error":  err,
		}).Fatal("Target is no host:port pair")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.WithFields(log.Fields{
			"target": target,
			"error":  err,
		}).Fatal("Target carries no numeric port")
	}

	start := time.Now()
	handle, err := dialer.Connect(host, port, cancelled)
	if err != nil {
		fields := log.Fields{
			"target":  target,
			"elapsed": time.Since(start),
			"error":   err,
		}

		var dialErr *dial.Error
		if errors.As(err, &dialErr) {
			fields["kind"] = dialErr.Kind.String()
		}

		log.WithFields(fields).Fatal("Connection failed")
	}

	log.WithFields(log.Fields{
		"target":    target,
		"candidate": handle.Candidate().String(),
		"elapsed":   time.Since(start),
	}).Info("Connection established")

	if err := handle.Close(); err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Warn("Closing the socket errored")
	}
}

// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/BurntSushi/toml"

	"github.com/sockdial/sockdial-go/pkg/dial"
)

// tomlConfig describes the TOML-configuration.
type tomlConfig struct {
	Probe   probeConf
	Logging logConf
}

// probeConf describes the Probe-configuration block. All durations use Go's
// notation, e.g., "30s" or "50ms".
type probeConf struct {
	// Timeout is the connect budget granted to every resolved address.
	Timeout string

	// Interval is the length of one readiness slice.
	Interval string

	// Deadline cancels the whole probe after this wall-clock duration,
	// spanning all addresses.
	Deadline string
}

// logConf describes the Logging-configuration block.
type logConf struct {
	Level        string
	ReportCaller bool `toml:"report-caller"`
	Format       string
}

// parseConfiguration builds the Dialer and the cancellation capability from
// an optional TOML file. An empty filename yields the defaults.
func parseConfiguration(filename string) (dialer *dial.Dialer, cancelled dial.CancelFunc, err error) {
	dialer = &dial.Dialer{}
	cancelled = dial.Never()

	var conf tomlConfig
	if filename != "" {
		if _, err = toml.DecodeFile(filename, &conf); err != nil {
			return
		}
	}

	setupLogging(conf.Logging)

	if conf.Probe.Timeout != "" {
		if dialer.Timeout, err = time.ParseDuration(conf.Probe.Timeout); err != nil {
			err = fmt.Errorf("probe.timeout: %w", err)
			return
		}
	}
	if conf.Probe.Interval != "" {
		if dialer.Interval, err = time.ParseDuration(conf.Probe.Interval); err != nil {
			err = fmt.Errorf("probe.interval: %w", err)
			return
		}
	}
	if conf.Probe.Deadline != "" {
		var deadline time.Duration
		if deadline, err = time.ParseDuration(conf.Probe.Deadline); err != nil {
			err = fmt.Errorf("probe.deadline: %w", err)
			return
		}
		cancelled = dial.WithTimeout(deadline)
	}

	return
}

// setupLogging configures logrus from the Logging block.
func setupLogging(conf logConf) {
	if conf.Level != "" {
		if lvl, err := log.ParseLevel(conf.Level); err != nil {
			log.WithFields(log.Fields{
				"level":    conf.Level,
				"error":    err,
				"provided": "panic,fatal,error,warn,info,debug,trace",
			}).Warn("Failed to set log level. Please select one of the provided ones")
		} else {
			log.SetLevel(lvl)
		}
	}

	log.SetReportCaller(conf.ReportCaller)

	switch conf.Format {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})

	case "json":
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})

	default:
		log.Warn("Unknown logging format")
	}
}

// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux
// +build linux

package dial

// setNoSigpipe is a no-op on Linux. There is no SO_NOSIGPIPE socket option;
// writers suppress the signal per call through MSG_NOSIGNAL instead.
func setNoSigpipe(_ int) {}

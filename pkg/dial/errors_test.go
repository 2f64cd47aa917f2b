// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindResolution:          "ResolutionFailed",
		KindSocketCreation:      "SocketCreationFailed",
		KindConnectInitiation:   "ConnectInitiationFailed",
		KindCancelled:           "Cancelled",
		KindTimeout:             "TimedOut",
		KindAllCandidatesFailed: "AllCandidatesFailed",
		Kind(23):                "Unknown(23)",
	}

	for kind, expected := range tests {
		if s := kind.String(); s != expected {
			t.Errorf("expected %q, got %q", expected, s)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", newError(KindCancelled, "Cancelled", nil))

	if !errors.Is(err, &Error{Kind: KindCancelled}) {
		t.Error("errors.Is does not match the Kind")
	}
	if errors.Is(err, &Error{Kind: KindTimeout}) {
		t.Error("errors.Is matches a foreign Kind")
	}
}

func TestIsKind(t *testing.T) {
	err := newError(KindResolution, "no such host", errors.New("no such host"))

	if !IsKind(err, KindResolution) {
		t.Error("IsKind does not match")
	}
	if IsKind(err, KindCancelled) {
		t.Error("IsKind matches a foreign Kind")
	}
	if IsKind(errors.New("plain"), KindResolution) {
		t.Error("IsKind matches a plain error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := newError(KindAllCandidatesFailed, cause.Error(), cause)

	if !errors.Is(err, cause) {
		t.Error("the cause is not wrapped")
	}
	if err.Error() != "connection refused" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

// SPDX-FileCopyrightText: 2026 The sockdial-go Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dial

import (
	"errors"
	"fmt"
)

// Kind classifies a connect failure.
type Kind int

const (
	// KindResolution covers failed or cancelled hostname resolution.
	KindResolution Kind = iota

	// KindSocketCreation covers a failed socket syscall, e.g., descriptor
	// exhaustion or an unsupported address family.
	KindSocketCreation

	// KindConnectInitiation covers an immediate connect rejection other than
	// the operation-in-progress status of a non-blocking connect.
	KindConnectInitiation

	// KindCancelled covers a caller-requested cancellation.
	KindCancelled

	// KindTimeout covers an exhausted connect budget.
	KindTimeout

	// KindAllCandidatesFailed covers exhaustion of every resolved Candidate.
	KindAllCandidatesFailed
)

// String returns the Kind's name.
func (k Kind) String() string {
	switch k {
	case KindResolution:
		return "ResolutionFailed"
	case KindSocketCreation:
		return "SocketCreationFailed"
	case KindConnectInitiation:
		return "ConnectInitiationFailed"
	case KindCancelled:
		return "Cancelled"
	case KindTimeout:
		return "TimedOut"
	case KindAllCandidatesFailed:
		return "AllCandidatesFailed"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Error is the terminal failure of a Connect call. Message carries a
// human-readable diagnostic; for KindAllCandidatesFailed it is the failure
// text of the last attempted Candidate, while Unwrap yields every
// per-candidate error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports Kind equality, so errors.Is(err, &Error{Kind: KindCancelled})
// matches any cancellation regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err is or wraps an Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

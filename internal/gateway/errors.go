package gateway

import (
	"errors"
	"fmt"
)

// Kind discriminates gateway failures so callers can react to them
// instead of treating every failure as "did not happen".
type Kind int

const (
	// KindNetwork means the request never completed.
	KindNetwork Kind = iota
	// KindRejected means the server answered with a non-success status.
	KindRejected
	// KindAuth is a rejection caused by a missing or invalid credential.
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindRejected:
		return "rejected"
	case KindAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by every gateway call.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
	default:
		if e.Message != "" {
			return fmt.Sprintf("gateway: %s: %s (status %d)", e.Op, e.Message, e.StatusCode)
		}
		return fmt.Sprintf("gateway: %s: status %d", e.Op, e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether err is a gateway error of kind network.
func IsNetwork(err error) bool {
	return kindOf(err) == KindNetwork
}

// IsRejected reports whether err is a gateway error of kind rejected.
func IsRejected(err error) bool {
	return kindOf(err) == KindRejected
}

// IsAuth reports whether err is a gateway error of kind auth.
func IsAuth(err error) bool {
	return kindOf(err) == KindAuth
}

func kindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return Kind(-1)
}

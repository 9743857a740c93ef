package service

import (
	"errors"
	"fmt"
)

// Kind classifies a failed service call.
type Kind int

const (
	// KindUnknown is the zero kind; errors that are not *Error report it.
	KindUnknown Kind = iota

	// KindNetwork is a transport failure: unreachable host, reset, timeout.
	KindNetwork

	// KindUnauthorized is a 401 or 403 response.
	KindUnauthorized

	// KindNotFound is a 404 response.
	KindNotFound

	// KindInvalid is any other 4xx response.
	KindInvalid

	// KindServer is a 5xx response.
	KindServer

	// KindDecode is a 2xx response whose body could not be used.
	KindDecode
)

// String returns the kind name used in logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by every service operation that fails.
type Error struct {
	Op      string // operation name, e.g. "login"
	Kind    Kind
	Status  int    // HTTP status, 0 when no response was received
	Message string // server-provided message, if any
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, msg, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindUnknown if err is not a *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a *Error of kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

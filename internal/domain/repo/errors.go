package repo

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of upstream failure kinds the gateway knows about
type ErrorKind string

const (
	KindUserNotFound           ErrorKind = "USER_NOT_FOUND"
	KindBadCredentials         ErrorKind = "BAD_CREDENTIALS"
	KindRateLimitExceeded      ErrorKind = "RATE_LIMIT_EXCEEDED"
	KindUnprocessableRequest   ErrorKind = "UNPROCESSABLE_REQUEST"
	KindUnknownUpstreamFailure ErrorKind = "UNKNOWN_UPSTREAM_FAILURE"
)

// UpstreamError is a failure reported by the upstream platform.
// Only KindUnprocessableRequest carries a Detail. Err keeps the original
// upstream error so its status and payload stay reachable through errors.As.
type UpstreamError struct {
	Kind   ErrorKind
	Detail string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	msg := string(e.Kind)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", msg, e.Err)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is matches any UpstreamError of the same kind, so sentinels like
// ErrUserNotFound(0, nil) work with errors.Is.
func (e *UpstreamError) Is(target error) bool {
	var t *UpstreamError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Constructors, one per kind

func ErrUserNotFound(status int, err error) *UpstreamError {
	return &UpstreamError{Kind: KindUserNotFound, Status: status, Err: err}
}

func ErrBadCredentials(status int, err error) *UpstreamError {
	return &UpstreamError{Kind: KindBadCredentials, Status: status, Err: err}
}

func ErrRateLimitExceeded(status int, err error) *UpstreamError {
	return &UpstreamError{Kind: KindRateLimitExceeded, Status: status, Err: err}
}

func ErrUnprocessableRequest(detail string, status int, err error) *UpstreamError {
	return &UpstreamError{Kind: KindUnprocessableRequest, Detail: detail, Status: status, Err: err}
}

func ErrUnknownUpstreamFailure(status int, err error) *UpstreamError {
	return &UpstreamError{Kind: KindUnknownUpstreamFailure, Status: status, Err: err}
}

// KindOf reports the kind of the first UpstreamError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Kind, true
	}
	return "", false
}

package bus

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrClosed is returned by operations on a bus that was already closed.
	ErrClosed = errors.New("bus closed")
	// ErrPatternUnsupported is returned when a driver cannot route a pattern.
	ErrPatternUnsupported = errors.New("routing pattern not supported by driver")
)

// ConnectionError reports that the bus could not be reached within the bounded wait.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("bus unreachable at %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError builds a ConnectionError with credentials stripped from target.
func NewConnectionError(target string, err error) *ConnectionError {
	return &ConnectionError{Target: Redact(target), Err: err}
}

// Redact removes the password from a connection URI.
func Redact(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.User == nil {
		return target
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

// PermanentError marks a handler failure that retrying cannot fix.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent wraps err so the consumer dead-letters the message without retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p *PermanentError
	return errors.As(err, &p)
}

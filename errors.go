package fastuuid

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("fastuuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("fastuuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidNamespace indicates that a namespace token is neither a well-known name nor a UUID
	ErrInvalidNamespace = errors.New("fastuuid: invalid namespace")

	// ErrClock indicates that the clock reading cannot be encoded as a version 1 timestamp
	ErrClock = errors.New("fastuuid: clock unavailable")
)

// ParseError reports a string that is not a canonical UUID.
type ParseError struct {
	Reason string
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fastuuid: cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidFormat }

// NamespaceError reports a namespace token that could not be resolved.
type NamespaceError struct {
	Token string
	Err   error
}

func (e *NamespaceError) Error() string {
	return fmt.Sprintf("fastuuid: invalid namespace %q: %v", e.Token, e.Err)
}

func (e *NamespaceError) Unwrap() []error {
	return []error{ErrInvalidNamespace, e.Err}
}

// ClockError reports a clock reading unusable for version 1 generation.
type ClockError struct {
	Time   time.Time
	Reason string
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("fastuuid: clock reading %s rejected: %s", e.Time.Format(time.RFC3339Nano), e.Reason)
}

func (e *ClockError) Unwrap() error { return ErrClock }

package assembler

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout is matched by errors.Is when a decode call ran past its deadline.
	ErrTimeout = errors.New("decode timed out")
	// ErrTransport is matched by errors.Is when the chunk source failed.
	ErrTransport = errors.New("chunk stream failed")
)

// Error is the only error type Decode returns. It wraps one of the sentinel errors above and,
// for transport failures, the error the source returned.
type Error struct {
	kind     error
	deadline time.Duration
	err      error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if errors.Is(e.kind, ErrTimeout) {
		return fmt.Sprintf("%s after %s", e.kind.Error(), e.deadline)
	}
	if e.err == nil {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.err.Error())
}

// Unwrap exposes both the sentinel and the underlying transport error to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.err}
}

// Deadline is the configured deadline of a timed out call.
func (e *Error) Deadline() time.Duration {
	return e.deadline
}

// Seconds is the configured deadline in whole seconds.
func (e *Error) Seconds() uint64 {
	return uint64(e.deadline / time.Second)
}

func newTimeoutError(deadline time.Duration) *Error {
	return &Error{
		kind:     ErrTimeout,
		deadline: deadline,
	}
}

func newTransportError(err error) *Error {
	return &Error{
		kind: ErrTransport,
		err:  err,
	}
}

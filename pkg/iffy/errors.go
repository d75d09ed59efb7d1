package iffy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned by New when the client cannot be built.
	ErrInvalidConfiguration = errors.New("iffy: invalid configuration")

	// ErrInvalidContent is returned when a content item matches neither variant.
	ErrInvalidContent = errors.New("iffy: invalid content item")

	// ErrUnexpectedResponse marks a 2xx body that is not a verdict.
	ErrUnexpectedResponse = errors.New("iffy: unexpected response shape")
)

// ServerError is a failure reported by the Iffy API itself, either through a
// non-2xx status or an in-band {"error":{"message":...}} body.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("iffy: server error (%d): %s", e.StatusCode, e.Message)
}

func (*ServerError) isResult() {}

// TransportError is a failure on the client side of the exchange: encoding,
// sending, reading or decoding.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("iffy: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (*TransportError) isResult() {}

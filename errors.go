package braspag

import (
	"errors"
	"fmt"
)

// InvalidTransactionError reports a transaction descriptor that failed
// local validation: missing card fields, bad installment count. It is
// returned before any network I/O.
type InvalidTransactionError struct {
	Reason string
}

func (e *InvalidTransactionError) Error() string {
	return "invalid transaction: " + e.Reason
}

// InvalidIdentifierError reports a malformed order or transaction
// identifier passed to an operation. It is returned before any network
// I/O.
type InvalidIdentifierError struct {
	Field string
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s: %q does not match the GUID format", e.Field, e.Value)
}

// TransportError reports an HTTP-level failure: a non-2xx status, a
// connection fault or a timeout. Gateway-level declines are not
// transport errors; those surface on the decoded response as
// Success=false with populated Errors.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway transport: %v", e.Err)
	}
	return fmt.Sprintf("gateway transport: status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a response body that is not parseable
// XML or lacks mandatory structure.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return "malformed response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func IsInvalidTransaction(err error) bool {
	var target *InvalidTransactionError
	return errors.As(err, &target)
}

func IsInvalidIdentifier(err error) bool {
	var target *InvalidIdentifierError
	return errors.As(err, &target)
}

func IsTransportError(err error) (*TransportError, bool) {
	var target *TransportError
	ok := errors.As(err, &target)
	return target, ok
}

func IsMalformedResponse(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

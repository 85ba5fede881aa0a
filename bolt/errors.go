package bolt

import "fmt"

// Classification groups an Error by its kind: a wire-level violation, a
// caller usage mistake, or a missing peer capability.
type Classification int

const (
	ClassProtocol Classification = iota
	ClassUsage
	ClassCapability
)

func (c Classification) String() string {
	switch c {
	case ClassProtocol:
		return "protocol"
	case ClassUsage:
		return "usage"
	case ClassCapability:
		return "capability"
	default:
		return "unknown"
	}
}

// ErrorCode is a stable, named identifier for a specific failure.
type ErrorCode int

const (
	ErrCodeUnspecified ErrorCode = iota
	ErrCodeWireViolation
	ErrCodeUnpackableValue
	ErrCodeByteArraysUnsupported
	ErrCodeTransactionConfigUnsupported
	ErrCodeConnectionFatal
)

var errCodeText = map[ErrorCode]string{
	ErrCodeUnspecified:                  "unspecified error",
	ErrCodeWireViolation:                "wire-level protocol violation",
	ErrCodeUnpackableValue:              "value cannot be packed",
	ErrCodeByteArraysUnsupported:        "peer does not support byte arrays",
	ErrCodeTransactionConfigUnsupported: "Bolt v1 does not support transaction configuration",
	ErrCodeConnectionFatal:              "connection marked fatal",
}

// Error is the façade's error type: a Classification, a named Code, and an
// optional wrapped cause. The Facade returns one for a rejected txConfig;
// errors from the Packer or the Channel reach the caller and the observer
// unwrapped.
type Error struct {
	Class Classification
	Code  ErrorCode
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return errCodeText[e.Code]
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(class Classification, code ErrorCode, err error) *Error {
	return &Error{Class: class, Code: code, Err: err}
}

func newErrorf(class Classification, code ErrorCode, format string, v ...interface{}) *Error {
	return &Error{Class: class, Code: code, Err: fmt.Errorf(format, v...)}
}

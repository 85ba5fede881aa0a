package packstream

import "fmt"

// ProtocolError marks a wire-level violation: an unknown marker, a struct
// with the wrong field count, or a value too large to represent. It is
// fatal to the connection that produced or would have consumed it.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

func protocolErrorf(format string, args ...any) error {
	return &ProtocolError{Message: fmt.Sprintf(format, args...)}
}

// UsageError marks a value the caller supplied that can't be packed: an
// unsupported Go type, a graph entity used as a parameter, or an iterable
// that failed to materialize. Unlike ProtocolError, it says nothing about
// the connection's health — only that this one value was rejected.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// CapabilityError marks a value that's well-formed but requires a peer
// capability this Packer hasn't been told the peer supports (currently:
// byte arrays).
type CapabilityError struct {
	Message string
}

func (e *CapabilityError) Error() string {
	return e.Message
}

func capabilityErrorf(format string, args ...any) error {
	return &CapabilityError{Message: fmt.Sprintf(format, args...)}
}

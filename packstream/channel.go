package packstream

// WriteChannel is the write half of the chunked transport this codec
// writes into. It is an external collaborator: this package only consumes
// it, and assumes it handles message/chunk framing so that a sequence of
// these calls lands on the wire as one contiguous value stream.
type WriteChannel interface {
	WriteUint8(v uint8) error
	WriteUint16(v uint16) error
	WriteUint32(v uint32) error
	WriteInt8(v int8) error
	WriteInt16(v int16) error
	WriteInt32(v int32) error
	WriteInt64(v int64) error
	WriteFloat64(v float64) error
	WriteBytes(b []byte) error
}

// ReadChannel is the read half of the chunked transport. Like WriteChannel,
// it's an external collaborator whose framing this package doesn't manage.
type ReadChannel interface {
	ReadUint8() (uint8, error)
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadInt8() (int8, error)
	ReadInt16() (int16, error)
	ReadInt32() (int32, error)
	ReadInt64() (int64, error)
	ReadFloat64() (float64, error)
	ReadBytes(n int) ([]byte, error)
}

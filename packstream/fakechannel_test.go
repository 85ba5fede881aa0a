package packstream_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// bufChannel is a minimal in-memory implementation of
// packstream.WriteChannel and packstream.ReadChannel over a byte buffer,
// standing in for the real chunked transport, which this package has no
// business knowing about.
type bufChannel struct {
	buf bytes.Buffer
}

func newBufChannel(initial []byte) *bufChannel {
	c := &bufChannel{}
	c.buf.Write(initial)
	return c
}

func (c *bufChannel) Bytes() []byte { return c.buf.Bytes() }

func (c *bufChannel) WriteUint8(v uint8) error  { return c.buf.WriteByte(v) }
func (c *bufChannel) WriteInt8(v int8) error    { return c.buf.WriteByte(byte(v)) }
func (c *bufChannel) WriteUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := c.buf.Write(b[:])
	return err
}
func (c *bufChannel) WriteInt16(v int16) error { return c.WriteUint16(uint16(v)) }
func (c *bufChannel) WriteUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := c.buf.Write(b[:])
	return err
}
func (c *bufChannel) WriteInt32(v int32) error { return c.WriteUint32(uint32(v)) }
func (c *bufChannel) WriteInt64(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := c.buf.Write(b[:])
	return err
}
func (c *bufChannel) WriteFloat64(v float64) error {
	return c.WriteInt64(int64(math.Float64bits(v)))
}
func (c *bufChannel) WriteBytes(b []byte) error {
	_, err := c.buf.Write(b)
	return err
}

func (c *bufChannel) ReadUint8() (uint8, error) {
	return c.buf.ReadByte()
}
func (c *bufChannel) ReadInt8() (int8, error) {
	b, err := c.buf.ReadByte()
	return int8(b), err
}
func (c *bufChannel) ReadUint16() (uint16, error) {
	var b [2]byte
	if _, err := readFull(&c.buf, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}
func (c *bufChannel) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}
func (c *bufChannel) ReadUint32() (uint32, error) {
	var b [4]byte
	if _, err := readFull(&c.buf, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}
func (c *bufChannel) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}
func (c *bufChannel) ReadInt64() (int64, error) {
	var b [8]byte
	if _, err := readFull(&c.buf, b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}
func (c *bufChannel) ReadFloat64() (float64, error) {
	v, err := c.ReadInt64()
	return math.Float64frombits(uint64(v)), err
}
func (c *bufChannel) ReadBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := readFull(&c.buf, b); err != nil {
		return nil, err
	}
	return b, nil
}

func readFull(buf *bytes.Buffer, b []byte) (int, error) {
	n, err := buf.Read(b)
	if err != nil {
		return n, err
	}
	if n != len(b) {
		return n, fmt.Errorf("short read: wanted %d, got %d", len(b), n)
	}
	return n, nil
}

// Package bolttransport is a reference implementation of bolt.Channel over
// a net.Conn, using Bolt's real wire framing: each message is split into
// chunks, each chunk prefixed by a big-endian uint16 byte count, and a
// message is terminated by a zero-length chunk. It exists to demonstrate
// that bolt.Channel is implementable against a real socket and to give the
// cmd/boltpack demo something to dial; it is not exercised by the
// packstream/bolt packages' own tests.
package bolttransport

import (
	"bufio"
	"encoding/binary"
	"math"
	"net"
)

// maxChunkSize is the largest payload a single chunk header (a uint16 byte
// count) can describe.
const maxChunkSize = 65535

// Conn wraps a net.Conn, buffering one outgoing message so it can be split
// into chunks on Flush and buffering incoming bytes so chunk boundaries can
// be stripped transparently on read.
type Conn struct {
	nc     net.Conn
	reader *bufio.Reader

	outgoing []byte

	chunkRemaining int
}

// New wraps nc as a Conn ready to use as a bolt.Channel.
func New(nc net.Conn) *Conn {
	return &Conn{nc: nc, reader: bufio.NewReader(nc)}
}

func (c *Conn) WriteUint8(v uint8) error {
	c.outgoing = append(c.outgoing, v)
	return nil
}

func (c *Conn) WriteInt8(v int8) error {
	return c.WriteUint8(uint8(v))
}

func (c *Conn) WriteUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	c.outgoing = append(c.outgoing, b[:]...)
	return nil
}

func (c *Conn) WriteInt16(v int16) error {
	return c.WriteUint16(uint16(v))
}

func (c *Conn) WriteUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	c.outgoing = append(c.outgoing, b[:]...)
	return nil
}

func (c *Conn) WriteInt32(v int32) error {
	return c.WriteUint32(uint32(v))
}

func (c *Conn) WriteInt64(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	c.outgoing = append(c.outgoing, b[:]...)
	return nil
}

func (c *Conn) WriteFloat64(v float64) error {
	return c.WriteInt64(int64(math.Float64bits(v)))
}

func (c *Conn) WriteBytes(b []byte) error {
	c.outgoing = append(c.outgoing, b...)
	return nil
}

// Flush splits the buffered message into maxChunkSize-sized chunks, each
// preceded by its uint16 length, terminates it with a zero-length chunk,
// and writes the whole thing to the underlying connection in one call.
func (c *Conn) Flush() error {
	msg := c.outgoing
	c.outgoing = nil

	var framed []byte
	for len(msg) > 0 {
		n := len(msg)
		if n > maxChunkSize {
			n = maxChunkSize
		}
		var header [2]byte
		binary.BigEndian.PutUint16(header[:], uint16(n))
		framed = append(framed, header[:]...)
		framed = append(framed, msg[:n]...)
		msg = msg[n:]
	}
	framed = append(framed, 0x00, 0x00)

	_, err := c.nc.Write(framed)
	return err
}

// nextChunk advances past the current exhausted chunk (if any) and past a
// message's terminating zero-length chunk, leaving chunkRemaining positive
// and ready to serve reads from the next data chunk.
func (c *Conn) nextChunk() error {
	for c.chunkRemaining == 0 {
		var header [2]byte
		if _, err := readFull(c.reader, header[:]); err != nil {
			return err
		}
		size := binary.BigEndian.Uint16(header[:])
		if size == 0 {
			// End-of-message marker of the previous message; the next
			// message's first chunk follows it.
			continue
		}
		c.chunkRemaining = int(size)
	}
	return nil
}

func (c *Conn) readN(n int) ([]byte, error) {
	out := make([]byte, 0, n)
	for len(out) < n {
		if err := c.nextChunk(); err != nil {
			return nil, err
		}
		want := n - len(out)
		if want > c.chunkRemaining {
			want = c.chunkRemaining
		}
		buf := make([]byte, want)
		if _, err := readFull(c.reader, buf); err != nil {
			return nil, err
		}
		out = append(out, buf...)
		c.chunkRemaining -= want
	}
	return out, nil
}

func (c *Conn) ReadUint8() (uint8, error) {
	b, err := c.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Conn) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

func (c *Conn) ReadUint16() (uint16, error) {
	b, err := c.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *Conn) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

func (c *Conn) ReadUint32() (uint32, error) {
	b, err := c.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *Conn) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

func (c *Conn) ReadInt64() (int64, error) {
	b, err := c.readN(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (c *Conn) ReadFloat64() (float64, error) {
	v, err := c.ReadInt64()
	return math.Float64frombits(uint64(v)), err
}

func (c *Conn) ReadBytes(n int) ([]byte, error) {
	return c.readN(n)
}

func readFull(r *bufio.Reader, b []byte) (int, error) {
	total := 0
	for total < len(b) {
		n, err := r.Read(b[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

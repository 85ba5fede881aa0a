package packstream

import (
	"math"

	"github.com/packstream-go/bolt/graph"
)

// Iterable is implemented by ordered sequences that aren't already a
// []Value. The Packer materializes them into a list before encoding;
// Iterate returning an error fails the whole Pack call.
type Iterable interface {
	Iterate() ([]Value, error)
}

// Packer recursively encodes a Value tree to a WriteChannel using the
// PackStream v1 marker table. It holds no state beyond the byte-arrays
// capability flag, set once after handshake (see SetByteArraysSupported)
// and read on every Pack call.
type Packer struct {
	byteArraysSupported bool
}

// NewPacker returns a Packer. byteArraysSupported should reflect whatever
// the connection's handshake negotiated; it can also be set later with
// SetByteArraysSupported.
func NewPacker(byteArraysSupported bool) *Packer {
	return &Packer{byteArraysSupported: byteArraysSupported}
}

// SetByteArraysSupported updates the capability flag. Callers should treat
// this as write-once configuration applied right after handshake; calling
// it mid-connection while a Pack is in flight is not safe.
func (p *Packer) SetByteArraysSupported(v bool) {
	p.byteArraysSupported = v
}

// Pack encodes v to ch. On success, the full encoding of v has been written
// to ch (though the chunked transport may not have flushed it). On error,
// nothing further should be written for this message and the caller must
// not instruct the transport to flush — the partial bytes already written
// must not be allowed onto the wire as a truncated message.
func (p *Packer) Pack(ch WriteChannel, v Value) error {
	return p.packValue(ch, v)
}

func (p *Packer) packValue(ch WriteChannel, v Value) error {
	switch val := v.(type) {
	case nil:
		return p.packNull(ch)
	case bool:
		return p.packBool(ch, val)
	case int:
		return p.packInt(ch, int64(val))
	case int8:
		return p.packInt(ch, int64(val))
	case int16:
		return p.packInt(ch, int64(val))
	case int32:
		return p.packInt(ch, int64(val))
	case int64:
		return p.packInt(ch, val)
	case float32:
		return p.packFloat(ch, float64(val))
	case float64:
		return p.packFloat(ch, val)
	case string:
		return p.packString(ch, val)
	case []byte:
		return p.packBytes(ch, val)
	case []Value:
		return p.packList(ch, val)
	case *Map:
		return p.packMap(ch, val)
	case *Structure:
		return p.packStruct(ch, val.Signature, val.Fields)
	case graph.Node, *graph.Node,
		graph.Relationship, *graph.Relationship,
		graph.UnboundRelationship, *graph.UnboundRelationship,
		graph.Path, *graph.Path,
		graph.PathSegment, *graph.PathSegment:
		return usageErrorf("unable to pack %T: graph entities are not valid request parameters", val)
	default:
		if seq, ok := val.(Iterable); ok {
			elems, err := seq.Iterate()
			if err != nil {
				return usageErrorf("unable to pack iterable: %v", err)
			}
			return p.packList(ch, elems)
		}
		return usageErrorf("unable to pack value of type %T", val)
	}
}

func (p *Packer) packNull(ch WriteChannel) error {
	return ch.WriteUint8(markerNull)
}

func (p *Packer) packBool(ch WriteChannel, v bool) error {
	if v {
		return ch.WriteUint8(markerTrue)
	}
	return ch.WriteUint8(markerFalse)
}

// packInt picks the narrowest marker class whose signed range contains v.
// TinyInt's marker byte is itself the two's-complement int8 encoding of
// values in [-16, 127], so writing int8(v) directly as that one byte is
// both the selection and the encoding.
func (p *Packer) packInt(ch WriteChannel, v int64) error {
	switch {
	case v >= -16 && v <= 127:
		return ch.WriteInt8(int8(v))
	case v >= math.MinInt8 && v <= math.MaxInt8:
		if err := ch.WriteUint8(markerInt8); err != nil {
			return err
		}
		return ch.WriteInt8(int8(v))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		if err := ch.WriteUint8(markerInt16); err != nil {
			return err
		}
		return ch.WriteInt16(int16(v))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		if err := ch.WriteUint8(markerInt32); err != nil {
			return err
		}
		return ch.WriteInt32(int32(v))
	default:
		if err := ch.WriteUint8(markerInt64); err != nil {
			return err
		}
		return ch.WriteInt64(v)
	}
}

func (p *Packer) packFloat(ch WriteChannel, v float64) error {
	if err := ch.WriteUint8(markerFloat); err != nil {
		return err
	}
	return ch.WriteFloat64(v)
}

func (p *Packer) packString(ch WriteChannel, s string) error {
	data, err := encodeUTF8(s)
	if err != nil {
		return usageErrorf("invalid string: %v", err)
	}
	n := len(data)
	switch {
	case n <= tinySize:
		if err := ch.WriteUint8(markerTinyStringBase + byte(n)); err != nil {
			return err
		}
	case n <= maxUint8:
		if err := ch.WriteUint8(markerString8); err != nil {
			return err
		}
		if err := ch.WriteUint8(uint8(n)); err != nil {
			return err
		}
	case n <= maxUint16:
		if err := ch.WriteUint8(markerString16); err != nil {
			return err
		}
		if err := ch.WriteUint16(uint16(n)); err != nil {
			return err
		}
	case n <= maxUint32:
		if err := ch.WriteUint8(markerString32); err != nil {
			return err
		}
		if err := ch.WriteUint32(uint32(n)); err != nil {
			return err
		}
	default:
		return protocolErrorf("string of %d bytes exceeds maximum PackStream size of %d", n, maxUint32)
	}
	if n == 0 {
		return nil
	}
	return ch.WriteBytes(data)
}

func (p *Packer) packBytes(ch WriteChannel, b []byte) error {
	if !p.byteArraysSupported {
		return capabilityErrorf("unable to pack byte array: peer does not support byte arrays")
	}
	n := len(b)
	switch {
	case n <= maxUint8:
		if err := ch.WriteUint8(markerBytes8); err != nil {
			return err
		}
		if err := ch.WriteUint8(uint8(n)); err != nil {
			return err
		}
	case n <= maxUint16:
		if err := ch.WriteUint8(markerBytes16); err != nil {
			return err
		}
		if err := ch.WriteUint16(uint16(n)); err != nil {
			return err
		}
	case n <= maxUint32:
		if err := ch.WriteUint8(markerBytes32); err != nil {
			return err
		}
		if err := ch.WriteUint32(uint32(n)); err != nil {
			return err
		}
	default:
		return protocolErrorf("byte array of %d bytes exceeds maximum PackStream size of %d", n, maxUint32)
	}
	if n == 0 {
		return nil
	}
	return ch.WriteBytes(b)
}

func (p *Packer) packList(ch WriteChannel, elems []Value) error {
	n := len(elems)
	if n > maxUint32 {
		return protocolErrorf("list of %d elements exceeds maximum PackStream size of %d", n, maxUint32)
	}
	if err := p.writeListHeader(ch, n); err != nil {
		return err
	}
	for _, e := range elems {
		if err := p.packValue(ch, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *Packer) writeListHeader(ch WriteChannel, n int) error {
	switch {
	case n <= tinySize:
		return ch.WriteUint8(markerTinyListBase + byte(n))
	case n <= maxUint8:
		if err := ch.WriteUint8(markerList8); err != nil {
			return err
		}
		return ch.WriteUint8(uint8(n))
	case n <= maxUint16:
		if err := ch.WriteUint8(markerList16); err != nil {
			return err
		}
		return ch.WriteUint16(uint16(n))
	default:
		if err := ch.WriteUint8(markerList32); err != nil {
			return err
		}
		return ch.WriteUint32(uint32(n))
	}
}

func (p *Packer) packMap(ch WriteChannel, m *Map) error {
	count := 0
	m.Each(func(_ string, v Value) {
		if v != Value(Omit) {
			count++
		}
	})
	if count > maxUint32 {
		return protocolErrorf("map of %d entries exceeds maximum PackStream size of %d", count, maxUint32)
	}
	if err := p.writeMapHeader(ch, count); err != nil {
		return err
	}
	var firstErr error
	m.Each(func(k string, v Value) {
		if firstErr != nil || v == Value(Omit) {
			return
		}
		if err := p.packString(ch, k); err != nil {
			firstErr = err
			return
		}
		if err := p.packValue(ch, v); err != nil {
			firstErr = err
		}
	})
	return firstErr
}

func (p *Packer) writeMapHeader(ch WriteChannel, n int) error {
	switch {
	case n <= tinySize:
		return ch.WriteUint8(markerTinyMapBase + byte(n))
	case n <= maxUint8:
		if err := ch.WriteUint8(markerMap8); err != nil {
			return err
		}
		return ch.WriteUint8(uint8(n))
	case n <= maxUint16:
		if err := ch.WriteUint8(markerMap16); err != nil {
			return err
		}
		return ch.WriteUint16(uint16(n))
	default:
		if err := ch.WriteUint8(markerMap32); err != nil {
			return err
		}
		return ch.WriteUint32(uint32(n))
	}
}

// packStruct writes a struct TLV: size, signature, then fields. The
// signature always follows the length in every size branch, including
// STRUCT_16, so a decoder can always find it at the same offset
// regardless of which size class was chosen.
func (p *Packer) packStruct(ch WriteChannel, signature byte, fields []Value) error {
	n := len(fields)
	switch {
	case n <= tinySize:
		if err := ch.WriteUint8(markerTinyStructBase + byte(n)); err != nil {
			return err
		}
	case n <= maxUint8:
		if err := ch.WriteUint8(markerStruct8); err != nil {
			return err
		}
		if err := ch.WriteUint8(uint8(n)); err != nil {
			return err
		}
	case n <= maxUint16:
		if err := ch.WriteUint8(markerStruct16); err != nil {
			return err
		}
		if err := ch.WriteUint16(uint16(n)); err != nil {
			return err
		}
	default:
		return protocolErrorf("struct of %d fields exceeds maximum PackStream v1 size of %d", n, maxUint16)
	}
	if err := ch.WriteUint8(signature); err != nil {
		return err
	}
	for _, f := range fields {
		if err := p.packValue(ch, f); err != nil {
			return err
		}
	}
	return nil
}

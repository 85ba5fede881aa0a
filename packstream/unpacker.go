package packstream

import (
	"github.com/packstream-go/bolt/graph"
)

// Unpacker recursively decodes a ReadChannel to a Value tree, rehydrating
// recognized graph structures along the way. An Unpacker has no state of
// its own; DisableLosslessIntegers is read on every Unpack call.
type Unpacker struct {
	// DisableLosslessIntegers, when true, converts decoded integers to
	// float64 instead of returning them as int64 — trading 64-bit
	// precision for a native number type. Every int64 converts to a finite
	// float64; magnitudes above 2^53 may lose precision.
	DisableLosslessIntegers bool
}

// NewUnpacker returns an Unpacker with lossless integers enabled.
func NewUnpacker() *Unpacker {
	return &Unpacker{}
}

// Unpack reads exactly one value's bytes from ch.
func (u *Unpacker) Unpack(ch ReadChannel) (Value, error) {
	marker, err := ch.ReadUint8()
	if err != nil {
		return nil, err
	}
	return u.unpackMarker(ch, marker)
}

func (u *Unpacker) unpackMarker(ch ReadChannel, marker byte) (Value, error) {
	switch {
	case marker == markerNull:
		return nil, nil
	case marker == markerTrue:
		return true, nil
	case marker == markerFalse:
		return false, nil
	case marker == markerFloat:
		return ch.ReadFloat64()
	case isTinyInt(marker):
		return u.maybeLossy(int64(int8(marker))), nil
	case marker == markerInt8:
		v, err := ch.ReadInt8()
		if err != nil {
			return nil, err
		}
		return u.maybeLossy(int64(v)), nil
	case marker == markerInt16:
		v, err := ch.ReadInt16()
		if err != nil {
			return nil, err
		}
		return u.maybeLossy(int64(v)), nil
	case marker == markerInt32:
		v, err := ch.ReadInt32()
		if err != nil {
			return nil, err
		}
		return u.maybeLossy(int64(v)), nil
	case marker == markerInt64:
		v, err := ch.ReadInt64()
		if err != nil {
			return nil, err
		}
		return u.maybeLossy(v), nil
	case isTinyString(marker):
		return decodeUTF8(ch, int(marker-markerTinyStringBase))
	case marker == markerString8:
		n, err := ch.ReadUint8()
		if err != nil {
			return nil, err
		}
		return decodeUTF8(ch, int(n))
	case marker == markerString16:
		n, err := ch.ReadUint16()
		if err != nil {
			return nil, err
		}
		return decodeUTF8(ch, int(n))
	case marker == markerString32:
		n, err := ch.ReadUint32()
		if err != nil {
			return nil, err
		}
		return decodeUTF8(ch, int(n))
	case isTinyList(marker):
		return u.unpackList(ch, int(marker-markerTinyListBase))
	case marker == markerList8:
		n, err := ch.ReadUint8()
		if err != nil {
			return nil, err
		}
		return u.unpackList(ch, int(n))
	case marker == markerList16:
		n, err := ch.ReadUint16()
		if err != nil {
			return nil, err
		}
		return u.unpackList(ch, int(n))
	case marker == markerList32:
		n, err := ch.ReadUint32()
		if err != nil {
			return nil, err
		}
		return u.unpackList(ch, int(n))
	case marker == markerBytes8:
		n, err := ch.ReadUint8()
		if err != nil {
			return nil, err
		}
		return ch.ReadBytes(int(n))
	case marker == markerBytes16:
		n, err := ch.ReadUint16()
		if err != nil {
			return nil, err
		}
		return ch.ReadBytes(int(n))
	case marker == markerBytes32:
		n, err := ch.ReadUint32()
		if err != nil {
			return nil, err
		}
		return ch.ReadBytes(int(n))
	case isTinyMap(marker):
		return u.unpackMap(ch, int(marker-markerTinyMapBase))
	case marker == markerMap8:
		n, err := ch.ReadUint8()
		if err != nil {
			return nil, err
		}
		return u.unpackMap(ch, int(n))
	case marker == markerMap16:
		n, err := ch.ReadUint16()
		if err != nil {
			return nil, err
		}
		return u.unpackMap(ch, int(n))
	case marker == markerMap32:
		n, err := ch.ReadUint32()
		if err != nil {
			return nil, err
		}
		return u.unpackMap(ch, int(n))
	case isTinyStruct(marker):
		return u.unpackStruct(ch, int(marker-markerTinyStructBase))
	case marker == markerStruct8:
		n, err := ch.ReadUint8()
		if err != nil {
			return nil, err
		}
		return u.unpackStruct(ch, int(n))
	case marker == markerStruct16:
		n, err := ch.ReadUint16()
		if err != nil {
			return nil, err
		}
		return u.unpackStruct(ch, int(n))
	default:
		return nil, protocolErrorf("unrecognized PackStream marker 0x%02X", marker)
	}
}

func isTinyInt(m byte) bool {
	return m <= tinyIntPositiveMax || m >= tinyIntNegativeMin
}

func isTinyString(m byte) bool {
	return m >= markerTinyStringBase && m <= markerTinyStringMax
}

func isTinyList(m byte) bool {
	return m >= markerTinyListBase && m <= markerTinyListMax
}

func isTinyMap(m byte) bool {
	return m >= markerTinyMapBase && m <= markerTinyMapMax
}

func isTinyStruct(m byte) bool {
	return m >= markerTinyStructBase && m <= markerTinyStructMax
}

func (u *Unpacker) maybeLossy(v int64) Value {
	if !u.DisableLosslessIntegers {
		return v
	}
	return float64(v)
}

func (u *Unpacker) unpackList(ch ReadChannel, n int) (Value, error) {
	elems := make([]Value, n)
	for i := 0; i < n; i++ {
		v, err := u.Unpack(ch)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return elems, nil
}

func (u *Unpacker) unpackMap(ch ReadChannel, n int) (Value, error) {
	m := NewMap()
	for i := 0; i < n; i++ {
		key, err := u.Unpack(ch)
		if err != nil {
			return nil, err
		}
		keyStr, ok := key.(string)
		if !ok {
			return nil, protocolErrorf("map key must be a string, got %T", key)
		}
		v, err := u.Unpack(ch)
		if err != nil {
			return nil, err
		}
		// Last write wins on duplicate keys; Map.Set already implements
		// that (first occurrence fixes position, later Sets overwrite
		// the value).
		m.Set(keyStr, v)
	}
	return m, nil
}

// unpackStruct reads the signature and n fields of a struct TLV and
// dispatches to graph-structure hydration for recognized signatures.
//
// Recognized structures pull their identity/start/end/sequence fields off
// the channel through unpackExactInt rather than through the generic
// Unpack path, so those fields always come back as int64 regardless of
// DisableLosslessIntegers. That flag only governs the shape of ordinary
// decoded values (list elements, map values, property values); it was
// never meant to reach into a structure's own addressing fields and make
// them unusable as Go identities.
func (u *Unpacker) unpackStruct(ch ReadChannel, n int) (Value, error) {
	signature, err := ch.ReadUint8()
	if err != nil {
		return nil, err
	}
	switch signature {
	case graph.NodeSignature:
		return u.unpackNode(ch, n)
	case graph.RelationshipSignature:
		return u.unpackRelationship(ch, n)
	case graph.UnboundRelationshipSignature:
		return u.unpackUnboundRelationship(ch, n)
	case graph.PathSignature:
		return u.unpackPath(ch, n)
	default:
		fields := make([]Value, n)
		for i := 0; i < n; i++ {
			v, err := u.Unpack(ch)
			if err != nil {
				return nil, err
			}
			fields[i] = v
		}
		return &Structure{Signature: signature, Fields: fields}, nil
	}
}

// unpackExactInt reads one integer value's marker and bytes and returns it
// as an exact int64, ignoring DisableLosslessIntegers. Used for structure
// fields that are always integer identities, never arbitrary numbers.
func (u *Unpacker) unpackExactInt(ch ReadChannel) (int64, error) {
	marker, err := ch.ReadUint8()
	if err != nil {
		return 0, err
	}
	switch {
	case isTinyInt(marker):
		return int64(int8(marker)), nil
	case marker == markerInt8:
		v, err := ch.ReadInt8()
		return int64(v), err
	case marker == markerInt16:
		v, err := ch.ReadInt16()
		return int64(v), err
	case marker == markerInt32:
		v, err := ch.ReadInt32()
		return int64(v), err
	case marker == markerInt64:
		return ch.ReadInt64()
	default:
		return 0, protocolErrorf("expected an integer, got marker 0x%02X", marker)
	}
}

// unpackExactIntList reads a list TLV whose elements are all integers,
// decoding each through unpackExactInt so the result is always []int64
// regardless of DisableLosslessIntegers.
func (u *Unpacker) unpackExactIntList(ch ReadChannel) ([]int64, error) {
	marker, err := ch.ReadUint8()
	if err != nil {
		return nil, err
	}
	var n int
	switch {
	case isTinyList(marker):
		n = int(marker - markerTinyListBase)
	case marker == markerList8:
		v, err := ch.ReadUint8()
		if err != nil {
			return nil, err
		}
		n = int(v)
	case marker == markerList16:
		v, err := ch.ReadUint16()
		if err != nil {
			return nil, err
		}
		n = int(v)
	case marker == markerList32:
		v, err := ch.ReadUint32()
		if err != nil {
			return nil, err
		}
		n = int(v)
	default:
		return nil, protocolErrorf("expected a list, got marker 0x%02X", marker)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := u.unpackExactInt(ch)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// UnpackStructure reads one full value and returns it as a *Structure. Any
// other decoded value, including a hydrated graph value (Node, Path, ...),
// is a ProtocolError; hydrated values are not re-wrapped. Protocol messages
// (SUCCESS/RECORD/IGNORED/FAILURE) have signatures outside the recognized
// graph set, so they always decode to *Structure; cmd/boltpack's response
// loop reads them through this method.
func (u *Unpacker) UnpackStructure(ch ReadChannel) (*Structure, error) {
	v, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*Structure)
	if !ok {
		return nil, protocolErrorf("expected a structure, got %T", v)
	}
	return s, nil
}

func (u *Unpacker) unpackNode(ch ReadChannel, n int) (Value, error) {
	const want = 3
	if n != want {
		return nil, protocolErrorf("Node structure expects %d fields, got %d", want, n)
	}
	identity, err := u.unpackExactInt(ch)
	if err != nil {
		return nil, protocolErrorf("Node identity must be an integer: %v", err)
	}
	rawLabels, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	labels, err := toStringSlice(rawLabels)
	if err != nil {
		return nil, protocolErrorf("Node labels: %v", err)
	}
	rawProps, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	props, err := toPropertyMap(rawProps)
	if err != nil {
		return nil, protocolErrorf("Node properties: %v", err)
	}
	return &graph.Node{Identity: identity, Labels: labels, Properties: props}, nil
}

func (u *Unpacker) unpackRelationship(ch ReadChannel, n int) (Value, error) {
	const want = 5
	if n != want {
		return nil, protocolErrorf("Relationship structure expects %d fields, got %d", want, n)
	}
	identity, err := u.unpackExactInt(ch)
	if err != nil {
		return nil, protocolErrorf("Relationship identity must be an integer: %v", err)
	}
	startID, err := u.unpackExactInt(ch)
	if err != nil {
		return nil, protocolErrorf("Relationship start id must be an integer: %v", err)
	}
	endID, err := u.unpackExactInt(ch)
	if err != nil {
		return nil, protocolErrorf("Relationship end id must be an integer: %v", err)
	}
	rawType, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	relType, ok := rawType.(string)
	if !ok {
		return nil, protocolErrorf("Relationship type must be a string, got %T", rawType)
	}
	rawProps, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	props, err := toPropertyMap(rawProps)
	if err != nil {
		return nil, protocolErrorf("Relationship properties: %v", err)
	}
	return &graph.Relationship{
		Identity:    identity,
		StartNodeID: startID,
		EndNodeID:   endID,
		Type:        relType,
		Properties:  props,
	}, nil
}

func (u *Unpacker) unpackUnboundRelationship(ch ReadChannel, n int) (Value, error) {
	const want = 3
	if n != want {
		return nil, protocolErrorf("UnboundRelationship structure expects %d fields, got %d", want, n)
	}
	identity, err := u.unpackExactInt(ch)
	if err != nil {
		return nil, protocolErrorf("UnboundRelationship identity must be an integer: %v", err)
	}
	rawType, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	relType, ok := rawType.(string)
	if !ok {
		return nil, protocolErrorf("UnboundRelationship type must be a string, got %T", rawType)
	}
	rawProps, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	props, err := toPropertyMap(rawProps)
	if err != nil {
		return nil, protocolErrorf("UnboundRelationship properties: %v", err)
	}
	return &graph.UnboundRelationship{Identity: identity, Type: relType, Properties: props}, nil
}

func (u *Unpacker) unpackPath(ch ReadChannel, n int) (Value, error) {
	const want = 3
	if n != want {
		return nil, protocolErrorf("Path structure expects %d fields, got %d", want, n)
	}
	rawNodeList, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	rawNodes, ok := rawNodeList.([]Value)
	if !ok {
		return nil, protocolErrorf("Path nodes must be a list, got %T", rawNodeList)
	}
	nodes := make([]*graph.Node, len(rawNodes))
	for i, rn := range rawNodes {
		node, ok := rn.(*graph.Node)
		if !ok {
			return nil, protocolErrorf("Path nodes[%d] must be a Node, got %T", i, rn)
		}
		nodes[i] = node
	}

	rawRelList, err := u.Unpack(ch)
	if err != nil {
		return nil, err
	}
	rawRels, ok := rawRelList.([]Value)
	if !ok {
		return nil, protocolErrorf("Path relationships must be a list, got %T", rawRelList)
	}
	rels := make([]*graph.UnboundRelationship, len(rawRels))
	for i, rr := range rawRels {
		rel, ok := rr.(*graph.UnboundRelationship)
		if !ok {
			return nil, protocolErrorf("Path relationships[%d] must be an UnboundRelationship, got %T", i, rr)
		}
		rels[i] = rel
	}

	sequence, err := u.unpackExactIntList(ch)
	if err != nil {
		return nil, protocolErrorf("Path sequence: %v", err)
	}

	path, err := graph.RehydratePath(nodes, rels, sequence)
	if err != nil {
		return nil, protocolErrorf("Path: %v", err)
	}
	return path, nil
}

func toStringSlice(v Value) ([]string, error) {
	list, ok := v.([]Value)
	if !ok {
		return nil, protocolErrorf("expected a list, got %T", v)
	}
	out := make([]string, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, protocolErrorf("expected a string at index %d, got %T", i, e)
		}
		out[i] = s
	}
	return out, nil
}

func toPropertyMap(v Value) (map[string]any, error) {
	m, ok := v.(*Map)
	if !ok {
		return nil, protocolErrorf("expected a map, got %T", v)
	}
	out := make(map[string]any, m.Len())
	m.Each(func(k string, v Value) {
		out[k] = v
	})
	return out, nil
}

// Package packstream implements the PackStream v1 wire codec: a recursive
// Packer and Unpacker over a chunked byte Channel, plus the int64 integer
// handling and graph-structure hydration the codec depends on.
package packstream

// Value is any node of the PackStream value tree: nil (Null), bool, int64,
// float64, string, []byte, []Value, *Map, *Structure, or one of the
// hydrated graph types from the graph package. Go has no tagged-union
// syntax, so dispatch happens by type switch instead (see Packer.packValue
// and Unpacker.Unpack).
type Value = any

// Structure is a generic tagged record: a one-byte signature and an ordered
// field list. Protocol messages and unrecognized domain structures both
// travel as Structure; recognized signatures (Node, Relationship, ...) are
// hydrated into their own Go types by the Unpacker instead.
type Structure struct {
	Signature byte
	Fields    []Value
}

// Omit is a sentinel Value. A Map entry set to Omit is skipped by the
// Packer instead of being written to the wire — the encode-side equivalent
// of an absent key.
var Omit = new(struct{})

// Map is a String-to-Value mapping that preserves insertion order, because
// the wire format requires deterministic key order (PackStream round-trips
// don't care about order, but this codec's own encode determinism does) and
// Go's builtin map type provides none.
type Map struct {
	order []string
	data  map[string]Value
}

// NewMap returns an empty Map ready to use.
func NewMap() *Map {
	return &Map{data: make(map[string]Value)}
}

// Set inserts or updates key. Updating an existing key keeps its original
// position in iteration order; last write wins on the value.
func (m *Map) Set(key string, v Value) *Map {
	if m.data == nil {
		m.data = make(map[string]Value)
	}
	if _, exists := m.data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.data[key] = v
	return m
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.data[key]
	return v, ok
}

// Delete removes key, if present.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.data[key]; !ok {
		return
	}
	delete(m.data, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Each calls fn for every entry in insertion order.
func (m *Map) Each(fn func(key string, v Value)) {
	if m == nil {
		return
	}
	for _, k := range m.order {
		fn(k, m.data[k])
	}
}

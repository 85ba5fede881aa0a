package bolt

import "github.com/packstream-go/bolt/packstream"

// Channel is the façade's view of the connection's write side: a
// packstream.WriteChannel (so the Packer can serialize messages onto it)
// plus Flush, since the façade — not the codec — knows when a logical
// message boundary should actually reach the wire. The read side and
// response routing belong to the connection and aren't part of this
// interface.
type Channel interface {
	packstream.WriteChannel
	Flush() error
}

// ConnectionMarker lets the façade report a connection-fatal condition
// (currently: a non-empty txConfig, which v1 cannot support) without
// depending on a concrete connection type.
type ConnectionMarker interface {
	MarkFatal(err error)
}

package bolt

import "github.com/packstream-go/bolt/packstream"

// Observer receives the outcome of a request the Facade sent: OnNext fires
// once per decoded RECORD, OnCompleted once with the SUCCESS metadata that
// ends a result stream, and OnError if the request failed — either before
// it reached the wire (a packing or precondition failure this façade
// itself caught) or after (a FAILURE response the connection routed
// back).
//
// Response decoding and routing happens in the connection, not here — this
// façade only ever calls OnError directly, for failures it detects itself
// before or during encoding.
type Observer interface {
	OnNext(record []packstream.Value)
	OnCompleted(metadata *packstream.Map)
	OnError(err error)
}

func notifyError(observer Observer, err error) {
	if observer != nil {
		observer.OnError(err)
	}
}

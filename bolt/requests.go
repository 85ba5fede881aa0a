package bolt

import (
	"fmt"

	"github.com/packstream-go/bolt/packstream"
)

// Bolt v1 message signatures: the client requests this façade builds
// (INIT, RUN, PULL_ALL, RESET, ACK_FAILURE, DISCARD_ALL) and the server
// response signatures a reader decoding Bolt v1 needs to recognize
// (SUCCESS, RECORD, IGNORED, FAILURE).
const (
	MessageInit       byte = 0x01
	MessageAckFailure byte = 0x0E
	MessageReset      byte = 0x0F
	MessageRun        byte = 0x10
	MessageDiscardAll byte = 0x2F
	MessagePullAll    byte = 0x3F

	MessageSuccess byte = 0x70
	MessageRecord  byte = 0x71
	MessageIgnored byte = 0x7E
	MessageFailure byte = 0x7F
)

// MessageSignature names a Bolt v1 signature byte for logging and error
// messages. It carries the same values as the Message* byte constants
// above; those stay plain bytes since that's what packstream.Structure.
// Signature is typed as, but callers that want a readable name can wrap
// one in MessageSignature.
type MessageSignature byte

var messageSignatureNames = map[MessageSignature]string{
	MessageSignature(MessageInit):       "INIT",
	MessageSignature(MessageAckFailure): "ACK_FAILURE",
	MessageSignature(MessageReset):      "RESET",
	MessageSignature(MessageRun):        "RUN",
	MessageSignature(MessageDiscardAll): "DISCARD_ALL",
	MessageSignature(MessagePullAll):    "PULL_ALL",
	MessageSignature(MessageSuccess):    "SUCCESS",
	MessageSignature(MessageRecord):     "RECORD",
	MessageSignature(MessageIgnored):    "IGNORED",
	MessageSignature(MessageFailure):    "FAILURE",
}

func (m MessageSignature) String() string {
	if name, ok := messageSignatureNames[m]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(m))
}

// newInit builds the INIT(clientName, authToken) request structure.
func newInit(clientName string, authToken *packstream.Map) *packstream.Structure {
	if authToken == nil {
		authToken = packstream.NewMap()
	}
	return &packstream.Structure{
		Signature: MessageInit,
		Fields:    []packstream.Value{clientName, authToken},
	}
}

// newRun builds the RUN(statement, parameters) request structure.
func newRun(statement string, parameters *packstream.Map) *packstream.Structure {
	if parameters == nil {
		parameters = packstream.NewMap()
	}
	return &packstream.Structure{
		Signature: MessageRun,
		Fields:    []packstream.Value{statement, parameters},
	}
}

// newPullAll builds the no-field PULL_ALL request structure.
func newPullAll() *packstream.Structure {
	return &packstream.Structure{Signature: MessagePullAll, Fields: nil}
}

// newReset builds the no-field RESET request structure.
func newReset() *packstream.Structure {
	return &packstream.Structure{Signature: MessageReset, Fields: nil}
}

// newAckFailure builds the no-field ACK_FAILURE request structure, which a
// v1 client must send after a FAILURE response before any further request
// is accepted.
func newAckFailure() *packstream.Structure {
	return &packstream.Structure{Signature: MessageAckFailure, Fields: nil}
}

// newDiscardAll builds the no-field DISCARD_ALL request structure, used to
// discard a pending result stream without pulling its records.
func newDiscardAll() *packstream.Structure {
	return &packstream.Structure{Signature: MessageDiscardAll, Fields: nil}
}

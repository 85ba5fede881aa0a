package bolt

import (
	"github.com/packstream-go/bolt/bolt/internal/boltlog"
	"github.com/packstream-go/bolt/packstream"
)

// Facade is the thin Bolt v1 request layer: it builds request messages as
// PackStream structures, writes them through a
// Packer onto a Channel, and flushes at the points v1's wire protocol
// requires. It holds no connection state of its own beyond the
// packer/channel/logger it was constructed with; response decoding and
// result-stream bookkeeping belong to the connection that owns the Channel.
type Facade struct {
	ch     Channel
	conn   ConnectionMarker
	packer *packstream.Packer
	log    *boltlog.Logger
}

// NewFacade returns a Facade that writes through ch and reports
// connection-fatal conditions to conn.
func NewFacade(ch Channel, conn ConnectionMarker, opts Options) *Facade {
	return &Facade{
		ch:     ch,
		conn:   conn,
		packer: packstream.NewPacker(opts.ByteArraysSupported),
		log:    opts.logger(),
	}
}

// Initialize sends INIT(clientName, authToken), flushing immediately.
func (f *Facade) Initialize(clientName string, authToken *packstream.Map, observer Observer) error {
	return f.send(newInit(clientName, authToken), true, observer)
}

// Run sends RUN(statement, parameters) followed by PULL_ALL. The RUN write
// does not flush; PULL_ALL's does. bookmark is accepted
// for interface symmetry with BeginTransaction but ignored here — v1's RUN
// path has no bookmark parameter of its own.
func (f *Facade) Run(statement string, parameters *packstream.Map, bookmark string, txConfig *packstream.Map, observer Observer) error {
	if err := f.checkTxConfig(txConfig, observer); err != nil {
		return err
	}
	if err := f.send(newRun(statement, parameters), false, observer); err != nil {
		return err
	}
	return f.send(newPullAll(), true, observer)
}

// BeginTransaction sends RUN("BEGIN", {bookmark}) followed by PULL_ALL,
// neither flushing — the transaction's first real statement carries the
// flush.
func (f *Facade) BeginTransaction(bookmark string, txConfig *packstream.Map, observer Observer) error {
	if err := f.checkTxConfig(txConfig, observer); err != nil {
		return err
	}
	params := packstream.NewMap()
	if bookmark != "" {
		params.Set("bookmark", bookmark)
	}
	if err := f.send(newRun("BEGIN", params), false, observer); err != nil {
		return err
	}
	return f.send(newPullAll(), false, observer)
}

// CommitTransaction sends RUN("COMMIT", {}) followed by a flushing
// PULL_ALL.
func (f *Facade) CommitTransaction(observer Observer) error {
	if err := f.send(newRun("COMMIT", nil), false, observer); err != nil {
		return err
	}
	return f.send(newPullAll(), true, observer)
}

// RollbackTransaction sends RUN("ROLLBACK", {}) followed by a flushing
// PULL_ALL.
func (f *Facade) RollbackTransaction(observer Observer) error {
	if err := f.send(newRun("ROLLBACK", nil), false, observer); err != nil {
		return err
	}
	return f.send(newPullAll(), true, observer)
}

// Reset sends RESET, flushing immediately.
func (f *Facade) Reset(observer Observer) error {
	return f.send(newReset(), true, observer)
}

// AckFailure sends ACK_FAILURE, flushing immediately. A v1 connection must
// send this after a FAILURE response before any further request succeeds.
func (f *Facade) AckFailure(observer Observer) error {
	return f.send(newAckFailure(), true, observer)
}

// DiscardAll sends DISCARD_ALL, flushing immediately, to discard a pending
// result stream without pulling its records.
func (f *Facade) DiscardAll(observer Observer) error {
	return f.send(newDiscardAll(), true, observer)
}

// TransformMetadata is v1's identity hook for SUCCESS metadata: the
// connection calls this on the metadata map it decoded before
// handing it to the observer, so later protocol versions can override the
// behavior by wrapping a v1 Facade with their own.
func (f *Facade) TransformMetadata(m *packstream.Map) *packstream.Map {
	return m
}

func (f *Facade) checkTxConfig(txConfig *packstream.Map, observer Observer) error {
	if txConfig == nil || txConfig.Len() == 0 {
		return nil
	}
	err := newErrorf(ClassCapability, ErrCodeTransactionConfigUnsupported,
		"Bolt v1 does not support transaction configuration")
	f.log.Errorf("%v", err)
	f.conn.MarkFatal(err)
	notifyError(observer, err)
	return err
}

func (f *Facade) send(msg *packstream.Structure, flush bool, observer Observer) error {
	f.log.Debugf("bolt: sending %s", MessageSignature(msg.Signature))
	if err := f.packer.Pack(f.ch, msg); err != nil {
		notifyError(observer, err)
		return err
	}
	if !flush {
		return nil
	}
	if err := f.ch.Flush(); err != nil {
		notifyError(observer, err)
		return err
	}
	return nil
}

package bolt_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packstream-go/bolt/bolt"
	"github.com/packstream-go/bolt/packstream"
)

// fakeChannel records everything written to it and counts flushes, mirroring
// the bufChannel helper the packstream tests use but adding the Flush hook
// bolt.Channel requires.
type fakeChannel struct {
	buf     bytes.Buffer
	flushes int
}

func (c *fakeChannel) WriteUint8(v uint8) error  { return c.buf.WriteByte(v) }
func (c *fakeChannel) WriteInt8(v int8) error    { return c.buf.WriteByte(byte(v)) }
func (c *fakeChannel) WriteUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := c.buf.Write(b[:])
	return err
}
func (c *fakeChannel) WriteInt16(v int16) error { return c.WriteUint16(uint16(v)) }
func (c *fakeChannel) WriteUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := c.buf.Write(b[:])
	return err
}
func (c *fakeChannel) WriteInt32(v int32) error { return c.WriteUint32(uint32(v)) }
func (c *fakeChannel) WriteInt64(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := c.buf.Write(b[:])
	return err
}
func (c *fakeChannel) WriteFloat64(v float64) error {
	return c.WriteInt64(int64(math.Float64bits(v)))
}
func (c *fakeChannel) WriteBytes(b []byte) error {
	_, err := c.buf.Write(b)
	return err
}
func (c *fakeChannel) Flush() error {
	c.flushes++
	return nil
}

type fakeConn struct {
	fatal error
}

func (c *fakeConn) MarkFatal(err error) { c.fatal = err }

type fakeObserver struct {
	errs []error
}

func (o *fakeObserver) OnNext(record []packstream.Value)    {}
func (o *fakeObserver) OnCompleted(metadata *packstream.Map) {}
func (o *fakeObserver) OnError(err error)                    { o.errs = append(o.errs, err) }

func TestInitializeFlushesImmediately(t *testing.T) {
	ch := &fakeChannel{}
	conn := &fakeConn{}
	f := bolt.NewFacade(ch, conn, bolt.DefaultOptions())

	err := f.Initialize("test-client", packstream.NewMap(), &fakeObserver{})
	require.NoError(t, err)
	assert.Equal(t, 1, ch.flushes)
	assert.NotEmpty(t, ch.buf.Bytes())
}

func TestRunFlushesOnlyOnSecondWrite(t *testing.T) {
	ch := &fakeChannel{}
	conn := &fakeConn{}
	f := bolt.NewFacade(ch, conn, bolt.DefaultOptions())

	err := f.Run("RETURN 1", packstream.NewMap(), "", nil, &fakeObserver{})
	require.NoError(t, err)
	assert.Equal(t, 1, ch.flushes)
}

func TestBeginTransactionDoesNotFlush(t *testing.T) {
	ch := &fakeChannel{}
	conn := &fakeConn{}
	f := bolt.NewFacade(ch, conn, bolt.DefaultOptions())

	err := f.BeginTransaction("bookmark-1", nil, &fakeObserver{})
	require.NoError(t, err)
	assert.Equal(t, 0, ch.flushes)
	assert.NotEmpty(t, ch.buf.Bytes())
}

func TestRunRejectsNonEmptyTxConfig(t *testing.T) {
	ch := &fakeChannel{}
	conn := &fakeConn{}
	f := bolt.NewFacade(ch, conn, bolt.DefaultOptions())
	observer := &fakeObserver{}

	txConfig := packstream.NewMap().Set("timeout", int64(5000))
	err := f.Run("RETURN 1", nil, "", txConfig, observer)

	require.Error(t, err)
	assert.Error(t, conn.fatal)
	require.Len(t, observer.errs, 1)
	assert.Equal(t, 0, ch.flushes, "a rejected request must not reach the wire")
}

func TestBeginTransactionRejectsNonEmptyTxConfig(t *testing.T) {
	ch := &fakeChannel{}
	conn := &fakeConn{}
	f := bolt.NewFacade(ch, conn, bolt.DefaultOptions())
	observer := &fakeObserver{}

	txConfig := packstream.NewMap().Set("timeout", int64(5000))
	err := f.BeginTransaction("", txConfig, observer)

	require.Error(t, err)
	assert.Error(t, conn.fatal)
	require.Len(t, observer.errs, 1)
}

func TestAckFailureAndDiscardAllFlush(t *testing.T) {
	ch := &fakeChannel{}
	conn := &fakeConn{}
	f := bolt.NewFacade(ch, conn, bolt.DefaultOptions())

	require.NoError(t, f.AckFailure(&fakeObserver{}))
	require.NoError(t, f.DiscardAll(&fakeObserver{}))
	assert.Equal(t, 2, ch.flushes)
}

func TestTransformMetadataIsIdentity(t *testing.T) {
	ch := &fakeChannel{}
	conn := &fakeConn{}
	f := bolt.NewFacade(ch, conn, bolt.DefaultOptions())

	m := packstream.NewMap().Set("bookmark", "tx1")
	assert.Same(t, m, f.TransformMetadata(m))
}

package bolt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packstream-go/bolt/packstream"
)

func TestNewInitFields(t *testing.T) {
	s := newInit("my-client", packstream.NewMap().Set("scheme", "basic"))
	assert.Equal(t, MessageInit, s.Signature)
	require := assert.New(t)
	require.Len(s.Fields, 2)
	require.Equal("my-client", s.Fields[0])
}

func TestNewInitDefaultsNilAuthToken(t *testing.T) {
	s := newInit("my-client", nil)
	m, ok := s.Fields[1].(*packstream.Map)
	assert.True(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestNewRunFields(t *testing.T) {
	s := newRun("RETURN 1", packstream.NewMap().Set("x", int64(1)))
	assert.Equal(t, MessageRun, s.Signature)
	assert.Len(t, s.Fields, 2)
	assert.Equal(t, "RETURN 1", s.Fields[0])
}

func TestNoFieldRequests(t *testing.T) {
	assert.Empty(t, newPullAll().Fields)
	assert.Equal(t, MessagePullAll, newPullAll().Signature)

	assert.Empty(t, newReset().Fields)
	assert.Equal(t, MessageReset, newReset().Signature)

	assert.Empty(t, newAckFailure().Fields)
	assert.Equal(t, MessageAckFailure, newAckFailure().Signature)

	assert.Empty(t, newDiscardAll().Fields)
	assert.Equal(t, MessageDiscardAll, newDiscardAll().Signature)
}

func TestMessageSignatureString(t *testing.T) {
	assert.Equal(t, "INIT", MessageSignature(MessageInit).String())
	assert.Equal(t, "RUN", MessageSignature(MessageRun).String())
	assert.Equal(t, "SUCCESS", MessageSignature(MessageSuccess).String())
	assert.Equal(t, "FAILURE", MessageSignature(MessageFailure).String())
	assert.Equal(t, "0xAA", MessageSignature(0xAA).String())
}

package stream

import (
	"testing"

	"github.com/arloliu/bitstream/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader_RoundTrip_Uint64Pair(t *testing.T) {
	w := New(0)
	AppendFull(w, uint64(163))
	AppendFull(w, uint64(164))
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)

	a, err := ReadFull[uint64](r)
	require.NoError(t, err)
	b, err := ReadFull[uint64](r)
	require.NoError(t, err)

	assert.Equal(t, uint64(163), a)
	assert.Equal(t, uint64(164), b)
}

func TestReader_TooShort(t *testing.T) {
	w := New(0)
	AppendFull(w, uint8(1))
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)

	_, err = ReadFull[uint8](r)
	require.NoError(t, err)

	_, err = r.ReadBit()
	assert.ErrorIs(t, err, errs.ErrTooShort)
}

func TestReader_CursorNeverExceedsEnd(t *testing.T) {
	w := New(0)
	AppendFull(w, uint8(1))
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)

	_, _ = ReadFull[uint8](r)
	before := r.currentBit
	_, err = r.ReadBit()
	assert.Error(t, err)
	assert.Equal(t, before, r.currentBit)
}

func TestNewReader_RequiresFourBytes(t *testing.T) {
	_, err := NewReader([]byte{0, 0, 0})
	assert.Error(t, err)
}

func TestCRCValidatedReader_AcceptsPacked(t *testing.T) {
	w := New(0)
	AppendFull(w, uint64(42))
	packed := w.Pack(true)

	_, err := NewCRCValidatedReader(packed)
	assert.NoError(t, err)
}

func TestCRCValidatedReader_RejectsBitFlip(t *testing.T) {
	w := New(0)
	AppendFull(w, uint64(42))
	packed := w.Pack(true)

	packed[5] ^= 0x01
	_, err := NewCRCValidatedReader(packed)
	assert.Error(t, err)
}

func TestBytesString_RoundTrip(t *testing.T) {
	w := New(0)
	w.AppendBit(1)
	w.AppendString("hello, bitstream", 255)
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)

	_, err = r.ReadBit()
	require.NoError(t, err)

	s, err := r.ReadString(255)
	require.NoError(t, err)
	assert.Equal(t, "hello, bitstream", s)
}

func TestAlign_RoundsUpToByteBoundary(t *testing.T) {
	w := New(0)
	w.AppendBit(1)
	w.AppendBit(0)
	w.AppendBit(1)
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)
	_, _ = r.ReadBit()
	r.Align()
	assert.Equal(t, uint64(40), r.currentBit)
}

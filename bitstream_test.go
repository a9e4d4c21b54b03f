package bitstream

import (
	"testing"

	"github.com/arloliu/bitstream/codec"
	"github.com/arloliu/bitstream/compressor"
	"github.com/arloliu/bitstream/errs"
	"github.com/arloliu/bitstream/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_S1_TwoSmallUints covers: append_full(163u64); append_full(164u64); pack().
// The header encodes the final bit count (32 header bits + two 64-bit
// fields = 160 bits, 0xA0 0x00 0x00 0x00 little-endian), followed by 16
// bytes encoding 163 and 164 LSB-first.
func TestScenario_S1_TwoSmallUints(t *testing.T) {
	w := NewWriter(0)
	stream.AppendFull(w, uint64(163))
	stream.AppendFull(w, uint64(164))
	packed := w.Pack(false)

	require.Len(t, packed, 4+8+8)
	assert.Equal(t, []byte{0xA0, 0x00, 0x00, 0x00}, packed[0:4])

	r, err := NewReader(packed)
	require.NoError(t, err)

	a, err := stream.ReadFull[uint64](r)
	require.NoError(t, err)
	assert.Equal(t, uint64(163), a)

	b, err := stream.ReadFull[uint64](r)
	require.NoError(t, err)
	assert.Equal(t, uint64(164), b)
}

// TestScenario_S2_CompressedFloat covers: FloatCompressor(min=-1000, max=1000,
// bits=26) on v=-10.0; after round-trip, |v'-v| < 0.01.
func TestScenario_S2_CompressedFloat(t *testing.T) {
	c := compressor.NewFloatCompressor(-1000, 1000, 26)

	w := NewWriter(0)
	c.Encode(w, -10.0)
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)

	got, err := c.Decode(r)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, got, 0.01)
}

// TestScenario_S3_BoundedEnum covers: Enum with 4 variants -> width =
// ceil(log2(5)) = 3 bits; variant index 2 encodes as the 3-bit field 010.
func TestScenario_S3_BoundedEnum(t *testing.T) {
	e := codec.NewEnum(4)
	assert.Equal(t, 3, e.Bits())

	w := NewWriter(0)
	e.Encode(w, 2)
	packed := w.Pack(false)

	r, err := NewReader(packed)
	require.NoError(t, err)

	raw, err := stream.ReadFixed[uint64](r, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b010), raw)
}

// TestScenario_S4_BitArray covers: BitArray(max_count=180, value_bits=14) on
// [1,2,3,5,6,7,4,6] -> length field = 8 bits, 8 values x 14 bits.
func TestScenario_S4_BitArray(t *testing.T) {
	arr := codec.NewBitArray(180, 14)
	assert.Equal(t, 8, stream.LengthWidth(180))

	values := []uint64{1, 2, 3, 5, 6, 7, 4, 6}

	w := NewWriter(0)
	arr.Encode(w, values)
	packed := w.Pack(false)

	expectedBits := uint64(32) + 8 + uint64(len(values))*14
	assert.Equal(t, expectedBits, w.EndBitIndex())

	r, err := NewReader(packed)
	require.NoError(t, err)

	got, err := arr.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

// TestScenario_S5_OptionalPresentAbsent covers: Some(42u32) -> 1 bit + 32
// bits; None -> 1 bit.
func TestScenario_S5_OptionalPresentAbsent(t *testing.T) {
	w := NewWriter(0)
	stream.AppendFixed(w, uint64(1), 1) // presence bit
	stream.AppendFull(w, uint32(42))

	w2 := NewWriter(0)
	stream.AppendFixed(w2, uint64(0), 1)

	assert.Equal(t, uint64(32+1+32), w.EndBitIndex())
	assert.Equal(t, uint64(32+1), w2.EndBitIndex())
}

// TestScenario_S6_CRCRejection covers: take any packed-with-CRC buffer, flip
// one bit in the payload, pass to the CRC-validated constructor ->
// errs.ErrIncorrectChecksum.
func TestScenario_S6_CRCRejection(t *testing.T) {
	w := NewWriter(0)
	stream.AppendFull(w, uint64(163))
	stream.AppendFull(w, uint64(164))
	packed := w.Pack(true)

	packed[5] ^= 0x01 // flip one bit inside the payload, not the header

	_, err := NewCRCValidatedReader(packed)
	require.ErrorIs(t, err, errs.ErrIncorrectChecksum)
}

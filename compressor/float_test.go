package compressor

import (
	"math"
	"testing"

	"github.com/arloliu/bitstream/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleCompressor_S2_Scenario(t *testing.T) {
	c := NewDoubleCompressor(-1000, 1000, 26)

	w := stream.New(0)
	c.Encode(w, -10.0)
	packed := w.Pack(false)

	r, err := stream.NewReader(packed)
	require.NoError(t, err)

	got, err := c.Decode(r)
	require.NoError(t, err)
	assert.InDelta(t, -10.0, got, 0.01)
}

func TestDoubleCompressor_QuantizationErrorBound(t *testing.T) {
	const bits = 16
	c := NewDoubleCompressor(0, 100, bits)
	maxErr := 100.0 / float64((uint64(1)<<bits)-1)

	for _, v := range []float64{0, 0.1, 25.3, 50, 73.9, 100} {
		w := stream.New(0)
		c.Encode(w, v)
		packed := w.Pack(false)

		r, err := stream.NewReader(packed)
		require.NoError(t, err)

		got, err := c.Decode(r)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(got-v), maxErr+1e-12)
	}
}

func TestDoubleCompressor_ClampsOutOfRange(t *testing.T) {
	c := NewDoubleCompressor(0, 10, 8)

	w := stream.New(0)
	c.Encode(w, -5)
	c.Encode(w, 15)
	packed := w.Pack(false)

	r, err := stream.NewReader(packed)
	require.NoError(t, err)

	low, err := c.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, low)

	high, err := c.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, 10.0, high)
}

func TestFloatCompressor_RoundTrip(t *testing.T) {
	c := NewFloatCompressor(-1, 1, 12)

	w := stream.New(0)
	c.Encode(w, 0.5)
	packed := w.Pack(false)

	r, err := stream.NewReader(packed)
	require.NoError(t, err)

	got, err := c.Decode(r)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 0.001)
}

func TestNewDoubleCompressor_PanicsOnInvalidParams(t *testing.T) {
	assert.Panics(t, func() { NewDoubleCompressor(10, 0, 8) })
	assert.Panics(t, func() { NewDoubleCompressor(0, 10, 0) })
	assert.Panics(t, func() { NewDoubleCompressor(0, 10, 65) })
}

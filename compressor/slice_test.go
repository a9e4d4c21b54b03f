package compressor

import (
	"testing"

	"github.com/arloliu/bitstream/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleCompressor_SliceRoundTrip(t *testing.T) {
	c := NewDoubleCompressor(-1000, 1000, 26)
	values := []float64{-10.0, 0.0, 99.5, -500.25, 1000.0}

	w := stream.New(0)
	c.EncodeSlice(w, values)
	packed := w.Pack(false)

	r, err := stream.NewReader(packed)
	require.NoError(t, err)

	got, err := c.DecodeSlice(r, len(values))
	require.NoError(t, err)
	require.Len(t, got, len(values))
	for i, v := range values {
		assert.InDelta(t, v, got[i], 0.01)
	}
}

func TestDoubleCompressor_DecodeSlice_TooShort(t *testing.T) {
	c := NewDoubleCompressor(-1000, 1000, 26)

	w := stream.New(0)
	c.Encode(w, 1.0)
	packed := w.Pack(false)

	r, err := stream.NewReader(packed)
	require.NoError(t, err)

	_, err = c.DecodeSlice(r, 5)
	assert.Error(t, err)
}

func TestIntCompressor_SliceRoundTrip(t *testing.T) {
	c := NewIntCompressor(-1000, 1000)
	values := []int64{-1000, -1, 0, 1, 1000}

	w := stream.New(0)
	c.EncodeSlice(w, values)
	packed := w.Pack(false)

	r, err := stream.NewReader(packed)
	require.NoError(t, err)

	got, err := c.DecodeSlice(r, len(values))
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

package compressor

import (
	"github.com/arloliu/bitstream/internal/pool"
	"github.com/arloliu/bitstream/stream"
)

// EncodeSlice appends each value of values in order using c.
func (c *DoubleCompressor) EncodeSlice(w *stream.Writer, values []float64) {
	for _, v := range values {
		c.Encode(w, v)
	}
}

// DecodeSlice reads back n values written by EncodeSlice. It borrows a
// pooled scratch slice for the duration of the read loop, since the exact
// count is known up front and the caller only needs the final, independently
// owned result.
func (c *DoubleCompressor) DecodeSlice(r *stream.Reader, n int) ([]float64, error) {
	scratch, cleanup := pool.GetFloat64Slice(n)
	defer cleanup()

	for i := range scratch {
		v, err := c.Decode(r)
		if err != nil {
			return nil, err
		}
		scratch[i] = v
	}

	out := make([]float64, n)
	copy(out, scratch)

	return out, nil
}

// EncodeSlice appends each value of values in order using c.
func (c *IntCompressor) EncodeSlice(w *stream.Writer, values []int64) {
	for _, v := range values {
		c.Encode(w, v)
	}
}

// DecodeSlice reads back n values written by EncodeSlice, using a pooled
// int64 scratch slice for the duration of the read loop.
func (c *IntCompressor) DecodeSlice(r *stream.Reader, n int) ([]int64, error) {
	scratch, cleanup := pool.GetInt64Slice(n)
	defer cleanup()

	for i := range scratch {
		v, err := c.Decode(r)
		if err != nil {
			return nil, err
		}
		scratch[i] = v
	}

	out := make([]int64, n)
	copy(out, scratch)

	return out, nil
}

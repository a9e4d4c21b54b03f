package compressor

import "github.com/arloliu/bitstream/stream"

// Vec2 encodes two scalars in order using c.
func Vec2(w *stream.Writer, c *DoubleCompressor, x, y float64) {
	c.Encode(w, x)
	c.Encode(w, y)
}

// DecodeVec2 reads back a Vec2-encoded pair.
func DecodeVec2(r *stream.Reader, c *DoubleCompressor) (x, y float64, err error) {
	x, err = c.Decode(r)
	if err != nil {
		return 0, 0, err
	}

	y, err = c.Decode(r)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

// Vec3 encodes three scalars in order using c.
func Vec3(w *stream.Writer, c *DoubleCompressor, x, y, z float64) {
	c.Encode(w, x)
	c.Encode(w, y)
	c.Encode(w, z)
}

// DecodeVec3 reads back a Vec3-encoded triple.
func DecodeVec3(r *stream.Reader, c *DoubleCompressor) (x, y, z float64, err error) {
	x, err = c.Decode(r)
	if err != nil {
		return 0, 0, 0, err
	}

	y, err = c.Decode(r)
	if err != nil {
		return 0, 0, 0, err
	}

	z, err = c.Decode(r)
	if err != nil {
		return 0, 0, 0, err
	}

	return x, y, z, nil
}

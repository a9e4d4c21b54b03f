package codec

import "github.com/arloliu/bitstream/stream"

// UUID is a 128-bit identifier, encoded as its 16 raw bytes with no length
// prefix (the length is fixed and known to both sides).
type UUID [16]byte

// Encode appends the 16 bytes of u in order.
func (u UUID) Encode(w *stream.Writer) {
	for _, b := range u {
		stream.AppendFixed(w, b, 8)
	}
}

// Decode reads back the 16 bytes of a UUID written by Encode.
func (u *UUID) Decode(r *stream.Reader) error {
	var out UUID
	for i := range out {
		b, err := stream.ReadFixed[uint8](r, 8)
		if err != nil {
			return err
		}
		out[i] = b
	}

	*u = out

	return nil
}

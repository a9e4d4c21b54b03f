// Package stream implements the bit-level writer and reader that form the
// core of the bitstream wire format: a 4-byte little-endian bit-length
// header, a dense LSB-first bit payload, and an optional trailing CRC-32.
//
// # Wire format
//
//	byte  0..3   endBitIndex, little-endian uint32 (includes the header bits)
//	byte  4..    payload bits, LSB-first within each byte
//	[optional]   trailing 4 bytes: CRC-32 over bytes [0, len-4)
//
// # Basic usage
//
//	w := stream.New(0)
//	stream.AppendFull(w, uint64(163))
//	stream.AppendFull(w, uint64(164))
//	packed := w.Pack(false)
//
//	r, err := stream.NewReader(packed)
//	a, err := stream.ReadFull[uint64](r)
//	b, err := stream.ReadFull[uint64](r)
//
// # Bit order
//
// Within a byte, bit 0 is the least significant bit and is written/read
// first. Multi-bit fields are byte-spanning: a value written with a width
// that doesn't fit in the remaining bits of the current byte spills its high
// bits into the low bits of the next byte.
//
// # Lifecycle
//
// A Writer is built empty, mutated by Append* calls, then frozen by Pack,
// which writes the header and optional CRC trailer and returns an
// independent copy of the bytes. Finish releases the Writer's backing
// buffer to the internal pool; a Writer must not be used after Finish. A
// Reader is built from an externally-owned, already-framed byte slice and
// mutated by Read* calls; it never writes to that slice.
//
// Neither type is safe for concurrent use, and neither is safe to copy by
// value — copy a pointer instead.
package stream

// Package bitstream provides a compact, bit-level binary serialization
// codec: an LSB-first bit-packing writer/reader, range compressors that
// quantize bounded numeric values into minimal-width fields, length-prefixed
// framing for variable-size data, and a small Codec Protocol for composing
// higher-level encoders out of these primitives.
//
// # Core Features
//
//   - LSB-first bit packing with a 4-byte length header and optional CRC-32
//     trailer (stream.Writer / stream.Reader)
//   - Range compressors that map a declared [min,max] span onto the minimal
//     number of bits needed to represent it (compressor package)
//   - Length-prefixed byte/string/array framing sized from a declared
//     maximum count (stream.Writer.AppendBytes, codec.BitArray, codec.BoundedArray)
//   - A small Codec Protocol (codec.Encoder/Decoder/Codec) with stock codecs
//     for optional values, closed enumerations, UUIDs, and bounded arrays
//   - Optional post-framing compression over a packed stream (payload package)
//
// # Basic Usage
//
// Writing and reading a stream:
//
//	import "github.com/arloliu/bitstream/stream"
//
//	w := stream.New(0)
//	stream.AppendFull(w, uint64(163))
//	stream.AppendFull(w, uint64(164))
//	packed := w.Pack(true) // with CRC-32 trailer
//
//	r, err := bitstream.NewCRCValidatedReader(packed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a, _ := stream.ReadFull[uint64](r)
//	b, _ := stream.ReadFull[uint64](r)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream,
// codec, compressor, and payload packages. For fine-grained control, use
// those packages directly.
package bitstream

import (
	"github.com/arloliu/bitstream/payload"
	"github.com/arloliu/bitstream/stream"
)

// NewWriter returns a Writer ready to accept Append* calls. reserveHint
// preallocates capacity for roughly reserveHint additional payload bytes.
func NewWriter(reserveHint int) *stream.Writer {
	return stream.New(reserveHint)
}

// NewReader builds a Reader over a packed stream produced by Writer.Pack(false).
func NewReader(data []byte) (*stream.Reader, error) {
	return stream.NewReader(data)
}

// NewCRCValidatedReader builds a Reader over a packed stream produced by
// Writer.Pack(true), rejecting it with errs.ErrIncorrectChecksum if the
// trailing CRC-32 doesn't match.
func NewCRCValidatedReader(data []byte) (*stream.Reader, error) {
	return stream.NewCRCValidatedReader(data)
}

// Compress applies an optional post-framing compression codec to a packed
// stream's bytes. It is a thin convenience wrapper around payload.Compress;
// see that package for the available codecs.
func Compress(c payload.Codec, data []byte) ([]byte, error) {
	return payload.Compress(c, data)
}

// Decompress reverses Compress.
func Decompress(c payload.Codec, data []byte) ([]byte, error) {
	return payload.Decompress(c, data)
}

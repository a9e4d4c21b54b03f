// Package codec defines the small protocol recursive and composite value
// types use to compose onto a stream.Writer/stream.Reader, plus the stock
// codecs built on top of it: Optional, Enum, String, Bytes, StringArray,
// UUID, BitArray, and BoundedArray.
//
// A value type participates by implementing Encoder and Decoder on a
// pointer receiver. Encode is infallible (it may still panic on a caller
// bug, e.g. a range compressor fed an out-of-range value); Decode may fail
// with errs.ErrTooShort or errs.ErrEncoding. Nothing here is self-describing:
// the reader must request the exact same sequence of operations, widths,
// hints, and compressor parameters the writer used.
package codec

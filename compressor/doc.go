// Package compressor implements the range compressors: small,
// immutable value-range descriptors that quantize a value declared to lie
// within [min,max] into a minimal-width unsigned bit field on a
// stream.Writer, and reverse the mapping on a stream.Reader.
//
// Four shapes are provided: UIntCompressor and IntCompressor for integers,
// FloatCompressor and DoubleCompressor for floating point, plus Vec2/Vec3
// helpers that apply a scalar compressor componentwise. None of them hold a
// stream reference; a single compressor value is reused across many
// encode/decode calls, which is what Cache exists to exploit for callers
// that reconstruct the same (kind, min, max, bits) tuple repeatedly.
//
// Construction panics on invalid parameters (min >= max, or a float/double
// bits value outside (0,64]) since these are caller bugs discoverable at
// startup, not data-dependent failures.
package compressor

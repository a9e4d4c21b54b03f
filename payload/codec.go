package payload

import "fmt"

// Codec identifies a post-framing compression algorithm.
type Codec uint8

const (
	CodecNone     Codec = 0x1
	CodecZstdCGO  Codec = 0x2
	CodecZstdPure Codec = 0x2 // same wire identity as CodecZstdCGO; only the implementation differs per build.
	CodecS2       Codec = 0x3
	CodecLZ4      Codec = 0x4
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecZstdCGO:
		return "Zstd"
	case CodecS2:
		return "S2"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte sequence.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte sequence produced by the matching
// Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// implementation pairs a Compressor with its Decompressor.
type implementation interface {
	Compressor
	Decompressor
}

func lookup(c Codec) (implementation, error) {
	switch c {
	case CodecNone:
		return noOpImpl{}, nil
	case CodecZstdCGO: // same numeric value as CodecZstdPure
		return zstdImpl{}, nil
	case CodecS2:
		return s2Impl{}, nil
	case CodecLZ4:
		return lz4Impl{}, nil
	default:
		return nil, fmt.Errorf("payload: unknown codec %d", c)
	}
}

// Compress compresses data using the named codec.
func Compress(c Codec, data []byte) ([]byte, error) {
	impl, err := lookup(c)
	if err != nil {
		return nil, err
	}

	return impl.Compress(data)
}

// Decompress decompresses data using the named codec.
func Decompress(c Codec, data []byte) ([]byte, error) {
	impl, err := lookup(c)
	if err != nil {
		return nil, err
	}

	return impl.Decompress(data)
}

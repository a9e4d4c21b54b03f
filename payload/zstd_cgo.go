//go:build cgo

package payload

import "github.com/valyala/gozstd"

// zstdImpl wraps valyala/gozstd, a CGO binding to the reference zstd C
// library. Preferred build when CGO is available: faster than the pure-Go
// decoder at the cost of a C toolchain dependency.
type zstdImpl struct{}

func (zstdImpl) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

func (zstdImpl) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

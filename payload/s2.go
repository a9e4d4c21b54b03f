package payload

import "github.com/klauspost/compress/s2"

// s2Impl wraps klauspost/compress's S2 codec: balanced compression ratio
// and speed, no CGO dependency.
type s2Impl struct{}

func (s2Impl) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (s2Impl) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

package payload

// noOpImpl bypasses compression entirely, returning the input unchanged.
// Useful as a baseline and for payloads already well-packed by range
// compressors, where a second compression pass buys little.
type noOpImpl struct{}

func (noOpImpl) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (noOpImpl) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

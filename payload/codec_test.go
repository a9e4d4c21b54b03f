package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() []byte {
	data := make([]byte, 4096)
	pattern := []byte("bitstream payload compression round trip test data")
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func TestCodec_String(t *testing.T) {
	assert.Equal(t, "None", CodecNone.String())
	assert.Equal(t, "Zstd", CodecZstdCGO.String())
	assert.Equal(t, "S2", CodecS2.String())
	assert.Equal(t, "LZ4", CodecLZ4.String())
	assert.Equal(t, "Unknown", Codec(0xFF).String())
}

func TestCompress_RoundTrip_AllCodecs(t *testing.T) {
	data := sampleData()

	for _, c := range []Codec{CodecNone, CodecZstdCGO, CodecS2, CodecLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			compressed, err := Compress(c, data)
			require.NoError(t, err)

			decompressed, err := Decompress(c, compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCompress_EmptyInput(t *testing.T) {
	for _, c := range []Codec{CodecNone, CodecZstdCGO, CodecS2, CodecLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			compressed, err := Compress(c, nil)
			require.NoError(t, err)
			_ = compressed
		})
	}
}

func TestCompress_UnknownCodec(t *testing.T) {
	_, err := Compress(Codec(0xFF), []byte("x"))
	assert.Error(t, err)
}

package compress

import "github.com/klauspost/compress/s2"

// S2Compressor trades some compression ratio for speed relative to
// Zstd, a reasonable default for records that pass through the
// envelope frequently.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor returns an S2 codec.
func NewS2Compressor() S2Compressor { return S2Compressor{} }

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Encode(nil, data), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Decode(nil, data)
}

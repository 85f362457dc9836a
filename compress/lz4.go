package compress

import "github.com/pierrec/lz4/v4"

// LZ4Compressor favors fast decompression over compression ratio,
// suited to a hot path that reads many more envelopes than it writes.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor returns an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor { return LZ4Compressor{} }

func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	var compressor lz4.Compressor
	n, err := compressor.CompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	if n == 0 && len(data) > 0 {
		// Incompressible input: CompressBlock reports n==0 rather than
		// emitting a larger-than-input block.
		return data, nil
	}
	return buf[:n], nil
}

func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	// The envelope records only the compressed body's length, not the
	// original size, so the output buffer starts as a guess (four times
	// the input plus 64 bytes) and doubles after each failed attempt;
	// once the buffer exceeds 1 GiB the last error is returned.
	buf := make([]byte, len(data)*4+64)
	for {
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if len(buf) > 1<<30 {
			return nil, err
		}
		buf = make([]byte, len(buf)*2)
	}
}

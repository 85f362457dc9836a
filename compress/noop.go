package compress

// NoOpCompressor passes data through unchanged. Useful when a record
// is already small or when the caller wants envelope framing without
// paying for compression.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor returns a no-op codec.
func NewNoOpCompressor() NoOpCompressor { return NoOpCompressor{} }

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) { return data, nil }

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }

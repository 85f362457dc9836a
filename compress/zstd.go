package compress

// ZstdCompressor gives the best compression ratio of the built-in
// codecs at the cost of speed, suited to envelopes headed for
// long-term storage rather than a hot request path. Its Compress and
// Decompress methods are implemented in zstd_pure.go (pure Go,
// default build) and zstd_cgo.go (cgo build, linking libzstd).
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor returns a Zstd codec.
func NewZstdCompressor() ZstdCompressor { return ZstdCompressor{} }

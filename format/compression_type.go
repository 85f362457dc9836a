// Package format defines small, dependency-free value types shared
// across imprint's ambient storage layer (the envelope) without
// pulling in the codec implementations themselves.
package format

// CompressionType identifies the algorithm an envelope's body was
// compressed with. It is not part of the record wire format itself —
// a record's 11-byte header has no room for a compression flag — it
// belongs to the outer envelope that wraps a serialized record for
// storage or transmission.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

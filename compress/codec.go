// Package compress provides compression codecs for the envelope layer
// that wraps a serialized record for storage or transmission. The
// record wire format itself is never compressed field-by-field —
// compression, when used, applies once to the whole serialized record
// (see the envelope package).
package compress

import (
	"fmt"

	"github.com/imprintio/imprint/format"
)

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("imprint/compress: unsupported compression type: %s", compressionType)
}

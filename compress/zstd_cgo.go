//go:build cgo

package compress

import "github.com/valyala/gozstd"

// Compress uses gozstd's cgo binding to libzstd at a moderate level,
// favoring the better ratio a cgo build can afford over the pure-Go
// path's portability constraints.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return gozstd.Decompress(nil, data)
}

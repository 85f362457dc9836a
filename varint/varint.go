// Package varint implements unsigned LEB128 encoding for values up to
// 32 bits, the length-prefix format used throughout imprint's wire
// codec for directory counts, Bytes/String lengths, and Array counts.
package varint

import "github.com/imprintio/imprint/errs"

const (
	continuationBit = 0x80
	segmentBits     = 0x7f
	// maxLen is enough bytes to cover the full uint32 range.
	maxLen = 5
)

// Encode appends the LEB128 encoding of v to buf and returns the
// extended slice. Each byte holds 7 value bits, least-significant
// group first, with the high bit set on every byte except the last.
func Encode(v uint32, buf []byte) []byte {
	for {
		b := byte(v & segmentBits)
		v >>= 7
		if v != 0 {
			b |= continuationBit
		}
		buf = append(buf, b)
		if v == 0 {
			return buf
		}
	}
}

// Len returns the number of bytes Encode would produce for v, without
// allocating.
func Len(v uint32) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

// Decode reads a LEB128-encoded uint32 from the front of data,
// returning the decoded value and the number of bytes consumed.
//
// Decode fails with a BufferUnderflowError if data is exhausted before
// a terminating byte, and with ErrInvalidVarInt if more than 5 bytes
// would be consumed or the fifth byte sets any bit beyond the low 4
// (which would overflow a uint32).
func Decode(data []byte) (uint32, int, error) {
	var result uint32
	var shift uint
	n := 0

	for {
		if n >= maxLen {
			return 0, 0, errs.ErrInvalidVarInt
		}
		if n >= len(data) {
			return 0, 0, &errs.BufferUnderflowError{Needed: n + 1, Available: len(data)}
		}

		b := data[n]
		n++

		segment := uint32(b & segmentBits)
		if shift == 28 && segment > 0xF {
			return 0, 0, errs.ErrInvalidVarInt
		}

		result |= segment << shift

		if b&continuationBit == 0 {
			return result, n, nil
		}

		shift += 7
	}
}
